//go:build integration_test || all_tests

package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/2beens/liftplan/internal/autoreg"
	"github.com/2beens/liftplan/internal/livelock"
	"github.com/2beens/liftplan/internal/planner"
	"github.com/2beens/liftplan/internal/plans"
	"github.com/2beens/liftplan/internal/training"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) doJSON(ctx context.Context, method, path string, body any) (int, []byte) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(s.T(), err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, reader)
	require.NoError(s.T(), err)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	require.NoError(s.T(), err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(s.T(), err)
	return resp.StatusCode, respBytes
}

func (s *IntegrationTestSuite) generatePlan(ctx context.Context, userID string) (int, plans.GenerateResult) {
	status, body := s.doJSON(ctx, http.MethodPost, "/plans", planner.Request{
		Profile: training.UserProfile{
			UserID:     userID,
			BodyMassKg: 82,
			Level:      training.Intermediate,
			Goals:      []training.Goal{training.Hypertrophy},
			Location:   training.Gym,
		},
		Pains:     []training.PainEntry{{Area: training.Knee, Severity: 5}},
		Frequency: 4,
	})

	var res plans.GenerateResult
	if status == http.StatusCreated {
		require.NoError(s.T(), json.Unmarshal(body, &res))
	}
	return status, res
}

func (s *IntegrationTestSuite) TestPlanAndSessionFlow() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	userID := gofakeit.UUID()
	status, generated := s.generatePlan(ctx, userID)
	s.Require().Equal(http.StatusCreated, status)
	s.Require().Len(generated.Plan.Days, 4)

	status, body := s.doJSON(ctx, http.MethodGet, "/plans/"+generated.Plan.ID, nil)
	s.Require().Equal(http.StatusOK, status)
	var fetched training.WeeklyPlan
	s.Require().NoError(json.Unmarshal(body, &fetched))
	s.Equal(generated.Plan.Days, fetched.Days)

	// start a live session on the first day
	status, body = s.doJSON(ctx, http.MethodPost, fmt.Sprintf("/plans/%s/sessions", generated.Plan.ID), plans.StartSessionRequest{DayIndex: 0})
	s.Require().Equal(http.StatusCreated, status, string(body))
	var view plans.SessionView
	s.Require().NoError(json.Unmarshal(body, &view))
	s.Equal(autoreg.AwaitingSetInput, view.State)

	holder, err := s.Redis.Get(ctx, livelock.Key(userID)).Result()
	s.Require().NoError(err)
	s.Equal(view.ID, holder)
	ttl, err := s.Redis.TTL(ctx, livelock.Key(userID)).Result()
	s.Require().NoError(err)
	s.Greater(ttl, 50*time.Minute)

	// the plan cannot be regenerated while the session is live
	status, _ = s.generatePlan(ctx, userID)
	s.Equal(http.StatusConflict, status)

	// on target
	status, _ = s.doJSON(ctx, http.MethodPost, "/sessions/"+view.ID+"/sets", plans.SubmitSetRequest{Reps: 8, RPE: 7})
	s.Equal(http.StatusNoContent, status)

	// near failure, then accept the reduction
	status, body = s.doJSON(ctx, http.MethodPost, "/sessions/"+view.ID+"/sets", plans.SubmitSetRequest{Reps: 6, RPE: 9.5})
	s.Require().Equal(http.StatusOK, status, string(body))
	var suggestion training.Suggestion
	s.Require().NoError(json.Unmarshal(body, &suggestion))
	s.Equal(training.SuggestReduce, suggestion.Kind)

	status, _ = s.doJSON(ctx, http.MethodPost, "/sessions/"+view.ID+"/suggestion/apply", nil)
	s.Equal(http.StatusOK, status)

	status, body = s.doJSON(ctx, http.MethodPost, "/sessions/"+view.ID+"/complete", nil)
	s.Require().Equal(http.StatusOK, status)
	var summary autoreg.Summary
	s.Require().NoError(json.Unmarshal(body, &summary))
	s.Equal(2, summary.SetsCompleted)

	status, body = s.doJSON(ctx, http.MethodGet, "/sessions/"+view.ID+"/logs", nil)
	s.Require().Equal(http.StatusOK, status)
	var loggedSets []training.SetLog
	s.Require().NoError(json.Unmarshal(body, &loggedSets))
	s.Require().Len(loggedSets, 2)
	s.False(loggedSets[0].WasAdjusted)
	s.True(loggedSets[1].WasAdjusted)

	status, body = s.doJSON(ctx, http.MethodGet, "/plans/"+generated.Plan.ID+"/modifications", nil)
	s.Require().Equal(http.StatusOK, status)
	var ledger []training.ExerciseModification
	s.Require().NoError(json.Unmarshal(body, &ledger))
	s.Require().Len(ledger, 1)
	s.Equal(training.ReasonAutoregReduce, ledger[0].Reason)

	status, body = s.doJSON(ctx, http.MethodGet, "/users/"+userID+"/plans/latest", nil)
	s.Require().Equal(http.StatusOK, status)
	s.Require().NoError(json.Unmarshal(body, &fetched))
	s.Equal(generated.Plan.ID, fetched.ID)

	var setLogs, modifications int
	s.Require().NoError(s.DB.QueryRowContext(ctx, "SELECT count(*) FROM set_log WHERE session_id = $1", view.ID).Scan(&setLogs))
	s.Equal(2, setLogs)
	s.Require().NoError(s.DB.QueryRowContext(ctx, "SELECT count(*) FROM exercise_modification WHERE plan_id::text = $1", generated.Plan.ID).Scan(&modifications))
	s.Equal(1, modifications)

	// lock released
	exists, err := s.Redis.Exists(ctx, livelock.Key(userID)).Result()
	s.Require().NoError(err)
	s.Zero(exists)
	status, _ = s.generatePlan(ctx, userID)
	s.Equal(http.StatusCreated, status)
}

func (s *IntegrationTestSuite) TestUnknownPlanAndSession() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	status, _ := s.doJSON(ctx, http.MethodGet, "/plans/"+gofakeit.UUID(), nil)
	s.Equal(http.StatusNotFound, status)

	status, _ = s.doJSON(ctx, http.MethodPost, "/sessions/nope/complete", nil)
	s.Equal(http.StatusNotFound, status)
}

func (s *IntegrationTestSuite) TestAbandonReleasesLock() {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	userID := gofakeit.UUID()
	status, generated := s.generatePlan(ctx, userID)
	s.Require().Equal(http.StatusCreated, status)

	status, body := s.doJSON(ctx, http.MethodPost, fmt.Sprintf("/plans/%s/sessions", generated.Plan.ID), plans.StartSessionRequest{DayIndex: 1})
	s.Require().Equal(http.StatusCreated, status, string(body))
	var view plans.SessionView
	s.Require().NoError(json.Unmarshal(body, &view))

	// a second device cannot open another session for the same user
	status, _ = s.doJSON(ctx, http.MethodPost, fmt.Sprintf("/plans/%s/sessions", generated.Plan.ID), plans.StartSessionRequest{DayIndex: 0})
	s.Equal(http.StatusConflict, status)

	status, _ = s.doJSON(ctx, http.MethodPost, "/sessions/"+view.ID+"/abandon", nil)
	s.Equal(http.StatusNoContent, status)

	exists, err := s.Redis.Exists(ctx, livelock.Key(userID)).Result()
	s.Require().NoError(err)
	s.Zero(exists)

	status, _ = s.doJSON(ctx, http.MethodGet, "/sessions/"+view.ID, nil)
	s.Equal(http.StatusNotFound, status)
}

func (s *IntegrationTestSuite) TestCompletedSessionRevisesEstimate() {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	userID := gofakeit.UUID()
	status, generated := s.generatePlan(ctx, userID)
	s.Require().Equal(http.StatusCreated, status)

	status, body := s.doJSON(ctx, http.MethodPost, fmt.Sprintf("/plans/%s/sessions", generated.Plan.ID), plans.StartSessionRequest{DayIndex: 0})
	s.Require().Equal(http.StatusCreated, status, string(body))
	var view plans.SessionView
	s.Require().NoError(json.Unmarshal(body, &view))
	s.Require().NotNil(view.Current)
	s.Require().False(view.Current.WasSubstituted)
	s.Require().GreaterOrEqual(view.Current.Sets, 2)

	estimate := training.PatternCapacity{
		Pattern:       view.Current.Pattern,
		VariantName:   view.Current.Name,
		LoadKg:        training.Float(60),
		IsEstimated:   true,
		EstimatedFrom: training.EstimatedFromBodyweight,
	}
	status, body = s.doJSON(ctx, http.MethodPost, "/users/"+userID+"/capacities", estimate)
	s.Require().Equal(http.StatusCreated, status, string(body))

	// a tested record needs a date
	status, _ = s.doJSON(ctx, http.MethodPost, "/users/"+userID+"/capacities", training.PatternCapacity{Pattern: view.Current.Pattern})
	s.Equal(http.StatusBadRequest, status)

	for i := 0; i < 2; i++ {
		status, _ = s.doJSON(ctx, http.MethodPost, "/sessions/"+view.ID+"/sets", plans.SubmitSetRequest{Reps: view.Current.Reps, LoadKg: training.Float(60), RPE: 7})
		s.Require().Equal(http.StatusNoContent, status)
	}

	status, _ = s.doJSON(ctx, http.MethodPost, "/sessions/"+view.ID+"/complete", nil)
	s.Require().Equal(http.StatusOK, status)

	var (
		records, runs int
		estimated     bool
		loadKg        float64
	)
	s.Require().NoError(s.DB.QueryRowContext(ctx,
		"SELECT count(*) FROM pattern_capacity WHERE user_id = $1", userID,
	).Scan(&records))
	s.Equal(2, records)
	s.Require().NoError(s.DB.QueryRowContext(ctx, `
		SELECT validation_runs, is_estimated, load_kg
		FROM pattern_capacity
		WHERE user_id = $1
		ORDER BY recorded_at DESC, id DESC
		LIMIT 1
	`, userID).Scan(&runs, &estimated, &loadKg))
	s.Equal(1, runs)
	s.True(estimated)
	s.Equal(60.0, loadKg)
}
