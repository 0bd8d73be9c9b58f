package plans

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/2beens/liftplan/internal/autoreg"
	"github.com/2beens/liftplan/internal/livelock"
	"github.com/2beens/liftplan/internal/telemetry/tracing"
	"github.com/2beens/liftplan/internal/training"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// liveSession serializes calls on a session, which is not safe for
// concurrent use on its own.
type liveSession struct {
	mu       sync.Mutex
	session  *autoreg.Session
	lastSeen time.Time
}

type StartSessionRequest struct {
	DayIndex   int                 `json:"day_index"`
	Population training.Population `json:"population,omitempty"`
}

type SubmitSetRequest struct {
	Reps   int      `json:"reps"`
	LoadKg *float64 `json:"load_kg,omitempty"`
	RPE    float64  `json:"rpe"`
}

// SessionView is the client-facing state of a live session.
type SessionView struct {
	ID            string                 `json:"id"`
	PlanID        string                 `json:"plan_id"`
	State         autoreg.State          `json:"state"`
	ExerciseIndex int                    `json:"exercise_index"`
	SetNumber     int                    `json:"set_number"`
	Current       *training.ExerciseSpec `json:"current,omitempty"`
	Pending       *training.Suggestion   `json:"pending,omitempty"`
	RestSeconds   int                    `json:"rest_seconds"`
}

func viewOf(sess *autoreg.Session) SessionView {
	spec, idx := sess.Current()
	view := SessionView{
		ID:            sess.ID(),
		PlanID:        sess.PlanID(),
		State:         sess.State(),
		ExerciseIndex: idx,
		SetNumber:     sess.SetNumber(),
		RestSeconds:   int(sess.RestTimer().Duration.Seconds()),
	}
	if spec.Name != "" {
		view.Current = &spec
	}
	if pending, ok := sess.Pending(); ok {
		view.Pending = &pending
	}
	return view
}

// StartSession opens a live session on one day of a stored plan and takes
// the user's live-session lock.
func (s *Service) StartSession(ctx context.Context, planID string, req StartSessionRequest) (_ *SessionView, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.sessions.start")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(
		attribute.String("plan_id", planID),
		attribute.Int("day_index", req.DayIndex),
	)

	s.evictIdle(ctx)

	plan, err := s.store.GetPlan(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("get plan %s: %w", planID, err)
	}
	day, err := sessionDay(plan, req.DayIndex)
	if err != nil {
		return nil, err
	}

	sessionID := s.newSessionID()
	acquired, err := s.lock.Acquire(ctx, plan.UserID, sessionID)
	if err != nil {
		return nil, fmt.Errorf("acquire live session lock: %w", err)
	}
	if !acquired {
		s.metricsManager.CounterPlanLockConflicts.Inc()
		return nil, ErrPlanLocked
	}

	sess, err := autoreg.NewSession(autoreg.Params{
		SessionID:  sessionID,
		UserID:     plan.UserID,
		PlanID:     plan.ID,
		Day:        day,
		Population: req.Population,
		Store:      s.store,
		Now:        s.now,
	})
	if err != nil {
		if releaseErr := s.lock.Release(ctx, plan.UserID, sessionID); releaseErr != nil {
			log.Warnf("plans: release lock after failed start: %s", releaseErr)
		}
		return nil, fmt.Errorf("new session: %w", err)
	}

	s.mu.Lock()
	s.sessions[sessionID] = &liveSession{session: sess, lastSeen: s.now()}
	s.mu.Unlock()
	s.metricsManager.GaugeLiveSessions.Inc()

	log.Debugf("plans: session %s started on plan %s day %d", sessionID, plan.ID, req.DayIndex)
	view := viewOf(sess)
	return &view, nil
}

// withSession runs fn on an open session. With refresh set the user's lock
// is extended first. A session that sat idle past the lock TTL, or whose
// lock went to someone else, is abandoned and reported closed.
func (s *Service) withSession(
	ctx context.Context,
	sessionID string,
	refresh bool,
	fn func(sess *autoreg.Session) error,
) error {
	s.mu.Lock()
	ls, ok := s.sessions[sessionID]
	s.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}

	ls.mu.Lock()
	defer ls.mu.Unlock()

	sess := ls.session
	if s.now().Sub(ls.lastSeen) > s.sessionTTL {
		sess.Abandon()
		s.forget(ctx, sessionID, sess.UserID())
		return fmt.Errorf("%w: idle since %s", autoreg.ErrSessionClosed, ls.lastSeen.Format(time.RFC3339))
	}

	if refresh {
		err := s.lock.Refresh(ctx, sess.UserID(), sessionID)
		if errors.Is(err, livelock.ErrNotHeld) {
			log.Warnf("plans: session %s lost its live lock, closing it", sessionID)
			sess.Abandon()
			s.forget(ctx, sessionID, sess.UserID())
			return fmt.Errorf("%w: live session lock lapsed", autoreg.ErrSessionClosed)
		}
		if err != nil {
			log.Warnf("plans: refresh lock of session %s: %s", sessionID, err)
		}
	}

	ls.lastSeen = s.now()
	return fn(sess)
}

// evictIdle abandons sessions nobody touched within the lock TTL.
func (s *Service) evictIdle(ctx context.Context) {
	s.mu.Lock()
	open := make(map[string]*liveSession, len(s.sessions))
	for id, ls := range s.sessions {
		open[id] = ls
	}
	s.mu.Unlock()

	cutoff := s.now().Add(-s.sessionTTL)
	for id, ls := range open {
		ls.mu.Lock()
		idle := ls.lastSeen.Before(cutoff)
		if idle {
			ls.session.Abandon()
		}
		userID := ls.session.UserID()
		ls.mu.Unlock()

		if idle {
			log.Debugf("plans: evicting idle session %s", id)
			s.forget(ctx, id, userID)
		}
	}
}

func (s *Service) GetSession(ctx context.Context, sessionID string) (*SessionView, error) {
	var view SessionView
	err := s.withSession(ctx, sessionID, false, func(sess *autoreg.Session) error {
		view = viewOf(sess)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// SubmitSet logs a set with its RPE and returns the classification. A
// maintain suggestion means the set was stored and the session moved on.
func (s *Service) SubmitSet(ctx context.Context, sessionID string, req SubmitSetRequest) (_ training.Suggestion, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.sessions.submit_set")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(attribute.String("session_id", sessionID))

	var suggestion training.Suggestion
	err = s.withSession(ctx, sessionID, true, func(sess *autoreg.Session) error {
		var submitErr error
		suggestion, submitErr = sess.SubmitSet(ctx, req.Reps, req.LoadKg, req.RPE)
		return submitErr
	})
	if err != nil {
		return training.Suggestion{}, err
	}

	s.metricsManager.CounterSuggestions.WithLabelValues(string(suggestion.Kind)).Inc()
	return suggestion, nil
}

func (s *Service) ApplySuggestion(ctx context.Context, sessionID string) (_ training.ExerciseSpec, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.sessions.apply")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	var spec training.ExerciseSpec
	err = s.withSession(ctx, sessionID, true, func(sess *autoreg.Session) error {
		var applyErr error
		spec, applyErr = sess.ApplySuggestion(ctx)
		return applyErr
	})
	return spec, err
}

func (s *Service) DismissSuggestion(ctx context.Context, sessionID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.sessions.dismiss")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	return s.withSession(ctx, sessionID, true, func(sess *autoreg.Session) error {
		return sess.DismissSuggestion(ctx)
	})
}

// CompleteSession summarizes the session, forgets it and releases the lock.
// The summary then revises the user's estimated capacities.
func (s *Service) CompleteSession(ctx context.Context, sessionID string) (_ *autoreg.Summary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.sessions.complete")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	var (
		summary autoreg.Summary
		userID  string
	)
	err = s.withSession(ctx, sessionID, false, func(sess *autoreg.Session) error {
		var completeErr error
		summary, completeErr = sess.Complete()
		userID = sess.UserID()
		return completeErr
	})
	if err != nil {
		return nil, err
	}

	s.forget(ctx, sessionID, userID)
	s.reviseEstimates(ctx, userID, summary)
	return &summary, nil
}

// AbandonSession ends the session early. A session that already expired
// counts as abandoned.
func (s *Service) AbandonSession(ctx context.Context, sessionID string) error {
	var userID string
	err := s.withSession(ctx, sessionID, false, func(sess *autoreg.Session) error {
		sess.Abandon()
		userID = sess.UserID()
		return nil
	})
	if errors.Is(err, autoreg.ErrSessionClosed) {
		return nil
	}
	if err != nil {
		return err
	}

	s.forget(ctx, sessionID, userID)
	return nil
}

func (s *Service) forget(ctx context.Context, sessionID, userID string) {
	s.mu.Lock()
	_, ok := s.sessions[sessionID]
	delete(s.sessions, sessionID)
	s.mu.Unlock()
	if !ok {
		return
	}
	s.metricsManager.GaugeLiveSessions.Dec()

	if err := s.lock.Release(ctx, userID, sessionID); err != nil {
		if errors.Is(err, livelock.ErrNotHeld) {
			log.Warnf("plans: lock of session %s already expired", sessionID)
			return
		}
		log.Errorf("plans: release lock of session %s: %s", sessionID, err)
	}
}

// SessionLogs returns the stored set logs of a session, live or finished.
func (s *Service) SessionLogs(ctx context.Context, sessionID string) (_ []training.SetLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.sessions.logs")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	logs, err := s.store.ListSetLogs(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list set logs of %s: %w", sessionID, err)
	}
	return logs, nil
}
