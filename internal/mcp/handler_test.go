package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/2beens/liftplan/internal/planner"
	"github.com/2beens/liftplan/internal/training"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// mockContextService implements contextService for tests.
type mockContextService struct {
	schema    string
	schemaErr error

	previewReq planner.Request
	preview    PlanPreview

	resolveReq planner.ExerciseRequest
	resolved   *planner.ExerciseResult
	resolveErr error

	inferProfile training.UserProfile
	inferred     CapacitiesPreview
}

func (m *mockContextService) GetSchema(ctx context.Context) (string, error) {
	return m.schema, m.schemaErr
}

func (m *mockContextService) PreviewPlan(ctx context.Context, req planner.Request) PlanPreview {
	m.previewReq = req
	return m.preview
}

func (m *mockContextService) ResolveExercise(ctx context.Context, req planner.ExerciseRequest) (*planner.ExerciseResult, error) {
	m.resolveReq = req
	return m.resolved, m.resolveErr
}

func (m *mockContextService) InferCapacities(ctx context.Context, profile training.UserProfile, given training.Capacities) CapacitiesPreview {
	m.inferProfile = profile
	return m.inferred
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if len(res.Content) != 1 {
		t.Fatalf("expected 1 content, got %d", len(res.Content))
	}
	tc, ok := res.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", res.Content[0])
	}
	return tc.Text
}

func validProfile() ProfileInput {
	return ProfileInput{
		BodyMassKg: 80,
		Level:      "intermediate",
		Goals:      []string{"forza"},
	}
}

func TestHandler_GetLiftplanContextTool(t *testing.T) {
	t.Run("returns_schema", func(t *testing.T) {
		want := "## weekly_plan\n| col | type |\n"
		h := NewHandler(&mockContextService{schema: want})
		res, _, err := h.GetLiftplanContextTool()(context.Background(), &mcp.CallToolRequest{}, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.IsError {
			t.Fatalf("unexpected IsError")
		}
		if got := resultText(t, res); got != want {
			t.Fatalf("content text = %q, want %q", got, want)
		}
	})

	t.Run("returns_error_when_schema_fails", func(t *testing.T) {
		h := NewHandler(&mockContextService{schemaErr: errors.New("db gone")})
		res, _, err := h.GetLiftplanContextTool()(context.Background(), &mcp.CallToolRequest{}, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.IsError {
			t.Fatalf("expected IsError")
		}
		if got := resultText(t, res); got != "Error fetching schema: db gone" {
			t.Fatalf("content text = %q", got)
		}
	})
}

func TestHandler_GeneratePlanPreviewTool(t *testing.T) {
	t.Run("maps_input_to_request", func(t *testing.T) {
		svc := &mockContextService{
			preview: PlanPreview{Plan: training.WeeklyPlan{SplitName: "Full Body A/B"}},
		}
		h := NewHandler(svc)
		profile := validProfile()
		profile.Location = "casa"
		profile.Equipment = []string{"dumbbells", "pullup_bar"}
		res, _, err := h.GeneratePlanPreviewTool()(context.Background(), &mcp.CallToolRequest{}, PlanPreviewInput{
			Profile:   profile,
			Frequency: 3,
			Pains:     []PainInput{{Area: "knee", Severity: 4}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.IsError {
			t.Fatalf("unexpected IsError: %s", resultText(t, res))
		}

		req := svc.previewReq
		if req.Frequency != 3 {
			t.Fatalf("frequency = %d", req.Frequency)
		}
		if req.Profile.Location != training.Home {
			t.Fatalf("location = %q", req.Profile.Location)
		}
		if !req.Profile.Equipment.Dumbbells || !req.Profile.Equipment.PullupBar || req.Profile.Equipment.Barbell {
			t.Fatalf("equipment = %+v", req.Profile.Equipment)
		}
		if len(req.Profile.Goals) != 1 || req.Profile.Goals[0] != training.Strength {
			t.Fatalf("goals = %v", req.Profile.Goals)
		}
		if len(req.Pains) != 1 || req.Pains[0].Area != training.Knee {
			t.Fatalf("pains = %v", req.Pains)
		}

		var got PlanPreview
		if err := json.Unmarshal([]byte(resultText(t, res)), &got); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if got.Plan.SplitName != "Full Body A/B" {
			t.Fatalf("split = %q", got.Plan.SplitName)
		}
	})

	t.Run("defaults_to_gym", func(t *testing.T) {
		svc := &mockContextService{}
		h := NewHandler(svc)
		_, _, err := h.GeneratePlanPreviewTool()(context.Background(), &mcp.CallToolRequest{}, PlanPreviewInput{
			Profile:   validProfile(),
			Frequency: 4,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if svc.previewReq.Profile.Location != training.Gym {
			t.Fatalf("location = %q", svc.previewReq.Profile.Location)
		}
	})

	t.Run("invalid_level", func(t *testing.T) {
		profile := validProfile()
		profile.Level = "elite"
		h := NewHandler(&mockContextService{})
		res, _, err := h.GeneratePlanPreviewTool()(context.Background(), &mcp.CallToolRequest{}, PlanPreviewInput{Profile: profile})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.IsError {
			t.Fatalf("expected IsError")
		}
		if got := resultText(t, res); !strings.HasPrefix(got, "Invalid profile:") {
			t.Fatalf("content text = %q", got)
		}
	})

	t.Run("invalid_equipment", func(t *testing.T) {
		profile := validProfile()
		profile.Equipment = []string{"kettlebell"}
		h := NewHandler(&mockContextService{})
		res, _, _ := h.GeneratePlanPreviewTool()(context.Background(), &mcp.CallToolRequest{}, PlanPreviewInput{Profile: profile})
		if !res.IsError {
			t.Fatalf("expected IsError")
		}
	})

	t.Run("invalid_pain", func(t *testing.T) {
		h := NewHandler(&mockContextService{})
		res, _, _ := h.GeneratePlanPreviewTool()(context.Background(), &mcp.CallToolRequest{}, PlanPreviewInput{
			Profile: validProfile(),
			Pains:   []PainInput{{Area: "knee", Severity: 11}},
		})
		if !res.IsError {
			t.Fatalf("expected IsError")
		}
		if got := resultText(t, res); !strings.HasPrefix(got, "Invalid pains:") {
			t.Fatalf("content text = %q", got)
		}
	})
}

func TestHandler_ResolveExerciseTool(t *testing.T) {
	t.Run("invalid_pattern", func(t *testing.T) {
		h := NewHandler(&mockContextService{})
		res, _, err := h.ResolveExerciseTool()(context.Background(), &mcp.CallToolRequest{}, ResolveExerciseInput{
			Profile: validProfile(),
			Pattern: "jumping",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.IsError {
			t.Fatalf("expected IsError")
		}
		if got := resultText(t, res); !strings.HasPrefix(got, "Invalid pattern:") {
			t.Fatalf("content text = %q", got)
		}
	})

	t.Run("service_error", func(t *testing.T) {
		h := NewHandler(&mockContextService{resolveErr: training.ErrUnknownPattern})
		res, _, _ := h.ResolveExerciseTool()(context.Background(), &mcp.CallToolRequest{}, ResolveExerciseInput{
			Profile: validProfile(),
			Pattern: "corrective",
		})
		if !res.IsError {
			t.Fatalf("expected IsError")
		}
		if got := resultText(t, res); !strings.HasPrefix(got, "Error resolving exercise:") {
			t.Fatalf("content text = %q", got)
		}
	})

	t.Run("returns_exercise", func(t *testing.T) {
		svc := &mockContextService{
			resolved: &planner.ExerciseResult{
				Exercise: training.ExerciseSpec{Pattern: training.LowerPush, Name: "Back Squat", Sets: 4, Reps: 5},
			},
		}
		h := NewHandler(svc)
		res, _, err := h.ResolveExerciseTool()(context.Background(), &mcp.CallToolRequest{}, ResolveExerciseInput{
			Profile:  validProfile(),
			Pattern:  "lower_push",
			DayIndex: 2,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.IsError {
			t.Fatalf("unexpected IsError: %s", resultText(t, res))
		}
		if svc.resolveReq.Pattern != training.LowerPush || svc.resolveReq.DayIndex != 2 {
			t.Fatalf("request = %+v", svc.resolveReq)
		}
		var got planner.ExerciseResult
		if err := json.Unmarshal([]byte(resultText(t, res)), &got); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if got.Exercise.Name != "Back Squat" {
			t.Fatalf("exercise = %q", got.Exercise.Name)
		}
	})
}

func TestHandler_InferCapacitiesTool(t *testing.T) {
	svc := &mockContextService{
		inferred: CapacitiesPreview{Capacities: training.Capacities{
			training.Core: {Pattern: training.Core, VariantName: "Plank", Difficulty: 5, MaxReps: 10, IsEstimated: true},
		}},
	}
	h := NewHandler(svc)
	res, _, err := h.InferCapacitiesTool()(context.Background(), &mcp.CallToolRequest{}, InferCapacitiesInput{Profile: validProfile()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected IsError: %s", resultText(t, res))
	}
	if svc.inferProfile.BodyMassKg != 80 || svc.inferProfile.Level != training.Intermediate {
		t.Fatalf("profile = %+v", svc.inferProfile)
	}
	if !strings.Contains(resultText(t, res), "Plank") {
		t.Fatalf("content text = %q", resultText(t, res))
	}
}
