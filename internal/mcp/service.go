package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/2beens/liftplan/internal/baseline"
	"github.com/2beens/liftplan/internal/planner"
	"github.com/2beens/liftplan/internal/training"
)

// planAssembler is satisfied by *planner.Assembler.
type planAssembler interface {
	Assemble(ctx context.Context, req planner.Request, rec training.Recorder) training.WeeklyPlan
	ResolveExercise(ctx context.Context, req planner.ExerciseRequest, rec training.Recorder) (planner.ExerciseResult, error)
}

// contextService is what the tool handlers need. Used by Handler for testability.
type contextService interface {
	GetSchema(ctx context.Context) (string, error)
	PreviewPlan(ctx context.Context, req planner.Request) PlanPreview
	ResolveExercise(ctx context.Context, req planner.ExerciseRequest) (*planner.ExerciseResult, error)
	InferCapacities(ctx context.Context, profile training.UserProfile, given training.Capacities) CapacitiesPreview
}

// PlanPreview is a generated plan that was never stored.
type PlanPreview struct {
	Plan   training.WeeklyPlan      `json:"plan"`
	Events []training.DecisionEvent `json:"events,omitempty"`
}

type CapacitiesPreview struct {
	Capacities training.Capacities      `json:"capacities"`
	Events     []training.DecisionEvent `json:"events,omitempty"`
}

// ContextService runs the engine without storage or live-session locks.
type ContextService struct {
	schema    SchemaRepo
	assembler planAssembler
}

func NewContextService(schemaRepo SchemaRepo, assembler planAssembler) *ContextService {
	return &ContextService{
		schema:    schemaRepo,
		assembler: assembler,
	}
}

// GetSchema returns the liftplan tables as markdown.
func (s *ContextService) GetSchema(ctx context.Context) (string, error) {
	tables, err := s.schema.LiftplanTables(ctx)
	if err != nil {
		return "", err
	}
	return formatLiftplanSchema(tables), nil
}

func formatLiftplanSchema(tables []SchemaTable) string {
	if len(tables) == 0 {
		return "# Liftplan DB Schema\n\nNo liftplan tables found in the database.\n"
	}

	var b strings.Builder
	b.WriteString("# Liftplan DB Schema\n\n")
	b.WriteString("Tables: " + strings.Join(liftplanTables, ", ") + " (schema: public).\n\n")
	for _, t := range tables {
		b.WriteString("## ")
		b.WriteString(t.Name)
		b.WriteString("\n\n")
		if t.Comment != "" {
			b.WriteString(t.Comment)
			b.WriteString("\n\n")
		}
		b.WriteString("| Column | Type | Nullable | Default | Notes |\n|--------|------|----------|---------|-------|\n")
		for _, c := range t.Columns {
			def := "-"
			if c.Default != nil && *c.Default != "" {
				def = *c.Default
			}
			nullable := "NO"
			if c.Nullable {
				nullable = "YES"
			}
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n", c.Name, c.DataType, nullable, def, c.Comment)
		}
		b.WriteString("\n")
	}

	return strings.TrimSuffix(b.String(), "\n\n") + "\n"
}

func (s *ContextService) PreviewPlan(ctx context.Context, req planner.Request) PlanPreview {
	eventLog := &training.EventLog{}
	plan := s.assembler.Assemble(ctx, req, eventLog)
	return PlanPreview{
		Plan:   plan,
		Events: eventLog.Events(),
	}
}

func (s *ContextService) ResolveExercise(ctx context.Context, req planner.ExerciseRequest) (*planner.ExerciseResult, error) {
	res, err := s.assembler.ResolveExercise(ctx, req, nil)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *ContextService) InferCapacities(_ context.Context, profile training.UserProfile, given training.Capacities) CapacitiesPreview {
	eventLog := &training.EventLog{}
	caps := baseline.Infer(given, profile.BodyMassKg, profile.Level, eventLog)
	return CapacitiesPreview{
		Capacities: caps,
		Events:     eventLog.Events(),
	}
}
