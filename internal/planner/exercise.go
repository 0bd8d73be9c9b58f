package planner

import (
	"context"
	"fmt"

	"github.com/2beens/liftplan/internal/baseline"
	"github.com/2beens/liftplan/internal/pain"
	"github.com/2beens/liftplan/internal/telemetry/tracing"
	"github.com/2beens/liftplan/internal/training"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// ExerciseRequest asks for one prescribed exercise outside of a weekly plan.
type ExerciseRequest struct {
	Profile    training.UserProfile `json:"profile"`
	Capacities training.Capacities  `json:"capacities,omitempty"`
	Pains      []training.PainEntry `json:"pains,omitempty"`
	Pattern    training.Pattern     `json:"pattern"`
	// DayIndex selects the undulating day type, 0 is the heavy day for the
	// first pattern.
	DayIndex int `json:"day_index"`
}

type ExerciseResult struct {
	Exercise    training.ExerciseSpec   `json:"exercise"`
	Correctives []training.ExerciseSpec `json:"correctives,omitempty"`
}

// ResolveExercise runs inference, periodization, resolution and pain
// adaptation for a single pattern. Only an unknown or corrective pattern is
// rejected; everything else degrades the same way plan generation does.
func (a *Assembler) ResolveExercise(
	ctx context.Context,
	req ExerciseRequest,
	rec training.Recorder,
) (_ ExerciseResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "planner.resolve_exercise")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(attribute.String("pattern", string(req.Pattern)))

	if !req.Pattern.IsValid() || req.Pattern == training.Corrective {
		return ExerciseResult{}, fmt.Errorf("%w: %q", training.ErrUnknownPattern, req.Pattern)
	}

	rec = training.OrDiscard(rec)
	profile := req.Profile
	goals, _ := normalizeGoals(profile.Goals)
	profile.Goals = goals

	dayIndex := max(req.DayIndex, 0)
	pains := pain.Sanitize(req.Pains)
	caps := baseline.Infer(req.Capacities, profile.BodyMassKg, profile.Level, rec)

	spec, correctives := a.exercise(ctx, profile, goals, caps, pains, req.Pattern, dayIndex, false, rec)
	result := ExerciseResult{Exercise: spec}
	for _, c := range correctives {
		result.Correctives = append(result.Correctives, c.Spec)
	}
	return result, nil
}
