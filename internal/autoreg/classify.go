package autoreg

import (
	"fmt"
	"math"

	"github.com/2beens/liftplan/internal/periodization"
	"github.com/2beens/liftplan/internal/training"
)

const (
	highRPE        = 9.0
	lowRPE         = 4.0
	extraRestSecs  = 30
	repsDropAbs    = 2
	repsDropFactor = 0.8
	repsIncrease   = 2
)

// Classify turns the RPE of a completed set into a suggestion. setNumber is
// 1-based; the set is the last one when it reaches the planned sets.
func Classify(spec training.ExerciseSpec, setNumber int, rpe float64) training.Suggestion {
	lastSet := setNumber >= spec.Sets

	switch {
	case rpe >= highRPE && !lastSet:
		sets := max(setNumber, spec.Sets-1)
		reps := max(1, max(spec.Reps-repsDropAbs, int(math.Round(float64(spec.Reps)*repsDropFactor))))
		rest := periodization.FormatRest(periodization.RestSeconds(spec.Rest) + extraRestSecs)
		return training.Suggestion{
			Kind: training.SuggestReduce,
			Message: fmt.Sprintf(
				"RPE %.1f is too close to failure: drop to %d sets of %d reps and rest %s",
				rpe, sets, reps, rest,
			),
			ProposedSets: training.Int(sets),
			ProposedReps: training.Int(reps),
			ProposedRest: training.String(rest),
		}

	case rpe >= highRPE:
		rest := periodization.FormatRest(periodization.RestSeconds(spec.Rest) + extraRestSecs)
		return training.Suggestion{
			Kind:         training.SuggestReduce,
			Message:      fmt.Sprintf("RPE %.1f on the last set: rest %s before the next exercise", rpe, rest),
			ProposedRest: training.String(rest),
		}

	case rpe <= lowRPE && lastSet:
		sets := spec.Sets + 1
		reps := spec.Reps + repsIncrease
		return training.Suggestion{
			Kind:         training.SuggestIncrease,
			Message:      fmt.Sprintf("RPE %.1f leaves a lot in reserve: add a set of %d reps", rpe, reps),
			ProposedSets: training.Int(sets),
			ProposedReps: training.Int(reps),
		}

	default:
		return training.Suggestion{
			Kind:    training.SuggestMaintain,
			Message: fmt.Sprintf("RPE %.1f is on target", rpe),
		}
	}
}

// apply returns the spec with the suggestion's proposals written in.
func apply(spec training.ExerciseSpec, s training.Suggestion) training.ExerciseSpec {
	out := spec.Clone()
	if s.ProposedSets != nil {
		out.Sets = *s.ProposedSets
	}
	if s.ProposedReps != nil {
		out.Reps = *s.ProposedReps
		out.RepsLabel = fmt.Sprintf("%d", out.Reps)
	}
	if s.ProposedRest != nil {
		out.Rest = *s.ProposedRest
	}
	out.AddNote(s.Message)
	return out
}

func reasonFor(kind training.SuggestionKind) training.ModificationReason {
	if kind == training.SuggestIncrease {
		return training.ReasonAutoregIncrease
	}
	return training.ReasonAutoregReduce
}
