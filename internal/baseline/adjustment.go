package baseline

import (
	"math"
	"time"

	"github.com/2beens/liftplan/internal/training"
)

const (
	targetRPE           = 7.5
	minValidationRuns   = 2
	minValidationRPE    = 6.0
	maxValidationRPE    = 9.0
	loadRoundingStepKg  = 0.5
	smallAdjustFraction = 0.025
	largeAdjustFraction = 0.05
)

// IsValidated reports whether an estimated capacity has been confirmed by
// enough real sessions at a sensible effort.
func IsValidated(sessionCount int, avgRPE float64) bool {
	return sessionCount >= minValidationRuns &&
		avgRPE >= minValidationRPE &&
		avgRPE <= maxValidationRPE
}

// AdjustEstimate nudges an estimated load toward a target RPE of 7.5.
func AdjustEstimate(currentLoadKg, avgRPE float64) float64 {
	diff := avgRPE - targetRPE

	var change float64
	switch {
	case diff >= 2:
		change = -largeAdjustFraction
	case diff >= 1:
		change = -smallAdjustFraction
	case diff <= -2:
		change = largeAdjustFraction
	case diff <= -1:
		change = smallAdjustFraction
	default:
		return currentLoadKg
	}

	adjusted := currentLoadKg * (1 + change)
	return math.Round(adjusted/loadRoundingStepKg) * loadRoundingStepKg
}

// Revise feeds one finished session back into an estimated capacity. The
// load moves toward the target effort, and once the estimate has held up for
// enough sessions it is promoted to a tested record dated at.
func Revise(c training.PatternCapacity, sessionRPE float64, at time.Time) training.PatternCapacity {
	if !c.IsEstimated || !c.HasLoad() {
		return c
	}

	out := c
	out.ValidationRuns = c.ValidationRuns + 1
	out.LoadKg = training.Float(AdjustEstimate(c.Load(), sessionRPE))
	if IsValidated(out.ValidationRuns, sessionRPE) {
		testDate := at.UTC()
		out.IsEstimated = false
		out.TestDate = &testDate
	}
	return out
}
