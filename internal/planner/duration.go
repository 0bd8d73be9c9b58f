package planner

import (
	"math"
	"sort"

	"github.com/2beens/liftplan/internal/periodization"
	"github.com/2beens/liftplan/internal/training"
)

const (
	warmupSeconds       = 5 * 60
	secondsPerRep       = 3.5
	minWorkSeconds      = 20
	maxWorkSeconds      = 60
	minSetsWhenTrimming = 2
)

var standardWarmup = training.WarmupSets{Sets: 2, Reps: 6, Intensity: "60%"}

// EstimateDuration sums sets x (work + rest) over the day plus a fixed
// warm-up, rounded up to whole minutes. It is advisory only.
func EstimateDuration(exercises []training.ExerciseSpec) int {
	total := float64(warmupSeconds)
	for _, e := range exercises {
		reps := e.Reps
		if reps <= 0 {
			reps = 10
		}
		work := min(max(float64(reps)*secondsPerRep, minWorkSeconds), maxWorkSeconds)
		rest := float64(periodization.RestSeconds(e.Rest))
		total += float64(e.Sets) * (work + rest)
	}
	return int(math.Ceil(total / 60))
}

// trimPriority ranks exercises for set trimming, lowest first: correctives,
// then core, then slots past the day's two main lifts, then the main lifts.
func trimPriority(e training.ExerciseSpec, slot int) int {
	switch {
	case e.Pattern == training.Corrective:
		return 0
	case e.Pattern == training.Core:
		return 1
	case slot >= 2:
		return 2
	default:
		return 3
	}
}

// fitToTimeLimit removes sets one at a time, lowest priority first, until the
// day fits or every exercise sits at the floor. Exercises are never removed.
func fitToTimeLimit(exercises []training.ExerciseSpec, limitMinutes int) bool {
	if limitMinutes <= 0 {
		return true
	}

	order := make([]int, len(exercises))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		pa := trimPriority(exercises[order[a]], order[a])
		pb := trimPriority(exercises[order[b]], order[b])
		if pa != pb {
			return pa < pb
		}
		// later slots go first within a rank
		return order[a] > order[b]
	})

	for EstimateDuration(exercises) > limitMinutes {
		trimmed := false
		for _, i := range order {
			if exercises[i].Sets > minSetsWhenTrimming {
				exercises[i].Sets--
				trimmed = true
				break
			}
		}
		if !trimmed {
			return false
		}
	}
	return true
}

// addWarmups gives the first upper and the first lower exercise of the day a
// ramp-up.
func addWarmups(exercises []training.ExerciseSpec) {
	var upperDone, lowerDone bool
	for i := range exercises {
		e := &exercises[i]
		switch {
		case e.Pattern.IsUpper() && !upperDone:
			upperDone = true
		case e.Pattern.IsLower() && !lowerDone:
			lowerDone = true
		default:
			continue
		}
		w := standardWarmup
		e.Warmup = &w
	}
}

func skipsWarmups(goals []training.Goal, population training.Population) bool {
	switch population {
	case training.PopulationPregnancy, training.PopulationPostpartum,
		training.PopulationMotorRecovery, training.PopulationDisability:
		return true
	}
	for _, g := range goals {
		switch g {
		case training.Pregnancy, training.MotorRecovery, training.Disability:
			return true
		}
	}
	return false
}
