package planner

import (
	"fmt"
	"math"
	"strings"

	"github.com/2beens/liftplan/internal/periodization"
	"github.com/2beens/liftplan/internal/training"
)

const maxGoals = 3

var goalShares = map[int][]float64{
	1: {1},
	2: {0.7, 0.3},
	3: {0.5, 0.3, 0.2},
}

// normalizeGoals maps labels to canonical goals, drops duplicates and keeps
// at most three. An empty list means general fitness.
func normalizeGoals(goals []training.Goal) ([]training.Goal, bool) {
	seen := make(map[training.Goal]bool, len(goals))
	out := make([]training.Goal, 0, len(goals))
	for _, g := range goals {
		g = training.ParseGoal(string(g))
		if g == "" || seen[g] {
			continue
		}
		seen[g] = true
		out = append(out, g)
	}
	if len(out) == 0 {
		return []training.Goal{training.GeneralFitness}, false
	}
	if len(out) > maxGoals {
		return out[:maxGoals], true
	}
	return out, false
}

// blend splits volume across goals by share. Rest, intensity and notes
// follow the primary goal.
func blend(
	maxReps int,
	goals []training.Goal,
	level training.Level,
	location training.Location,
	dayType training.DayType,
) periodization.Prescription {
	primary := periodization.Volume(maxReps, goals[0], level, location, dayType)
	if len(goals) == 1 {
		return primary
	}

	shares := goalShares[len(goals)]
	var sets, reps float64
	for i, g := range goals {
		p := primary
		if i > 0 {
			p = periodization.Volume(maxReps, g, level, location, dayType)
		}
		sets += shares[i] * float64(p.Sets)
		reps += shares[i] * float64(p.Reps)
	}

	out := primary
	out.Sets = max(1, int(math.Round(sets)))
	out.Reps = max(1, int(math.Round(reps)))
	out.RepsLabel = fmt.Sprintf("%d", out.Reps)
	return out
}

func distributionNote(goals []training.Goal) string {
	if len(goals) < 2 {
		return ""
	}
	shares := goalShares[len(goals)]
	parts := make([]string, len(goals))
	for i, g := range goals {
		parts[i] = fmt.Sprintf("%s %d%%", g, int(math.Round(shares[i]*100)))
	}
	return "Volume split across goals: " + strings.Join(parts, ", ")
}
