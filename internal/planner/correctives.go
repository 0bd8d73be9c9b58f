package planner

import (
	"fmt"

	"github.com/2beens/liftplan/internal/pain"
	"github.com/2beens/liftplan/internal/training"
)

const (
	maxCorrectivesPerDay   = 2
	minCorrectiveFrequency = 2
	maxCorrectiveFrequency = 3
)

// distributeCorrectives spreads correctives over the week instead of
// repeating them every day. Each corrective is placed on two days first, in
// priority order, and then on a third day while room remains. With fewer
// days than that, it appears once per day at most. Correctives that do not
// fit are dropped and recorded.
func distributeCorrectives(correctives []pain.Corrective, days int, rec training.Recorder) [][]training.ExerciseSpec {
	out := make([][]training.ExerciseSpec, days)
	if days == 0 || len(correctives) == 0 {
		return out
	}

	placed := make([]map[string]bool, days)
	for d := range placed {
		placed[d] = map[string]bool{}
	}
	counts := make([]int, len(correctives))
	cursor := 0

	place := func(ci int) bool {
		name := correctives[ci].Spec.Name
		best := -1
		for offset := 0; offset < days; offset++ {
			d := (cursor + offset) % days
			if len(out[d]) >= maxCorrectivesPerDay || placed[d][name] {
				continue
			}
			if best == -1 || len(out[d]) < len(out[best]) {
				best = d
			}
		}
		if best == -1 {
			return false
		}
		out[best] = append(out[best], correctives[ci].Spec.Clone())
		placed[best][name] = true
		counts[ci]++
		cursor = (best + 1) % days
		return true
	}

	for _, target := range []int{minCorrectiveFrequency, maxCorrectiveFrequency} {
		for ci := range correctives {
			for counts[ci] < min(target, days) {
				if !place(ci) {
					break
				}
			}
		}
	}

	for ci, c := range correctives {
		if counts[ci] > 0 {
			continue
		}
		rec.Record(training.DecisionEvent{
			Stage:   stage,
			Kind:    training.EventFallbackUsed,
			Pattern: training.Corrective,
			Subject: c.Spec.Name,
			Detail:  fmt.Sprintf("no room left for %s corrective (severity %d)", c.Area, c.Severity),
		})
	}

	return out
}
