package planner

import (
	"fmt"

	"github.com/2beens/liftplan/internal/training"
)

const (
	SplitPPL        = "Push/Pull/Legs"
	SplitUpperLower = "Upper/Lower"
	SplitFullBodyAB = "Full Body A/B"
	SplitFullBody   = "Full Body"

	minFrequency    = 1
	maxFrequency    = 7
	pplMinFrequency = 5
	upperLowerFreq  = 4
	fullBodyABFreq  = 3
)

// dayTemplate is a day of the split before exercises are resolved.
type dayTemplate struct {
	Focus    string
	Patterns []training.Pattern
	// Alternate days swap the baseline variant for its documented alternate.
	Alternate bool
}

var (
	fullBodyPatterns = []training.Pattern{
		training.LowerPush,
		training.HorizontalPush,
		training.VerticalPull,
		training.LowerPull,
		training.VerticalPush,
		training.HorizontalPull,
		training.Core,
	}
	upperPatterns = []training.Pattern{
		training.HorizontalPush,
		training.VerticalPull,
		training.VerticalPush,
		training.HorizontalPull,
		training.Core,
	}
	lowerPatterns = []training.Pattern{
		training.LowerPush,
		training.LowerPull,
		training.Core,
	}
	pushPatterns = []training.Pattern{
		training.HorizontalPush,
		training.VerticalPush,
		training.Core,
	}
	pullPatterns = []training.Pattern{
		training.VerticalPull,
		training.HorizontalPull,
		training.LowerPull,
	}
	legsPatterns = []training.Pattern{
		training.LowerPush,
		training.LowerPull,
		training.Core,
	}
)

// splitFor picks the topology purely from the weekly frequency.
func splitFor(frequency int) (string, []dayTemplate) {
	days := make([]dayTemplate, 0, frequency)
	switch {
	case frequency >= pplMinFrequency:
		cycle := []struct {
			name     string
			patterns []training.Pattern
		}{
			{"Push", pushPatterns},
			{"Pull", pullPatterns},
			{"Legs", legsPatterns},
		}
		for i := 0; i < frequency; i++ {
			round := i / len(cycle)
			c := cycle[i%len(cycle)]
			days = append(days, dayTemplate{
				Focus:     fmt.Sprintf("%s %c", c.name, 'A'+round),
				Patterns:  c.patterns,
				Alternate: round%2 == 1,
			})
		}
		return SplitPPL, days

	case frequency == upperLowerFreq:
		for i := 0; i < frequency; i++ {
			variant := 'A' + i/2
			if i%2 == 0 {
				days = append(days, dayTemplate{Focus: fmt.Sprintf("Upper %c", variant), Patterns: upperPatterns, Alternate: i >= 2})
			} else {
				days = append(days, dayTemplate{Focus: fmt.Sprintf("Lower %c", variant), Patterns: lowerPatterns, Alternate: i >= 2})
			}
		}
		return SplitUpperLower, days

	case frequency == fullBodyABFreq:
		for i := 0; i < frequency; i++ {
			alternate := i%2 == 1
			focus := "Full Body A"
			if alternate {
				focus = "Full Body B"
			}
			days = append(days, dayTemplate{Focus: focus, Patterns: fullBodyPatterns, Alternate: alternate})
		}
		return SplitFullBodyAB, days

	default:
		for i := 0; i < frequency; i++ {
			days = append(days, dayTemplate{Focus: SplitFullBody, Patterns: fullBodyPatterns})
		}
		return SplitFullBody, days
	}
}

// clampFrequency keeps the frequency within a week.
func clampFrequency(frequency int) (int, bool) {
	switch {
	case frequency < minFrequency:
		return minFrequency, true
	case frequency > maxFrequency:
		return maxFrequency, true
	default:
		return frequency, false
	}
}
