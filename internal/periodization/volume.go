// Package periodization turns a pattern capacity into a concrete prescription
// using daily undulating periodization.
package periodization

import (
	"fmt"
	"math"

	"github.com/2beens/liftplan/internal/training"
)

// Prescription is the sets/reps/rest/intensity for one exercise slot.
type Prescription struct {
	Sets      int    `json:"sets"`
	Reps      int    `json:"reps"`
	RepsLabel string `json:"reps_label"`
	Rest      string `json:"rest"`
	Intensity string `json:"intensity"`
	Notes     string `json:"notes,omitempty"`
}

const (
	beginnerSets      = 3
	beginnerMinReps   = 8
	beginnerMaxReps   = 10
	beginnerRepsRatio = 0.65
	workingRepsRatio  = 0.75
	minWorkingReps    = 4
)

// Volume computes the prescription for a pattern whose demonstrated capacity
// is maxReps.
func Volume(
	maxReps int,
	goal training.Goal,
	level training.Level,
	location training.Location,
	dayType training.DayType,
) Prescription {
	if level == training.Beginner || level == "" {
		reps := max(beginnerMinReps, min(int(math.Floor(float64(maxReps)*beginnerRepsRatio)), beginnerMaxReps))
		return Prescription{
			Sets:      beginnerSets,
			Reps:      reps,
			RepsLabel: fmt.Sprintf("%d", reps),
			Rest:      "90s",
			Intensity: "65%",
			Notes:     "Anatomical adaptation: focus on technique",
		}
	}

	working := max(minWorkingReps, int(math.Floor(float64(maxReps)*workingRepsRatio)))

	if b, ok := special[goal]; ok {
		p := b.prescribe(level, working)
		p.Notes = specialNotes[goal]
		return p
	}

	bands, ok := bandsFor(goal, location)
	if !ok {
		p := fallback.prescribe(level, working)
		p.Notes = "General programme"
		return p
	}

	b, ok := bands[dayType]
	if !ok {
		b = bands[training.DayModerate]
		dayType = training.DayModerate
	}

	p := b.prescribe(level, working)
	if goal == training.Hypertrophy && dayType == training.DayHeavy {
		// heavy hypertrophy days snap to one of two rep targets
		if working <= 6 {
			p.Reps = 6
		} else {
			p.Reps = 8
		}
		p.RepsLabel = fmt.Sprintf("%d", p.Reps)
	}
	p.Notes = fmt.Sprintf("%s day", dayType)

	return p
}

func (b band) prescribe(level training.Level, working int) Prescription {
	reps := max(b.minReps, min(working, b.maxReps))
	return Prescription{
		Sets:      b.setsFor(level),
		Reps:      reps,
		RepsLabel: fmt.Sprintf("%d", reps),
		Rest:      b.rest,
		Intensity: b.intensity,
	}
}

func bandsFor(goal training.Goal, location training.Location) (dayBands, bool) {
	switch goal {
	case training.Strength:
		if location == training.Home {
			return strengthHome, true
		}
		return strengthGym, true
	case training.Hypertrophy:
		return hypertrophy, true
	case training.FatLoss:
		return fatLoss, true
	case training.Endurance:
		return endurance, true
	case training.GeneralFitness, training.Wellness:
		return generalFitness, true
	default:
		return nil, false
	}
}
