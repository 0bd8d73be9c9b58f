package periodization

import "github.com/2beens/liftplan/internal/training"

// band is one cell of the undulating table.
type band struct {
	// sets per level: beginner, intermediate, advanced
	sets      [3]int
	minReps   int
	maxReps   int
	rest      string
	intensity string
}

func (b band) setsFor(level training.Level) int {
	switch level {
	case training.Advanced:
		return b.sets[2]
	case training.Intermediate:
		return b.sets[1]
	default:
		return b.sets[0]
	}
}

type dayBands map[training.DayType]band

var strengthGym = dayBands{
	training.DayHeavy:    {sets: [3]int{3, 4, 5}, minReps: 3, maxReps: 5, rest: "3-5min", intensity: "85-90%"},
	training.DayVolume:   {sets: [3]int{3, 4, 4}, minReps: 10, maxReps: 15, rest: "90-120s", intensity: "65-70%"},
	training.DayModerate: {sets: [3]int{3, 4, 4}, minReps: 5, maxReps: 6, rest: "2-3min", intensity: "75-80%"},
}

// At home the load is bodyweight, so volume compensates for intensity.
var strengthHome = dayBands{
	training.DayHeavy:    {sets: [3]int{5, 5, 6}, minReps: 3, maxReps: 6, rest: "2-3min", intensity: "80-85%"},
	training.DayVolume:   {sets: [3]int{5, 5, 5}, minReps: 10, maxReps: 15, rest: "90s", intensity: "60-70%"},
	training.DayModerate: {sets: [3]int{5, 5, 5}, minReps: 5, maxReps: 6, rest: "90-120s", intensity: "70-75%"},
}

var hypertrophy = dayBands{
	training.DayHeavy:    {sets: [3]int{3, 4, 5}, minReps: 6, maxReps: 8, rest: "90-120s", intensity: "80-85%"},
	training.DayVolume:   {sets: [3]int{4, 5, 6}, minReps: 10, maxReps: 15, rest: "60-75s", intensity: "65-70%"},
	training.DayModerate: {sets: [3]int{3, 4, 5}, minReps: 8, maxReps: 12, rest: "75-90s", intensity: "70-80%"},
}

var fatLoss = dayBands{
	training.DayHeavy:    {sets: [3]int{3, 4, 4}, minReps: 8, maxReps: 10, rest: "75-90s", intensity: "75-80%"},
	training.DayVolume:   {sets: [3]int{4, 5, 5}, minReps: 12, maxReps: 15, rest: "45-60s", intensity: "60-70%"},
	training.DayModerate: {sets: [3]int{3, 4, 4}, minReps: 10, maxReps: 12, rest: "60-75s", intensity: "70-75%"},
}

var endurance = dayBands{
	training.DayHeavy:    {sets: [3]int{3, 4, 4}, minReps: 12, maxReps: 15, rest: "60s", intensity: "65-70%"},
	training.DayVolume:   {sets: [3]int{3, 4, 5}, minReps: 15, maxReps: 20, rest: "30-45s", intensity: "55-65%"},
	training.DayModerate: {sets: [3]int{3, 4, 4}, minReps: 12, maxReps: 18, rest: "45-60s", intensity: "60-70%"},
}

var generalFitness = dayBands{
	training.DayHeavy:    {sets: [3]int{3, 4, 4}, minReps: 6, maxReps: 10, rest: "90s", intensity: "75-80%"},
	training.DayVolume:   {sets: [3]int{3, 4, 4}, minReps: 10, maxReps: 15, rest: "60-75s", intensity: "65-75%"},
	training.DayModerate: {sets: [3]int{3, 4, 4}, minReps: 8, maxReps: 12, rest: "75-90s", intensity: "70-78%"},
}

// special populations ignore the day type
var special = map[training.Goal]band{
	training.SportPerformance: {sets: [3]int{4, 4, 4}, minReps: 6, maxReps: 10, rest: "90-120s", intensity: "70-80%"},
	training.MotorRecovery:    {sets: [3]int{3, 3, 3}, minReps: 8, maxReps: 12, rest: "90-120s", intensity: "60-70%"},
	training.Pregnancy:        {sets: [3]int{3, 3, 3}, minReps: 10, maxReps: 15, rest: "90-120s", intensity: "50-65%"},
	training.Disability:       {sets: [3]int{3, 3, 3}, minReps: 8, maxReps: 12, rest: "120s", intensity: "60-70%"},
}

var specialNotes = map[training.Goal]string{
	training.SportPerformance: "Focus on explosive concentric; keep 2-3 reps in reserve",
	training.MotorRecovery:    "Requires medical clearance; stop on any sharp pain and report it",
	training.Pregnancy:        "Requires medical clearance; avoid supine work after the first trimester and breath holding",
	training.Disability:       "Requires medical clearance; adapt range of motion to comfort and stop on pain",
}

var fallback = band{sets: [3]int{4, 4, 4}, minReps: 8, maxReps: 12, rest: "75-90s", intensity: "70%"}
