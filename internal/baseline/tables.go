package baseline

import "github.com/2beens/liftplan/internal/training"

type seed struct {
	ratio       float64
	variantID   string
	variantName string
	// load used when body mass is unknown as well
	defaultLoad float64
}

var bodyweightSeeds = map[training.Pattern]seed{
	training.LowerPush:      {ratio: 0.8, variantID: "back_squat", variantName: "Back Squat", defaultLoad: 40},
	training.LowerPull:      {ratio: 0.9, variantID: "romanian_deadlift", variantName: "Romanian Deadlift", defaultLoad: 40},
	training.HorizontalPush: {ratio: 0.5, variantID: "bench_press", variantName: "Bench Press", defaultLoad: 30},
	training.HorizontalPull: {ratio: 0.4, variantID: "barbell_row", variantName: "Barbell Row", defaultLoad: 25},
	training.VerticalPush:   {ratio: 0.35, variantID: "military_press", variantName: "Military Press", defaultLoad: 20},
	training.VerticalPull:   {ratio: 0.5, variantID: "lat_pulldown", variantName: "Lat Pulldown", defaultLoad: 30},
	training.Core:           {ratio: 0.3, variantID: "cable_crunch", variantName: "Cable Crunch", defaultLoad: 15},
}

var levelMultipliers = map[training.Level]float64{
	training.Beginner:     1.0,
	training.Intermediate: 1.15,
	training.Advanced:     1.3,
}

const (
	seededDifficulty = 5
	seededMaxReps    = 10
	maxCarriedReps   = 10
)

type correlation struct {
	source           training.Pattern
	ratio            float64
	difficultyAdjust float64
}

// correlationRule lists the sources for one target in preference order.
type correlationRule struct {
	target  training.Pattern
	sources []correlation
}

// Order matters: vertical_pull is inferred before horizontal_pull so it can
// act as its source.
var correlationRules = []correlationRule{
	{
		target: training.VerticalPull,
		sources: []correlation{
			{source: training.HorizontalPush, ratio: 0.80, difficultyAdjust: -2},
		},
	},
	{
		target: training.HorizontalPull,
		sources: []correlation{
			{source: training.VerticalPull, ratio: 0.85, difficultyAdjust: 0},
			{source: training.HorizontalPush, ratio: 0.70, difficultyAdjust: -1},
		},
	},
	{
		target: training.VerticalPush,
		sources: []correlation{
			{source: training.HorizontalPush, ratio: 0.65, difficultyAdjust: -2},
		},
	},
	{
		target: training.LowerPull,
		sources: []correlation{
			{source: training.LowerPush, ratio: 1.10, difficultyAdjust: 0},
		},
	},
}

type variant struct {
	id         string
	name       string
	difficulty float64
}

// progressions are ordered from easiest to hardest.
var progressions = map[training.Pattern][]variant{
	training.VerticalPush: {
		{"wall_shoulder_tap", "Wall Shoulder Tap", 1},
		{"incline_pike", "Incline Pike Push-up", 2},
		{"pike_knee", "Kneeling Pike Push-up", 3},
		{"pike_pushup", "Pike Push-up", 5},
		{"pike_elevated", "Elevated Pike Push-up", 6},
		{"pike_elevated_high", "High Elevated Pike Push-up", 7},
		{"wall_hspu_eccentric", "Wall Handstand Push-up (Eccentric)", 8},
		{"wall_hspu", "Wall Handstand Push-up", 9},
		{"hspu", "Handstand Push-up", 10},
	},
	training.VerticalPull: {
		{"prone_y_raise", "Prone Y Raise", 1},
		{"superman_pull", "Superman Pull", 2},
		{"floor_pull_easy", "Floor Pull (Assisted)", 3},
		{"inverted_row_high", "Inverted Row (High)", 4},
		{"inverted_row_table", "Inverted Row (Table)", 5},
		{"negative_pullup", "Negative Pull-up", 6},
		{"pullup", "Pull-up", 7},
		{"pullup_wide", "Wide Pull-up", 8},
		{"weighted_pullup", "Weighted Pull-up", 9},
	},
	training.HorizontalPull: {
		{"prone_ytw", "Prone Y-T-W Raises", 2},
		{"superman_row", "Superman Row", 3},
		{"inverted_row_high", "Inverted Row (High)", 4},
		{"inverted_row", "Inverted Row", 5},
		{"inverted_row_feet", "Feet-Elevated Inverted Row", 6},
		{"archer_row", "Archer Row", 7},
		{"one_arm_row", "One-Arm Inverted Row", 8},
	},
	training.LowerPull: {
		{"glute_bridge", "Glute Bridge", 2},
		{"hip_thrust_bw", "Bodyweight Hip Thrust", 3},
		{"single_leg_bridge", "Single-Leg Glute Bridge", 4},
		{"slider_leg_curl", "Slider Leg Curl", 5},
		{"nordic_eccentric", "Nordic Curl (Eccentric)", 6},
		{"nordic_assisted", "Assisted Nordic Curl", 7},
		{"nordic_partial", "Partial Nordic Curl", 8},
		{"nordic_curl", "Nordic Curl", 9},
	},
}

// variantFor picks the hardest progression step whose difficulty does not
// exceed the target. Patterns without a progression keep the seed variant.
func variantFor(p training.Pattern, difficulty float64) (variant, bool) {
	steps, ok := progressions[p]
	if !ok || len(steps) == 0 {
		return variant{}, false
	}
	picked := steps[0]
	for _, v := range steps {
		if v.difficulty <= difficulty {
			picked = v
		}
	}
	return picked, true
}
