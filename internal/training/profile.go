package training

import (
	"fmt"
	"strings"
)

type Level string

const (
	Beginner     Level = "beginner"
	Intermediate Level = "intermediate"
	Advanced     Level = "advanced"
)

func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "beginner", "principiante":
		return Beginner, nil
	case "intermediate", "intermedio":
		return Intermediate, nil
	case "advanced", "avanzato":
		return Advanced, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
}

type Location string

const (
	Gym  Location = "gym"
	Home Location = "home"
)

func ParseLocation(s string) (Location, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "gym", "palestra", "home_gym":
		return Gym, nil
	case "home", "casa":
		return Home, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownLocation, s)
	}
}

type Goal string

const (
	Strength         Goal = "strength"
	Hypertrophy      Goal = "hypertrophy"
	FatLoss          Goal = "fat_loss"
	Endurance        Goal = "endurance"
	GeneralFitness   Goal = "general_fitness"
	Wellness         Goal = "wellness"
	SportPerformance Goal = "sport_performance"
	MotorRecovery    Goal = "motor_recovery"
	Pregnancy        Goal = "pregnancy"
	Disability       Goal = "disability"
)

var goalAliases = map[string]Goal{
	"strength":             Strength,
	"forza":                Strength,
	"hypertrophy":          Hypertrophy,
	"massa":                Hypertrophy,
	"ipertrofia":           Hypertrophy,
	"muscle_gain":          Hypertrophy,
	"fat_loss":             FatLoss,
	"dimagrimento":         FatLoss,
	"tonificazione":        FatLoss,
	"definizione":          FatLoss,
	"toning":               FatLoss,
	"endurance":            Endurance,
	"resistenza":           Endurance,
	"general_fitness":      GeneralFitness,
	"fitness":              GeneralFitness,
	"wellness":             Wellness,
	"benessere":            Wellness,
	"sport_performance":    SportPerformance,
	"prestazioni_sportive": SportPerformance,
	"motor_recovery":       MotorRecovery,
	"pregnancy":            Pregnancy,
	"gravidanza":           Pregnancy,
	"postpartum":           Pregnancy,
	"disability":           Disability,
	"disabilita":           Disability,
}

// ParseGoal maps a goal label to its canonical tag. Unknown labels are
// returned as-is so that the periodization default can still apply.
func ParseGoal(s string) Goal {
	key := strings.ToLower(strings.TrimSpace(s))
	if g, ok := goalAliases[key]; ok {
		return g
	}
	return Goal(key)
}

// IsSpecial reports whether the goal overrides the undulating scheme.
func (g Goal) IsSpecial() bool {
	switch g {
	case SportPerformance, MotorRecovery, Pregnancy, Disability:
		return true
	default:
		return false
	}
}

// Population marks a special group with its own recovery needs.
type Population string

const (
	PopulationNone          Population = ""
	PopulationPregnancy     Population = "pregnancy"
	PopulationPostpartum    Population = "postpartum"
	PopulationMotorRecovery Population = "motor_recovery"
	PopulationDisability    Population = "disability"
	PopulationMenopause     Population = "menopause"
)

// Equipment is the set of implements available away from the gym.
type Equipment struct {
	Barbell     bool `json:"barbell"`
	Dumbbells   bool `json:"dumbbells"`
	Machines    bool `json:"machines"`
	PullupBar   bool `json:"pullup_bar"`
	SturdyTable bool `json:"sturdy_table"`
	Bands       bool `json:"bands"`
}

// FullGym is what every gym location implies.
var FullGym = Equipment{
	Barbell:     true,
	Dumbbells:   true,
	Machines:    true,
	PullupBar:   true,
	SturdyTable: true,
	Bands:       true,
}

// Effective returns the equipment actually usable at the location.
func (e Equipment) Effective(loc Location) Equipment {
	if loc == Gym {
		return FullGym
	}
	return e
}

func (e Equipment) IsEmpty() bool {
	return e == Equipment{}
}

type UserProfile struct {
	UserID         string     `json:"user_id"`
	BodyMassKg     float64    `json:"body_mass_kg"`
	Level          Level      `json:"level"`
	Goals          []Goal     `json:"goals"`
	Location       Location   `json:"location"`
	Equipment      Equipment  `json:"equipment"`
	Population     Population `json:"population,omitempty"`
	SessionMinutes int        `json:"session_minutes,omitempty"`
}

// PrimaryGoal falls back to general fitness when no goal is given.
func (p UserProfile) PrimaryGoal() Goal {
	if len(p.Goals) == 0 {
		return GeneralFitness
	}
	return p.Goals[0]
}

// NoEquipment is true for a home user who declared nothing.
func (p UserProfile) NoEquipment() bool {
	return p.Location == Home && p.Equipment.IsEmpty()
}
