package training

import (
	"fmt"
	"strings"
)

type BodyArea string

const (
	Neck      BodyArea = "neck"
	Shoulder  BodyArea = "shoulder"
	Elbow     BodyArea = "elbow"
	Wrist     BodyArea = "wrist"
	UpperBack BodyArea = "upper_back"
	LowerBack BodyArea = "lower_back"
	Hip       BodyArea = "hip"
	Knee      BodyArea = "knee"
	Ankle     BodyArea = "ankle"
)

var AllBodyAreas = []BodyArea{Neck, Shoulder, Elbow, Wrist, UpperBack, LowerBack, Hip, Knee, Ankle}

var areaAliases = map[string]BodyArea{
	"collo":        Neck,
	"spalla":       Shoulder,
	"spalle":       Shoulder,
	"gomito":       Elbow,
	"polso":        Wrist,
	"schiena_alta": UpperBack,
	"schiena":      LowerBack,
	"lombare":      LowerBack,
	"lower back":   LowerBack,
	"anca":         Hip,
	"ginocchio":    Knee,
	"ginocchia":    Knee,
	"caviglia":     Ankle,
	"upper back":   UpperBack,
	"shoulders":    Shoulder,
	"knees":        Knee,
}

func (a BodyArea) IsValid() bool {
	for _, known := range AllBodyAreas {
		if a == known {
			return true
		}
	}
	return false
}

// ParseBodyArea accepts the canonical tags plus the Italian labels emitted
// by older clients.
func ParseBodyArea(s string) (BodyArea, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if a := BodyArea(key); a.IsValid() {
		return a, nil
	}
	if a, ok := areaAliases[key]; ok {
		return a, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownBodyArea, s)
}

// PainBand buckets a 1-10 severity.
type PainBand int

const (
	PainNone PainBand = iota
	PainMild
	PainModerate
	PainSevere
)

func (b PainBand) String() string {
	switch b {
	case PainMild:
		return "mild"
	case PainModerate:
		return "moderate"
	case PainSevere:
		return "severe"
	default:
		return "none"
	}
}

// Substitutes reports whether the band calls for an exercise substitution.
// Moderate and severe are handled the same way.
func (b PainBand) Substitutes() bool {
	return b >= PainModerate
}

func BandFor(severity int) PainBand {
	switch {
	case severity >= 7:
		return PainSevere
	case severity >= 4:
		return PainModerate
	case severity >= 1:
		return PainMild
	default:
		return PainNone
	}
}

type PainEntry struct {
	Area     BodyArea `json:"area"`
	Severity int      `json:"severity"`
}

func (p PainEntry) Band() PainBand {
	return BandFor(p.Severity)
}

func (p PainEntry) Validate() error {
	if !p.Area.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownBodyArea, p.Area)
	}
	if p.Severity < 1 || p.Severity > 10 {
		return fmt.Errorf("%w: got %d", ErrInvalidSeverity, p.Severity)
	}
	return nil
}
