package periodization

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/2beens/liftplan/internal/training"
)

var firstNumberRegex = regexp.MustCompile(`\d+`)

const defaultRestSeconds = 60

// RestSeconds parses rest labels such as "90s", "60-75s", "2-3min" and
// returns the lower bound in seconds.
func RestSeconds(rest string) int {
	rest = strings.TrimSpace(strings.ToLower(rest))
	if rest == "" {
		return defaultRestSeconds
	}

	match := firstNumberRegex.FindString(rest)
	if match == "" {
		if strings.Contains(rest, "min") {
			return 120
		}
		return defaultRestSeconds
	}

	n, err := strconv.Atoi(match)
	if err != nil {
		return defaultRestSeconds
	}
	if strings.Contains(rest, "min") {
		return n * 60
	}
	return n
}

// FormatRest renders seconds the way prescriptions label rest.
func FormatRest(seconds int) string {
	if seconds >= 120 && seconds%60 == 0 {
		return strconv.Itoa(seconds/60) + "min"
	}
	return strconv.Itoa(seconds) + "s"
}

var dupRotation = []training.DayType{
	training.DayHeavy,
	training.DayVolume,
	training.DayModerate,
}

// DayTypeFor rotates heavy, volume, moderate across the week, offset per
// pattern so a single day mixes day types.
func DayTypeFor(dayIndex, patternIndex int) training.DayType {
	if dayIndex < 0 {
		dayIndex = 0
	}
	if patternIndex < 0 {
		patternIndex = 0
	}
	return dupRotation[(dayIndex+patternIndex)%len(dupRotation)]
}
