package training

import (
	"fmt"
	"strings"
)

// Pattern is a fundamental movement category.
type Pattern string

const (
	LowerPush      Pattern = "lower_push"
	LowerPull      Pattern = "lower_pull"
	HorizontalPush Pattern = "horizontal_push"
	HorizontalPull Pattern = "horizontal_pull"
	VerticalPush   Pattern = "vertical_push"
	VerticalPull   Pattern = "vertical_pull"
	Core           Pattern = "core"
	// Corrective tags injected rehab work; never produced by the resolver.
	Corrective Pattern = "corrective"
)

// AllPatterns lists the trainable patterns in plan order.
var AllPatterns = []Pattern{
	LowerPush,
	LowerPull,
	HorizontalPush,
	HorizontalPull,
	VerticalPush,
	VerticalPull,
	Core,
}

func (p Pattern) IsValid() bool {
	switch p {
	case LowerPush, LowerPull, HorizontalPush, HorizontalPull, VerticalPush, VerticalPull, Core, Corrective:
		return true
	default:
		return false
	}
}

func (p Pattern) IsPull() bool {
	return p == HorizontalPull || p == VerticalPull
}

func (p Pattern) IsLower() bool {
	return p == LowerPush || p == LowerPull
}

func (p Pattern) IsUpper() bool {
	switch p {
	case HorizontalPush, HorizontalPull, VerticalPush, VerticalPull:
		return true
	default:
		return false
	}
}

// Index returns the position of p in AllPatterns, or -1.
func (p Pattern) Index() int {
	for i, ap := range AllPatterns {
		if ap == p {
			return i
		}
	}
	return -1
}

func ParsePattern(s string) (Pattern, error) {
	p := Pattern(strings.ToLower(strings.TrimSpace(s)))
	if !p.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownPattern, s)
	}
	return p, nil
}
