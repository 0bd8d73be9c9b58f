// Package catalog holds the exercise knowledge base: equipment requirements,
// documented equivalents, relative-strength tiers and pain contraindications.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/2beens/liftplan/internal/training"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

const defaultLoadKg = 20

var (
	ErrInvalidCatalog = errors.New("invalid catalog")
)

type Requirement string

const (
	RequiresBarbell     Requirement = "barbell"
	RequiresDumbbells   Requirement = "dumbbells"
	RequiresMachines    Requirement = "machines"
	RequiresPullupBar   Requirement = "pullup_bar"
	RequiresSturdyTable Requirement = "sturdy_table"
	RequiresBands       Requirement = "bands"
)

// Satisfied reports whether the equipment set covers the requirement.
func (r Requirement) Satisfied(eq training.Equipment) bool {
	switch r {
	case RequiresBarbell:
		return eq.Barbell
	case RequiresDumbbells:
		return eq.Dumbbells
	case RequiresMachines:
		return eq.Machines
	case RequiresPullupBar:
		return eq.PullupBar
	case RequiresSturdyTable:
		return eq.SturdyTable
	case RequiresBands:
		return eq.Bands
	default:
		return false
	}
}

// IsLoad is true for implements that carry external load, as opposed to
// bodyweight supports like a bar, table or bands.
func (r Requirement) IsLoad() bool {
	return r == RequiresBarbell || r == RequiresDumbbells || r == RequiresMachines
}

type Exercise struct {
	Name        string           `yaml:"name"`
	Pattern     training.Pattern `yaml:"pattern"`
	Requires    []Requirement    `yaml:"requires"`
	LoadKg      float64          `yaml:"load_kg"`
	Equivalents []string         `yaml:"equivalents"`
	Alternate   string           `yaml:"alternate"`
	Aliases     []string         `yaml:"aliases"`
}

// AvailableWith reports whether every requirement is met.
func (e Exercise) AvailableWith(eq training.Equipment) bool {
	for _, r := range e.Requires {
		if !r.Satisfied(eq) {
			return false
		}
	}
	return true
}

// NeedsLoad is true when the exercise depends on barbell, dumbbells or
// machines.
func (e Exercise) NeedsLoad() bool {
	for _, r := range e.Requires {
		if r.IsLoad() {
			return true
		}
	}
	return false
}

type Tier struct {
	MinRatio float64 `yaml:"min_ratio"`
	Name     string  `yaml:"name"`
}

type PainRule struct {
	Substitutes map[training.Pattern][]string `yaml:"substitutes"`
	Correctives []string                      `yaml:"correctives"`
}

type document struct {
	Defaults      map[training.Pattern]string    `yaml:"defaults"`
	FloorPulls    map[training.Pattern]string    `yaml:"floor_pulls"`
	Exercises     []Exercise                     `yaml:"exercises"`
	StrengthTiers map[training.Pattern][]Tier    `yaml:"strength_tiers"`
	Pain          map[training.BodyArea]PainRule `yaml:"pain"`
}

// Catalog is read-only after Load and safe for concurrent use.
type Catalog struct {
	byName        map[string]Exercise
	defaults      map[training.Pattern]string
	floorPulls    map[training.Pattern]string
	strengthTiers map[training.Pattern][]Tier
	pain          map[training.BodyArea]PainRule
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the catalog shipped with the binary.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Parse(embeddedCatalog)
		if err != nil {
			panic(fmt.Sprintf("embedded catalog: %s", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

func Load(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}

	c := &Catalog{
		byName:        make(map[string]Exercise, len(doc.Exercises)),
		defaults:      doc.Defaults,
		floorPulls:    doc.FloorPulls,
		strengthTiers: doc.StrengthTiers,
		pain:          doc.Pain,
	}

	for _, ex := range doc.Exercises {
		if ex.Name == "" {
			return nil, fmt.Errorf("%w: exercise without a name", ErrInvalidCatalog)
		}
		if !ex.Pattern.IsValid() {
			return nil, fmt.Errorf("%w: %s: unknown pattern %q", ErrInvalidCatalog, ex.Name, ex.Pattern)
		}
		keys := append([]string{ex.Name}, ex.Aliases...)
		for _, k := range keys {
			key := normalize(k)
			if _, dup := c.byName[key]; dup {
				return nil, fmt.Errorf("%w: duplicate exercise %q", ErrInvalidCatalog, k)
			}
			c.byName[key] = ex
		}
	}

	for p, tiers := range c.strengthTiers {
		if len(tiers) == 0 {
			return nil, fmt.Errorf("%w: %s has no strength tiers", ErrInvalidCatalog, p)
		}
		for i := 1; i < len(tiers); i++ {
			if tiers[i].MinRatio > tiers[i-1].MinRatio {
				return nil, fmt.Errorf("%w: %s tiers must be hardest first", ErrInvalidCatalog, p)
			}
		}
		if tiers[len(tiers)-1].MinRatio != 0 {
			return nil, fmt.Errorf("%w: %s tiers must end at zero", ErrInvalidCatalog, p)
		}
	}

	for area := range c.pain {
		if !area.IsValid() {
			return nil, fmt.Errorf("%w: unknown body area %q", ErrInvalidCatalog, area)
		}
	}

	return c, nil
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Lookup finds an exercise by name or alias, case-insensitively.
func (c *Catalog) Lookup(name string) (Exercise, bool) {
	ex, ok := c.byName[normalize(name)]
	return ex, ok
}

// Available reports whether the named exercise can be performed with the
// equipment. Exercises the catalog does not know carry no requirements.
func (c *Catalog) Available(name string, eq training.Equipment) bool {
	ex, ok := c.Lookup(name)
	if !ok {
		return true
	}
	return ex.AvailableWith(eq)
}

func (c *Catalog) DefaultVariant(p training.Pattern) string {
	return c.defaults[p]
}

func (c *Catalog) FloorPull(p training.Pattern) (string, bool) {
	name, ok := c.floorPulls[p]
	return name, ok
}

func (c *Catalog) StrengthTiers(p training.Pattern) []Tier {
	return c.strengthTiers[p]
}

// ConservativeLoad is the fixed one-rep estimate used when no test exists.
func (c *Catalog) ConservativeLoad(name string) float64 {
	if ex, ok := c.Lookup(name); ok && ex.LoadKg > 0 {
		return ex.LoadKg
	}
	return defaultLoadKg
}

// Alternate returns the variant used on alternating days, if any.
func (c *Catalog) Alternate(name string) (string, bool) {
	ex, ok := c.Lookup(name)
	if !ok || ex.Alternate == "" {
		return "", false
	}
	return ex.Alternate, true
}

// Contraindicated reports whether the area lists the pattern.
func (c *Catalog) Contraindicated(area training.BodyArea, p training.Pattern) bool {
	_, ok := c.pain[area].Substitutes[p]
	return ok
}

// Substitutes returns the documented safe alternatives in preference order.
func (c *Catalog) Substitutes(area training.BodyArea, p training.Pattern) []string {
	return c.pain[area].Substitutes[p]
}

func (c *Catalog) Correctives(area training.BodyArea) []string {
	return c.pain[area].Correctives
}

// Canonical returns the catalog name for an exercise or alias. Unknown names
// come back trimmed.
func (c *Catalog) Canonical(name string) string {
	if ex, ok := c.Lookup(name); ok {
		return ex.Name
	}
	return strings.TrimSpace(name)
}

// Same reports whether two names refer to the same exercise.
func (c *Catalog) Same(a, b string) bool {
	return strings.EqualFold(c.Canonical(a), c.Canonical(b))
}
