package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/svlinks/internal/sv"
)

// Scenario defines a link resolution test scenario: a set of variants, the
// settings to search them with and the chains expected back.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Config overrides link settings, keyed as in the links section of the
	// config file (e.g. max-iterations).
	Config map[string]any `yaml:"config,omitempty"`

	// RunID is an optional fixed run ID.
	// If empty, defaults to "test-run-default".
	RunID string `yaml:"run_id,omitempty"`

	// Variants are loaded in order; the engine searches from each start
	// breakend.
	Variants []VariantSpec `yaml:"variants"`

	// Expect lists the chains expected for given breakends. Breakends not
	// listed are not checked.
	Expect []Expectation `yaml:"expect,omitempty"`
}

// BreakendSpec describes one end of a variant.
type BreakendSpec struct {
	Chromosome string `yaml:"chromosome"`
	Position   int    `yaml:"position"`

	// Orientation is 1 (positive) or -1 (negative).
	Orientation int `yaml:"orientation"`

	// Qual overrides the variant quality for this breakend.
	Qual float64 `yaml:"qual,omitempty"`

	Assemblies []string `yaml:"assemblies,omitempty"`

	// CI is the confidence interval [low, high] around Position; used only
	// by imprecise variants.
	CI []int `yaml:"ci,omitempty"`
}

// VariantSpec describes one variant. A variant without an end is
// single-ended.
type VariantSpec struct {
	ID    string        `yaml:"id"`
	Start BreakendSpec  `yaml:"start"`
	End   *BreakendSpec `yaml:"end,omitempty"`

	Qual                 float64 `yaml:"qual,omitempty"`
	InsertSequenceLength int     `yaml:"insert_sequence_length,omitempty"`
	Imprecise            bool    `yaml:"imprecise,omitempty"`
}

// Expectation is the chain expected from one breakend.
type Expectation struct {
	// Breakend is the searched breakend's ID: variant ID plus "o", or "b"
	// for a single-ended variant.
	Breakend string `yaml:"breakend"`

	// Links are the expected link IDs in chain order. Empty means no chain.
	Links []string `yaml:"links"`

	// Outcome optionally pins how the search ended (e.g. "ambiguous").
	Outcome string `yaml:"outcome,omitempty"`
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	scenario, err := decodeFile(path)
	if err != nil {
		return nil, err
	}

	if err := validateScenario(scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return scenario, nil
}

// LoadVariants reads a file in scenario format for its variants alone. Name,
// description and expectations are optional.
func LoadVariants(path string) (*Scenario, error) {
	scenario, err := decodeFile(path)
	if err != nil {
		return nil, err
	}

	if err := validateVariants(scenario.Variants); err != nil {
		return nil, fmt.Errorf("invalid variants: %w", err)
	}

	return scenario, nil
}

func decodeFile(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Strict field validation catches typos like "assembly:" vs "assemblies:"
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if err := validateVariants(s.Variants); err != nil {
		return err
	}

	if len(s.Expect) == 0 {
		return fmt.Errorf("expect list is required and must be non-empty")
	}

	for i, e := range s.Expect {
		if e.Breakend == "" {
			return fmt.Errorf("expect[%d]: breakend is required", i)
		}
	}

	return nil
}

func validateVariants(variants []VariantSpec) error {
	if len(variants) == 0 {
		return fmt.Errorf("variants list is required and must be non-empty")
	}

	seen := make(map[string]bool)
	for i, v := range variants {
		if v.ID == "" {
			return fmt.Errorf("variants[%d]: id is required", i)
		}
		if seen[v.ID] {
			return fmt.Errorf("variants[%d]: duplicate id %q", i, v.ID)
		}
		seen[v.ID] = true

		if err := validateBreakend(v.Start); err != nil {
			return fmt.Errorf("variants[%d].start: %w", i, err)
		}
		if v.End != nil {
			if err := validateBreakend(*v.End); err != nil {
				return fmt.Errorf("variants[%d].end: %w", i, err)
			}
		}
		if v.InsertSequenceLength < 0 {
			return fmt.Errorf("variants[%d]: insert_sequence_length must be non-negative", i)
		}
	}

	return nil
}

func validateBreakend(b BreakendSpec) error {
	if b.Chromosome == "" {
		return fmt.Errorf("chromosome is required")
	}
	if !sv.Orientation(b.Orientation).Valid() {
		return fmt.Errorf("orientation must be 1 or -1, got %d", b.Orientation)
	}
	if len(b.CI) != 0 && len(b.CI) != 2 {
		return fmt.Errorf("ci must have two entries, got %d", len(b.CI))
	}
	return nil
}

func (b BreakendSpec) site() sv.Site {
	site := sv.Site{
		Chromosome:  b.Chromosome,
		Position:    b.Position,
		Orientation: sv.Orientation(b.Orientation),
		Qual:        b.Qual,
		Assemblies:  b.Assemblies,
	}
	if len(b.CI) == 2 {
		site.ConfidenceInterval = [2]int{b.CI[0], b.CI[1]}
	}
	return site
}

// Build creates the variant v describes.
func (v VariantSpec) Build() *sv.Variant {
	attrs := sv.Attributes{
		Qual:                 v.Qual,
		InsertSequenceLength: v.InsertSequenceLength,
		Imprecise:            v.Imprecise,
	}

	if v.End == nil {
		return sv.NewSingle(v.ID, v.Start.site(), attrs)
	}
	return sv.NewVariant(v.ID, v.Start.site(), v.End.site(), attrs)
}

// BuildCache loads the scenario's variants, in order, into a new cache.
// The breakend map is left for the engine to build.
func (s *Scenario) BuildCache() *sv.Cache {
	cache := sv.NewCache()
	for _, v := range s.Variants {
		cache.AddVariant(v.Build())
	}
	return cache
}
