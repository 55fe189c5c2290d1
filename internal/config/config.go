// Package config is for run-wide settings unmarshalled by viper from
// defaults, an optional YAML file and command line flags.
package config

import (
	"errors"
	"fmt"
	"runtime"
	"sort"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Links holds the transitive search budgets and distance windows.
type Links struct {
	// maximum assembly links followed by one chain
	MaxAssemblyJumps int `mapstructure:"max-assembly-jumps" yaml:"max-assembly-jumps"`

	// maximum synthesized transitive links in one chain
	MaxTransitiveJumps int `mapstructure:"max-transitive-jumps" yaml:"max-transitive-jumps"`

	// searches with more alternatives than this are abandoned
	MaxAlternatives int `mapstructure:"max-alternatives" yaml:"max-alternatives"`

	// searches are disabled for datasets with more variants than this
	MaxVariants int `mapstructure:"max-variants" yaml:"max-variants"`

	// the closest two breakends may be and still form a transitive hop
	MinTransitiveDistance int `mapstructure:"min-transitive-distance" yaml:"min-transitive-distance"`

	// proximity windows for seeding alternatives
	AlternativeAdditionalDistance int `mapstructure:"alternative-additional-distance" yaml:"alternative-additional-distance"`
	AlternativeSeekDistance       int `mapstructure:"alternative-seek-distance" yaml:"alternative-seek-distance"`

	// proximity windows for transitive hops
	TransitiveAdditionalDistance int `mapstructure:"transitive-additional-distance" yaml:"transitive-additional-distance"`
	TransitiveSeekDistance       int `mapstructure:"transitive-seek-distance" yaml:"transitive-seek-distance"`

	// search loop ceiling
	MaxIterations int `mapstructure:"max-iterations" yaml:"max-iterations"`
}

// Config is the root-level settings struct.
type Config struct {
	// number of concurrent searches
	Workers int `mapstructure:"workers" yaml:"workers"`

	Links Links `mapstructure:"links" yaml:"links"`
}

// DefaultLinks returns the GRIPSS search constants.
func DefaultLinks() Links {
	return Links{
		MaxAssemblyJumps:              5,
		MaxTransitiveJumps:            2,
		MaxAlternatives:               25,
		MaxVariants:                   500000,
		MinTransitiveDistance:         30,
		AlternativeAdditionalDistance: 1000,
		AlternativeSeekDistance:       1000,
		TransitiveAdditionalDistance:  1000,
		TransitiveSeekDistance:        2000,
		MaxIterations:                 500,
	}
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Workers: runtime.NumCPU(),
		Links:   DefaultLinks(),
	}
}

// flagKeys maps command line flag names to viper keys.
var flagKeys = map[string]string{
	"workers":                         "workers",
	"max-assembly-jumps":              "links.max-assembly-jumps",
	"max-transitive-jumps":            "links.max-transitive-jumps",
	"max-alternatives":                "links.max-alternatives",
	"max-variants":                    "links.max-variants",
	"min-transitive-distance":         "links.min-transitive-distance",
	"alternative-additional-distance": "links.alternative-additional-distance",
	"alternative-seek-distance":       "links.alternative-seek-distance",
	"transitive-additional-distance":  "links.transitive-additional-distance",
	"transitive-seek-distance":        "links.transitive-seek-distance",
	"max-iterations":                  "links.max-iterations",
}

// AddFlags registers the settings as flags, defaulting to Default().
func AddFlags(flags *pflag.FlagSet) {
	d := Default()
	flags.Int("workers", d.Workers, "number of concurrent searches")
	flags.Int("max-assembly-jumps", d.Links.MaxAssemblyJumps, "maximum assembly links in one chain")
	flags.Int("max-transitive-jumps", d.Links.MaxTransitiveJumps, "maximum transitive links in one chain")
	flags.Int("max-alternatives", d.Links.MaxAlternatives, "maximum alternatives before a search is abandoned")
	flags.Int("max-variants", d.Links.MaxVariants, "variant count above which searches are disabled")
	flags.Int("min-transitive-distance", d.Links.MinTransitiveDistance, "minimum distance of a transitive hop")
	flags.Int("alternative-additional-distance", d.Links.AlternativeAdditionalDistance, "overlap window for alternatives")
	flags.Int("alternative-seek-distance", d.Links.AlternativeSeekDistance, "scan limit for alternatives")
	flags.Int("transitive-additional-distance", d.Links.TransitiveAdditionalDistance, "overlap window for transitive hops")
	flags.Int("transitive-seek-distance", d.Links.TransitiveSeekDistance, "scan limit for transitive hops")
	flags.Int("max-iterations", d.Links.MaxIterations, "search loop ceiling")
}

func newViper() *viper.Viper {
	v := viper.New()
	d := Default()
	v.SetDefault("workers", d.Workers)
	v.SetDefault("links.max-assembly-jumps", d.Links.MaxAssemblyJumps)
	v.SetDefault("links.max-transitive-jumps", d.Links.MaxTransitiveJumps)
	v.SetDefault("links.max-alternatives", d.Links.MaxAlternatives)
	v.SetDefault("links.max-variants", d.Links.MaxVariants)
	v.SetDefault("links.min-transitive-distance", d.Links.MinTransitiveDistance)
	v.SetDefault("links.alternative-additional-distance", d.Links.AlternativeAdditionalDistance)
	v.SetDefault("links.alternative-seek-distance", d.Links.AlternativeSeekDistance)
	v.SetDefault("links.transitive-additional-distance", d.Links.TransitiveAdditionalDistance)
	v.SetDefault("links.transitive-seek-distance", d.Links.TransitiveSeekDistance)
	v.SetDefault("links.max-iterations", d.Links.MaxIterations)
	return v
}

// Load reads the configuration. path is an optional YAML file; flags, when
// non-nil, override file values for every flag the user set.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	v := newViper()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	return decode(v)
}

// FromOverrides returns the default configuration with the given link
// settings replaced, keyed as in the YAML file's links section.
func FromOverrides(links map[string]any) (Config, error) {
	v := newViper()
	if len(links) > 0 {
		if err := v.MergeConfigMap(map[string]any{"links": links}); err != nil {
			return Config{}, fmt.Errorf("merge overrides: %w", err)
		}
	}
	return decode(v)
}

func decode(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.UnmarshalExact(&c); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects settings the search cannot run with.
func (c Config) Validate() error {
	var errs []error

	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers must be positive, got %d", c.Workers))
	}

	l := c.Links
	nonNegative := map[string]int{
		"max-assembly-jumps":              l.MaxAssemblyJumps,
		"max-transitive-jumps":            l.MaxTransitiveJumps,
		"max-alternatives":                l.MaxAlternatives,
		"max-variants":                    l.MaxVariants,
		"min-transitive-distance":         l.MinTransitiveDistance,
		"alternative-additional-distance": l.AlternativeAdditionalDistance,
		"alternative-seek-distance":       l.AlternativeSeekDistance,
		"transitive-additional-distance":  l.TransitiveAdditionalDistance,
		"transitive-seek-distance":        l.TransitiveSeekDistance,
	}
	for _, name := range sortedKeys(nonNegative) {
		if nonNegative[name] < 0 {
			errs = append(errs, fmt.Errorf("links.%s must not be negative, got %d", name, nonNegative[name]))
		}
	}

	if l.MaxIterations < 1 {
		errs = append(errs, fmt.Errorf("links.max-iterations must be positive, got %d", l.MaxIterations))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
