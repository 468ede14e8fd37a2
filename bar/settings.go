package bar

import (
	"fmt"
	"math"
)

// Settings controls bar overrides
type Settings struct {
	Enabled                 bool `mapstructure:"enabled" toml:"enabled"`
	DurabilityTiedToMax     bool `mapstructure:"durability_tied_to_max" toml:"durability_tied_to_max"`
	FreshnessTiedToLifespan bool `mapstructure:"freshness_tied_to_lifespan" toml:"freshness_tied_to_lifespan"`
	DurabilitySize          int  `mapstructure:"durability_size" toml:"durability_size"`
	FreshnessSize           int  `mapstructure:"freshness_size" toml:"freshness_size"`
	Thickness               int  `mapstructure:"thickness" toml:"thickness"`
}

// DefaultSettings keeps the host's bar: 100/2.75 long and 100/2.50 thick
func DefaultSettings() Settings {
	length := int(math.RoundToEven(100 / MaxScaleX))
	return Settings{
		DurabilitySize: length,
		FreshnessSize:  length,
		Thickness:      int(math.RoundToEven(100 / MaxScaleY)),
	}
}

// Validate checks every percentage is within [0,100]
func (s Settings) Validate() error {
	for _, f := range []struct {
		name  string
		value int
	}{
		{"durability_size", s.DurabilitySize},
		{"freshness_size", s.FreshnessSize},
		{"thickness", s.Thickness},
	} {
		if f.value < 0 || f.value > 100 {
			return fmt.Errorf("bars.%s: %d out of range [0,100]", f.name, f.value)
		}
	}
	return nil
}
