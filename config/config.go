package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/lixenwraith/modpack/bar"
	"github.com/lixenwraith/modpack/description"
)

// ErrInvalid wraps every settings validation failure
var ErrInvalid = errors.New("invalid settings")

// EnvPrefix is the prefix of environment overrides, e.g. MODPACK_DESCRIPTIONS_DETAILS
const EnvPrefix = "MODPACK"

// Settings is the explicit configuration handed to the runtime and its mods
type Settings struct {
	// Mods toggles updatable mods by lowercase name; absent names are enabled
	Mods map[string]bool `mapstructure:"mods"`
	// Whitelist limits discovery to the named mods when non-empty
	Whitelist []string `mapstructure:"whitelist"`
	// Preset is applied over the loaded values when set
	Preset string `mapstructure:"preset"`

	Descriptions DescriptionSettings `mapstructure:"descriptions"`
	Bars         bar.Settings        `mapstructure:"bars"`
	Host         HostSettings        `mapstructure:"host"`
}

// DescriptionSettings controls the item details overlay
type DescriptionSettings struct {
	DetailsText string             `mapstructure:"details"`
	Details     description.Detail `mapstructure:"-"`
	Equipment   EquipmentSettings  `mapstructure:"equipment"`
}

// EquipmentSettings are the equipment detail overrides
type EquipmentSettings struct {
	Enabled                    bool `mapstructure:"enabled"`
	RelativeAttackSpeed        bool `mapstructure:"relative_attack_speed"`
	NormalizeImpact            bool `mapstructure:"normalize_impact"`
	MoveBarrierBelowProtection bool `mapstructure:"move_barrier_below_protection"`
	HideNumericalDurability    bool `mapstructure:"hide_numerical_durability"`
}

// HostSettings drive the headless host
type HostSettings struct {
	TickInterval time.Duration `mapstructure:"tick_interval"`
	// ReadyAfter is the number of ticks before resources and session report ready
	ReadyAfter int `mapstructure:"ready_after"`
	// MaxTicks stops the loop; zero runs until interrupted
	MaxTicks int `mapstructure:"max_ticks"`
}

// Default returns settings matching the host's unmodified behavior
func Default() Settings {
	return Settings{
		Mods: map[string]bool{},
		Descriptions: DescriptionSettings{
			DetailsText: description.DetailNone.String(),
			Details:     description.DetailNone,
		},
		Bars: bar.DefaultSettings(),
		Host: HostSettings{
			TickInterval: 50 * time.Millisecond,
			ReadyAfter:   3,
		},
	}
}

// Enabled reports whether the mod named name is switched on
func (s *Settings) Enabled(name string) bool {
	on, ok := s.Mods[strings.ToLower(name)]
	return !ok || on
}

// SetEnabled toggles a mod at runtime
func (s *Settings) SetEnabled(name string, on bool) {
	if s.Mods == nil {
		s.Mods = make(map[string]bool)
	}
	s.Mods[strings.ToLower(name)] = on
}

// Validate checks ranges and resolves the details text into its bitset
func (s *Settings) Validate() error {
	d, err := description.ParseDetail(s.Descriptions.DetailsText)
	if err != nil {
		return fmt.Errorf("%w: descriptions.details: %v", ErrInvalid, err)
	}
	s.Descriptions.Details = d

	if err := s.Bars.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if s.Host.TickInterval <= 0 {
		return fmt.Errorf("%w: host.tick_interval must be positive, got %s", ErrInvalid, s.Host.TickInterval)
	}
	if s.Host.ReadyAfter < 0 || s.Host.MaxTicks < 0 {
		return fmt.Errorf("%w: host tick counts must not be negative", ErrInvalid)
	}
	return nil
}

// Load reads settings from path (or the default config location when empty) and env
// A missing default file is not an error; a missing explicit file is
func Load(path string) (Settings, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetConfigType("toml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "modpack"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("read config: %w", err)
		}
	}

	s := Default()
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if s.Mods == nil {
		s.Mods = map[string]bool{}
	}
	if s.Preset != "" {
		if err := s.ApplyPreset(s.Preset); err != nil {
			return Settings{}, err
		}
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func setDefaults(v *viper.Viper, d Settings) {
	v.SetDefault("whitelist", append([]string{}, d.Whitelist...))
	v.SetDefault("preset", d.Preset)

	v.SetDefault("descriptions.details", d.Descriptions.DetailsText)
	v.SetDefault("descriptions.equipment.enabled", d.Descriptions.Equipment.Enabled)
	v.SetDefault("descriptions.equipment.relative_attack_speed", d.Descriptions.Equipment.RelativeAttackSpeed)
	v.SetDefault("descriptions.equipment.normalize_impact", d.Descriptions.Equipment.NormalizeImpact)
	v.SetDefault("descriptions.equipment.move_barrier_below_protection", d.Descriptions.Equipment.MoveBarrierBelowProtection)
	v.SetDefault("descriptions.equipment.hide_numerical_durability", d.Descriptions.Equipment.HideNumericalDurability)

	v.SetDefault("bars.enabled", d.Bars.Enabled)
	v.SetDefault("bars.durability_tied_to_max", d.Bars.DurabilityTiedToMax)
	v.SetDefault("bars.freshness_tied_to_lifespan", d.Bars.FreshnessTiedToLifespan)
	v.SetDefault("bars.durability_size", d.Bars.DurabilitySize)
	v.SetDefault("bars.freshness_size", d.Bars.FreshnessSize)
	v.SetDefault("bars.thickness", d.Bars.Thickness)

	v.SetDefault("host.tick_interval", d.Host.TickInterval)
	v.SetDefault("host.ready_after", d.Host.ReadyAfter)
	v.SetDefault("host.max_ticks", d.Host.MaxTicks)
}
