package fouc

import (
	"fmt"
	"sync"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// StorageType selects where the generated script reads persisted
// preferences from.
type StorageType string

const (
	StorageLocalStorage StorageType = "localStorage"
	StorageCookie       StorageType = "cookie"
)

// Mode is the theme mode preference. Auto resolves against the
// prefers-color-scheme media query at runtime.
type Mode string

const (
	ModeAuto  Mode = "auto"
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// Resolve collapses auto to a concrete mode given the system
// preference. Mirrors the resolution step inside the generated script
// for server-side use.
func (m Mode) Resolve(systemDark bool) Mode {
	if m != ModeAuto {
		return m
	}
	if systemDark {
		return ModeDark
	}
	return ModeLight
}

// Storage keys the generated script reads and writes. The consolidated
// JSON blob is a fallback for integrations that persist a single
// object instead of individual keys.
const (
	KeyTheme      = "theme-current"
	KeyMode       = "theme-mode"
	KeyModeConfig = "theme-mode-config"
	KeyCSSVars    = "theme-css-vars"
)

// Cookie write-back expiry in seconds (1 year) so the server can read
// resolved preferences on the next request.
const cookieMaxAge = 365 * 24 * 60 * 60

// Config controls script generation. A pure value: no identity, no
// lifecycle beyond the Generate call.
type Config struct {
	StorageType   StorageType `yaml:"storage" default:"localStorage" validate:"oneof=localStorage cookie"`
	BodyReveal    bool        `yaml:"bodyReveal"`
	DefaultTheme  string      `yaml:"defaultTheme" default:"default" validate:"required"`
	DefaultMode   Mode        `yaml:"defaultMode" default:"auto" validate:"oneof=auto light dark"`
	RevealTimeout int         `yaml:"revealTimeout" default:"300" validate:"gte=0,lte=10000"`
	Debug         bool        `yaml:"debug"`
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// DefaultConfig returns a Config with all defaults applied.
func DefaultConfig() Config {
	var cfg Config
	_ = defaults.Set(&cfg)
	return cfg
}

// Validate checks the config against its constraints.
func (c *Config) Validate() error {
	if err := validatorInstance().Struct(c); err != nil {
		return fmt.Errorf("invalid fouc config: %w", err)
	}
	return nil
}

// LoadConfig parses a YAML config document, applies defaults for
// omitted fields, and validates the result.
func LoadConfig(data []byte) (Config, error) {
	var cfg Config
	if err := defaults.Set(&cfg); err != nil {
		return Config{}, fmt.Errorf("apply defaults: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse fouc config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
