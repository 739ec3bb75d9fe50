// Package config loads the gausstrace CLI configuration.
//
// Sources, lowest to highest precedence: built-in defaults, a
// gausstrace.yaml file, GAUSSTRACE_* environment variables and command-line
// flags that were set explicitly.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// EnvPrefix namespaces environment overrides: GAUSSTRACE_LOG_LEVEL -> log_level.
const EnvPrefix = "GAUSSTRACE_"

// Defaults.
const (
	DefaultFormat    = "text"
	DefaultPrecision = 6
	DefaultTolerance = 1e-10
	DefaultLogLevel  = "warn"
	DefaultColor     = "auto"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the effective CLI configuration.
type Config struct {
	Format    string  `koanf:"format" validate:"oneof=text table json"`
	Precision int     `koanf:"precision" validate:"gte=0,lte=15"`
	Tolerance float64 `koanf:"tolerance" validate:"gte=0,lt=1"`
	LogLevel  string  `koanf:"log_level" validate:"oneof=debug info warn error"`
	Color     string  `koanf:"color" validate:"oneof=auto always never"`

	// File is the config file that was read, empty if none.
	File string `koanf:"-"`
}

var validate = validator.New()

// candidateFiles are searched in the working directory when no explicit
// file is given.
var candidateFiles = []string{"gausstrace.yaml", "gausstrace.yml"}

func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range candidateFiles {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}

	return ""
}

// Load resolves the configuration. cfgFile may be empty; flags may be nil.
// An explicit cfgFile that cannot be read is an error, a missing default
// file is not.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. defaults
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"format":    DefaultFormat,
		"precision": DefaultPrecision,
		"tolerance": DefaultTolerance,
		"log_level": DefaultLogLevel,
		"color":     DefaultColor,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. config file
	used := findConfigFile(cfgFile)
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", used, err)
		}
	}

	// 3. environment
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. flags the user actually set
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}

			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	cfg.File = used
	cfg.Format = strings.ToLower(cfg.Format)
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.Color = strings.ToLower(cfg.Color)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks field constraints and names the first offending key.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		fe := ve[0]

		return fmt.Errorf("%w: %s=%v violates %q", ErrInvalid, keyOf(fe.StructField()), fe.Value(), constraint(fe))
	}

	return fmt.Errorf("%w: %v", ErrInvalid, err)
}

var keys = map[string]string{
	"Format":    "format",
	"Precision": "precision",
	"Tolerance": "tolerance",
	"LogLevel":  "log_level",
	"Color":     "color",
}

func keyOf(field string) string {
	if k, ok := keys[field]; ok {
		return k
	}

	return field
}

func constraint(fe validator.FieldError) string {
	if fe.Param() == "" {
		return fe.Tag()
	}

	return fe.Tag() + "=" + fe.Param()
}
