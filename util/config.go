package util

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/Drolfothesgnir/bbcode/bbcode"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds the settings of the converter. Values come from, in the decreasing priority:
// command-line flags, environment variables, the app.env file and the defaults.
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT" validate:"omitempty,oneof=development production test"`
	CatalogPath string `mapstructure:"CATALOG_PATH"`
	OutputDir   string `mapstructure:"OUTPUT_DIR"`
	Workers     int    `mapstructure:"WORKERS" validate:"gte=1,lte=1024"`
	MaxDepth    int    `mapstructure:"MAX_DEPTH" validate:"gte=0"`
	MaxWarnings int    `mapstructure:"MAX_WARNINGS" validate:"gte=0"`

	// MaxInputLen is the largest accepted input in bytes. Zero means no limit.
	MaxInputLen int `mapstructure:"MAX_INPUT_LEN" validate:"gte=0"`
}

// DefaultMaxInputLen is the default size ceiling of a single input.
const DefaultMaxInputLen = 1 << 20

// flagKeys maps the command-line flags onto the config keys.
var flagKeys = map[string]string{
	"env":           "ENVIRONMENT",
	"catalog":       "CATALOG_PATH",
	"out":           "OUTPUT_DIR",
	"workers":       "WORKERS",
	"max-depth":     "MAX_DEPTH",
	"max-warnings":  "MAX_WARNINGS",
	"max-input-len": "MAX_INPUT_LEN",
}

func defaults() map[string]any {
	return map[string]any{
		"ENVIRONMENT":   "production",
		"CATALOG_PATH":  "",
		"OUTPUT_DIR":    "",
		"WORKERS":       runtime.NumCPU(),
		"MAX_DEPTH":     bbcode.DefaultMaxDepth,
		"MAX_WARNINGS":  bbcode.DefaultMaxWarnings,
		"MAX_INPUT_LEN": DefaultMaxInputLen,
	}
}

// NewFlagSet declares the command-line flags which override the config values.
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)

	fs.String("env", "production", "environment: development, production or test")
	fs.StringP("catalog", "c", "", "tag catalog file (.yaml, .yml or .toml); the built-in catalog if empty")
	fs.StringP("out", "o", "", "output directory; stdout if empty")
	fs.IntP("workers", "w", runtime.NumCPU(), "number of files converted concurrently")
	fs.Int("max-depth", bbcode.DefaultMaxDepth, "max nesting of parsed tag parameters")
	fs.Int("max-warnings", bbcode.DefaultMaxWarnings, "max warnings recorded per input")
	fs.Int("max-input-len", DefaultMaxInputLen, "max input size in bytes; 0 means no limit")

	return fs
}

// LoadConfig reads the configuration from the app.env file in path, if it exists, the environment
// and the parsed flags. flags can be nil.
func LoadConfig(path string, flags *pflag.FlagSet) (config Config, err error) {
	v := viper.New()

	for key, value := range defaults() {
		v.SetDefault(key, value)
	}

	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AutomaticEnv()

	err = v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, fmt.Errorf("cannot read config file: %w", err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err = v.BindPFlag(key, f); err != nil {
					return config, err
				}
			}
		}
	}

	err = v.Unmarshal(&config)
	if err != nil {
		return config, fmt.Errorf("cannot decode config: %w", err)
	}

	return config, config.Validate()
}

var validate = validator.New()

// Validate checks the ranges of the values.
func (config *Config) Validate() error {
	if err := validate.Struct(config); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// IsDevelopment is true for the development environment.
func (config *Config) IsDevelopment() bool {
	return config.Environment == "development"
}

// Limits returns the engine limits of the config.
func (config *Config) Limits() bbcode.Limits {
	return bbcode.Limits{
		MaxDepth:    config.MaxDepth,
		MaxWarnings: config.MaxWarnings,
	}
}
