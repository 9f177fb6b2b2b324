package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/c2h5oh/datasize"
	"github.com/rileyhilliard/allocview/internal/errors"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every key when read from the environment,
// e.g. ALLOCVIEW_FRAME_RATE.
const EnvPrefix = "ALLOCVIEW"

// Setting keys. Flags share these names.
const (
	KeyCapacity   = "capacity"
	KeySource     = "source"
	KeyFrameRate  = "frame-rate"
	KeyStressStep = "stress-step"
	KeyLogFile    = "log-file"
	KeyLogLevel   = "log-level"
)

// Default values.
const (
	DefaultCapacity   = 512
	DefaultSource     = "runtime"
	DefaultFrameRate  = 60
	DefaultStressStep = "10MB"
	DefaultLogLevel   = "info"
)

// NewViper returns a viper instance with defaults set and environment
// lookup enabled. Flags are bound by the caller.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyCapacity, DefaultCapacity)
	v.SetDefault(KeySource, DefaultSource)
	v.SetDefault(KeyFrameRate, DefaultFrameRate)
	v.SetDefault(KeyStressStep, DefaultStressStep)
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() *Config {
	return &Config{
		Capacity:   DefaultCapacity,
		Source:     DefaultSource,
		FrameRate:  DefaultFrameRate,
		StressStep: 10 * datasize.MB,
		LogLevel:   DefaultLogLevel,
	}
}

// Load resolves every setting from v and validates the result.
func Load(v *viper.Viper) (*Config, error) {
	capacity, err := intSetting(v, KeyCapacity)
	if err != nil {
		return nil, err
	}
	frameRate, err := intSetting(v, KeyFrameRate)
	if err != nil {
		return nil, err
	}

	var step datasize.ByteSize
	raw := strings.TrimSpace(v.GetString(KeyStressStep))
	if err := step.UnmarshalText([]byte(raw)); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Can't parse %s %q", KeyStressStep, raw),
			"Use a size like 10MB, 512KB or 1GB.")
	}

	cfg := &Config{
		Capacity:   capacity,
		Source:     strings.ToLower(strings.TrimSpace(v.GetString(KeySource))),
		FrameRate:  frameRate,
		StressStep: step,
		LogFile:    v.GetString(KeyLogFile),
		LogLevel:   strings.ToLower(strings.TrimSpace(v.GetString(KeyLogLevel))),
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// intSetting reads an integer setting, rejecting values that don't parse
// instead of letting them silently become zero.
func intSetting(v *viper.Viper, key string) (int, error) {
	raw := strings.TrimSpace(v.GetString(key))
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Can't parse %s %q as a whole number", key, raw),
			fmt.Sprintf("Set --%s or %s_%s to an integer.", key, EnvPrefix, envName(key)))
	}
	return n, nil
}

func envName(key string) string {
	return strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
}
