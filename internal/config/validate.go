package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/rileyhilliard/allocview/internal/errors"
	"github.com/rileyhilliard/allocview/internal/metrics"
	"github.com/rileyhilliard/allocview/internal/stress"
	"github.com/sirupsen/logrus"
)

// Frame rate bounds, in ticks per second.
const (
	MinFrameRate = 1
	MaxFrameRate = 240
)

// Validate checks the config for errors and returns structured error messages.
// A non-positive capacity is left for the history store to reject.
func Validate(cfg *Config) error {
	if !slices.Contains(metrics.Kinds(), cfg.Source) {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown metric source '%s'", cfg.Source),
			fmt.Sprintf("Pick one of: %s.", strings.Join(metrics.Kinds(), ", ")))
	}

	if cfg.FrameRate < MinFrameRate || cfg.FrameRate > MaxFrameRate {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Frame rate %d is out of range", cfg.FrameRate),
			fmt.Sprintf("Use a value between %d and %d ticks per second.", MinFrameRate, MaxFrameRate))
	}

	if cfg.StressStep == 0 {
		return errors.New(errors.ErrConfig,
			"Stress step can't be zero",
			"Use a size like 10MB.")
	}
	if cfg.StressStep > stress.MaxStep {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Stress step %s is too large", cfg.StressStep.HumanReadable()),
			fmt.Sprintf("Use a size no bigger than %s.", stress.MaxStep.HumanReadable()))
	}

	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Unknown log level '%s'", cfg.LogLevel),
			"Use one of: debug, info, warn, error.")
	}

	return nil
}
