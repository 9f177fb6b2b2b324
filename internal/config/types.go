package config

import (
	"github.com/c2h5oh/datasize"
)

// Config holds the resolved dashboard settings.
type Config struct {
	// Capacity is the number of samples each rolling window retains.
	Capacity int `yaml:"capacity" json:"capacity"`

	// Source selects the metric instrumentation: "runtime" or "process".
	Source string `yaml:"source" json:"source"`

	// FrameRate is the number of ticks per second.
	FrameRate int `yaml:"frame_rate" json:"frame_rate"`

	// StressStep is the buffer size bound to the '1' key.
	StressStep datasize.ByteSize `yaml:"stress_step" json:"stress_step"`

	// LogFile receives logs. Empty discards them while the dashboard owns the terminal.
	LogFile string `yaml:"log_file" json:"log_file"`

	// LogLevel is a logrus level name.
	LogLevel string `yaml:"log_level" json:"log_level"`
}
