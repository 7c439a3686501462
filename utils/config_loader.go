package utils

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ServerConfig holds the listen addresses for the two HTTP surfaces.
type ServerConfig struct {
	MetricsAddr string `yaml:"metrics_addr"`
	APIAddr     string `yaml:"api_addr"`
}

// SimulationConfig holds the flight-simulation defaults. PlaybackRate is
// the real-time multiplier used when replaying a finished run to the
// metrics endpoint; it never affects the simulation result.
type SimulationConfig struct {
	MaxTimeSeconds  float64 `yaml:"max_time_seconds"`
	TimeStepSeconds float64 `yaml:"time_step_seconds"`
	PlaybackRate    float64 `yaml:"playback_rate"`
}

// Config is the top-level structure of config.yaml.
type Config struct {
	Server           ServerConfig     `yaml:"server"`
	Simulation       SimulationConfig `yaml:"simulation"`
	MotorCatalogPath string           `yaml:"motor_catalog"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			MetricsAddr: "0.0.0.0:8086",
			APIAddr:     ":8087",
		},
		Simulation: SimulationConfig{
			MaxTimeSeconds:  60,
			TimeStepSeconds: 0.01,
			PlaybackRate:    10,
		},
	}
}

// LoadConfig reads config.yaml from path. A missing file is not an
// error: the defaults are returned so the service runs out of the box.
// Fields absent from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Simulation.MaxTimeSeconds <= 0 {
		cfg.Simulation.MaxTimeSeconds = 60
	}
	if cfg.Simulation.TimeStepSeconds <= 0 {
		cfg.Simulation.TimeStepSeconds = 0.01
	}
	return cfg, nil
}
