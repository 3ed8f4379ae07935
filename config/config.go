// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/protozoa/sim"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	World     WorldConfig     `yaml:"world"`
	Field     FieldConfig     `yaml:"field"`
	Agent     AgentConfig     `yaml:"agent"`
	Memory    MemoryConfig    `yaml:"memory"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// WorldConfig holds the dish dimensions in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// FieldConfig holds nutrient source parameters.
type FieldConfig struct {
	MinSources       int     `yaml:"min_sources"`
	MaxSources       int     `yaml:"max_sources"`
	RadiusMin        float64 `yaml:"radius_min"`
	RadiusMax        float64 `yaml:"radius_max"`
	IntensityMin     float64 `yaml:"intensity_min"`
	IntensityMax     float64 `yaml:"intensity_max"`
	DecayFactor      float64 `yaml:"decay_factor"`      // intensity multiplier per tick
	BrownianStep     float64 `yaml:"brownian_step"`     // max source drift per axis per tick
	RespawnThreshold float64 `yaml:"respawn_threshold"` // replace source below this intensity
}

// AgentConfig holds control-law and metabolism parameters.
type AgentConfig struct {
	Target           float64 `yaml:"target"`
	SensorDistance   float64 `yaml:"sensor_distance"`
	SensorAngle      float64 `yaml:"sensor_angle"` // radians
	LearningRate     float64 `yaml:"learning_rate"`
	MaxSpeed         float64 `yaml:"max_speed"`
	BaseCost         float64 `yaml:"base_cost"`
	MoveCost         float64 `yaml:"move_cost"`
	IntakeRate       float64 `yaml:"intake_rate"`
	CriticalEnergy   float64 `yaml:"critical_energy"`
	ExhaustionFactor float64 `yaml:"exhaustion_factor"`
}

// MemoryConfig holds episodic landmark memory parameters.
type MemoryConfig struct {
	MaxLandmarks   int     `yaml:"max_landmarks"`
	VisitRadius    float64 `yaml:"visit_radius"`
	Decay          float64 `yaml:"decay"`           // reliability multiplier per tick
	StoreThreshold float64 `yaml:"store_threshold"` // min sensed mean to remember a spot
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindowTicks    int     `yaml:"stats_window_ticks"`
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
	SatedEpsilon        float64 `yaml:"sated_epsilon"` // |error| below this counts a tick as sated
}

// FieldParams converts the field section into sim tunables.
func (c *Config) FieldParams() sim.FieldParams {
	return sim.FieldParams{
		MinSources:       c.Field.MinSources,
		MaxSources:       c.Field.MaxSources,
		RadiusMin:        c.Field.RadiusMin,
		RadiusMax:        c.Field.RadiusMax,
		IntensityMin:     c.Field.IntensityMin,
		IntensityMax:     c.Field.IntensityMax,
		DecayFactor:      c.Field.DecayFactor,
		BrownianStep:     c.Field.BrownianStep,
		RespawnThreshold: c.Field.RespawnThreshold,
	}
}

// AgentParams converts the agent section into sim tunables.
func (c *Config) AgentParams() sim.AgentParams {
	return sim.AgentParams{
		Target:           c.Agent.Target,
		SensorDistance:   c.Agent.SensorDistance,
		SensorAngle:      c.Agent.SensorAngle,
		LearningRate:     c.Agent.LearningRate,
		MaxSpeed:         c.Agent.MaxSpeed,
		BaseCost:         c.Agent.BaseCost,
		MoveCost:         c.Agent.MoveCost,
		IntakeRate:       c.Agent.IntakeRate,
		CriticalEnergy:   c.Agent.CriticalEnergy,
		ExhaustionFactor: c.Agent.ExhaustionFactor,
	}
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	return cfg, nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
