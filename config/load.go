package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. LVSOLVE_TABU_LIST_SIZE.
const EnvPrefix = "LVSOLVE"

// Parse decodes a YAML document over Default and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: decode yaml: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load merges defaults, the YAML file at path (skipped when path is empty)
// and LVSOLVE_* environment variables, then validates the result.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v, Default())
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: unmarshal: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// setDefaults registers every key so AutomaticEnv can resolve overrides for
// keys absent from the file.
func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("solver", d.Solver)
	v.SetDefault("limits.time_limit", d.Limits.TimeLimit)
	v.SetDefault("limits.iteration_limit", d.Limits.IterationLimit)
	v.SetDefault("improver.kind", d.Improver.Kind)
	v.SetDefault("improver.depth", d.Improver.Depth)
	v.SetDefault("improver.width", d.Improver.Width)
	v.SetDefault("improver.workers", d.Improver.Workers)
	v.SetDefault("tabu.list_size", d.Tabu.ListSize)
	v.SetDefault("tabu.no_improvement_limit", d.Tabu.NoImprovementLimit)
	v.SetDefault("annealing.initial_temperature", d.Annealing.InitialTemperature)
	v.SetDefault("annealing.cooling_factor", d.Annealing.CoolingFactor)
	v.SetDefault("threshold.factor", d.Threshold.Factor)
	// no default for annealing.seed: absence means "fresh seed"
	_ = v.BindEnv("annealing.seed")
}
