package scan

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-qpm/nlo/grid"
)

// GridConfig selects the channel grid in Hz; the stop frequency is excluded.
type GridConfig struct {
	StartHz   float64
	StopHz    float64
	SpacingHz float64
}

// Config describes one scan.
type Config struct {
	Crystal       string
	TemperatureC  float64
	PolingPeriodM float64 // 0 derives the period from the degenerate center pair
	LengthM       float64
	MinEfficiency float64
	Grid          GridConfig
}

// DefaultConfig returns a 1 cm PPLN e-ray scan over the 50 GHz ITU grid.
func DefaultConfig() Config {
	return Config{
		Crystal:       "ppln-e",
		TemperatureC:  24.5,
		LengthM:       0.01,
		MinEfficiency: 0.5,
		Grid: GridConfig{
			StartHz:   grid.ITUStartHz,
			StopHz:    grid.ITUStopHz,
			SpacingHz: grid.ITUSpacingHz,
		},
	}
}

// Validate checks physical ranges. The crystal selector is checked by Run.
func (c Config) Validate() error {
	switch {
	case math.IsNaN(c.TemperatureC) || math.IsInf(c.TemperatureC, 0):
		return fmt.Errorf("scan: temperature must be finite: %v", c.TemperatureC)
	case !(c.LengthM > 0):
		return fmt.Errorf("scan: crystal length must be > 0: %v", c.LengthM)
	case !(c.PolingPeriodM >= 0):
		return fmt.Errorf("scan: poling period must be >= 0: %v", c.PolingPeriodM)
	case !(c.MinEfficiency >= 0 && c.MinEfficiency <= 1):
		return fmt.Errorf("scan: min efficiency must be in [0,1]: %v", c.MinEfficiency)
	}
	return nil
}

// file mirrors Config with loosely typed numbers so "16.4e-6", 16.4e-6
// and "40" all decode.
type file struct {
	Crystal       string `yaml:"crystal"`
	TemperatureC  any    `yaml:"temperature_c"`
	PolingPeriodM any    `yaml:"poling_period_m"`
	LengthM       any    `yaml:"length_m"`
	MinEfficiency any    `yaml:"min_efficiency"`
	Grid          struct {
		StartHz   any `yaml:"start_hz"`
		StopHz    any `yaml:"stop_hz"`
		SpacingHz any `yaml:"spacing_hz"`
	} `yaml:"grid"`
}

// LoadConfig decodes YAML over DefaultConfig and validates the result.
func LoadConfig(r io.Reader) (Config, error) {
	var f file
	if err := yaml.NewDecoder(r).Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("scan: decode config: %w", err)
	}

	cfg := DefaultConfig()
	if f.Crystal != "" {
		cfg.Crystal = f.Crystal
	}

	fields := []struct {
		name string
		raw  any
		dst  *float64
	}{
		{"temperature_c", f.TemperatureC, &cfg.TemperatureC},
		{"poling_period_m", f.PolingPeriodM, &cfg.PolingPeriodM},
		{"length_m", f.LengthM, &cfg.LengthM},
		{"min_efficiency", f.MinEfficiency, &cfg.MinEfficiency},
		{"grid.start_hz", f.Grid.StartHz, &cfg.Grid.StartHz},
		{"grid.stop_hz", f.Grid.StopHz, &cfg.Grid.StopHz},
		{"grid.spacing_hz", f.Grid.SpacingHz, &cfg.Grid.SpacingHz},
	}
	for _, fld := range fields {
		if fld.raw == nil {
			continue
		}
		v, err := cast.ToFloat64E(fld.raw)
		if err != nil {
			return Config{}, fmt.Errorf("scan: %s: %w", fld.name, err)
		}
		*fld.dst = v
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
