package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/beamkern/internal/backend"
)

const (
	DefaultGroupSize    = 256
	DefaultPoints       = 200
	DefaultReMin        = -4.0
	DefaultReMax        = 4.0
	DefaultIm           = 1.0
	DefaultSigmaX       = 2e-3
	DefaultSigmaY       = 1e-3
	DefaultMinSigmaDiff = 1e-10
)

type Config struct {
	Backend   string     `yaml:"backend"`
	Workers   int        `yaml:"workers"`
	GroupSize int        `yaml:"group_size"`
	DataDir   string     `yaml:"data_dir"`
	Grid      GridConfig `yaml:"grid"`
	Beam      BeamConfig `yaml:"beam"`
}

type GridConfig struct {
	ReMin  float64 `yaml:"re_min"`
	ReMax  float64 `yaml:"re_max"`
	Im     float64 `yaml:"im"`
	Points int     `yaml:"points"`
}

type BeamConfig struct {
	SigmaX       float64 `yaml:"sigma_x"`
	SigmaY       float64 `yaml:"sigma_y"`
	MinSigmaDiff float64 `yaml:"min_sigma_diff"`
}

func DefaultConfig() *Config {
	return &Config{
		Backend:   "auto",
		GroupSize: DefaultGroupSize,
		DataDir:   "runs",
		Grid: GridConfig{
			ReMin:  DefaultReMin,
			ReMax:  DefaultReMax,
			Im:     DefaultIm,
			Points: DefaultPoints,
		},
		Beam: BeamConfig{
			SigmaX:       DefaultSigmaX,
			SigmaY:       DefaultSigmaY,
			MinSigmaDiff: DefaultMinSigmaDiff,
		},
	}
}

// FieldGridDefaults is the evaluation window of the field profile, in
// meters, as opposed to the dimensionless w(z) grid.
func FieldGridDefaults() GridConfig {
	return GridConfig{
		ReMin:  -5e-3,
		ReMax:  5e-3,
		Im:     0.0,
		Points: DefaultPoints,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	switch c.Backend {
	case "auto", "serial", "threads", "workgroup":
	default:
		return fmt.Errorf("config: unknown backend %q", c.Backend)
	}
	if c.Workers < 0 {
		return fmt.Errorf("config: workers must be non-negative, got %d", c.Workers)
	}
	if c.GroupSize < 0 {
		return fmt.Errorf("config: group_size must be non-negative, got %d", c.GroupSize)
	}
	if c.Grid.Points <= 0 {
		return fmt.Errorf("config: grid points must be positive, got %d", c.Grid.Points)
	}
	if c.Beam.SigmaX <= 0 || c.Beam.SigmaY <= 0 {
		return fmt.Errorf("config: beam sizes must be positive, got %g x %g",
			c.Beam.SigmaX, c.Beam.SigmaY)
	}
	return nil
}

// NewBackend resolves the configured backend name to an execution backend.
func (c *Config) NewBackend() (backend.Backend, error) {
	switch c.Backend {
	case "auto":
		return backend.AutoSelect(), nil
	case "serial":
		return backend.NewSerial(), nil
	case "threads":
		return backend.NewThreads(c.Workers), nil
	case "workgroup":
		return backend.NewWorkgroup(c.GroupSize), nil
	default:
		return nil, fmt.Errorf("config: unknown backend %q", c.Backend)
	}
}
