package vispath

import (
	"errors"
	"fmt"
	"io"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config is the declarative form of the solver options, suitable for YAML.
type Config struct {
	// Workers is the number of background workers started with the solver.
	// The goroutine calling Solve always takes part as well, so a value of 0
	// runs single-threaded.
	Workers int `yaml:"workers"`

	// Validation rejects malformed worlds before searching: polygons with fewer
	// than three vertices, non-convex or self-intersecting polygons, and start
	// or goal positions inside an obstacle. It also makes silhouette queries
	// from inside a polygon abort the solve.
	Validation bool `yaml:"validate"`
}

// DefaultConfig returns a Config that uses one goroutine per CPU.
func DefaultConfig() Config {
	return Config{
		Workers:  max(runtime.NumCPU()-1, 0),
		Validation: false,
	}
}

// Validate checks the configuration for values the solver cannot honour.
func (c Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0, got %d", ErrInvalidConfig, c.Workers)
	}
	return nil
}

// LoadConfig decodes a YAML document into a Config. Fields missing from the
// document keep their DefaultConfig values; unknown fields are rejected.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
