package cli

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/cetusw/g-loc/builder"
	"github.com/cetusw/g-loc/postman"
)

// Config is the on-disk configuration. Flags given on the command line
// override the file.
type Config struct {
	LogLevel  string         `yaml:"log_level"`
	LogFormat string         `yaml:"log_format"`
	NoColor   bool           `yaml:"no_color"`
	Solve     SolveConfig    `yaml:"solve"`
	Generate  GenerateConfig `yaml:"generate"`
}

// SolveConfig drives the solve and match commands.
type SolveConfig struct {
	Pairing   string `yaml:"pairing"`
	Connector string `yaml:"connector"`
	Start     string `yaml:"start"`
	Jobs      int    `yaml:"jobs"`
	Strict    bool   `yaml:"strict"`
}

// GenerateConfig drives the generate command. Seed 0 picks a time-based seed.
type GenerateConfig struct {
	Vertices  int   `yaml:"vertices"`
	Extra     int   `yaml:"extra"`
	MinWeight int   `yaml:"min_weight"`
	MaxWeight int   `yaml:"max_weight"`
	Seed      int64 `yaml:"seed"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: "text",
		Solve: SolveConfig{
			Pairing:   postman.PairWholeGraph.String(),
			Connector: postman.ConnectHops.String(),
			Jobs:      4,
		},
		Generate: GenerateConfig{
			Vertices:  6,
			Extra:     3,
			MinWeight: builder.DefaultMinWeight,
			MaxWeight: builder.DefaultMaxWeight,
		},
	}
}

// LoadConfig decodes path over cfg. Unknown keys are rejected.
func LoadConfig(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "reading config %s", path)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return errors.Wrapf(err, "parsing config %s", path)
	}

	return nil
}

// Validate checks values that flags and files cannot constrain by type.
func (c Config) Validate() error {
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return errors.Errorf("log format %q: want text or json", c.LogFormat)
	}
	if c.Solve.Jobs < 1 {
		return errors.Errorf("jobs must be at least 1, got %d", c.Solve.Jobs)
	}
	if _, err := postman.ParsePairing(c.Solve.Pairing); err != nil {
		return errors.WithStack(err)
	}
	if _, err := postman.ParseConnector(c.Solve.Connector); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
