// Package config holds the lvlpath run configuration: which input to read,
// which engines to run and where their results go. It is decoded from an
// optional TOML file and then overridden by command-line flags.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/lvlpath/core"
	"github.com/katalvlaran/lvlpath/internal/logging"
)

// Engine names accepted in Config.Engines.
const (
	BellmanFord   = "bellman-ford"
	FloydWarshall = "floyd-warshall"
	Dijkstra      = "dijkstra"
)

// Engines lists every engine in the order the driver runs them.
var Engines = []string{BellmanFord, FloydWarshall, Dijkstra}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// OutputConfig is the [output] section.
type OutputConfig struct {
	Dir           string `toml:"dir"`
	BellmanFord   string `toml:"bellman_ford"`
	FloydWarshall string `toml:"floyd_warshall"`
	Dijkstra      string `toml:"dijkstra"`
}

// ChecksConfig is the [checks] section. Both checks are off by default.
type ChecksConfig struct {
	DijkstraNegativeWeights     bool `toml:"dijkstra_negative_weights"`
	FloydWarshallNegativeCycles bool `toml:"floyd_warshall_negative_cycles"`
}

// Config is the full run configuration.
type Config struct {
	Input      string   `toml:"input"`
	Lookup     string   `toml:"lookup"`
	Engines    []string `toml:"engines"`
	Concurrent bool     `toml:"concurrent"`

	Output  OutputConfig      `toml:"output"`
	Checks  ChecksConfig      `toml:"checks"`
	Logging logging.LogConfig `toml:"logging"`
}

// Default returns the configuration used when no file is given: read in.txt,
// run all three engines one after another and write one file per engine.
func Default() *Config {
	return &Config{
		Input:   "in.txt",
		Lookup:  core.LookupSymmetric.String(),
		Engines: append([]string(nil), Engines...),
		Output: OutputConfig{
			BellmanFord:   "bellman-ford.txt",
			FloydWarshall: "floyd-warshall.txt",
			Dijkstra:      "dijkstra.txt",
		},
		Logging: logging.LogConfig{
			Level:      "info",
			Format:     "text",
			MaxSize:    10,
			MaxAge:     7,
			MaxBackups: 3,
		},
	}
}

// Load decodes the TOML file at path on top of Default(). Keys that do not
// map to a Config field are rejected.
func Load(path string) (*Config, error) {
	c := Default()
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return nil, fmt.Errorf("config: could not decode TOML config %q: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys in %q: %s", ErrInvalid, path, strings.Join(keys, ", "))
	}

	return c, nil
}

// Validate checks every enumerated value.
func (c *Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("%w: no input file", ErrInvalid)
	}
	if _, err := core.ParseLookupMode(c.Lookup); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if len(c.Engines) == 0 {
		return fmt.Errorf("%w: no engines selected", ErrInvalid)
	}
	seen := make(map[string]bool, len(c.Engines))
	for _, e := range c.Engines {
		if !isEngine(e) {
			return fmt.Errorf("%w: unknown engine %q (want one of %s)", ErrInvalid, e, strings.Join(Engines, ", "))
		}
		if seen[e] {
			return fmt.Errorf("%w: engine %q listed twice", ErrInvalid, e)
		}
		seen[e] = true
		if c.OutputPath(e) == "" {
			return fmt.Errorf("%w: no output file for %s", ErrInvalid, e)
		}
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log format %q must be 'text' or 'json'", ErrInvalid, c.Logging.Format)
	}

	return nil
}

// LookupMode returns the parsed Lookup value. Call Validate first.
func (c *Config) LookupMode() core.LookupMode {
	m, _ := core.ParseLookupMode(c.Lookup)
	return m
}

// OutputPath returns the result file for engine, joined with Output.Dir when
// the configured name is relative. Unknown engines give "".
func (c *Config) OutputPath(engine string) string {
	var name string
	switch engine {
	case BellmanFord:
		name = c.Output.BellmanFord
	case FloydWarshall:
		name = c.Output.FloydWarshall
	case Dijkstra:
		name = c.Output.Dijkstra
	}
	if name == "" || c.Output.Dir == "" || filepath.IsAbs(name) {
		return name
	}

	return filepath.Join(c.Output.Dir, name)
}

func isEngine(name string) bool {
	for _, e := range Engines {
		if e == name {
			return true
		}
	}

	return false
}
