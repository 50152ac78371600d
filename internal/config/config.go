// Package config holds the prover's single process-wide configuration
// record (spec.md §9: "the only process-wide state is a configuration
// record... read-only after startup; treat as an injected value"),
// mirroring original_source/src/goal.rs's CONFIG static but as an
// explicit value rather than a global.
package config

import (
	"os"

	"github.com/aditya-giri/cyclegg/pkg/egraph"
	"github.com/hashicorp/go-hclog"
	"gopkg.in/yaml.v3"
)

// EGraphDumper renders an e-graph to an external diagnostic format (e.g.
// a Graphviz image), the supplemented feature from
// original_source/src/goal.rs's save_egraph. The core never implements
// rendering itself (spec.md §6); this is the seam an external collaborator
// plugs into.
type EGraphDumper interface {
	Dump(name string, g *egraph.EGraph) error
}

// Config is the prover's injected configuration.
type Config struct {
	// MaxSplitDepth caps how many nested case-splits a single variable's
	// descendants may undergo (spec.md §4.5, §6). Recommended: 2.
	MaxSplitDepth int `yaml:"max_split_depth"`

	// LogLevel names the hclog verbosity; Load builds Logger at this
	// level. It is not passed to the e-graph dumper.
	LogLevel string `yaml:"log_level"`

	// SaveGraphs toggles the e-graph-to-image diagnostic dump. The core
	// never performs rendering itself (spec.md §6): this only flags
	// intent for an external collaborator (the EGraphDumper
	// implementation cmd/cyclegg wires into Dumper).
	SaveGraphs bool `yaml:"save_graphs"`

	// Logger is the structured logger threaded through the prover
	// (spec.md §6 "Optional diagnostics... are emitted through a
	// log/observer interface the core does not itself define").
	Logger hclog.Logger `yaml:"-"`

	// Dumper, if set, receives the e-graph of every saturated goal when
	// SaveGraphs is true. Left nil by Default(); cmd/cyclegg wires in a
	// concrete implementation.
	Dumper EGraphDumper `yaml:"-"`
}

// Default returns the prover's hard-coded defaults, matching
// original_source/src/goal.rs's CONFIG (MaxSplitDepth = 2).
func Default() Config {
	return Config{
		MaxSplitDepth: 2,
		LogLevel:      "warn",
		SaveGraphs:    false,
		Logger: hclog.New(&hclog.LoggerOptions{
			Name:  "cyclegg",
			Level: hclog.Warn,
		}),
	}
}

// Load reads a YAML config file at path, overlaying it on top of
// Default(). A missing file is not an error: it simply yields the
// defaults, matching spec.md §7's "Input malformedness" category only for
// genuinely malformed (present-but-unparseable) files.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	type fileShape struct {
		MaxSplitDepth *int    `yaml:"max_split_depth"`
		LogLevel      *string `yaml:"log_level"`
		SaveGraphs    *bool   `yaml:"save_graphs"`
	}
	var parsed fileShape
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return cfg, err
	}
	if parsed.MaxSplitDepth != nil {
		cfg.MaxSplitDepth = *parsed.MaxSplitDepth
	}
	if parsed.LogLevel != nil {
		cfg.LogLevel = *parsed.LogLevel
		cfg.Logger = hclog.New(&hclog.LoggerOptions{
			Name:  "cyclegg",
			Level: hclog.LevelFromString(cfg.LogLevel),
		})
	}
	if parsed.SaveGraphs != nil {
		cfg.SaveGraphs = *parsed.SaveGraphs
	}
	return cfg, nil
}
