// Package base carries the state shared by every CLI command: logger, UI,
// and the wiring from configuration to an API client.
package base

import (
	"bytes"
	"flag"
	"io"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/rentahuman/rentahuman-go/internal/config"
	"github.com/rentahuman/rentahuman-go/pkg/client"
)

// Command is embedded by all CLI commands.
type Command struct {
	Log hclog.Logger
	UI  cli.Ui

	// FlagConfig is the path to an HCL configuration file.
	FlagConfig string
}

// FlagSet returns a flag set preloaded with the flags every command
// accepts.
func (c *Command) FlagSet(name string) *FlagSet {
	f := NewFlagSet(name)
	f.StringVar(&c.FlagConfig, "config", "",
		"Path to an HCL configuration file. Environment variables override file values.")
	return f
}

// Client loads configuration and builds an API client from it.
func (c *Command) Client() (*client.Client, error) {
	cfg, err := config.Load(c.FlagConfig)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.LogLevel != "" {
		c.Log.SetLevel(hclog.LevelFromString(cfg.LogLevel))
	}
	return client.New(cfg.ClientConfig(c.Log))
}

// FlagSet wraps flag.FlagSet with help rendering for command usage text.
type FlagSet struct {
	*flag.FlagSet
}

// NewFlagSet returns an empty flag set. Parse errors are returned, not
// printed, so commands control their own output.
func NewFlagSet(name string) *FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return &FlagSet{FlagSet: fs}
}

// Help renders the flag defaults as an indented block for usage text.
func (f *FlagSet) Help() string {
	var buf bytes.Buffer
	f.SetOutput(&buf)
	f.PrintDefaults()
	f.SetOutput(io.Discard)
	return buf.String()
}
