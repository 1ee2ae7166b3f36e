package main

import (
	"fmt"

	flags "github.com/jessevdk/go-flags"
)

// config holds the options that can be set in a config file. Options given
// on the command line take precedence over the file.
type config struct {
	DebugLevel string `long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical, off}"`

	Metrics bool `long:"metrics" description:"Print the router's metrics after routing"`
}

// defaultConfig returns the config used when no file is given.
func defaultConfig() *config {
	return &config{
		DebugLevel: defaultDebugLevel,
	}
}

// loadConfig reads the ini style config file at path over the defaults. An
// empty path yields the defaults.
func loadConfig(path string) (*config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	parser := flags.NewParser(cfg, flags.None)
	if err := flags.NewIniParser(parser).ParseFile(path); err != nil {
		return nil, fmt.Errorf("unable to load config file %v: %w",
			path, err)
	}

	return cfg, nil
}
