package main

import (
	"fmt"
	"os"

	"github.com/btcsuite/btclog"
	"github.com/lightningnetwork/fp/statcollect"
	"github.com/lightningnetwork/fp/urlrouter"
)

var (
	// backendLog is the logging backend used to create all subsystem
	// loggers. Log output goes to stderr so it never mixes with command
	// output.
	backendLog = btclog.NewBackend(os.Stderr)

	demoLog = backendLog.Logger("DEMO")

	// subsystemLoggers maps each subsystem identifier to its logger.
	subsystemLoggers = map[string]btclog.Logger{
		"DEMO": demoLog,
	}
)

func init() {
	addSubLogger(statcollect.Subsystem, statcollect.UseLogger)
	addSubLogger(urlrouter.Subsystem, urlrouter.UseLogger)
}

// addSubLogger creates a logger for the subsystem and hands it to the
// package through useLogger.
func addSubLogger(subsystem string, useLogger func(btclog.Logger)) {
	logger := backendLog.Logger(subsystem)
	subsystemLoggers[subsystem] = logger
	useLogger(logger)
}

// setLogLevels sets the level of every subsystem logger.
func setLogLevels(level string) error {
	lvl, ok := btclog.LevelFromString(level)
	if !ok {
		return fmt.Errorf("invalid debug level %q", level)
	}

	for _, logger := range subsystemLoggers {
		logger.SetLevel(lvl)
	}

	return nil
}
