// Package config handles application configuration and setup
package config

import (
	"strconv"
	"time"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/vm"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	switch {
	case debug:
		cfg.Level = log.DebugLevel
	case quiet:
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// CreateInterpreter creates an interpreter for the given program options.
// A zero seed is replaced by a time based one, the used seed is logged so
// that a run can be reproduced.
func CreateInterpreter(logger *log.Logger, opts options.Program) *vm.Interpreter {
	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger.Debug("Random source", log.String("seed", strconv.FormatUint(seed, 10)))

	return vm.New(
		vm.WithLogger(logger),
		vm.WithRandom(vm.NewRandom(seed)),
	)
}
