// Package config handles application configuration and setup
package config

import (
	"math/rand/v2"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/vm"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// VMOptions returns the virtual machine options for the program options.
func VMOptions(opts options.Program) []vm.Option {
	vmOpts := []vm.Option{
		vm.WithQuirks(opts.Quirks()),
		vm.WithTrace(opts.Debug),
	}
	if opts.Seed != 0 {
		vmOpts = append(vmOpts, vm.WithRandSource(rand.NewPCG(opts.Seed, opts.Seed)))
	}
	return vmOpts
}
