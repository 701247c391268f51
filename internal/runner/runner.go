// Package runner drives an interpreter at a configurable instruction rate.
package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/retroenv/retrogolib/log"
)

// Machine is the part of the interpreter that the runner drives.
type Machine interface {
	Step() error
	SetKey(key uint8, pressed bool)
	PC() uint16
}

// Config defines how the runner paces the machine.
type Config struct {
	Rate  int     // steps per second, 0 runs unthrottled
	Steps int     // steps to execute, 0 runs until the context is cancelled
	Keys  []uint8 // keys held down during the run
}

// Stats describes a finished run.
type Stats struct {
	Steps   int
	Elapsed time.Duration
}

// Runner executes steps of a machine.
type Runner struct {
	logger  *log.Logger
	machine Machine
	cfg     Config
}

// New creates a new runner.
func New(logger *log.Logger, machine Machine, cfg Config) *Runner {
	return &Runner{
		logger:  logger,
		machine: machine,
		cfg:     cfg,
	}
}

// Run presses the configured keys and executes steps until the step limit
// is reached, a step fails or the context is cancelled. The returned stats
// are valid in all cases.
func (r *Runner) Run(ctx context.Context) (Stats, error) {
	for _, key := range r.cfg.Keys {
		r.machine.SetKey(key, true)
	}

	start := time.Now()
	var stats Stats
	var err error
	if r.cfg.Rate == 0 {
		err = r.runUnthrottled(ctx, &stats)
	} else {
		err = r.runPaced(ctx, &stats)
	}
	stats.Elapsed = time.Since(start)

	r.logger.Debug("Run finished",
		log.Int("steps", stats.Steps),
		log.Hex("pc", r.machine.PC()),
		log.String("elapsed", stats.Elapsed.String()))
	return stats, err
}

// checkInterval is the number of unthrottled steps between context checks.
const checkInterval = 1024

func (r *Runner) runUnthrottled(ctx context.Context, stats *Stats) error {
	for !r.done(stats) {
		if stats.Steps%checkInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if err := r.step(stats); err != nil {
			return err
		}
	}
	return nil
}

// runPaced executes steps at the configured rate. The ticker period is at
// least one millisecond, every tick executes the steps that are due since
// the start of the run.
func (r *Runner) runPaced(ctx context.Context, stats *Stats) error {
	period := time.Second / time.Duration(r.cfg.Rate)
	if period < time.Millisecond {
		period = time.Millisecond
	}
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	start := time.Now()
	for !r.done(stats) {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case now := <-ticker.C:
			due := int(now.Sub(start) * time.Duration(r.cfg.Rate) / time.Second)
			for stats.Steps < due && !r.done(stats) {
				if err := r.step(stats); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (r *Runner) step(stats *Stats) error {
	if err := r.machine.Step(); err != nil {
		return fmt.Errorf("step %d: %w", stats.Steps, err)
	}
	stats.Steps++
	return nil
}

func (r *Runner) done(stats *Stats) bool {
	return r.cfg.Steps > 0 && stats.Steps >= r.cfg.Steps
}
