// Package fileprocessor handles file loading and processing operations
package fileprocessor

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/debugger"
	"github.com/retroenv/retrochip8/internal/listing"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrochip8/internal/screenshot"
	"github.com/retroenv/retrochip8/internal/vm"
	"github.com/retroenv/retrogolib/log"
)

// ProcessFile handles the complete workflow of running a program image:
// loading, executing and writing the requested outputs of the final state.
// Cancelling the context stops the execution, the outputs are still written.
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program, textOutput io.Writer) error {
	image, err := loader.New(logger).Load(opts.Input)
	if err != nil {
		return fmt.Errorf("loading program image: %w", err)
	}

	interpreter := config.CreateInterpreter(logger, opts)
	size, err := interpreter.Load(image)
	if err != nil {
		return fmt.Errorf("loading program image %s into memory: %w", opts.Input, err)
	}
	logger.Info("Program image loaded",
		log.String("file", opts.Input),
		log.Int("size", size))

	if opts.Listing {
		if err := listing.Write(textOutput, image); err != nil {
			return fmt.Errorf("writing program listing: %w", err)
		}
	}

	run := runner.New(logger, interpreter, runner.Config{
		Rate:  opts.Rate,
		Steps: opts.Steps,
		Keys:  opts.HeldKeys,
	})
	stats, runErr := run.Run(ctx)

	display := interpreter.Display()
	logger.Info("Execution finished",
		log.Int("steps", stats.Steps),
		log.Hex("pc", interpreter.PC()),
		log.String("display_checksum", fmt.Sprintf("%016x", display.Checksum())))

	if opts.State {
		if err := debugger.WriteState(textOutput, interpreter.State()); err != nil {
			return fmt.Errorf("writing machine state: %w", err)
		}
	}
	if err := writeOutputs(opts, display, textOutput); err != nil {
		return err
	}

	if runErr != nil {
		return fmt.Errorf("executing program: %w", runErr)
	}
	return nil
}

func writeOutputs(opts options.Program, display *vm.Display, textOutput io.Writer) error {
	if opts.ASCII {
		if err := screenshot.WriteText(textOutput, display); err != nil {
			return fmt.Errorf("writing display text: %w", err)
		}
	}

	if opts.Screenshot == "" {
		return nil
	}

	file, err := os.Create(opts.Screenshot)
	if err != nil {
		return fmt.Errorf("creating screenshot file %s: %w", opts.Screenshot, err)
	}
	if err := screenshot.WritePNG(file, display, opts.Scale); err != nil {
		_ = file.Close()
		return fmt.Errorf("writing screenshot: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing screenshot file %s: %w", opts.Screenshot, err)
	}
	return nil
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	versionString := version
	if commit != "" {
		if len(commit) > 7 {
			commit = commit[:7]
		}
		versionString += fmt.Sprintf(" (%s)", commit)
	}

	logger.Info("retrochip8", log.String("version", versionString))

	if date != "" && !strings.Contains(date, "unknown") {
		logger.Info("Build", log.String("date", date))
	}
}
