// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/set"
)

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || len(args) == 0 {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		err.flags = flags
		return opts, err
	}
	opts.Input = args[0]

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the error message if set and the usage information.
func (e *UsageError) ShowUsage() {
	e.writeUsage(os.Stdout)
}

func (e *UsageError) writeUsage(w io.Writer) {
	if e.msg != "" {
		_, _ = fmt.Fprintf(w, "%s\n\n", e.msg)
	}
	_, _ = fmt.Fprintf(w, "usage: retrochip8 [options] <program image file>\n\n")
	if e.flags != nil {
		e.flags.SetOutput(w)
		e.flags.PrintDefaults()
	}
	_, _ = fmt.Fprintln(w)
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) *UsageError {
	for i, arg := range args {
		if i > 0 && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after program image file, please pass the file to run as last argument", arg),
			}
		}
	}
	if len(args) > 1 {
		return &UsageError{
			msg: fmt.Sprintf("only one program image file can be run, got %d", len(args)),
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	if opts.Steps < 0 {
		return fmt.Errorf("invalid step count %d: must not be negative", opts.Steps)
	}
	if opts.Rate < 0 {
		return fmt.Errorf("invalid rate %d: must not be negative", opts.Rate)
	}
	if opts.Scale < 1 {
		return fmt.Errorf("invalid scale %d: must be at least 1", opts.Scale)
	}

	keys, err := parseKeys(opts.Keys)
	if err != nil {
		return err
	}
	opts.HeldKeys = keys
	return nil
}

// parseKeys parses a comma separated list of hexadecimal keys 0-F,
// duplicates are removed and the result is sorted.
func parseKeys(s string) ([]uint8, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	seen := set.New[uint8]()
	var keys []uint8
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		key, err := strconv.ParseUint(field, 16, 8)
		if err != nil || key > 0xF {
			return nil, fmt.Errorf("invalid key '%s': keys must be hexadecimal digits 0-F", field)
		}
		if seen.Contains(uint8(key)) {
			continue
		}
		seen.Add(uint8(key))
		keys = append(keys, uint8(key))
	}

	slices.Sort(keys)
	return keys, nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.IntVar(&opts.Steps, "steps", 0, "number of instructions to execute, 0 runs until interrupted")
	flags.IntVar(&opts.Rate, "rate", options.DefaultRate, "instructions executed per second, 0 runs unthrottled")
	flags.Uint64Var(&opts.Seed, "seed", 0, "seed of the random number generator, 0 uses a time based seed")
	flags.StringVar(&opts.Keys, "keys", "", "comma separated hexadecimal keys held down during the run, for example 5,A")
	flags.StringVar(&opts.Screenshot, "screenshot", "", "name of the PNG file to write the final display to")
	flags.IntVar(&opts.Scale, "scale", options.DefaultScale, "upscale factor of the PNG screenshot")
	flags.BoolVar(&opts.ASCII, "ascii", false, "print the final display as text")
	flags.BoolVar(&opts.Listing, "listing", false, "print a disassembly listing of the program image before running")
	flags.BoolVar(&opts.State, "state", false, "print registers, stack and timers after the run")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
