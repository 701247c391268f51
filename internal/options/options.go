// Package options contains the program options.
package options

// Defaults of the program options.
const (
	DefaultRate  = 700
	DefaultScale = 8
)

// Parameters contains file path options.
type Parameters struct {
	Input      string // program image file
	Screenshot string // PNG file to write the final frame to
}

// Flags contains behavior options.
type Flags struct {
	Steps int    // number of instructions to execute, 0 runs until interrupted
	Rate  int    // instructions per second, 0 runs unthrottled
	Seed  uint64 // random seed, 0 uses a time based seed
	Keys  string // comma separated hex keys held down during the run
	Debug bool
	Quiet bool
}

// Display contains presentation options.
type Display struct {
	Scale   int  // PNG upscale factor
	ASCII   bool // print the final frame as text
	Listing bool // print a disassembly of the program image before running
	State   bool // print registers, stack and timers after the run
}

// Program options of the interpreter host.
type Program struct {
	Parameters
	Flags
	Display

	HeldKeys []uint8 // parsed Keys
}
