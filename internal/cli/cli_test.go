package cli

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want options.Program
	}{
		{
			name: "default flags",
			args: []string{"prog", "game.ch8"},
			want: options.Program{
				Parameters: options.Parameters{Input: "game.ch8"},
				Flags:      options.Flags{Rate: options.DefaultRate},
				Display:    options.Display{Scale: options.DefaultScale},
			},
		},
		{
			name: "all flags",
			args: []string{"prog", "-steps", "500", "-rate", "0", "-seed", "42", "-keys", "a,5,A",
				"-screenshot", "out.png", "-scale", "4", "-ascii", "-listing", "-state", "-debug", "game.ch8"},
			want: options.Program{
				Parameters: options.Parameters{Input: "game.ch8", Screenshot: "out.png"},
				Flags:      options.Flags{Steps: 500, Seed: 42, Keys: "a,5,A", Debug: true},
				Display:    options.Display{Scale: 4, ASCII: true, Listing: true, State: true},
				HeldKeys:   []uint8{0x5, 0xA},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })

			os.Args = tt.args

			got, err := ParseFlags()
			assert.NoError(t, err)
			assert.Equal(t, tt.want.Input, got.Input)
			assert.Equal(t, tt.want.Screenshot, got.Screenshot)
			assert.Equal(t, tt.want.Steps, got.Steps)
			assert.Equal(t, tt.want.Rate, got.Rate)
			assert.Equal(t, tt.want.Seed, got.Seed)
			assert.Equal(t, tt.want.Debug, got.Debug)
			assert.Equal(t, tt.want.Scale, got.Scale)
			assert.Equal(t, tt.want.ASCII, got.ASCII)
			assert.Equal(t, tt.want.Listing, got.Listing)
			assert.Equal(t, tt.want.State, got.State)
			assert.Equal(t, len(tt.want.HeldKeys), len(got.HeldKeys))
			for i, key := range tt.want.HeldKeys {
				assert.Equal(t, key, got.HeldKeys[i])
			}
		})
	}
}

func TestParseFlagsErrors(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		usageError bool
	}{
		{"missing file", []string{"prog"}, true},
		{"flag after file", []string{"prog", "game.ch8", "-debug"}, true},
		{"two files", []string{"prog", "a.ch8", "b.ch8"}, true},
		{"negative steps", []string{"prog", "-steps", "-1", "game.ch8"}, false},
		{"negative rate", []string{"prog", "-rate", "-5", "game.ch8"}, false},
		{"zero scale", []string{"prog", "-scale", "0", "game.ch8"}, false},
		{"invalid key", []string{"prog", "-keys", "G", "game.ch8"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })

			os.Args = tt.args

			_, err := ParseFlags()
			assert.Error(t, err)

			var usageErr *UsageError
			assert.Equal(t, tt.usageError, errors.As(err, &usageErr))
		})
	}
}

func TestUsageErrorShowsMessage(t *testing.T) {
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = []string{"prog", "a.ch8", "b.ch8"}

	_, err := ParseFlags()
	var usageErr *UsageError
	assert.True(t, errors.As(err, &usageErr))

	var buf bytes.Buffer
	usageErr.writeUsage(&buf)
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "only one program image file can be run, got 2\n"))
	assert.Contains(t, out, "usage: retrochip8")
	assert.Contains(t, out, "-steps")
}

func TestUsageErrorWithoutMessage(t *testing.T) {
	var buf bytes.Buffer
	(&UsageError{}).writeUsage(&buf)
	assert.True(t, strings.HasPrefix(buf.String(), "usage: retrochip8"))
}

func TestParseKeys(t *testing.T) {
	tests := []struct {
		input    string
		expected []uint8
		valid    bool
	}{
		{"", nil, true},
		{"0", []uint8{0}, true},
		{"F,1, c", []uint8{0x1, 0xC, 0xF}, true},
		{"3,3,3", []uint8{0x3}, true},
		{"10", nil, false},
		{"x", nil, false},
		{"1,,2", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			keys, err := parseKeys(tt.input)
			if !tt.valid {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, len(tt.expected), len(keys))
			for i, key := range tt.expected {
				assert.Equal(t, key, keys[i])
			}
		})
	}
}
