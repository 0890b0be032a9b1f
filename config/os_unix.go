//go:build !windows

package config

import (
	"os"

	"golang.org/x/term"
)

const forbiddenChars = ""

// EnableColorOutput reports whether log level colors can be used on stream.
func EnableColorOutput(stream *os.File) bool {
	return term.IsTerminal(int(stream.Fd()))
}
