package config

import (
	"os"
	"strings"
)

// fallbackFileName replaces names which are empty after cleaning.
const fallbackFileName = "style"

// CleanFileName makes output file name from a name derived from input: path
// separators and characters the platform does not allow are removed, leading
// dots and surrounding spaces are trimmed.
func CleanFileName(in string) string {
	out := strings.Map(func(sym rune) rune {
		if sym < ' ' || sym == os.PathSeparator || sym == '/' || sym == os.PathListSeparator || strings.ContainsRune(forbiddenChars, sym) {
			return -1
		}
		return sym
	}, in)
	out = strings.TrimLeft(strings.TrimSpace(out), ".")
	if len(out) == 0 {
		return fallbackFileName
	}
	return out
}
