// Package misc keeps build time information about the program.
package misc

import (
	"runtime/debug"
)

// Set by linker flags on release builds.
var (
	appName = "ssys"
	version = "dev"
	gitHash = ""
)

func GetAppName() string {
	return appName
}

func GetVersion() string {
	return version
}

// GetGitHash returns hash set at build time or, when absent, the vcs revision
// recorded by the go toolchain.
func GetGitHash() string {
	if len(gitHash) > 0 {
		return gitHash
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}
