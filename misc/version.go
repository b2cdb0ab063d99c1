// Package misc holds build-time information shared by all binaries.
package misc

import (
	"os"
	"path/filepath"
	"strings"
)

// Set at build time via -ldflags.
var (
	version = "development"
	gitHash = "unknown"
)

// GetVersion returns program version set during build.
func GetVersion() string {
	return version
}

// GetGitHash returns git hash of the source tree used during build.
func GetGitHash() string {
	return gitHash
}

// GetAppName returns name of the running executable without extension.
func GetAppName() string {
	name := filepath.Base(os.Args[0])
	return strings.TrimSuffix(name, filepath.Ext(name))
}
