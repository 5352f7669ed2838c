// Package misc keeps build time information.
package misc

import (
	"os"
	"path/filepath"
	"strings"
)

// Set by linker flags at build time.
var (
	version = "dev"
	gitHash = "unknown"
	appName = ""
)

func GetVersion() string {
	return version
}

func GetGitHash() string {
	return gitHash
}

// GetAppName returns program name without extension, falling back to the
// executable name when it was not set at build time.
func GetAppName() string {
	if len(appName) > 0 {
		return appName
	}
	name := filepath.Base(os.Args[0])
	name = strings.TrimSuffix(name, filepath.Ext(name))
	if len(name) == 0 {
		return "plancanvas"
	}
	return name
}
