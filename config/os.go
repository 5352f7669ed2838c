package config

import "os"

// noColor honors NO_COLOR convention.
func noColor() bool {
	v, ok := os.LookupEnv("NO_COLOR")
	return ok && len(v) > 0
}
