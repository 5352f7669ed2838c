package state

import (
	"time"

	"plancanvas/identity"
)

// newLocalEnv creates a new LocalEnv instance with default values
func newLocalEnv() *LocalEnv {
	now := time.Now()
	return &LocalEnv{
		start: now,
		Today: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local),
		Namer: identity.Default(),
	}
}
