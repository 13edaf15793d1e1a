//go:build rson_deadlock

// Build with -tags rson_deadlock to have lock-order problems in setup and
// the linked platform table reported by go-deadlock.
package sync

import "github.com/sasha-s/go-deadlock"

type (
	Mutex   = deadlock.Mutex
	RWMutex = deadlock.RWMutex
	Once    = deadlock.Once
	Map     = deadlock.Map
)
