// Package storage defines the aggregate run records kept across invocations.
package storage

import (
	"time"

	"prisoners/internal/riddle"
)

// Run is one completed simulation. Only aggregate counts are stored.
type Run struct {
	ID         int64
	Seed       uint64
	NumBallots int
	// Runs is how many seeded substreams were combined; 1 means the seed
	// drove a single stream.
	Runs       int
	Stats      riddle.GameStatistics
	StartedAt  time.Time
	Duration   time.Duration
}
