package core

import (
	"errors"
	"math/rand"
)

var (
	// ErrSpawnBlocked means a new piece would overlap a locked cell.
	ErrSpawnBlocked = errors.New("core: spawn blocked")

	// ErrBlockOut means a row clear pushed locked cells into the active piece.
	ErrBlockOut = errors.New("core: locked cells shifted into active piece")

	// ErrGameOver is returned for requests made after the game ended.
	ErrGameOver = errors.New("core: game over")

	// ErrQueueFull is returned when the command queue is at capacity.
	ErrQueueFull = errors.New("core: command queue full")
)

// Source picks spawn variants. *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// NewSeededSource returns a deterministic Source for seed.
func NewSeededSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}
