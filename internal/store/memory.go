// internal/store/memory.go
//
// In-memory implementation of the Store interface.
// Holds live rounds for the HTTP surface; state is lost on restart.
//
// Characteristics:
//   - Rounds are keyed by Round.ID.
//   - Update runs under the write lock, so one submission per round at a time.
//   - View runs under the read lock and must not mutate the round.

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/robalobadob/scramble/internal/game"
)

// ErrNotFound is returned for unknown round IDs.
var ErrNotFound = errors.New("round not found")

// Store defines the persistence interface for live rounds.
type Store interface {
	// Save persists or replaces a round.
	Save(ctx context.Context, r *game.Round) error

	// Update runs fn with exclusive access to the round.
	Update(ctx context.Context, id string, fn func(*game.Round) error) error

	// View runs fn with shared, read-only access to the round.
	View(ctx context.Context, id string, fn func(*game.Round) error) error
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu     sync.RWMutex
	rounds map[string]*game.Round
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{rounds: make(map[string]*game.Round)}
}

func (m *memory) Save(ctx context.Context, r *game.Round) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rounds[r.ID] = r
	return nil
}

func (m *memory) Update(ctx context.Context, id string, fn func(*game.Round) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rounds[id]
	if !ok {
		return ErrNotFound
	}
	return fn(r)
}

func (m *memory) View(ctx context.Context, id string, fn func(*game.Round) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.rounds[id]
	if !ok {
		return ErrNotFound
	}
	return fn(r)
}
