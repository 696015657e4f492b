// Package domain contains core concepts of the focus room system.
// This file defines the Room aggregate owning the single timer snapshot.
// No runtime, network, or storage logic should be added here.
package domain

import (
	"sync"

	"focus-lab/domain/timer"
)

type RoomID string

// Room owns the one authoritative timer snapshot visible to all of its
// participants. The snapshot is only replaced through Apply; readers get
// copies via Snapshot.
type Room struct {
	ID RoomID

	mu    sync.RWMutex
	state timer.State
}

func NewRoom(id RoomID, cfg timer.Config) *Room {
	return &Room{ID: id, state: timer.NewState(cfg)}
}

// NewRoomFromState rehydrates a room from a persisted snapshot.
func NewRoomFromState(id RoomID, state timer.State) *Room {
	return &Room{ID: id, state: state}
}

// ApplyResult carries everything a caller needs to persist and broadcast
// one transition.
type ApplyResult struct {
	Prev    timer.State
	Next    timer.State
	Derived timer.Derived
	Effects []timer.Effect
	Changed bool
}

// Apply runs the reducer against the current snapshot and installs the
// result. The room mutex serializes the read-transition-write cycle, so
// two racing control actions can never both win a non-idempotent
// transition.
func (r *Room) Apply(evt timer.Event, cfg timer.Config) (ApplyResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev := r.state
	next, derived, effects, err := timer.Transition(prev, evt, cfg)
	if err != nil {
		return ApplyResult{Prev: prev, Next: prev, Derived: derived}, err
	}
	r.state = next

	return ApplyResult{
		Prev:    prev,
		Next:    next,
		Derived: derived,
		Effects: effects,
		Changed: next != prev,
	}, nil
}

func (r *Room) Snapshot() timer.State {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state
}
