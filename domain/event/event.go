package event

import (
	"time"

	"focus-lab/domain"
	"focus-lab/domain/timer"
)

type DomainEvent interface {
	RoomID() domain.RoomID
}

// TimerStateChanged carries the new authoritative snapshot to every room
// member after a real mutation.
type TimerStateChanged struct {
	Room    domain.RoomID
	State   timer.State
	Derived timer.Derived
	At      time.Time
}

func (e TimerStateChanged) RoomID() domain.RoomID { return e.Room }

// FocusSessionStarted asks the bookkeeping side to open a session record.
type FocusSessionStarted struct {
	Room           domain.RoomID
	CardID         string
	SessionID      string
	Mode           timer.Mode
	PlannedSeconds int
	At             time.Time
}

func (e FocusSessionStarted) RoomID() domain.RoomID { return e.Room }

// FocusSessionEnded asks the bookkeeping side to finalize a session record.
type FocusSessionEnded struct {
	Room          domain.RoomID
	CardID        string
	SessionID     string
	Mode          timer.Mode
	Outcome       timer.Outcome
	ActualSeconds int
	Note          string
	StartedAt     time.Time
	At            time.Time
}

func (e FocusSessionEnded) RoomID() domain.RoomID { return e.Room }
