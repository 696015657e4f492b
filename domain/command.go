package domain

import (
	"time"

	"focus-lab/domain/timer"
)

// Command is a room-addressed control action. Timestamps always come from
// the caller; nothing downstream reads the wall clock on its own.
type Command interface {
	RoomID() RoomID
}

type AttachCardCommand struct {
	Room   RoomID
	CardID string
	At     time.Time
}

type ClearCardCommand struct {
	Room RoomID
	At   time.Time
}

type StartTimerCommand struct {
	Room           RoomID
	SessionID      string
	Mode           timer.Mode
	PlannedSeconds int
	At             time.Time
}

type PauseTimerCommand struct {
	Room RoomID
	At   time.Time
}

type ResumeTimerCommand struct {
	Room RoomID
	At   time.Time
}

type EndTimerCommand struct {
	Room    RoomID
	Outcome timer.Outcome
	Note    string
	At      time.Time
}

type TickCommand struct {
	Room RoomID
	At   time.Time
}

func (c AttachCardCommand) RoomID() RoomID  { return c.Room }
func (c ClearCardCommand) RoomID() RoomID   { return c.Room }
func (c StartTimerCommand) RoomID() RoomID  { return c.Room }
func (c PauseTimerCommand) RoomID() RoomID  { return c.Room }
func (c ResumeTimerCommand) RoomID() RoomID { return c.Room }
func (c EndTimerCommand) RoomID() RoomID    { return c.Room }
func (c TickCommand) RoomID() RoomID        { return c.Room }
