//go:generate go run go.uber.org/mock/mockgen -source=timer_state.go -destination=../mocks/mock_timer_state_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"focus-lab/domain"
	"focus-lab/domain/timer"
	apperrors "focus-lab/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type ITimerStateRepository interface {
	SaveState(room domain.RoomID, state timer.State) error
	LoadState(room domain.RoomID) (timer.State, bool, error)
}

// TimerStateRepository keeps exactly one record per room under
// "timer:{room}". The record is overwritten on every transition and never
// deleted; resetting a room is a logical idle state, not a missing key.
type TimerStateRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewTimerStateRepository(db *badger.DB, log *slog.Logger) TimerStateRepository {
	return TimerStateRepository{db: db, log: log}
}

// DiskTimerState is the persisted shape of a snapshot. Timestamps stay
// numeric milliseconds and enums stay fixed string sets so any
// serialization layer round-trips the state losslessly.
type DiskTimerState struct {
	Phase              string `json:"phase" validate:"required,oneof=idle running paused ended"`
	Mode               string `json:"mode" validate:"required,oneof=focus break long_break"`
	ActiveCardID       string `json:"active_card_id"`
	ActiveSessionID    string `json:"active_session_id"`
	StartedAtMs        int64  `json:"started_at_ms" validate:"gte=0"`
	PausedAtMs         int64  `json:"paused_at_ms" validate:"gte=0"`
	EndedAtMs          int64  `json:"ended_at_ms" validate:"gte=0"`
	PlannedSeconds     int    `json:"planned_seconds" validate:"gte=0"`
	PauseAccumulatedMs int64  `json:"pause_accumulated_ms" validate:"gte=0"`
	CycleCount         int    `json:"cycle_count" validate:"gte=0"`
}

func timerKey(room domain.RoomID) []byte {
	return []byte(fmt.Sprintf("timer:%s", room))
}

func (r TimerStateRepository) SaveState(room domain.RoomID, state timer.State) error {
	bytes, err := json.Marshal(fromTimerState(state))
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(timerKey(room), bytes)
	})
}

// LoadState returns the persisted snapshot for a room. A record that
// cannot be decoded or fails validation is reported as corrupt before it
// can ever reach the reducer; it is never coerced into a default.
func (r TimerStateRepository) LoadState(room domain.RoomID) (timer.State, bool, error) {
	var raw []byte
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(timerKey(room))
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if err == badger.ErrKeyNotFound {
		return timer.State{}, false, nil
	}
	if err != nil {
		return timer.State{}, false, err
	}

	var disk DiskTimerState
	if err := json.Unmarshal(raw, &disk); err != nil {
		return timer.State{}, false, fmt.Errorf("%w: room %s: %v", apperrors.ErrCorruptTimerState, room, err)
	}
	if err := validate.Struct(disk); err != nil {
		return timer.State{}, false, fmt.Errorf("%w: room %s: %v", apperrors.ErrCorruptTimerState, room, err)
	}
	return toTimerState(disk), true, nil
}

func fromTimerState(s timer.State) DiskTimerState {
	return DiskTimerState{
		Phase:              string(s.Phase),
		Mode:               string(s.Mode),
		ActiveCardID:       s.ActiveCardID,
		ActiveSessionID:    s.ActiveSessionID,
		StartedAtMs:        s.StartedAtMs,
		PausedAtMs:         s.PausedAtMs,
		EndedAtMs:          s.EndedAtMs,
		PlannedSeconds:     s.PlannedSeconds,
		PauseAccumulatedMs: s.PauseAccumulatedMs,
		CycleCount:         s.CycleCount,
	}
}

func toTimerState(d DiskTimerState) timer.State {
	return timer.State{
		Phase:              timer.Phase(d.Phase),
		Mode:               timer.Mode(d.Mode),
		ActiveCardID:       d.ActiveCardID,
		ActiveSessionID:    d.ActiveSessionID,
		StartedAtMs:        d.StartedAtMs,
		PausedAtMs:         d.PausedAtMs,
		EndedAtMs:          d.EndedAtMs,
		PlannedSeconds:     d.PlannedSeconds,
		PauseAccumulatedMs: d.PauseAccumulatedMs,
		CycleCount:         d.CycleCount,
	}
}
