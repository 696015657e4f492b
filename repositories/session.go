//go:generate go run go.uber.org/mock/mockgen -source=session.go -destination=../mocks/mock_session_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"focus-lab/domain"
	apperrors "focus-lab/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type ISessionRepository interface {
	StartSession(session DiskSession) error
	FinalizeSession(sessionID uuid.UUID, endedAt time.Time, outcome string, actualSeconds int, note string) error
	GetSessions(room domain.RoomID, cursor *string) ([]DiskSession, *string, error)
}

// SessionRepository persists one row per focus session in BadgerDB.
// The primary key is formatted as "sess:{room}:{start_ms_padded}:{uuid}" to:
//  1. Ensure chronological sorting using 19-digit zero padding (lexicographical order).
//  2. Prevent data loss by using UUID as a collision disconnector if two sessions
//     start at the same millisecond.
//
// A secondary index "idx:sess:{uuid}" points back at the primary key so a
// row can be finalized without knowing its start timestamp.
type SessionRepository struct {
	db            *badger.DB
	log           *slog.Logger
	limitSessions *int
}

func NewSessionRepository(db *badger.DB, log *slog.Logger, limitSessions *int) SessionRepository {
	return SessionRepository{db: db, log: log, limitSessions: limitSessions}
}

type DiskSession struct {
	ID             uuid.UUID `json:"id"`
	Room           string    `json:"room"`
	CardID         string    `json:"card_id"`
	Mode           string    `json:"mode"`
	PlannedSeconds int       `json:"planned_seconds"`
	StartedAt      time.Time `json:"started_at"`
	EndedAt        time.Time `json:"ended_at,omitzero"`
	ActualSeconds  int       `json:"actual_seconds"`
	Outcome        string    `json:"outcome,omitempty"`
	Note           string    `json:"note,omitempty"`
}

func sessionKey(room string, startedAt time.Time, id uuid.UUID) []byte {
	return []byte(fmt.Sprintf("sess:%s:%019d:%s", room, startedAt.UnixMilli(), id))
}

func sessionIndexKey(id uuid.UUID) []byte {
	return []byte(fmt.Sprintf("idx:sess:%s", id))
}

func (r SessionRepository) StartSession(session DiskSession) error {
	bytes, err := json.Marshal(session)
	if err != nil {
		return err
	}
	key := sessionKey(session.Room, session.StartedAt, session.ID)
	return r.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(key, bytes); err != nil {
			return err
		}
		return txn.Set(sessionIndexKey(session.ID), key)
	})
}

// FinalizeSession completes a previously started row in a single
// read-modify-write transaction, resolved through the secondary index.
func (r SessionRepository) FinalizeSession(sessionID uuid.UUID, endedAt time.Time, outcome string, actualSeconds int, note string) error {
	return r.db.Update(func(txn *badger.Txn) error {
		idxItem, err := txn.Get(sessionIndexKey(sessionID))
		if err == badger.ErrKeyNotFound {
			return fmt.Errorf("%w: %s", apperrors.ErrSessionNotFound, sessionID)
		}
		if err != nil {
			return err
		}
		key, err := idxItem.ValueCopy(nil)
		if err != nil {
			return err
		}

		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		var session DiskSession
		err = item.Value(func(val []byte) error {
			return json.Unmarshal(val, &session)
		})
		if err != nil {
			return err
		}

		session.EndedAt = endedAt
		session.Outcome = outcome
		session.ActualSeconds = actualSeconds
		session.Note = note

		bytes, err := json.Marshal(session)
		if err != nil {
			return err
		}
		return txn.Set(key, bytes)
	})
}

// GetSessions retrieves session rows for a room using a reverse prefix
// scan, newest first. Thanks to the padded timestamp in the key the rows
// are naturally sorted by start time. It stops collecting once the
// configured limitSessions is reached; the returned cursor resumes the
// scan on the next page.
func (r SessionRepository) GetSessions(room domain.RoomID, cursor *string) ([]DiskSession, *string, error) {
	var byteSessions [][]byte
	var lastKey string
	err := r.db.View(func(txn *badger.Txn) error {
		prefixStr := fmt.Sprintf("sess:%s:", room)
		prefix := []byte(prefixStr)
		prefixLen := len(prefixStr)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		var seekKey []byte
		switch cursor {
		case nil:
			// Seek past the newest possible key, then walk backwards.
			seekKey = append(prefix, []byte("9999999999999999999")...)
		default:
			seekKey = append(prefix, []byte(*cursor)...)
		}

		it.Seek(seekKey)

		if cursor != nil && it.ValidForPrefix(prefix) {
			it.Next()
		}

		for ; it.ValidForPrefix(prefix); it.Next() {
			if r.limitSessions != nil && len(byteSessions) == *r.limitSessions {
				r.log.Debug(fmt.Sprintf("Maximum of %d sessions reached", *r.limitSessions))
				break
			}
			item := it.Item()
			// Memorize the cursor part of the actual key
			lastKey = string(item.Key()[prefixLen:])
			// Copy: the raw value is only valid inside the transaction
			value, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			byteSessions = append(byteSessions, value)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	var sessions []DiskSession
	for _, b := range byteSessions {
		var session DiskSession
		if err = json.Unmarshal(b, &session); err != nil {
			return nil, nil, err
		}
		sessions = append(sessions, session)
	}
	return sessions, &lastKey, nil
}
