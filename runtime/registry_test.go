package runtime

import (
	"context"
	"testing"

	"focus-lab/domain"
	"focus-lab/domain/event"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type Sink struct{}

func (s Sink) Consume(ctx context.Context, e event.DomainEvent) error {
	return nil
}

func TestRegistry_Subscribe_One_Room_One_Participant(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	participantID := uuid.NewString()
	roomID := domain.RoomID("room-1")
	sink := Sink{}

	// Given no participant is connected
	// And no room exists
	req.Empty(registry.sessions)
	req.Empty(registry.roomMembers)

	// When a participant subscribes a room
	registry.Subscribe(participantID, roomID, sink)

	// Then
	req.Len(registry.sessions, 1)
	req.Equal(sink, registry.sessions[participantID])

	req.Len(registry.roomMembers, 1)
	req.Contains(registry.roomMembers[roomID], participantID)

	req.Len(registry.GetSinksForRoom(roomID), 1)
	req.Contains(registry.GetSinksForRoom(roomID), sink)
}

func TestRegistry_Subscribe_One_Room_Multiple_Participants(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	participantID1 := uuid.NewString()
	participantID2 := uuid.NewString()
	roomID := domain.RoomID("room-1")
	sink1 := Sink{}
	sink2 := Sink{}

	// When participants subscribe a room
	registry.Subscribe(participantID1, roomID, sink1)
	registry.Subscribe(participantID2, roomID, sink2)

	// Then
	req.Len(registry.sessions, 2)
	req.Len(registry.roomMembers[roomID], 2)
	req.Len(registry.GetSinksForRoom(roomID), 2)
}

func TestRegistry_Unsubscribe_One_Room_One_Participant(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	participantID := uuid.NewString()
	roomID := domain.RoomID("room-1")
	sink := Sink{}

	// Given a participant subscribed to a room
	registry.Subscribe(participantID, roomID, sink)

	// When the participant unsubscribes
	registry.Unsubscribe(participantID, roomID)

	// Then no participant is left
	// And the room doesn't exist anymore
	req.Empty(registry.sessions)
	req.Empty(registry.roomMembers)
	req.Nil(registry.GetSinksForRoom(roomID))
}

func TestRegistry_Unsubscribe_Keeps_Other_Members(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	participantID1 := uuid.NewString()
	participantID2 := uuid.NewString()
	roomID := domain.RoomID("room-1")

	registry.Subscribe(participantID1, roomID, Sink{})
	registry.Subscribe(participantID2, roomID, Sink{})

	registry.Unsubscribe(participantID1, roomID)

	req.Len(registry.sessions, 1)
	req.Len(registry.roomMembers[roomID], 1)
	req.Len(registry.GetSinksForRoom(roomID), 1)
}

func TestRegistry_GetSinksForRoom_Unknown_Room(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()

	req.Nil(registry.GetSinksForRoom("never-seen"))
}
