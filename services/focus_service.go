package services

import (
	"context"
	"time"

	"focus-lab/contract"
	"focus-lab/domain"
	"focus-lab/domain/timer"
	"focus-lab/projection"
	"focus-lab/repositories"
	"focus-lab/runtime"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// StartOptions optionally overrides the queued mode and duration.
type StartOptions struct {
	Mode           timer.Mode
	PlannedSeconds int
}

// Status is the answer to "what does the clock read right now".
type Status struct {
	State   timer.State
	Derived timer.Derived
}

type IFocusService interface {
	AttachCard(ctx context.Context, roomID domain.RoomID, cardID string) error
	ClearCard(ctx context.Context, roomID domain.RoomID) error
	StartTimer(ctx context.Context, roomID domain.RoomID, opts StartOptions) (string, error)
	PauseTimer(ctx context.Context, roomID domain.RoomID) error
	ResumeTimer(ctx context.Context, roomID domain.RoomID) error
	EndTimer(ctx context.Context, roomID domain.RoomID, outcome timer.Outcome, note string) error
	Status(roomID domain.RoomID) (Status, error)
	JoinRoom(ctx context.Context, participantID string, roomID domain.RoomID, sink contract.EventSink) error
	LeaveRoom(participantID string, roomID domain.RoomID)
	SessionHistory(roomID domain.RoomID, cursor *string) ([]projection.SessionSummary, *string, error)
}

// FocusService is the in-process boundary of the system. It stamps every
// control action with the caller's wall clock once, here, so nothing
// below it ever reads time on its own.
type FocusService struct {
	orchestrator *runtime.Orchestrator
	sessions     repositories.ISessionRepository
	now          func() time.Time
}

func NewFocusService(o *runtime.Orchestrator, sessions repositories.ISessionRepository) *FocusService {
	return &FocusService{orchestrator: o, sessions: sessions, now: time.Now}
}

func (s *FocusService) AttachCard(ctx context.Context, roomID domain.RoomID, cardID string) error {
	_, err := s.orchestrator.Execute(ctx, domain.AttachCardCommand{Room: roomID, CardID: cardID, At: s.now()})
	return err
}

func (s *FocusService) ClearCard(ctx context.Context, roomID domain.RoomID) error {
	_, err := s.orchestrator.Execute(ctx, domain.ClearCardCommand{Room: roomID, At: s.now()})
	return err
}

// StartTimer begins a new interval and returns the session id the caller
// can correlate bookkeeping with. A redundant start against an in-flight
// session is absorbed and reports that session's id instead of a new one.
func (s *FocusService) StartTimer(ctx context.Context, roomID domain.RoomID, opts StartOptions) (string, error) {
	sessionID := uuid.NewString()
	result, err := s.orchestrator.Execute(ctx, domain.StartTimerCommand{
		Room:           roomID,
		SessionID:      sessionID,
		Mode:           opts.Mode,
		PlannedSeconds: opts.PlannedSeconds,
		At:             s.now(),
	})
	if err != nil {
		return "", err
	}
	return result.Next.ActiveSessionID, nil
}

func (s *FocusService) PauseTimer(ctx context.Context, roomID domain.RoomID) error {
	_, err := s.orchestrator.Execute(ctx, domain.PauseTimerCommand{Room: roomID, At: s.now()})
	return err
}

func (s *FocusService) ResumeTimer(ctx context.Context, roomID domain.RoomID) error {
	_, err := s.orchestrator.Execute(ctx, domain.ResumeTimerCommand{Room: roomID, At: s.now()})
	return err
}

func (s *FocusService) EndTimer(ctx context.Context, roomID domain.RoomID, outcome timer.Outcome, note string) error {
	_, err := s.orchestrator.Execute(ctx, domain.EndTimerCommand{Room: roomID, Outcome: outcome, Note: note, At: s.now()})
	return err
}

// Status derives the clock face from the stored snapshot without going
// through the command pipeline; reads never contend with writes.
func (s *FocusService) Status(roomID domain.RoomID) (Status, error) {
	state, err := s.orchestrator.Snapshot(roomID)
	if err != nil {
		return Status{}, err
	}
	return Status{
		State:   state,
		Derived: timer.Derive(state, s.now().UnixMilli()),
	}, nil
}

func (s *FocusService) JoinRoom(ctx context.Context, participantID string, roomID domain.RoomID, sink contract.EventSink) error {
	return s.orchestrator.RegisterParticipant(ctx, participantID, roomID, sink, s.now())
}

func (s *FocusService) LeaveRoom(participantID string, roomID domain.RoomID) {
	s.orchestrator.UnregisterParticipant(participantID, roomID)
}

// SessionHistory pages through the persisted session rows of a room,
// newest first.
func (s *FocusService) SessionHistory(roomID domain.RoomID, cursor *string) ([]projection.SessionSummary, *string, error) {
	rows, next, err := s.sessions.GetSessions(roomID, cursor)
	if err != nil {
		return nil, nil, err
	}
	summaries := lo.Map(rows, func(row repositories.DiskSession, _ int) projection.SessionSummary {
		return projection.SessionSummary{
			SessionID:     row.ID.String(),
			CardID:        row.CardID,
			Mode:          timer.Mode(row.Mode),
			Outcome:       timer.Outcome(row.Outcome),
			ActualSeconds: row.ActualSeconds,
			Note:          row.Note,
			StartedAt:     row.StartedAt,
			EndedAt:       row.EndedAt,
		}
	})
	return summaries, next, nil
}
