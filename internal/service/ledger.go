package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/wb-go/wbf/logger"

	"drivehub/internal/domain"
	"drivehub/internal/monitoring"
	"drivehub/internal/service/ports"
)

// LedgerService fronts the participant ledger: every read and write of the
// enrollment rows and the derived counter goes through here.
type LedgerService struct {
	repo   ports.ParticipantRepo
	logger logger.Logger
}

func NewLedgerService(repo ports.ParticipantRepo, logger logger.Logger) *LedgerService {
	return &LedgerService{repo: repo, logger: logger}
}

func (s *LedgerService) Join(ctx context.Context, eventID, userID string) (*domain.Participant, error) {
	p, err := s.repo.Join(ctx, eventID, userID)
	if err != nil {
		monitoring.JoinOutcome(joinOutcome(err))
		return nil, fmt.Errorf("join event: %w", err)
	}
	monitoring.JoinOutcome("ok")

	s.logger.Info("participant joined",
		logger.String("event_id", eventID),
		logger.String("user_id", userID),
	)

	return p, nil
}

func (s *LedgerService) Leave(ctx context.Context, eventID, userID, reason string) error {
	if err := s.repo.Leave(ctx, eventID, userID); err != nil {
		monitoring.LeaveOutcome(leaveOutcome(err))
		return fmt.Errorf("leave event: %w", err)
	}
	monitoring.LeaveOutcome("ok")

	s.logger.Info("participant left",
		logger.String("event_id", eventID),
		logger.String("user_id", userID),
		logger.String("reason", reason),
	)

	return nil
}

func (s *LedgerService) IsParticipant(ctx context.Context, eventID, userID string) (bool, error) {
	return s.repo.Exists(ctx, eventID, userID)
}

func joinOutcome(err error) string {
	switch {
	case errors.Is(err, domain.ErrAlreadyJoined):
		return "already_joined"
	case errors.Is(err, domain.ErrEventFull):
		return "full"
	case errors.Is(err, domain.ErrEventNotJoinable):
		return "not_joinable"
	case errors.Is(err, domain.ErrEventNotFound):
		return "not_found"
	default:
		return "error"
	}
}

func leaveOutcome(err error) string {
	switch {
	case errors.Is(err, domain.ErrNotJoined):
		return "not_joined"
	case errors.Is(err, domain.ErrEventClosed):
		return "closed"
	case errors.Is(err, domain.ErrEventNotFound):
		return "not_found"
	default:
		return "error"
	}
}
