package services

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/courtside/tournament-engine/config"
	"github.com/courtside/tournament-engine/importer"
	"github.com/courtside/tournament-engine/models"
	"github.com/courtside/tournament-engine/selection"
)

// RegistrationService covers the pre-tournament phase: choosing a bounded
// participant set from open registrations and importing rosters.
type RegistrationService interface {
	SelectParticipants(ctx context.Context, candidates []models.RegistrationCandidate, capacity int, startDate time.Time) (*selection.Result, error)
	ImportRoster(ctx context.Context, r io.Reader, knownNames []string) (*importer.Result, error)
}

type registrationService struct {
	cfg    *config.Config
	logger *slog.Logger
}

func NewRegistrationService(cfg *config.Config, logger *slog.Logger) RegistrationService {
	return &registrationService{cfg: cfg, logger: logger}
}

func (s *registrationService) SelectParticipants(ctx context.Context, candidates []models.RegistrationCandidate, capacity int, startDate time.Time) (*selection.Result, error) {
	if capacity < 0 {
		return nil, ErrInvalidCapacity
	}
	result := selection.Select(candidates, capacity, startDate, s.cfg.Selection)
	s.logger.Info("registration selection completed",
		slog.Int("candidates", len(candidates)),
		slog.Int("capacity", capacity),
		slog.Int("selected", len(result.Selected)),
		slog.Int("waitlisted", len(result.Waitlist)),
		slog.Int("rejected", len(result.Rejected)),
	)
	return &result, nil
}

func (s *registrationService) ImportRoster(ctx context.Context, r io.Reader, knownNames []string) (*importer.Result, error) {
	result, err := importer.ParseRoster(r, knownNames)
	if err != nil {
		return nil, err
	}
	s.logger.Info("roster imported",
		slog.Int("players", len(result.Players)),
		slog.Int("rejected_lines", len(result.Errors)),
	)
	return result, nil
}
