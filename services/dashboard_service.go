package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/courtside/tournament-engine/models"
	"github.com/courtside/tournament-engine/repositories"
)

// DashboardSummary is the organizer landing-page payload.
type DashboardSummary struct {
	ActiveTournaments    []*models.Tournament `json:"active_tournaments"`
	CompletedTournaments []*models.Tournament `json:"completed_tournaments"`
	ActiveCount          int                  `json:"active_count"`
	CompletedCount       int                  `json:"completed_count"`
	PendingMatchCount    int                  `json:"pending_match_count"`
}

type DashboardService interface {
	Summary(ctx context.Context) (*DashboardSummary, error)
}

type dashboardService struct {
	repo repositories.TournamentRepository
}

func NewDashboardService(repo repositories.TournamentRepository) DashboardService {
	return &dashboardService{repo: repo}
}

// Summary loads the active and completed tournament sets in parallel; the
// repository may be backed by remote storage.
func (s *dashboardService) Summary(ctx context.Context) (*DashboardSummary, error) {
	summary := &DashboardSummary{}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		status := models.TournamentStatusActive
		tournaments, err := s.repo.List(gCtx, repositories.ListTournamentsFilter{Status: &status})
		if err != nil {
			return err
		}
		summary.ActiveTournaments = tournaments
		return nil
	})

	g.Go(func() error {
		status := models.TournamentStatusCompleted
		tournaments, err := s.repo.List(gCtx, repositories.ListTournamentsFilter{Status: &status})
		if err != nil {
			return err
		}
		summary.CompletedTournaments = tournaments
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary.ActiveCount = len(summary.ActiveTournaments)
	summary.CompletedCount = len(summary.CompletedTournaments)
	for _, t := range summary.ActiveTournaments {
		for _, m := range t.Matches {
			if m.Status == models.MatchStatusPending || m.Status == models.MatchStatusScheduled {
				summary.PendingMatchCount++
			}
		}
	}
	return summary, nil
}
