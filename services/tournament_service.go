package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/courtside/tournament-engine/brackets"
	"github.com/courtside/tournament-engine/config"
	"github.com/courtside/tournament-engine/models"
	"github.com/courtside/tournament-engine/progression"
	"github.com/courtside/tournament-engine/repositories"
	"github.com/courtside/tournament-engine/scheduling"
	"github.com/courtside/tournament-engine/standings"
)

type CreateTournamentInput struct {
	Name    string          `json:"name"`
	Format  models.Format   `json:"format"`
	Players []models.Player `json:"players"`
	// SwissRounds overrides the default round count for Swiss tournaments.
	SwissRounds int `json:"swiss_rounds,omitempty"`
	// Scoring overrides the configured point values when set.
	Scoring *models.Scoring `json:"scoring,omitempty"`
}

type ScheduleInput struct {
	Resources []models.Resource `json:"resources"`
	StartDate time.Time         `json:"start_date"`
	// MatchDurationMinutes falls back to the configured default when 0.
	MatchDurationMinutes int `json:"match_duration_minutes,omitempty"`
}

type TournamentService interface {
	Create(ctx context.Context, input CreateTournamentInput) (*models.Tournament, error)
	Get(ctx context.Context, id string) (*models.Tournament, error)
	List(ctx context.Context, filter repositories.ListTournamentsFilter) ([]*models.Tournament, error)
	Delete(ctx context.Context, id string) error

	SubmitResult(ctx context.Context, tournamentID, matchID, winnerID string, score progression.Score) (*models.Tournament, error)
	UndoResult(ctx context.Context, tournamentID, matchID string) (*models.Tournament, error)
	GenerateNextRound(ctx context.Context, tournamentID string) (*models.Tournament, error)
	Standings(ctx context.Context, tournamentID string) ([]standings.Row, error)
	Schedule(ctx context.Context, tournamentID string, input ScheduleInput) ([]models.ScheduledMatch, error)
}

type tournamentService struct {
	repo     repositories.TournamentRepository
	notifier Notifier
	cfg      *config.Config
	logger   *slog.Logger
}

func NewTournamentService(
	repo repositories.TournamentRepository,
	notifier Notifier,
	cfg *config.Config,
	logger *slog.Logger,
) TournamentService {
	return &tournamentService{
		repo:     repo,
		notifier: notifier,
		cfg:      cfg,
		logger:   logger,
	}
}

func (s *tournamentService) Create(ctx context.Context, input CreateTournamentInput) (*models.Tournament, error) {
	if input.Name == "" {
		return nil, ErrTournamentNameRequired
	}
	if len(input.Players) == 0 {
		return nil, ErrNoPlayers
	}
	seen := make(map[string]bool, len(input.Players))
	players := make([]models.Player, len(input.Players))
	for i, p := range input.Players {
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePlayerID, p.ID)
		}
		seen[p.ID] = true
		if p.Seed == 0 {
			p.Seed = i + 1
		}
		players[i] = p
	}

	generator, err := brackets.ForFormat(input.Format)
	if err != nil {
		return nil, err
	}
	rounds, matches, err := generator.Generate(players)
	if err != nil {
		return nil, err
	}

	scoring := s.cfg.Scoring
	if input.Scoring != nil {
		scoring = *input.Scoring
	}

	tournament := &models.Tournament{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Format:    input.Format,
		Status:    models.TournamentStatusActive,
		Players:   players,
		Rounds:    rounds,
		Matches:   matches,
		Scoring:   scoring,
		CreatedAt: time.Now().UTC(),
	}
	if input.Format == models.FormatSwiss {
		tournament.TotalRounds = input.SwissRounds
		if tournament.TotalRounds <= 0 {
			tournament.TotalRounds = s.cfg.SwissRounds
		}
		if tournament.TotalRounds <= 0 {
			tournament.TotalRounds = brackets.DefaultSwissRounds(len(players))
		}
	}

	if err := s.repo.Create(ctx, tournament); err != nil {
		return nil, fmt.Errorf("storing tournament: %w", err)
	}

	s.logger.Info("tournament created",
		slog.String("tournament_id", tournament.ID),
		slog.String("format", string(tournament.Format)),
		slog.Int("players", len(players)),
		slog.Int("matches", len(matches)),
	)
	return tournament, nil
}

func (s *tournamentService) Get(ctx context.Context, id string) (*models.Tournament, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *tournamentService) List(ctx context.Context, filter repositories.ListTournamentsFilter) ([]*models.Tournament, error) {
	return s.repo.List(ctx, filter)
}

func (s *tournamentService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *tournamentService) SubmitResult(ctx context.Context, tournamentID, matchID, winnerID string, score progression.Score) (*models.Tournament, error) {
	tournament, err := s.repo.GetByID(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	if tournament.Status != models.TournamentStatusActive {
		return nil, fmt.Errorf("%w: %s is %s", ErrTournamentNotActive, tournamentID, tournament.Status)
	}

	updated, err := progression.ApplyResult(tournament, matchID, winnerID, score)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, updated); err != nil {
		return nil, fmt.Errorf("storing result: %w", err)
	}

	match := updated.MatchByID(matchID)
	s.notifier.MatchCompleted(ctx, updated, match)
	if round := updated.RoundByID(match.RoundID); round != nil && roundDecided(updated, round) {
		s.notifier.RoundCompleted(ctx, updated, round)
	}
	if updated.Status == models.TournamentStatusCompleted {
		s.notifier.TournamentCompleted(ctx, updated)
	}
	return updated, nil
}

func (s *tournamentService) UndoResult(ctx context.Context, tournamentID, matchID string) (*models.Tournament, error) {
	tournament, err := s.repo.GetByID(ctx, tournamentID)
	if err != nil {
		return nil, err
	}

	updated, err := progression.Undo(tournament, matchID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, updated); err != nil {
		return nil, fmt.Errorf("storing undo: %w", err)
	}

	s.logger.Info("match result retracted",
		slog.String("tournament_id", tournamentID),
		slog.String("match_id", matchID),
	)
	return updated, nil
}

func (s *tournamentService) GenerateNextRound(ctx context.Context, tournamentID string) (*models.Tournament, error) {
	tournament, err := s.repo.GetByID(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	if tournament.Status != models.TournamentStatusActive {
		return nil, fmt.Errorf("%w: %s is %s", ErrTournamentNotActive, tournamentID, tournament.Status)
	}

	updated, err := progression.NextRound(tournament)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, updated); err != nil {
		return nil, fmt.Errorf("storing next round: %w", err)
	}

	round := updated.Rounds[len(updated.Rounds)-1]
	s.logger.Info("swiss round generated",
		slog.String("tournament_id", tournamentID),
		slog.Int("round", round.Number),
		slog.Int("matches", len(round.MatchIDs)),
	)
	return updated, nil
}

func (s *tournamentService) Standings(ctx context.Context, tournamentID string) ([]standings.Row, error) {
	tournament, err := s.repo.GetByID(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	withBuchholz := tournament.Format == models.FormatSwiss
	return standings.Compute(tournament.Players, tournament.Matches, tournament.Scoring, withBuchholz), nil
}

func (s *tournamentService) Schedule(ctx context.Context, tournamentID string, input ScheduleInput) ([]models.ScheduledMatch, error) {
	tournament, err := s.repo.GetByID(ctx, tournamentID)
	if err != nil {
		return nil, err
	}

	duration := time.Duration(input.MatchDurationMinutes) * time.Minute
	if duration <= 0 {
		duration = time.Duration(s.cfg.MatchDurationMinutes) * time.Minute
	}
	scheduled, err := scheduling.Schedule(tournament.Matches, input.Resources, input.StartDate, duration)
	if err != nil {
		return nil, err
	}

	// Record the assignment on the tournament so repeated scheduling calls
	// and viewers see the same state.
	byID := make(map[string]models.ScheduledMatch, len(scheduled))
	for _, sm := range scheduled {
		byID[sm.Match.ID] = sm
	}
	for _, m := range tournament.Matches {
		if _, ok := byID[m.ID]; ok && m.Status == models.MatchStatusPending {
			m.Status = models.MatchStatusScheduled
		}
	}
	if err := s.repo.Update(ctx, tournament); err != nil {
		return nil, fmt.Errorf("storing schedule: %w", err)
	}

	return scheduled, nil
}

func roundDecided(t *models.Tournament, r *models.Round) bool {
	for _, m := range t.MatchesInRound(r) {
		if !m.Decided() && m.Status != models.MatchStatusConditional {
			return false
		}
	}
	return true
}
