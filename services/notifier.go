package services

import (
	"context"
	"log/slog"

	"github.com/courtside/tournament-engine/models"
)

// Notifier is told about engine state transitions so the host can alert
// players and spectators out-of-band. The engine never waits on it and
// ignores delivery failures; implementations must not block.
type Notifier interface {
	MatchCompleted(ctx context.Context, t *models.Tournament, m *models.Match)
	RoundCompleted(ctx context.Context, t *models.Tournament, r *models.Round)
	TournamentCompleted(ctx context.Context, t *models.Tournament)
}

type logNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier returns a Notifier that records transitions in the
// application log. It stands in for real fan-out (mail, push, websockets),
// which hosts supply themselves.
func NewLogNotifier(logger *slog.Logger) Notifier {
	return &logNotifier{logger: logger}
}

func (n *logNotifier) MatchCompleted(ctx context.Context, t *models.Tournament, m *models.Match) {
	winner := ""
	if m.Result != nil {
		winner = m.Result.WinnerID
	}
	n.logger.Info("match completed",
		slog.String("tournament_id", t.ID),
		slog.String("match_id", m.ID),
		slog.String("winner_id", winner),
	)
}

func (n *logNotifier) RoundCompleted(ctx context.Context, t *models.Tournament, r *models.Round) {
	n.logger.Info("round completed",
		slog.String("tournament_id", t.ID),
		slog.String("round_id", r.ID),
		slog.String("round_name", r.Name),
	)
}

func (n *logNotifier) TournamentCompleted(ctx context.Context, t *models.Tournament) {
	winner := ""
	if t.WinnerID != nil {
		winner = *t.WinnerID
	}
	n.logger.Info("tournament completed",
		slog.String("tournament_id", t.ID),
		slog.String("winner_id", winner),
	)
}

// NoopNotifier discards all notifications; useful in tests.
type NoopNotifier struct{}

func (NoopNotifier) MatchCompleted(context.Context, *models.Tournament, *models.Match) {}
func (NoopNotifier) RoundCompleted(context.Context, *models.Tournament, *models.Round) {}
func (NoopNotifier) TournamentCompleted(context.Context, *models.Tournament)           {}
