package services

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside/tournament-engine/config"
	"github.com/courtside/tournament-engine/models"
	"github.com/courtside/tournament-engine/progression"
	"github.com/courtside/tournament-engine/repositories"
)

func testConfig() *config.Config {
	return &config.Config{
		ServerPort:           8080,
		Scoring:              models.DefaultScoring(),
		MatchDurationMinutes: 30,
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// recordingNotifier captures notifications for assertions.
type recordingNotifier struct {
	matches     []string
	rounds      []string
	tournaments []string
}

func (n *recordingNotifier) MatchCompleted(_ context.Context, t *models.Tournament, m *models.Match) {
	n.matches = append(n.matches, m.ID)
}

func (n *recordingNotifier) RoundCompleted(_ context.Context, t *models.Tournament, r *models.Round) {
	n.rounds = append(n.rounds, r.ID)
}

func (n *recordingNotifier) TournamentCompleted(_ context.Context, t *models.Tournament) {
	n.tournaments = append(n.tournaments, t.ID)
}

func newTestService(notifier Notifier) (TournamentService, *repositories.InMemoryTournamentRepository) {
	repo := repositories.NewInMemoryTournamentRepository()
	if notifier == nil {
		notifier = NoopNotifier{}
	}
	return NewTournamentService(repo, notifier, testConfig(), testLogger()), repo
}

func fourPlayers() []models.Player {
	return []models.Player{
		{Name: "Alice"}, {Name: "Bob"}, {Name: "Carol"}, {Name: "Dave"},
	}
}

func TestCreateTournamentFillsIDsAndSeeds(t *testing.T) {
	svc, _ := newTestService(nil)

	tournament, err := svc.Create(context.Background(), CreateTournamentInput{
		Name:    "Spring Open",
		Format:  models.FormatSingleElimination,
		Players: fourPlayers(),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, tournament.ID)
	assert.Equal(t, models.TournamentStatusActive, tournament.Status)
	assert.Len(t, tournament.Matches, 3)
	for i, p := range tournament.Players {
		assert.NotEmpty(t, p.ID)
		assert.Equal(t, i+1, p.Seed)
	}
	assert.Equal(t, 1, tournament.Version)
}

func TestCreateTournamentValidation(t *testing.T) {
	svc, _ := newTestService(nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateTournamentInput{Format: models.FormatSwiss, Players: fourPlayers()})
	assert.ErrorIs(t, err, ErrTournamentNameRequired)

	_, err = svc.Create(ctx, CreateTournamentInput{Name: "x", Format: models.FormatSwiss})
	assert.ErrorIs(t, err, ErrNoPlayers)

	_, err = svc.Create(ctx, CreateTournamentInput{
		Name:    "x",
		Format:  models.FormatSwiss,
		Players: []models.Player{{ID: "dup", Name: "A"}, {ID: "dup", Name: "B"}},
	})
	assert.ErrorIs(t, err, ErrDuplicatePlayerID)
}

func TestCreateSwissDerivesRoundCount(t *testing.T) {
	svc, _ := newTestService(nil)
	ctx := context.Background()

	tournament, err := svc.Create(ctx, CreateTournamentInput{
		Name:    "Swiss",
		Format:  models.FormatSwiss,
		Players: fourPlayers(),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, tournament.TotalRounds) // ceil(log2(4))

	tournament, err = svc.Create(ctx, CreateTournamentInput{
		Name:        "Swiss long",
		Format:      models.FormatSwiss,
		Players:     fourPlayers(),
		SwissRounds: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, tournament.TotalRounds)
}

func TestSubmitResultNotifies(t *testing.T) {
	notifier := &recordingNotifier{}
	svc, _ := newTestService(notifier)
	ctx := context.Background()

	tournament, err := svc.Create(ctx, CreateTournamentInput{
		Name:    "Final only",
		Format:  models.FormatSingleElimination,
		Players: fourPlayers()[:2],
	})
	require.NoError(t, err)

	winner := tournament.Players[0].ID
	updated, err := svc.SubmitResult(ctx, tournament.ID, "R1M1", winner, progression.Score{Player1: 2, Player2: 0})
	require.NoError(t, err)

	assert.Equal(t, models.TournamentStatusCompleted, updated.Status)
	assert.Equal(t, []string{"R1M1"}, notifier.matches)
	assert.Equal(t, []string{"R1"}, notifier.rounds)
	assert.Equal(t, []string{tournament.ID}, notifier.tournaments)

	// A completed tournament accepts no further results.
	_, err = svc.SubmitResult(ctx, tournament.ID, "R1M1", winner, progression.Score{})
	assert.ErrorIs(t, err, ErrTournamentNotActive)
}

func TestUndoResultRoundTrip(t *testing.T) {
	svc, _ := newTestService(nil)
	ctx := context.Background()

	tournament, err := svc.Create(ctx, CreateTournamentInput{
		Name:    "Undoable",
		Format:  models.FormatSingleElimination,
		Players: fourPlayers(),
	})
	require.NoError(t, err)

	winner := *tournament.MatchByID("R1M1").Player1ID
	_, err = svc.SubmitResult(ctx, tournament.ID, "R1M1", winner, progression.Score{Player1: 1})
	require.NoError(t, err)

	undone, err := svc.UndoResult(ctx, tournament.ID, "R1M1")
	require.NoError(t, err)
	assert.Equal(t, models.MatchStatusPending, undone.MatchByID("R1M1").Status)

	// The undo is durable.
	got, err := svc.Get(ctx, tournament.ID)
	require.NoError(t, err)
	assert.Nil(t, got.MatchByID("R1M1").Result)
}

func TestGenerateNextRoundPersists(t *testing.T) {
	svc, _ := newTestService(nil)
	ctx := context.Background()

	tournament, err := svc.Create(ctx, CreateTournamentInput{
		Name:    "Swiss",
		Format:  models.FormatSwiss,
		Players: fourPlayers(),
	})
	require.NoError(t, err)

	for _, id := range []string{"R1M1", "R1M2"} {
		m := tournament.MatchByID(id)
		tournament, err = svc.SubmitResult(ctx, tournament.ID, id, *m.Player1ID, progression.Score{Player1: 1})
		require.NoError(t, err)
	}

	updated, err := svc.GenerateNextRound(ctx, tournament.ID)
	require.NoError(t, err)
	assert.Len(t, updated.Rounds, 2)

	got, err := svc.Get(ctx, tournament.ID)
	require.NoError(t, err)
	assert.Len(t, got.Rounds, 2)
}

func TestStandingsUsesBuchholzForSwiss(t *testing.T) {
	svc, _ := newTestService(nil)
	ctx := context.Background()

	tournament, err := svc.Create(ctx, CreateTournamentInput{
		Name:    "Swiss",
		Format:  models.FormatSwiss,
		Players: fourPlayers(),
	})
	require.NoError(t, err)

	m := tournament.MatchByID("R1M1")
	tournament, err = svc.SubmitResult(ctx, tournament.ID, "R1M1", *m.Player1ID, progression.Score{Player1: 1})
	require.NoError(t, err)

	rows, err := svc.Standings(ctx, tournament.ID)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, *m.Player1ID, rows[0].PlayerID)
	assert.Equal(t, 1.0, rows[0].Points)
}

func TestScheduleMarksMatches(t *testing.T) {
	svc, _ := newTestService(nil)
	ctx := context.Background()

	tournament, err := svc.Create(ctx, CreateTournamentInput{
		Name:    "Scheduled",
		Format:  models.FormatRoundRobin,
		Players: fourPlayers(),
	})
	require.NoError(t, err)

	start := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	scheduled, err := svc.Schedule(ctx, tournament.ID, ScheduleInput{
		Resources: []models.Resource{{ID: "court-1", Name: "Court 1", Type: models.ResourceCourt}},
		StartDate: start,
	})
	require.NoError(t, err)
	assert.Len(t, scheduled, 6)

	// The configured default duration spaces the slots.
	assert.Equal(t, start, scheduled[0].ScheduledAt)
	assert.Equal(t, start.Add(30*time.Minute), scheduled[1].ScheduledAt)

	got, err := svc.Get(ctx, tournament.ID)
	require.NoError(t, err)
	for _, m := range got.Matches {
		assert.Equal(t, models.MatchStatusScheduled, m.Status)
	}
}

func TestServiceMissingTournament(t *testing.T) {
	svc, _ := newTestService(nil)
	ctx := context.Background()

	_, err := svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, repositories.ErrTournamentNotFound)
	_, err = svc.SubmitResult(ctx, "missing", "R1M1", "p1", progression.Score{})
	assert.ErrorIs(t, err, repositories.ErrTournamentNotFound)
	err = svc.Delete(ctx, "missing")
	assert.ErrorIs(t, err, repositories.ErrTournamentNotFound)
}
