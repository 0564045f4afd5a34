package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside/tournament-engine/models"
	"github.com/courtside/tournament-engine/progression"
)

func TestDashboardSummary(t *testing.T) {
	tournaments, repo := newTestService(nil)
	ctx := context.Background()

	active, err := tournaments.Create(ctx, CreateTournamentInput{
		Name:    "Running",
		Format:  models.FormatSingleElimination,
		Players: fourPlayers(),
	})
	require.NoError(t, err)

	done, err := tournaments.Create(ctx, CreateTournamentInput{
		Name:    "Finished",
		Format:  models.FormatSingleElimination,
		Players: fourPlayers()[:2],
	})
	require.NoError(t, err)
	_, err = tournaments.SubmitResult(ctx, done.ID, "R1M1", done.Players[0].ID, progression.Score{Player1: 1})
	require.NoError(t, err)

	summary, err := NewDashboardService(repo).Summary(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.ActiveCount)
	assert.Equal(t, 1, summary.CompletedCount)
	require.Len(t, summary.ActiveTournaments, 1)
	assert.Equal(t, active.ID, summary.ActiveTournaments[0].ID)
	// The 4-player bracket has 3 matches waiting.
	assert.Equal(t, 3, summary.PendingMatchCount)
}

func TestDashboardSummaryEmpty(t *testing.T) {
	_, repo := newTestService(nil)

	summary, err := NewDashboardService(repo).Summary(context.Background())
	require.NoError(t, err)
	assert.Zero(t, summary.ActiveCount)
	assert.Zero(t, summary.CompletedCount)
	assert.Zero(t, summary.PendingMatchCount)
}
