package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTournamentClone(t *testing.T) {
	p1, p2 := "p1", "p2"
	next := "R2M1"
	original := &Tournament{
		ID:      "t1",
		Format:  FormatSingleElimination,
		Status:  TournamentStatusActive,
		Players: []Player{{ID: p1, Name: "One"}, {ID: p2, Name: "Two"}},
		Rounds: []*Round{
			{ID: "R1", Number: 1, MatchIDs: []string{"R1M1"}},
		},
		Matches: []*Match{
			{
				ID:          "R1M1",
				RoundID:     "R1",
				Player1ID:   &p1,
				Player2ID:   &p2,
				Status:      MatchStatusCompleted,
				Result:      &MatchResult{WinnerID: p1, Player1Score: 2},
				NextMatchID: &next,
			},
		},
	}

	clone := original.Clone()
	require.Equal(t, original, clone)

	// Mutating the clone must never reach the original.
	clone.Players[0].Name = "changed"
	*clone.Matches[0].Player1ID = "other"
	clone.Matches[0].Result.WinnerID = "other"
	clone.Rounds[0].MatchIDs[0] = "other"

	assert.Equal(t, "One", original.Players[0].Name)
	assert.Equal(t, "p1", *original.Matches[0].Player1ID)
	assert.Equal(t, "p1", original.Matches[0].Result.WinnerID)
	assert.Equal(t, "R1M1", original.Rounds[0].MatchIDs[0])
}

func TestMatchHelpers(t *testing.T) {
	p1, p2 := "a", "b"
	m := &Match{Player1ID: &p1, Player2ID: &p2, Status: MatchStatusPending}

	assert.True(t, m.HasPlayer("a"))
	assert.False(t, m.HasPlayer("c"))
	assert.Equal(t, "b", m.Opponent("a"))
	assert.Equal(t, "a", m.Opponent("b"))
	assert.Empty(t, m.Opponent("c"))
	assert.False(t, m.Decided())

	m.Status = MatchStatusCanceled
	assert.True(t, m.Decided())

	half := &Match{Player1ID: &p1}
	assert.Empty(t, half.Opponent("a"))
}

func TestTournamentLookups(t *testing.T) {
	tournament := &Tournament{
		Players: []Player{{ID: "p1"}},
		Rounds:  []*Round{{ID: "R1", MatchIDs: []string{"R1M1", "ghost"}}},
		Matches: []*Match{{ID: "R1M1", RoundID: "R1"}},
	}

	assert.NotNil(t, tournament.MatchByID("R1M1"))
	assert.Nil(t, tournament.MatchByID("nope"))
	assert.NotNil(t, tournament.RoundByID("R1"))
	assert.Nil(t, tournament.RoundByID("nope"))
	assert.NotNil(t, tournament.PlayerByID("p1"))
	assert.Nil(t, tournament.PlayerByID("nope"))

	// Unresolvable match ids are skipped, not materialized.
	matches := tournament.MatchesInRound(tournament.Rounds[0])
	require.Len(t, matches, 1)
	assert.Equal(t, "R1M1", matches[0].ID)
}
