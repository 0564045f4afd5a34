package brackets

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside/tournament-engine/models"
)

func TestSingleEliminationEightPlayers(t *testing.T) {
	gen := NewSingleEliminationGenerator()
	rounds, matches, err := gen.Generate(testPlayers(8))
	require.NoError(t, err)

	require.Len(t, rounds, 3)
	assert.Equal(t, "Quarter-Finals", rounds[0].Name)
	assert.Equal(t, "Semi-Finals", rounds[1].Name)
	assert.Equal(t, "Final", rounds[2].Name)
	assert.Len(t, matches, 7)

	// Standard seeding: 1v8, 4v5, 2v7, 3v6.
	expected := [][2]string{
		{"p1", "p8"},
		{"p4", "p5"},
		{"p2", "p7"},
		{"p3", "p6"},
	}
	for i, want := range expected {
		m := matchByID(t, matches, fmt.Sprintf("R1M%d", i+1))
		require.NotNil(t, m.Player1ID)
		require.NotNil(t, m.Player2ID)
		assert.Equal(t, want[0], *m.Player1ID)
		assert.Equal(t, want[1], *m.Player2ID)
		assert.Equal(t, models.MatchStatusPending, m.Status)
	}

	// Quarter-final pairs feed the semis so that, on expected results, the
	// semis read 1v4 and 2v3.
	assert.Equal(t, "R2M1", *matchByID(t, matches, "R1M1").NextMatchID)
	assert.Equal(t, "R2M1", *matchByID(t, matches, "R1M2").NextMatchID)
	assert.Equal(t, "R2M2", *matchByID(t, matches, "R1M3").NextMatchID)
	assert.Equal(t, "R2M2", *matchByID(t, matches, "R1M4").NextMatchID)
	assert.Equal(t, "R3M1", *matchByID(t, matches, "R2M1").NextMatchID)
	assert.Nil(t, matchByID(t, matches, "R3M1").NextMatchID)
}

func TestSingleEliminationMatchCount(t *testing.T) {
	// A full skeleton always has bracketSize-1 matches, byes included.
	for n := 2; n <= 16; n++ {
		_, matches, err := NewSingleEliminationGenerator().Generate(testPlayers(n))
		require.NoError(t, err)
		size := nextPowerOfTwo(n)
		assert.Len(t, matches, size-1, "n=%d", n)

		playable := 0
		for _, m := range matches {
			if !m.IsBye {
				playable++
			}
		}
		// Every participant except the champion loses exactly once, and
		// byes are not played.
		assert.Equal(t, n-1, playable, "n=%d", n)
	}
}

func TestSingleEliminationByes(t *testing.T) {
	_, matches, err := NewSingleEliminationGenerator().Generate(testPlayers(5))
	require.NoError(t, err)

	// Size 8: seeds 6, 7, 8 are absent, so seeds 1, 2, 3 get round-1 byes.
	byes := map[string]string{} // match id -> advancing player
	for _, m := range matches {
		if m.IsBye {
			require.NotNil(t, m.Result)
			assert.True(t, m.Result.Walkover)
			assert.Equal(t, models.MatchStatusCompleted, m.Status)
			byes[m.ID] = m.Result.WinnerID
		}
	}
	assert.Equal(t, map[string]string{
		"R1M1": "p1",
		"R1M3": "p2",
		"R1M4": "p3",
	}, byes)

	// Bye winners are already slotted into round 2.
	semi1 := matchByID(t, matches, "R2M1")
	require.NotNil(t, semi1.Player1ID)
	assert.Equal(t, "p1", *semi1.Player1ID)
	assert.Nil(t, semi1.Player2ID) // waits for the 4v5 winner

	semi2 := matchByID(t, matches, "R2M2")
	require.NotNil(t, semi2.Player1ID)
	require.NotNil(t, semi2.Player2ID)
	assert.Equal(t, "p2", *semi2.Player1ID)
	assert.Equal(t, "p3", *semi2.Player2ID)
}

func TestSingleEliminationTwoPlayers(t *testing.T) {
	rounds, matches, err := NewSingleEliminationGenerator().Generate(testPlayers(2))
	require.NoError(t, err)
	require.Len(t, rounds, 1)
	require.Len(t, matches, 1)
	assert.Equal(t, "Final", rounds[0].Name)
	assert.Equal(t, "p1", *matches[0].Player1ID)
	assert.Equal(t, "p2", *matches[0].Player2ID)
}

func matchByID(t *testing.T, matches []*models.Match, id string) *models.Match {
	t.Helper()
	for _, m := range matches {
		if m.ID == id {
			return m
		}
	}
	t.Fatalf("match %s not found", id)
	return nil
}
