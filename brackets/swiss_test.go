package brackets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside/tournament-engine/models"
)

func TestSwissFirstRoundPairsAdjacentSeeds(t *testing.T) {
	rounds, matches, err := NewSwissGenerator().Generate(testPlayers(6))
	require.NoError(t, err)

	require.Len(t, rounds, 1)
	assert.Equal(t, "Round 1", rounds[0].Name)
	require.Len(t, matches, 3)

	expected := [][2]string{{"p1", "p2"}, {"p3", "p4"}, {"p5", "p6"}}
	for i, want := range expected {
		assert.Equal(t, want[0], *matches[i].Player1ID)
		assert.Equal(t, want[1], *matches[i].Player2ID)
		assert.Equal(t, models.MatchStatusPending, matches[i].Status)
	}
}

func TestSwissOddFieldGetsBye(t *testing.T) {
	_, matches, err := NewSwissGenerator().Generate(testPlayers(5))
	require.NoError(t, err)

	require.Len(t, matches, 3)
	bye := matches[2]
	assert.True(t, bye.IsBye)
	assert.Equal(t, models.MatchStatusCompleted, bye.Status)
	assert.Equal(t, "p5", *bye.Player1ID)
	assert.Nil(t, bye.Player2ID)
	require.NotNil(t, bye.Result)
	assert.Equal(t, "p5", bye.Result.WinnerID)
	assert.True(t, bye.Result.Walkover)
}

func TestDefaultSwissRounds(t *testing.T) {
	cases := map[int]int{2: 1, 3: 2, 4: 2, 5: 3, 8: 3, 9: 4, 16: 4, 17: 5}
	for n, want := range cases {
		assert.Equal(t, want, DefaultSwissRounds(n), "n=%d", n)
	}
}
