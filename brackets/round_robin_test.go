package brackets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside/tournament-engine/models"
)

func TestRoundRobinEvenField(t *testing.T) {
	rounds, matches, err := NewRoundRobinGenerator().Generate(testPlayers(4))
	require.NoError(t, err)

	assert.Len(t, rounds, 3)
	assert.Len(t, matches, 6) // 4*3/2

	assertAllPairsOnce(t, 4, matchPairs(matches))
	for _, r := range rounds {
		assert.Len(t, r.MatchIDs, 2)
	}
}

func TestRoundRobinOddField(t *testing.T) {
	rounds, matches, err := NewRoundRobinGenerator().Generate(testPlayers(5))
	require.NoError(t, err)

	// 5 players: 10 matches over 5 rounds, one player sitting out each
	// round with no bye match recorded.
	assert.Len(t, rounds, 5)
	assert.Len(t, matches, 10)
	for _, r := range rounds {
		assert.Len(t, r.MatchIDs, 2)
	}
	for _, m := range matches {
		assert.False(t, m.IsBye)
		require.NotNil(t, m.Player1ID)
		require.NotNil(t, m.Player2ID)
	}
	assertAllPairsOnce(t, 5, matchPairs(matches))
}

func TestRoundRobinNoPlayerTwicePerRound(t *testing.T) {
	rounds, matches, err := NewRoundRobinGenerator().Generate(testPlayers(7))
	require.NoError(t, err)

	byRound := make(map[string][]string)
	for _, m := range matches {
		byRound[m.RoundID] = append(byRound[m.RoundID], *m.Player1ID, *m.Player2ID)
	}
	for _, r := range rounds {
		seen := make(map[string]bool)
		for _, id := range byRound[r.ID] {
			assert.False(t, seen[id], "player %s twice in %s", id, r.ID)
			seen[id] = true
		}
	}
}

func matchPairs(matches []*models.Match) [][2]string {
	pairs := make([][2]string, 0, len(matches))
	for _, m := range matches {
		pairs = append(pairs, [2]string{*m.Player1ID, *m.Player2ID})
	}
	return pairs
}

// assertAllPairsOnce verifies that every unordered pair of the n test
// players meets exactly once.
func assertAllPairsOnce(t *testing.T, n int, pairs [][2]string) {
	t.Helper()
	seen := make(map[string]int)
	for _, p := range pairs {
		a, b := p[0], p[1]
		if b < a {
			a, b = b, a
		}
		seen[a+"/"+b]++
	}
	assert.Len(t, seen, n*(n-1)/2)
	for pair, count := range seen {
		assert.Equal(t, 1, count, "pair %s", pair)
	}
}
