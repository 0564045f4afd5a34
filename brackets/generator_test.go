package brackets

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside/tournament-engine/models"
)

func testPlayers(n int) []models.Player {
	players := make([]models.Player, n)
	for i := range players {
		players[i] = models.Player{
			ID:   fmt.Sprintf("p%d", i+1),
			Name: fmt.Sprintf("Player %d", i+1),
			Seed: i + 1,
		}
	}
	return players
}

func TestForFormat(t *testing.T) {
	for _, format := range []models.Format{
		models.FormatSingleElimination,
		models.FormatDoubleElimination,
		models.FormatRoundRobin,
		models.FormatSwiss,
	} {
		t.Run(string(format), func(t *testing.T) {
			gen, err := ForFormat(format)
			require.NoError(t, err)
			assert.Equal(t, format, gen.Format())
		})
	}

	_, err := ForFormat(models.Format("ladder"))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestGenerateRejectsSmallFields(t *testing.T) {
	for _, format := range []models.Format{
		models.FormatSingleElimination,
		models.FormatDoubleElimination,
		models.FormatRoundRobin,
		models.FormatSwiss,
	} {
		t.Run(string(format), func(t *testing.T) {
			gen, err := ForFormat(format)
			require.NoError(t, err)

			_, _, err = gen.Generate(testPlayers(1))
			assert.ErrorIs(t, err, ErrInsufficientParticipants)
			_, _, err = gen.Generate(nil)
			assert.ErrorIs(t, err, ErrInsufficientParticipants)
		})
	}
}
