package brackets

import (
	"fmt"

	"github.com/courtside/tournament-engine/models"
)

type RoundRobinGenerator struct{}

func NewRoundRobinGenerator() Generator {
	return &RoundRobinGenerator{}
}

func (g *RoundRobinGenerator) Format() models.Format {
	return models.FormatRoundRobin
}

// Generate pairs every two participants exactly once, grouped into rounds
// with the circle method: one participant stays fixed while the rest rotate,
// so nobody plays twice in the same round. Odd fields get a phantom
// opponent; the player drawn against it simply sits the round out, no match
// is recorded for the bye.
func (g *RoundRobinGenerator) Generate(players []models.Player) ([]*models.Round, []*models.Match, error) {
	n := len(players)
	if n < 2 {
		return nil, nil, fmt.Errorf("%w: got %d", ErrInsufficientParticipants, n)
	}

	circle := make([]int, 0, n+1)
	for i := 0; i < n; i++ {
		circle = append(circle, i)
	}
	if n%2 == 1 {
		circle = append(circle, -1) // phantom opponent
	}
	m := len(circle)
	numRounds := m - 1

	var rounds []*models.Round
	var matches []*models.Match
	for r := 1; r <= numRounds; r++ {
		round := &models.Round{
			ID:     fmt.Sprintf("R%d", r),
			Number: r,
			Name:   fmt.Sprintf("Round %d", r),
		}
		matchNum := 0
		for i := 0; i < m/2; i++ {
			a, b := circle[i], circle[m-1-i]
			if a == -1 || b == -1 {
				continue
			}
			matchNum++
			p1 := players[a].ID
			p2 := players[b].ID
			match := &models.Match{
				ID:          fmt.Sprintf("R%dM%d", r, matchNum),
				RoundID:     round.ID,
				RoundNumber: r,
				MatchNumber: matchNum,
				Player1ID:   &p1,
				Player2ID:   &p2,
				Status:      models.MatchStatusPending,
			}
			round.MatchIDs = append(round.MatchIDs, match.ID)
			matches = append(matches, match)
		}
		rounds = append(rounds, round)

		// Rotate everyone but the first position.
		rotated := make([]int, 0, m)
		rotated = append(rotated, circle[0], circle[m-1])
		rotated = append(rotated, circle[1:m-1]...)
		circle = rotated
	}

	return rounds, matches, nil
}
