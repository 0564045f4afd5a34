package brackets

import (
	"fmt"

	"github.com/courtside/tournament-engine/models"
)

type SwissGenerator struct{}

func NewSwissGenerator() Generator {
	return &SwissGenerator{}
}

func (g *SwissGenerator) Format() models.Format {
	return models.FormatSwiss
}

// Generate produces only round 1: adjacent seeds are paired (1v2, 3v4, ...),
// which is deterministic for a given input order. Callers wanting random
// round-1 pairings shuffle the roster before calling. An odd player out
// receives a bye recorded as a walkover worth a full win. Subsequent rounds
// are produced by the progression engine once a round completes.
func (g *SwissGenerator) Generate(players []models.Player) ([]*models.Round, []*models.Match, error) {
	n := len(players)
	if n < 2 {
		return nil, nil, fmt.Errorf("%w: got %d", ErrInsufficientParticipants, n)
	}

	round := &models.Round{
		ID:     "R1",
		Number: 1,
		Name:   "Round 1",
	}
	var matches []*models.Match
	matchNum := 0
	for i := 0; i+1 < n; i += 2 {
		matchNum++
		p1 := players[i].ID
		p2 := players[i+1].ID
		match := &models.Match{
			ID:          fmt.Sprintf("R1M%d", matchNum),
			RoundID:     round.ID,
			RoundNumber: 1,
			MatchNumber: matchNum,
			Player1ID:   &p1,
			Player2ID:   &p2,
			Status:      models.MatchStatusPending,
		}
		round.MatchIDs = append(round.MatchIDs, match.ID)
		matches = append(matches, match)
	}
	if n%2 == 1 {
		matchNum++
		p1 := players[n-1].ID
		bye := &models.Match{
			ID:          fmt.Sprintf("R1M%d", matchNum),
			RoundID:     round.ID,
			RoundNumber: 1,
			MatchNumber: matchNum,
			Player1ID:   &p1,
			Status:      models.MatchStatusPending,
		}
		completeAsBye(bye, p1)
		round.MatchIDs = append(round.MatchIDs, bye.ID)
		matches = append(matches, bye)
	}

	return []*models.Round{round}, matches, nil
}

// DefaultSwissRounds is the conventional round count for a Swiss field:
// the smallest r with 2^r >= n.
func DefaultSwissRounds(n int) int {
	rounds := 0
	for size := 1; size < n; size <<= 1 {
		rounds++
	}
	if rounds < 1 {
		rounds = 1
	}
	return rounds
}
