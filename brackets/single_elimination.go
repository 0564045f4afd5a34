package brackets

import (
	"fmt"
	"math/bits"

	"github.com/courtside/tournament-engine/models"
)

type SingleEliminationGenerator struct{}

func NewSingleEliminationGenerator() Generator {
	return &SingleEliminationGenerator{}
}

func (g *SingleEliminationGenerator) Format() models.Format {
	return models.FormatSingleElimination
}

func (g *SingleEliminationGenerator) Generate(players []models.Player) ([]*models.Round, []*models.Match, error) {
	if len(players) < 2 {
		return nil, nil, fmt.Errorf("%w: got %d", ErrInsufficientParticipants, len(players))
	}
	rounds, matches := buildEliminationTree(players, "R")
	return rounds, matches, nil
}

// buildEliminationTree materializes a full single-elimination skeleton:
// bracket size is the next power of two, missing slots become byes against
// the highest seeds, and bye matches are auto-completed with their sole
// participant advanced into the next round.
//
// Match ids are tournament-scoped and deterministic: prefix + round + "M" +
// match number, e.g. R2M1.
func buildEliminationTree(players []models.Player, prefix string) ([]*models.Round, []*models.Match) {
	n := len(players)
	size := nextPowerOfTwo(n)
	numRounds := bits.Len(uint(size)) - 1

	rounds := make([]*models.Round, 0, numRounds)
	matches := make([]*models.Match, 0, size-1)
	byRound := make([][]*models.Match, numRounds+1)

	for r := 1; r <= numRounds; r++ {
		count := size >> uint(r)
		round := &models.Round{
			ID:      fmt.Sprintf("%s%d", prefix, r),
			Number:  r,
			Name:    roundName(r, numRounds),
			Bracket: models.BracketWinner,
		}
		for m := 1; m <= count; m++ {
			match := &models.Match{
				ID:          fmt.Sprintf("%s%dM%d", prefix, r, m),
				RoundID:     round.ID,
				RoundNumber: r,
				MatchNumber: m,
				Bracket:     models.BracketWinner,
				Status:      models.MatchStatusPending,
			}
			round.MatchIDs = append(round.MatchIDs, match.ID)
			matches = append(matches, match)
			byRound[r] = append(byRound[r], match)
		}
		rounds = append(rounds, round)
	}

	// Winner advancement links: match m of round r feeds match ceil(m/2)
	// of round r+1.
	for r := 1; r < numRounds; r++ {
		for _, match := range byRound[r] {
			nextID := byRound[r+1][(match.MatchNumber-1)/2].ID
			match.NextMatchID = &nextID
		}
	}

	// Round 1 placement by standard seeding order. A slot whose seed
	// exceeds the participant count is a bye.
	positions := seedPositions(size)
	for m, match := range byRound[1] {
		seed1 := positions[2*m]
		seed2 := positions[2*m+1]
		if seed1 <= n {
			id := players[seed1-1].ID
			match.Player1ID = &id
		}
		if seed2 <= n {
			id := players[seed2-1].ID
			match.Player2ID = &id
		}
		switch {
		case match.Player1ID != nil && match.Player2ID == nil:
			completeAsBye(match, *match.Player1ID)
		case match.Player2ID != nil && match.Player1ID == nil:
			completeAsBye(match, *match.Player2ID)
		}
	}

	// Advance bye winners into round 2, slot chosen by bracket position so
	// seeding adjacency is preserved.
	for m, match := range byRound[1] {
		if !match.IsBye || numRounds < 2 {
			continue
		}
		target := byRound[2][m/2]
		winnerID := match.Result.WinnerID
		if m%2 == 0 {
			id := winnerID
			target.Player1ID = &id
		} else {
			id := winnerID
			target.Player2ID = &id
		}
	}

	return rounds, matches
}

// completeAsBye records an unopposed advancement as a completed walkover.
func completeAsBye(match *models.Match, playerID string) {
	match.IsBye = true
	match.Status = models.MatchStatusCompleted
	match.Result = &models.MatchResult{WinnerID: playerID, Walkover: true}
}
