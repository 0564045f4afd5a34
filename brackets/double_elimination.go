package brackets

import (
	"fmt"

	"github.com/courtside/tournament-engine/models"
)

const (
	GrandFinalMatchID      = "GF1"
	GrandFinalResetMatchID = "GF2"
)

type DoubleEliminationGenerator struct{}

func NewDoubleEliminationGenerator() Generator {
	return &DoubleEliminationGenerator{}
}

func (g *DoubleEliminationGenerator) Format() models.Format {
	return models.FormatDoubleElimination
}

// Generate builds a winner bracket identical to single elimination, a loser
// bracket following the standard feeder pattern (winner-bracket round r
// losers merge into loser-bracket round 2(r-1), with round 1 losers paired
// among themselves), and a grand final pair: GF1 plus a conditional GF2 that
// only activates on a bracket reset.
func (g *DoubleEliminationGenerator) Generate(players []models.Player) ([]*models.Round, []*models.Match, error) {
	if len(players) < 2 {
		return nil, nil, fmt.Errorf("%w: got %d", ErrInsufficientParticipants, len(players))
	}

	wbRounds, wbMatches := buildEliminationTree(players, "R")
	k := len(wbRounds)
	size := nextPowerOfTwo(len(players))

	rounds := append([]*models.Round{}, wbRounds...)
	matches := append([]*models.Match{}, wbMatches...)

	wbByRound := make([][]*models.Match, k+1)
	for _, m := range wbMatches {
		wbByRound[m.RoundNumber] = append(wbByRound[m.RoundNumber], m)
	}

	// Loser bracket: two rounds per winner-bracket drop. Round 2i-1 pairs
	// loser-bracket survivors, round 2i merges the winner-bracket round i+1
	// losers. Both have size/2^(i+1) matches.
	lbByRound := make([][]*models.Match, 2*k)
	for i := 1; i <= k-1; i++ {
		count := size >> uint(i+1)
		for _, r := range []int{2*i - 1, 2 * i} {
			name := fmt.Sprintf("Losers Round %d", r)
			if r == 2*(k-1) {
				name = "Losers Final"
			}
			round := &models.Round{
				ID:      fmt.Sprintf("L%d", r),
				Number:  r,
				Name:    name,
				Bracket: models.BracketLoser,
			}
			for m := 1; m <= count; m++ {
				match := &models.Match{
					ID:          fmt.Sprintf("L%dM%d", r, m),
					RoundID:     round.ID,
					RoundNumber: r,
					MatchNumber: m,
					Bracket:     models.BracketLoser,
					Status:      models.MatchStatusPending,
				}
				round.MatchIDs = append(round.MatchIDs, match.ID)
				matches = append(matches, match)
				lbByRound[r] = append(lbByRound[r], match)
			}
			rounds = append(rounds, round)
		}
	}

	// Internal loser-bracket advancement.
	for r := 1; r <= 2*(k-1)-1; r++ {
		for _, match := range lbByRound[r] {
			var next *models.Match
			if r%2 == 1 {
				// Minor round m feeds major round match m.
				next = lbByRound[r+1][match.MatchNumber-1]
			} else {
				next = lbByRound[r+1][(match.MatchNumber-1)/2]
			}
			id := next.ID
			match.NextMatchID = &id
		}
	}

	// Winner-bracket drops. Round 1 losers pair up in loser round 1; later
	// rounds drop into the corresponding major round, with the order
	// reversed on every other drop to postpone rematches.
	if k >= 2 {
		for _, wb := range wbByRound[1] {
			target := lbByRound[1][(wb.MatchNumber-1)/2]
			if wb.IsBye {
				// A bye produces no loser; the slot stays empty forever.
				target.VoidSlots++
				continue
			}
			id := target.ID
			wb.LoserNextMatchID = &id
		}
		for i := 1; i <= k-1; i++ {
			count := len(lbByRound[2*i])
			for _, wb := range wbByRound[i+1] {
				pos := wb.MatchNumber
				if i%2 == 1 {
					pos = count + 1 - wb.MatchNumber
				}
				id := lbByRound[2*i][pos-1].ID
				wb.LoserNextMatchID = &id
			}
		}
	}

	// A loser round 1 match with both feeders void can never be played;
	// cancel it and void the slot it would have fed.
	for _, match := range lbByRound[1] {
		if match.VoidSlots == 2 {
			match.Status = models.MatchStatusCanceled
			if match.NextMatchID != nil {
				if next := findMatch(matches, *match.NextMatchID); next != nil {
					next.VoidSlots++
				}
			}
		}
	}

	// Grand final pair.
	gfRound := &models.Round{
		ID:      "GF",
		Number:  1,
		Name:    "Grand Final",
		Bracket: models.BracketGrandFinal,
	}
	gf1 := &models.Match{
		ID:          GrandFinalMatchID,
		RoundID:     gfRound.ID,
		RoundNumber: 1,
		MatchNumber: 1,
		Bracket:     models.BracketGrandFinal,
		Status:      models.MatchStatusPending,
	}
	gf2 := &models.Match{
		ID:          GrandFinalResetMatchID,
		RoundID:     gfRound.ID,
		RoundNumber: 1,
		MatchNumber: 2,
		Bracket:     models.BracketGrandFinal,
		Status:      models.MatchStatusConditional,
	}
	gfRound.MatchIDs = []string{gf1.ID, gf2.ID}

	wbFinal := wbByRound[k][0]
	gf1ID := gf1.ID
	wbFinal.NextMatchID = &gf1ID
	if k >= 2 {
		lbFinal := lbByRound[2*(k-1)][0]
		lbFinalGF := gf1.ID
		lbFinal.NextMatchID = &lbFinalGF
	} else {
		// Two participants: the loser of the only match goes straight to
		// the grand final for a second chance.
		wbFinal.LoserNextMatchID = &gf1ID
	}

	rounds = append(rounds, gfRound)
	matches = append(matches, gf1, gf2)

	return rounds, matches, nil
}

func findMatch(matches []*models.Match, id string) *models.Match {
	for _, m := range matches {
		if m.ID == id {
			return m
		}
	}
	return nil
}
