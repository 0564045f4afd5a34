package progression

import (
	"fmt"

	"github.com/courtside/tournament-engine/models"
	"github.com/courtside/tournament-engine/standings"
)

// NextRound pairs the next Swiss round once the active round is complete.
// Players are ordered by current standing and paired top-down; an
// exhaustive backtracking search finds a pairing without rematches when one
// exists. If none does, adjacent standings are paired anyway and the
// repeated meetings carry a rematch flag. With an odd field the
// lowest-ranked player without a previous bye sits out, credited with a
// walkover win.
func NextRound(t *models.Tournament) (*models.Tournament, error) {
	if t.Format != models.FormatSwiss {
		return nil, fmt.Errorf("%w: tournament is %s", ErrNotSwiss, t.Format)
	}
	next := t.Clone()
	if len(next.Rounds) == 0 {
		return nil, fmt.Errorf("%w: tournament has no rounds", ErrRoundIncomplete)
	}

	current := next.Rounds[len(next.Rounds)-1]
	for _, m := range next.MatchesInRound(current) {
		if !m.Decided() {
			return nil, fmt.Errorf("%w: match %s is %s", ErrRoundIncomplete, m.ID, m.Status)
		}
	}
	if next.TotalRounds > 0 && len(next.Rounds) >= next.TotalRounds {
		return nil, fmt.Errorf("%w: %d of %d rounds played", ErrNoMoreRounds,
			len(next.Rounds), next.TotalRounds)
	}

	rows := standings.Compute(next.Players, next.Matches, next.Scoring, true)
	order := make([]string, len(rows))
	for i, r := range rows {
		order[i] = r.PlayerID
	}

	played := playedPairs(next)

	var byeID string
	if len(order)%2 == 1 {
		byeID = pickBye(next, order)
		order = removeID(order, byeID)
	}

	pairs, clean := pairWithoutRematches(order, played)
	if !clean {
		pairs = pairAdjacent(order)
	}

	number := current.Number + 1
	round := &models.Round{
		ID:     fmt.Sprintf("R%d", number),
		Number: number,
		Name:   fmt.Sprintf("Round %d", number),
	}
	for i, pair := range pairs {
		p1, p2 := pair[0], pair[1]
		match := &models.Match{
			ID:          fmt.Sprintf("R%dM%d", number, i+1),
			RoundID:     round.ID,
			RoundNumber: number,
			MatchNumber: i + 1,
			Player1ID:   &p1,
			Player2ID:   &p2,
			Status:      models.MatchStatusPending,
			Rematch:     played[pairKey(p1, p2)],
		}
		round.MatchIDs = append(round.MatchIDs, match.ID)
		next.Matches = append(next.Matches, match)
	}
	if byeID != "" {
		id := byeID
		bye := &models.Match{
			ID:          fmt.Sprintf("R%dM%d", number, len(pairs)+1),
			RoundID:     round.ID,
			RoundNumber: number,
			MatchNumber: len(pairs) + 1,
			Player1ID:   &id,
			Status:      models.MatchStatusPending,
		}
		bye.IsBye = true
		bye.Status = models.MatchStatusCompleted
		bye.Result = &models.MatchResult{WinnerID: id, Walkover: true}
		round.MatchIDs = append(round.MatchIDs, bye.ID)
		next.Matches = append(next.Matches, bye)
	}

	next.Rounds = append(next.Rounds, round)
	return next, nil
}

func playedPairs(t *models.Tournament) map[string]bool {
	played := make(map[string]bool)
	for _, m := range t.Matches {
		if m.Player1ID != nil && m.Player2ID != nil {
			played[pairKey(*m.Player1ID, *m.Player2ID)] = true
		}
	}
	return played
}

func pairKey(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + "\x00" + b
}

// pickBye chooses the lowest-standing player who has not yet had a bye,
// falling back to the very bottom when everybody has.
func pickBye(t *models.Tournament, order []string) string {
	had := make(map[string]bool)
	for _, m := range t.Matches {
		if m.IsBye && m.Player1ID != nil && m.Player2ID == nil {
			had[*m.Player1ID] = true
		}
	}
	for i := len(order) - 1; i >= 0; i-- {
		if !had[order[i]] {
			return order[i]
		}
	}
	return order[len(order)-1]
}

// pairWithoutRematches searches for a perfect pairing of the ordered pool
// that avoids all previous meetings. The search is exhaustive backtracking
// preferring opponents closest in the standings; amateur field sizes keep
// it cheap in practice.
func pairWithoutRematches(order []string, played map[string]bool) ([][2]string, bool) {
	if len(order) == 0 {
		return nil, true
	}
	first := order[0]
	for i := 1; i < len(order); i++ {
		if played[pairKey(first, order[i])] {
			continue
		}
		rest := make([]string, 0, len(order)-2)
		rest = append(rest, order[1:i]...)
		rest = append(rest, order[i+1:]...)
		if tail, ok := pairWithoutRematches(rest, played); ok {
			return append([][2]string{{first, order[i]}}, tail...), true
		}
	}
	return nil, false
}

func pairAdjacent(order []string) [][2]string {
	pairs := make([][2]string, 0, len(order)/2)
	for i := 0; i+1 < len(order); i += 2 {
		pairs = append(pairs, [2]string{order[i], order[i+1]})
	}
	return pairs
}

func removeID(order []string, id string) []string {
	out := make([]string, 0, len(order)-1)
	for _, o := range order {
		if o != id {
			out = append(out, o)
		}
	}
	return out
}
