// Package standings derives win/loss/point tallies and tiebreak scores from
// completed matches. Computation is from scratch on every call; nothing is
// cached between invocations.
package standings

import (
	"sort"

	"github.com/courtside/tournament-engine/models"
)

// Row is one standings line. The slice returned by Compute is ordered:
// points descending, then Buchholz descending (when computed), then wins
// descending, then original roster order so the result is deterministic.
type Row struct {
	PlayerID string  `json:"player_id"`
	Played   int     `json:"played"`
	Won      int     `json:"won"`
	Lost     int     `json:"lost"`
	Drawn    int     `json:"drawn,omitempty"`
	Points   float64 `json:"points"`
	Buchholz float64 `json:"buchholz,omitempty"`
}

// Compute tallies completed matches. Walkovers count as normal wins, both
// for points and for the opponents' Buchholz contribution. withBuchholz is
// set for Swiss tournaments; the Buchholz score of a player is the sum of
// the current points of every opponent already played.
func Compute(players []models.Player, matches []*models.Match, scoring models.Scoring, withBuchholz bool) []Row {
	index := make(map[string]int, len(players))
	rows := make([]Row, len(players))
	for i, p := range players {
		index[p.ID] = i
		rows[i] = Row{PlayerID: p.ID}
	}

	opponents := make(map[string][]string)
	for _, m := range matches {
		if m.Status != models.MatchStatusCompleted || m.Result == nil {
			continue
		}
		p1, p2 := "", ""
		if m.Player1ID != nil {
			p1 = *m.Player1ID
		}
		if m.Player2ID != nil {
			p2 = *m.Player2ID
		}

		if p1 != "" && p2 != "" {
			opponents[p1] = append(opponents[p1], p2)
			opponents[p2] = append(opponents[p2], p1)
		}

		switch winner := m.Result.WinnerID; {
		case winner == "":
			// Draw.
			for _, id := range []string{p1, p2} {
				if i, ok := index[id]; ok {
					rows[i].Played++
					rows[i].Drawn++
					rows[i].Points += scoring.Draw
				}
			}
		default:
			if i, ok := index[winner]; ok {
				rows[i].Played++
				rows[i].Won++
				rows[i].Points += scoring.Win
			}
			loser := m.Opponent(winner)
			if i, ok := index[loser]; ok && loser != "" {
				rows[i].Played++
				rows[i].Lost++
				rows[i].Points += scoring.Loss
			}
		}
	}

	if withBuchholz {
		for i := range rows {
			for _, opp := range opponents[rows[i].PlayerID] {
				if j, ok := index[opp]; ok {
					rows[i].Buchholz += rows[j].Points
				}
			}
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Points != rows[j].Points {
			return rows[i].Points > rows[j].Points
		}
		if withBuchholz && rows[i].Buchholz != rows[j].Buchholz {
			return rows[i].Buchholz > rows[j].Buchholz
		}
		return rows[i].Won > rows[j].Won
	})

	return rows
}
