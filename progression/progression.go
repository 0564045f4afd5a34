// Package progression propagates match outcomes through a tournament:
// advancement into downstream matches, loser-bracket drops, grand-final
// resets, Swiss round pairing and result retraction. Every operation clones
// the tournament and either fully succeeds or returns an error leaving the
// caller's state untouched. The engine holds no locks; callers serialize
// writes per tournament (see the repository's version check).
package progression

import (
	"errors"
	"fmt"

	"github.com/courtside/tournament-engine/models"
	"github.com/courtside/tournament-engine/standings"
)

var (
	ErrMatchNotFound         = errors.New("match not found")
	ErrMatchAlreadyCompleted = errors.New("match already has a recorded result")
	ErrMatchNotPlayable      = errors.New("match is not ready to be played")
	ErrInvalidWinner         = errors.New("winner must be one of the match participants")
	ErrBracketCorruption     = errors.New("bracket corruption detected")
	ErrCannotUndo            = errors.New("cannot undo match result")
	ErrRoundIncomplete       = errors.New("current round is not complete")
	ErrNoMoreRounds          = errors.New("all rounds have already been generated")
	ErrNotSwiss              = errors.New("round generation applies only to swiss tournaments")
)

// Score is the reported score line of a finished match.
type Score struct {
	Player1 int `json:"player1"`
	Player2 int `json:"player2"`
}

// ApplyResult records a result for the given match and propagates it:
// the winner fills the first empty slot of the next match, the loser drops
// into the loser bracket where applicable, and a first-grand-final win by
// the loser-bracket finalist activates the conditional reset match.
//
// Reapplying an identical result is a no-op; a different result for a
// completed match fails with ErrMatchAlreadyCompleted. Use Undo first.
func ApplyResult(t *models.Tournament, matchID, winnerID string, score Score) (*models.Tournament, error) {
	next := t.Clone()
	match := next.MatchByID(matchID)
	if match == nil {
		return nil, fmt.Errorf("%w: %s", ErrMatchNotFound, matchID)
	}

	if match.Status == models.MatchStatusCompleted {
		if sameResult(match.Result, winnerID, score) {
			return next, nil
		}
		return nil, fmt.Errorf("%w: %s", ErrMatchAlreadyCompleted, matchID)
	}
	if match.Status == models.MatchStatusConditional || match.Status == models.MatchStatusCanceled {
		return nil, fmt.Errorf("%w: %s is %s", ErrMatchNotPlayable, matchID, match.Status)
	}
	if match.Player1ID == nil || match.Player2ID == nil {
		return nil, fmt.Errorf("%w: %s is still waiting for participants", ErrMatchNotPlayable, matchID)
	}

	if winnerID == "" {
		// Draws only make sense where standings, not advancement, decide
		// the outcome.
		if next.Format != models.FormatRoundRobin && next.Format != models.FormatSwiss {
			return nil, fmt.Errorf("%w: elimination matches need a winner", ErrInvalidWinner)
		}
	} else if !match.HasPlayer(winnerID) {
		return nil, fmt.Errorf("%w: %s is not in match %s", ErrInvalidWinner, winnerID, matchID)
	}

	match.Status = models.MatchStatusCompleted
	match.Result = &models.MatchResult{
		Player1Score: score.Player1,
		Player2Score: score.Player2,
		WinnerID:     winnerID,
	}

	if err := propagate(next, match); err != nil {
		return nil, err
	}
	finalize(next)
	return next, nil
}

func sameResult(r *models.MatchResult, winnerID string, score Score) bool {
	return r != nil &&
		r.WinnerID == winnerID &&
		r.Player1Score == score.Player1 &&
		r.Player2Score == score.Player2
}

// propagate advances the winner (and, in double elimination, drops the
// loser) out of a freshly completed match.
func propagate(t *models.Tournament, match *models.Match) error {
	winner := ""
	if match.Result != nil {
		winner = match.Result.WinnerID
	}
	if winner == "" {
		return nil
	}

	if match.Bracket == models.BracketGrandFinal {
		return settleGrandFinal(t, match, winner)
	}

	if match.NextMatchID != nil {
		if err := insertPlayer(t, *match.NextMatchID, winner); err != nil {
			return err
		}
	}
	if match.LoserNextMatchID != nil {
		if loser := match.Opponent(winner); loser != "" {
			if err := insertPlayer(t, *match.LoserNextMatchID, loser); err != nil {
				return err
			}
		}
	}
	return nil
}

// insertPlayer fills the first empty slot of the target match. Insertion is
// idempotent for a player already present and refuses to pair a player
// against themselves or to overwrite a full match. Arriving into a match
// whose other feeder slot can never be filled completes it by walkover and
// cascades.
func insertPlayer(t *models.Tournament, targetID, playerID string) error {
	target := t.MatchByID(targetID)
	if target == nil {
		return fmt.Errorf("%w: advancement target %s does not exist", ErrBracketCorruption, targetID)
	}
	if target.HasPlayer(playerID) {
		return nil
	}
	if target.Status == models.MatchStatusCompleted || target.Status == models.MatchStatusCanceled {
		return fmt.Errorf("%w: advancement target %s already %s", ErrBracketCorruption, targetID, target.Status)
	}

	switch {
	case target.Player1ID == nil:
		id := playerID
		target.Player1ID = &id
	case target.Player2ID == nil:
		id := playerID
		target.Player2ID = &id
	default:
		return fmt.Errorf("%w: both slots of %s are occupied", ErrBracketCorruption, targetID)
	}

	if target.VoidSlots > 0 && (target.Player1ID == nil) != (target.Player2ID == nil) {
		// The remaining slot is structurally empty: walkover.
		target.Status = models.MatchStatusCompleted
		target.Result = &models.MatchResult{WinnerID: playerID, Walkover: true}
		return propagate(t, target)
	}
	return nil
}

// settleGrandFinal handles double-elimination endgame rules. The reset
// match is played only if the loser-bracket finalist takes the first grand
// final; a winner-bracket sweep ends the tournament immediately.
func settleGrandFinal(t *models.Tournament, match *models.Match, winner string) error {
	if match.MatchNumber != 1 {
		completeTournament(t, winner)
		return nil
	}

	reset := findGrandFinalReset(t)
	if cameThroughLosers(t, match, winner) {
		if reset != nil {
			reset.Status = models.MatchStatusPending
			reset.Player1ID = cloneSlot(match.Player1ID)
			reset.Player2ID = cloneSlot(match.Player2ID)
		}
		return nil
	}

	if reset != nil {
		reset.Status = models.MatchStatusCanceled
	}
	completeTournament(t, winner)
	return nil
}

// cameThroughLosers reports whether the player reached the first grand
// final via the loser bracket (either by winning the losers final or, in a
// two-player bracket, by losing the winner-bracket final).
func cameThroughLosers(t *models.Tournament, gf1 *models.Match, playerID string) bool {
	for _, m := range t.Matches {
		if m.NextMatchID != nil && *m.NextMatchID == gf1.ID &&
			m.Bracket == models.BracketLoser &&
			m.Result != nil && m.Result.WinnerID == playerID {
			return true
		}
		if m.LoserNextMatchID != nil && *m.LoserNextMatchID == gf1.ID &&
			m.Result != nil && m.Result.WinnerID != "" &&
			m.Opponent(m.Result.WinnerID) == playerID {
			return true
		}
	}
	return false
}

func findGrandFinalReset(t *models.Tournament) *models.Match {
	for _, m := range t.Matches {
		if m.Bracket == models.BracketGrandFinal && m.MatchNumber == 2 {
			return m
		}
	}
	return nil
}

// finalize flips the tournament to completed once its format says it is
// decided. Grand finals complete the tournament inside settleGrandFinal.
func finalize(t *models.Tournament) {
	switch t.Format {
	case models.FormatSingleElimination:
		for _, m := range t.Matches {
			if m.NextMatchID == nil && m.Status == models.MatchStatusCompleted && m.Result != nil {
				completeTournament(t, m.Result.WinnerID)
			}
		}
	case models.FormatRoundRobin:
		if allMatchesDecided(t) {
			completeByStandings(t, false)
		}
	case models.FormatSwiss:
		if len(t.Rounds) >= t.TotalRounds && allMatchesDecided(t) {
			completeByStandings(t, true)
		}
	}
}

func allMatchesDecided(t *models.Tournament) bool {
	for _, m := range t.Matches {
		if !m.Decided() {
			return false
		}
	}
	return true
}

func completeByStandings(t *models.Tournament, withBuchholz bool) {
	rows := standings.Compute(t.Players, t.Matches, t.Scoring, withBuchholz)
	if len(rows) > 0 {
		completeTournament(t, rows[0].PlayerID)
	}
}

func completeTournament(t *models.Tournament, winnerID string) {
	t.Status = models.TournamentStatusCompleted
	if winnerID != "" {
		id := winnerID
		t.WinnerID = &id
	}
}

func cloneSlot(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
