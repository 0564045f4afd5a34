package progression

import (
	"fmt"

	"github.com/courtside/tournament-engine/models"
)

// Undo retracts a completed match back to pending, clears its result, and
// removes any advancement it already propagated. It refuses when downstream
// state depends on the result: the operator must undo matches in
// reverse-chronological order. Undo is the safety boundary itself and needs
// no interactive confirmation.
func Undo(t *models.Tournament, matchID string) (*models.Tournament, error) {
	next := t.Clone()
	match := next.MatchByID(matchID)
	if match == nil {
		return nil, fmt.Errorf("%w: %s", ErrMatchNotFound, matchID)
	}
	if match.Status != models.MatchStatusCompleted || match.Result == nil {
		return nil, fmt.Errorf("%w: %s has no recorded result", ErrCannotUndo, matchID)
	}
	if match.IsBye {
		return nil, fmt.Errorf("%w: %s is a structural bye", ErrCannotUndo, matchID)
	}

	// Swiss pairings of every later round were derived from this result.
	if next.Format == models.FormatSwiss && len(next.Rounds) > 0 {
		if match.RoundNumber < next.Rounds[len(next.Rounds)-1].Number {
			return nil, fmt.Errorf("%w: round %d pairings depend on %s", ErrCannotUndo,
				match.RoundNumber+1, matchID)
		}
	}

	winner := match.Result.WinnerID
	loser := ""
	if winner != "" {
		loser = match.Opponent(winner)
	}

	if match.Bracket == models.BracketGrandFinal {
		if err := undoGrandFinal(next, match); err != nil {
			return nil, err
		}
	} else {
		if match.NextMatchID != nil && winner != "" {
			if err := retractFromMatch(next, *match.NextMatchID, winner); err != nil {
				return nil, err
			}
		}
		if match.LoserNextMatchID != nil && loser != "" {
			if err := retractFromMatch(next, *match.LoserNextMatchID, loser); err != nil {
				return nil, err
			}
		}
	}

	match.Status = models.MatchStatusPending
	match.Result = nil

	if next.Status == models.TournamentStatusCompleted {
		next.Status = models.TournamentStatusActive
		next.WinnerID = nil
	}
	return next, nil
}

// retractFromMatch removes a previously advanced player from a downstream
// slot. A completed downstream match means its own result consumed the
// advancement and must be undone first.
func retractFromMatch(t *models.Tournament, targetID, playerID string) error {
	target := t.MatchByID(targetID)
	if target == nil {
		return fmt.Errorf("%w: advancement target %s does not exist", ErrBracketCorruption, targetID)
	}
	if target.Status == models.MatchStatusCompleted {
		return fmt.Errorf("%w: %s has already been completed", ErrCannotUndo, targetID)
	}
	switch {
	case target.Player1ID != nil && *target.Player1ID == playerID:
		target.Player1ID = nil
	case target.Player2ID != nil && *target.Player2ID == playerID:
		target.Player2ID = nil
	}
	return nil
}

func undoGrandFinal(t *models.Tournament, match *models.Match) error {
	reset := findGrandFinalReset(t)
	if match.MatchNumber == 1 && reset != nil {
		if reset.Status == models.MatchStatusCompleted {
			return fmt.Errorf("%w: the bracket reset has already been played", ErrCannotUndo)
		}
		// Deactivate the reset regardless of whether GF1 activated or
		// canceled it.
		reset.Status = models.MatchStatusConditional
		reset.Player1ID = nil
		reset.Player2ID = nil
	}
	return nil
}
