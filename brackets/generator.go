package brackets

import (
	"errors"
	"fmt"

	"github.com/courtside/tournament-engine/models"
)

var (
	ErrInsufficientParticipants = errors.New("at least 2 participants are required")
	ErrUnknownFormat            = errors.New("unknown tournament format")
)

// Generator produces the initial round/match skeleton for one tournament
// format. Input order is seed order (players[0] is seed 1); generators never
// reorder players.
type Generator interface {
	Generate(players []models.Player) ([]*models.Round, []*models.Match, error)

	Format() models.Format
}

// ForFormat returns the generator for the given format.
func ForFormat(format models.Format) (Generator, error) {
	switch format {
	case models.FormatSingleElimination:
		return NewSingleEliminationGenerator(), nil
	case models.FormatDoubleElimination:
		return NewDoubleEliminationGenerator(), nil
	case models.FormatRoundRobin:
		return NewRoundRobinGenerator(), nil
	case models.FormatSwiss:
		return NewSwissGenerator(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
