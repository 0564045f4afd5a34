package services

import "errors"

// Errors shared across services and the HTTP error mapping. Engine-level
// failures (unknown format, match already completed, bracket corruption and
// the rest of the taxonomy) surface as the brackets/progression sentinel
// errors wrapped with context; these cover the service layer's own rules.
var (
	ErrTournamentNameRequired = errors.New("tournament name is required")
	ErrTournamentNotActive    = errors.New("tournament is not active")
	ErrNoPlayers              = errors.New("a tournament needs a player roster")
	ErrDuplicatePlayerID      = errors.New("duplicate player id in roster")
	ErrInvalidCapacity        = errors.New("capacity must not be negative")
)
