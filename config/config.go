package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/courtside/tournament-engine/models"
	"github.com/courtside/tournament-engine/selection"
)

// Config holds every tunable the engine and its HTTP host read. The magic
// numbers of selection scoring and match points live here, not in engine
// code, so they can be adjusted per deployment.
type Config struct {
	ServerPort int

	Scoring   models.Scoring
	Selection selection.Config

	// SwissRounds overrides the derived ceil(log2(n)) round count when > 0.
	SwissRounds int

	MatchDurationMinutes int
}

// Load reads configuration from the environment, optionally seeded from a
// .env file. Every value has a sensible default; Load only fails on values
// that cannot be parsed or are out of range.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Scoring:              models.DefaultScoring(),
		Selection:            selection.DefaultConfig(),
		MatchDurationMinutes: 30,
	}

	port, err := envInt("SERVER_PORT", 8080)
	if err != nil {
		return nil, err
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", port)
	}
	cfg.ServerPort = port

	if cfg.Scoring.Win, err = envFloat("POINTS_FOR_WIN", cfg.Scoring.Win); err != nil {
		return nil, err
	}
	if cfg.Scoring.Draw, err = envFloat("POINTS_FOR_DRAW", cfg.Scoring.Draw); err != nil {
		return nil, err
	}
	if cfg.Scoring.Loss, err = envFloat("POINTS_FOR_LOSS", cfg.Scoring.Loss); err != nil {
		return nil, err
	}

	sel := &cfg.Selection
	if sel.BaseScore, err = envInt("SELECTION_BASE_SCORE", sel.BaseScore); err != nil {
		return nil, err
	}
	if sel.UnavailableDatePenalty, err = envInt("SELECTION_DATE_PENALTY", sel.UnavailableDatePenalty); err != nil {
		return nil, err
	}
	if sel.LowAvailabilityPenalty, err = envInt("SELECTION_AVAILABILITY_PENALTY", sel.LowAvailabilityPenalty); err != nil {
		return nil, err
	}
	if sel.RejectionThreshold, err = envInt("SELECTION_REJECTION_THRESHOLD", sel.RejectionThreshold); err != nil {
		return nil, err
	}
	if sel.WindowDays, err = envInt("SELECTION_WINDOW_DAYS", sel.WindowDays); err != nil {
		return nil, err
	}
	if sel.WindowDays < 1 {
		return nil, fmt.Errorf("SELECTION_WINDOW_DAYS must be at least 1, got %d", sel.WindowDays)
	}

	if cfg.SwissRounds, err = envInt("SWISS_ROUNDS", 0); err != nil {
		return nil, err
	}
	if cfg.MatchDurationMinutes, err = envInt("MATCH_DURATION_MINUTES", cfg.MatchDurationMinutes); err != nil {
		return nil, err
	}
	if cfg.MatchDurationMinutes <= 0 {
		return nil, fmt.Errorf("MATCH_DURATION_MINUTES must be positive, got %d", cfg.MatchDurationMinutes)
	}

	return cfg, nil
}

func envInt(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s environment variable: %w", key, err)
	}
	return v, nil
}

func envFloat(key string, fallback float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s environment variable: %w", key, err)
	}
	return v, nil
}
