package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/courtside/tournament-engine/models"
	"github.com/courtside/tournament-engine/progression"
	"github.com/courtside/tournament-engine/repositories"
	"github.com/courtside/tournament-engine/services"
)

type TournamentHandler struct {
	tournamentService services.TournamentService
}

func NewTournamentHandler(ts services.TournamentService) *TournamentHandler {
	return &TournamentHandler{tournamentService: ts}
}

func (h *TournamentHandler) CreateTournament(w http.ResponseWriter, r *http.Request) {
	var input services.CreateTournamentInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, err)
		return
	}

	tournament, err := h.tournamentService.Create(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"tournament": tournament}); err != nil {
		serverErrorResponse(w, err)
	}
}

func (h *TournamentHandler) GetTournament(w http.ResponseWriter, r *http.Request) {
	tournament, err := h.tournamentService.Get(r.Context(), chi.URLParam(r, "tournamentID"))
	if err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournament": tournament}); err != nil {
		serverErrorResponse(w, err)
	}
}

func (h *TournamentHandler) ListTournaments(w http.ResponseWriter, r *http.Request) {
	filter := repositories.ListTournamentsFilter{}
	if raw := r.URL.Query().Get("status"); raw != "" {
		status := models.TournamentStatus(raw)
		filter.Status = &status
	}
	if raw := r.URL.Query().Get("format"); raw != "" {
		format := models.Format(raw)
		filter.Format = &format
	}

	tournaments, err := h.tournamentService.List(r.Context(), filter)
	if err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournaments": tournaments}); err != nil {
		serverErrorResponse(w, err)
	}
}

func (h *TournamentHandler) DeleteTournament(w http.ResponseWriter, r *http.Request) {
	if err := h.tournamentService.Delete(r.Context(), chi.URLParam(r, "tournamentID")); err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type submitResultInput struct {
	WinnerID string            `json:"winner_id"`
	Score    progression.Score `json:"score"`
}

func (h *TournamentHandler) SubmitResult(w http.ResponseWriter, r *http.Request) {
	var input submitResultInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, err)
		return
	}

	tournament, err := h.tournamentService.SubmitResult(
		r.Context(),
		chi.URLParam(r, "tournamentID"),
		chi.URLParam(r, "matchID"),
		input.WinnerID,
		input.Score,
	)
	if err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournament": tournament}); err != nil {
		serverErrorResponse(w, err)
	}
}

func (h *TournamentHandler) UndoResult(w http.ResponseWriter, r *http.Request) {
	tournament, err := h.tournamentService.UndoResult(
		r.Context(),
		chi.URLParam(r, "tournamentID"),
		chi.URLParam(r, "matchID"),
	)
	if err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournament": tournament}); err != nil {
		serverErrorResponse(w, err)
	}
}

func (h *TournamentHandler) GenerateNextRound(w http.ResponseWriter, r *http.Request) {
	tournament, err := h.tournamentService.GenerateNextRound(r.Context(), chi.URLParam(r, "tournamentID"))
	if err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"tournament": tournament}); err != nil {
		serverErrorResponse(w, err)
	}
}

func (h *TournamentHandler) GetStandings(w http.ResponseWriter, r *http.Request) {
	rows, err := h.tournamentService.Standings(r.Context(), chi.URLParam(r, "tournamentID"))
	if err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"standings": rows}); err != nil {
		serverErrorResponse(w, err)
	}
}

func (h *TournamentHandler) ScheduleMatches(w http.ResponseWriter, r *http.Request) {
	var input services.ScheduleInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, err)
		return
	}
	if len(input.Resources) == 0 {
		badRequestResponse(w, errors.New("at least one resource is required"))
		return
	}

	scheduled, err := h.tournamentService.Schedule(r.Context(), chi.URLParam(r, "tournamentID"), input)
	if err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"scheduled_matches": scheduled}); err != nil {
		serverErrorResponse(w, err)
	}
}
