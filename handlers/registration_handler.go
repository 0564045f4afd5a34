package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/courtside/tournament-engine/models"
	"github.com/courtside/tournament-engine/services"
)

type RegistrationHandler struct {
	registrationService services.RegistrationService
}

func NewRegistrationHandler(rs services.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{registrationService: rs}
}

type selectParticipantsInput struct {
	Candidates []models.RegistrationCandidate `json:"candidates"`
	Capacity   int                            `json:"capacity"`
	StartDate  time.Time                      `json:"start_date"`
}

func (h *RegistrationHandler) SelectParticipants(w http.ResponseWriter, r *http.Request) {
	var input selectParticipantsInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, err)
		return
	}

	result, err := h.registrationService.SelectParticipants(r.Context(), input.Candidates, input.Capacity, input.StartDate)
	if err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"selection": result}); err != nil {
		serverErrorResponse(w, err)
	}
}

// ImportRoster accepts a CSV body. Already-known player names may be passed
// via the "known" query parameter, comma-separated, to reject duplicates
// against an existing roster.
func (h *RegistrationHandler) ImportRoster(w http.ResponseWriter, r *http.Request) {
	var knownNames []string
	if raw := r.URL.Query().Get("known"); raw != "" {
		for _, name := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(name); trimmed != "" {
				knownNames = append(knownNames, trimmed)
			}
		}
	}

	result, err := h.registrationService.ImportRoster(r.Context(), r.Body, knownNames)
	if err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"import": result}); err != nil {
		serverErrorResponse(w, err)
	}
}
