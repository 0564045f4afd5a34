package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/courtside/tournament-engine/brackets"
	"github.com/courtside/tournament-engine/progression"
	"github.com/courtside/tournament-engine/repositories"
	"github.com/courtside/tournament-engine/scheduling"
	"github.com/courtside/tournament-engine/services"
)

type jsonResponse map[string]interface{}

func readJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	maxBytes := 1_048_576 // 1MB
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	err := dec.Decode(dst)
	if err != nil {
		var syntaxError *json.SyntaxError
		var unmarshalTypeError *json.UnmarshalTypeError
		var invalidUnmarshalError *json.InvalidUnmarshalError

		switch {
		case errors.As(err, &syntaxError):
			return fmt.Errorf("body contains badly-formed JSON (at character %d)", syntaxError.Offset)
		case errors.Is(err, io.ErrUnexpectedEOF):
			return errors.New("body contains badly-formed JSON")
		case errors.As(err, &unmarshalTypeError):
			if unmarshalTypeError.Field != "" {
				return fmt.Errorf("body contains incorrect JSON type for field %q", unmarshalTypeError.Field)
			}
			return fmt.Errorf("body contains incorrect JSON type (at character %d)", unmarshalTypeError.Offset)
		case errors.Is(err, io.EOF):
			return errors.New("body must not be empty")
		case strings.HasPrefix(err.Error(), "json: unknown field "):
			fieldName := strings.TrimPrefix(err.Error(), "json: unknown field ")
			return fmt.Errorf("body contains unknown key %s", fieldName)
		case err.Error() == "http: request body too large":
			return fmt.Errorf("body must not be larger than %d bytes", maxBytes)
		case errors.As(err, &invalidUnmarshalError):
			panic(err)
		default:
			return err
		}
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("body must only contain a single JSON value")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) error {
	js, err := json.Marshal(data)
	if err != nil {
		return err
	}
	js = append(js, '\n')

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(js)
	return err
}

func errorResponse(w http.ResponseWriter, status int, message interface{}) {
	if err := writeJSON(w, status, jsonResponse{"error": message}); err != nil {
		slog.Error("failed to write error response", slog.Any("error", err))
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func badRequestResponse(w http.ResponseWriter, err error) {
	errorResponse(w, http.StatusBadRequest, err.Error())
}

func notFoundResponse(w http.ResponseWriter) {
	errorResponse(w, http.StatusNotFound, "the requested resource could not be found")
}

func conflictResponse(w http.ResponseWriter, message string) {
	errorResponse(w, http.StatusConflict, message)
}

func serverErrorResponse(w http.ResponseWriter, err error) {
	slog.Error("internal server error", slog.Any("error", err))
	errorResponse(w, http.StatusInternalServerError,
		"the server encountered a problem and could not process your request")
}

// mapServiceErrorToHTTP translates engine and service failures into HTTP
// statuses. Bracket corruption indicates a caller bug or corrupted state
// and is never swallowed: it logs loudly and reports a 500.
func mapServiceErrorToHTTP(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repositories.ErrTournamentNotFound),
		errors.Is(err, progression.ErrMatchNotFound):
		notFoundResponse(w)

	case errors.Is(err, progression.ErrMatchAlreadyCompleted),
		errors.Is(err, progression.ErrCannotUndo),
		errors.Is(err, repositories.ErrVersionConflict),
		errors.Is(err, repositories.ErrTournamentExists):
		conflictResponse(w, err.Error())

	case errors.Is(err, brackets.ErrInsufficientParticipants),
		errors.Is(err, brackets.ErrUnknownFormat),
		errors.Is(err, progression.ErrInvalidWinner),
		errors.Is(err, progression.ErrMatchNotPlayable),
		errors.Is(err, progression.ErrRoundIncomplete),
		errors.Is(err, progression.ErrNoMoreRounds),
		errors.Is(err, progression.ErrNotSwiss),
		errors.Is(err, scheduling.ErrNoResources),
		errors.Is(err, scheduling.ErrInvalidDuration),
		errors.Is(err, services.ErrTournamentNameRequired),
		errors.Is(err, services.ErrTournamentNotActive),
		errors.Is(err, services.ErrNoPlayers),
		errors.Is(err, services.ErrDuplicatePlayerID),
		errors.Is(err, services.ErrInvalidCapacity):
		badRequestResponse(w, err)

	case errors.Is(err, progression.ErrBracketCorruption):
		slog.Error("bracket corruption reported", slog.Any("error", err))
		errorResponse(w, http.StatusInternalServerError, err.Error())

	default:
		serverErrorResponse(w, err)
	}
}
