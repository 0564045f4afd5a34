package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/courtside/tournament-engine/handlers"
)

func SetupRoutes(
	router *chi.Mux,
	tournamentHandler *handlers.TournamentHandler,
	registrationHandler *handlers.RegistrationHandler,
	dashboardHandler *handlers.DashboardHandler,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router.Route("/tournaments", func(r chi.Router) {
		r.Get("/", tournamentHandler.ListTournaments)
		r.Post("/", tournamentHandler.CreateTournament)

		r.Route("/{tournamentID}", func(r chi.Router) {
			r.Get("/", tournamentHandler.GetTournament)
			r.Delete("/", tournamentHandler.DeleteTournament)
			r.Get("/standings", tournamentHandler.GetStandings)
			r.Post("/rounds/next", tournamentHandler.GenerateNextRound)
			r.Post("/schedule", tournamentHandler.ScheduleMatches)

			r.Route("/matches/{matchID}", func(r chi.Router) {
				r.Post("/result", tournamentHandler.SubmitResult)
				r.Post("/undo", tournamentHandler.UndoResult)
			})
		})
	})

	router.Post("/registrations/select", registrationHandler.SelectParticipants)
	router.Post("/players/import", registrationHandler.ImportRoster)
	router.Get("/dashboard", dashboardHandler.GetSummary)
}
