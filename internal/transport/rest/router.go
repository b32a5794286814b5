package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/alorahq/hr-portal/internal/apps"
	"github.com/alorahq/hr-portal/internal/auth"
	"github.com/alorahq/hr-portal/internal/employee"
	"github.com/alorahq/hr-portal/internal/masterdata"
	"github.com/alorahq/hr-portal/internal/satisfaction"
	"github.com/alorahq/hr-portal/internal/transport/middleware"
	"github.com/alorahq/hr-portal/internal/transport/swagger"
)

// RegisterAllRoutes wires every handler onto the router. Routes inside the
// session group see a resolved identity; the stats route additionally passes
// through the hr/admin allow list.
func RegisterAllRoutes(
	router *chi.Mux,
	db *sql.DB,
	allowedOrigins []string,
	authHandler *auth.Handler,
	appsHandler *apps.Handler,
	employeeHandler *employee.Handler,
	masterDataHandler *masterdata.Handler,
	satisfactionHandler *satisfaction.Handler,
	logger *slog.Logger,
) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS(allowedOrigins))
	router.Use(middleware.RequestID)
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.Logging(logger))

	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		r.Route("/auth", func(sr chi.Router) {
			sr.Post("/register", authHandler.Register)
			sr.Post("/login", authHandler.Login)

			sr.Group(func(pr chi.Router) {
				pr.Use(authHandler.SessionMiddleware)
				pr.Post("/logout", authHandler.Logout)
				pr.Get("/me", authHandler.Me)
			})
		})

		r.Group(func(pr chi.Router) {
			pr.Use(authHandler.SessionMiddleware)

			pr.Get("/apps", appsHandler.GetApps)

			pr.Route("/employees", func(er chi.Router) {
				er.Get("/profile", employeeHandler.GetProfile)
				er.Put("/profile", employeeHandler.UpdateProfile)
				er.Get("/master-data", masterDataHandler.GetLookups)
			})

			pr.Route("/satisfaction", func(sr chi.Router) {
				sr.Get("/status", satisfactionHandler.GetStatus)
				sr.Get("/master-data", satisfactionHandler.GetMasterData)
				sr.Post("/submit", satisfactionHandler.Submit)

				sr.Group(func(mr chi.Router) {
					mr.Use(authHandler.RequirePolicy(auth.AnyOf(auth.RoleHR, auth.RoleAdmin)))
					mr.Get("/stats", satisfactionHandler.GetStats)
				})
			})
		})
	})
}
