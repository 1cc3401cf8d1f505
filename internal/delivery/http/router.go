package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"eventease/internal/delivery/http/controllers"
	"eventease/internal/delivery/http/middleware"
	"eventease/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(
	authController *controllers.AuthController,
	dbController *controllers.DBController,
	eventController *controllers.EventController,
	predictionController *controllers.PredictionController,
	verifier domain.TokenVerifier,
) *http.ServeMux {
	mux := http.NewServeMux()

	requireAuth := middleware.RequireAuth(verifier)
	optionalAuth := middleware.OptionalAuth(verifier)

	// Auth
	mux.HandleFunc("POST /auth", authController.Handle)

	// Whole-collection load/sync, as the dashboard consumes it
	mux.HandleFunc("GET /db", optionalAuth(dbController.Load))
	mux.HandleFunc("POST /db", optionalAuth(dbController.Sync))

	// Per-row API
	mux.HandleFunc("POST /events", requireAuth(eventController.Create))
	mux.HandleFunc("PUT /events/{id}", requireAuth(eventController.Update))
	mux.HandleFunc("DELETE /events/{id}", requireAuth(eventController.Delete))
	mux.HandleFunc("POST /participants", requireAuth(eventController.Register))
	mux.HandleFunc("POST /participants/{id}/checkin", requireAuth(eventController.CheckIn))

	// Prediction proxy
	mux.HandleFunc("POST /prediction", predictionController.Predict)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
