package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/zenith-academy/intake/internal/handlers"
)

func Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", handlers.Health)

	// --- Clients API (endpoint names follow the intake form's backend contract) ---
	r.Post("/CreateClients", handlers.CreateClients)
	r.Get("/GetClients", handlers.GetClients)
	r.Get("/GetClientsById/{id}", handlers.GetClientsByID)
	r.Put("/UpdateClients/{id}", handlers.UpdateClients)
	r.Delete("/DeleteClients/{id}", handlers.DeleteClients)

	// QR image
	r.Get("/qr/{code}.png", handlers.QR)

	return r
}
