/**
 * @description
 * This file sets up the HTTP router for the remittance-service. It defines the
 * API endpoints, associates them with their corresponding handlers, and applies
 * the standard middleware stack plus JWT authentication on protected routes.
 *
 * @dependencies
 * - net/http: Standard Go library for HTTP functionality.
 * - github.com/go-chi/chi/v5: A lightweight and idiomatic router for Go.
 * - github.com/go-chi/cors: CORS middleware for the browser portal.
 */

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// OrderRoutes creates and returns the router for the remittance service.
func OrderRoutes(h *OrderHandlers, jwtSecret string) http.Handler {
	r := chi.NewRouter()

	// Add standard middleware for logging, panic recovery, and timeouts.
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("healthy"))
	})

	// Registration is the only unauthenticated business endpoint.
	r.Post("/auth/register", h.RegisterHandler)

	// Group routes that require authentication.
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(jwtSecret))

		r.Route("/orders", func(r chi.Router) {
			r.Post("/", h.CreateOrderHandler)
			r.Get("/", h.ListOrdersHandler)
			r.Post("/quote", h.QuoteHandler)
			r.Get("/{id}", h.GetOrderHandler)
			r.Patch("/{id}", h.UpdateOrderHandler)
			r.Delete("/{id}", h.DeleteOrderHandler)
			r.Get("/{id}/quote-pdf", h.QuotePDFHandler)
			r.Post("/{id}/documents", h.RequestDocumentUploadHandler)
			r.Get("/{id}/documents", h.ListDocumentsHandler)
			r.Delete("/{id}/documents/{docID}", h.DeleteDocumentHandler)
		})

		r.Route("/senders", func(r chi.Router) {
			r.Post("/", h.CreateSenderHandler)
			r.Get("/", h.ListSendersHandler)
			r.Get("/{id}", h.GetSenderHandler)
			r.Patch("/{id}", h.UpdateSenderHandler)
		})

		r.Route("/beneficiaries", func(r chi.Router) {
			r.Post("/", h.CreateBeneficiaryHandler)
			r.Get("/", h.ListBeneficiariesHandler)
			r.Get("/{id}", h.GetBeneficiaryHandler)
			r.Patch("/{id}", h.UpdateBeneficiaryHandler)
		})
	})

	return r
}
