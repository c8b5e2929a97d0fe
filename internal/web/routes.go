package web

import (
	"github.com/go-chi/chi/v5"
	"github.com/kozaktomas/glow-scan/internal/web/handlers"
)

func (s *Server) setupRoutes() {
	analyzeHandler := handlers.NewAnalyzeHandler(s.provider, s.history, s.settings)
	versusHandler := handlers.NewVersusHandler(s.provider, s.settings)
	productsHandler := handlers.NewProductsHandler(s.provider, s.settings)
	concernsHandler := handlers.NewConcernsHandler(s.provider, s.settings)
	historyHandler := handlers.NewHistoryHandler(s.history)
	progressHandler := handlers.NewProgressHandler(s.history, s.settings)
	settingsHandler := handlers.NewSettingsHandler(s.settings)

	// Health check
	s.router.Get("/api/v1/health", handlers.HealthCheck)

	// API routes
	s.router.Route("/api/v1", func(r chi.Router) {
		// Analysis
		r.Post("/analyze", analyzeHandler.Analyze)
		r.Post("/versus", versusHandler.Compare)

		// Product lookups
		r.Post("/products/search", productsHandler.Search)
		r.Post("/products/brand", productsHandler.ByBrand)
		r.Post("/products/suitability", productsHandler.Suitability)

		// Concern education
		r.Post("/concerns/explain", concernsHandler.Explain)

		// History
		r.Get("/history", historyHandler.List)
		r.Delete("/history/{id}", historyHandler.Delete)

		// Progress
		r.Get("/progress", progressHandler.Get)

		// Settings
		r.Get("/settings", settingsHandler.Get)
		r.Put("/settings", settingsHandler.Update)
	})
}
