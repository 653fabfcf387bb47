package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"rt-portal-go/internal/config"
	"rt-portal-go/internal/transport/httpserver/handler"
	"rt-portal-go/internal/transport/httpserver/middleware"
)

func NewRouter(cfg config.Config, handlers *handler.Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	if cfg.HTTP.RequestTimeout > 0 {
		r.Use(chimw.Timeout(cfg.HTTP.RequestTimeout))
	}
	r.Use(middleware.NewCORS(cfg.HTTP.CORSOrigins))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)
		r.Get("/home", handlers.Home)

		r.Get("/profile", handlers.GetProfile)
		r.Patch("/profile", handlers.UpdateProfile)

		r.Get("/residents", handlers.ListResidents)
		r.Post("/residents", handlers.CreateResident)
		r.Get("/residents/export", handlers.ExportResidents)
		r.Get("/residents/{id}", handlers.GetResident)
		r.Put("/residents/{id}", handlers.UpdateResident)
		r.Delete("/residents/{id}", handlers.DeleteResident)

		r.Get("/complaints", handlers.ListComplaints)
		r.Post("/complaints", handlers.SubmitComplaint)
		r.Patch("/complaints/{id}/status", handlers.SetComplaintStatus)
		r.Delete("/complaints/{id}", handlers.DeleteComplaint)

		r.Get("/news", handlers.ListNews)
		r.Post("/news", handlers.PublishNews)
		r.Delete("/news/{id}", handlers.RemoveNews)

		r.Get("/events", handlers.ListEvents)
		r.Post("/events", handlers.ScheduleEvent)
		r.Delete("/events/{id}", handlers.RemoveEvent)

		r.Get("/cash", handlers.CashStatement)
		r.Post("/cash", handlers.AddCashEntry)
		r.Get("/cash/export", handlers.ExportCash)
		r.Delete("/cash/{id}", handlers.RemoveCashEntry)

		r.Get("/letters/template", handlers.LetterTemplate)
		r.Post("/letters/preview", handlers.PreviewLetter)
		r.Post("/letters/download", handlers.DownloadLetter)
	})

	return r
}
