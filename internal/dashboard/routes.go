package dashboard

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"

	"github.com/EmpoweredVote/covid-dashboard/internal/middleware"
)

func SetupRoutes(svc *Service, limiter *rate.Limiter) http.Handler {
	r := chi.NewRouter()
	h := handlers{svc: svc}

	r.Get("/", h.Page)

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.RateLimit(limiter))

		r.Get("/options", h.Options)
		r.Get("/views", h.Views)
		r.Get("/charts", h.Charts)
		r.Get("/regions.geojson", h.Regions)
		r.Get("/trend.png", h.TrendPNG)
	})

	return r
}
