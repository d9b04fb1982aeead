// Package api assembles the HTTP surface: routes, middleware, metrics.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/fairway-crew/tripbot/api/handlers"
	apimiddleware "github.com/fairway-crew/tripbot/api/middleware"
)

// NewRouter builds the API router. gatherer may be nil to skip the /metrics endpoint;
// rateLimitPerMinute of zero disables limiting.
func NewRouter(h *handlers.Handlers, gatherer prometheus.Gatherer, rateLimitPerMinute int) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	if rateLimitPerMinute > 0 {
		limiter := apimiddleware.NewIPRateLimiter(rate.Limit(float64(rateLimitPerMinute)/60.0), rateLimitPerMinute)
		r.Use(apimiddleware.RateLimit(limiter))
	}

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/courses/{courseID}", func(r chi.Router) {
			r.Get("/", h.GetCourse)
			r.Get("/holes", h.ListCourseHoles)
		})

		r.Route("/rounds", func(r chi.Router) {
			r.Get("/", h.GetItinerary)
			r.Post("/", h.CreateRound)

			r.Route("/{roundID}", func(r chi.Router) {
				r.Get("/", h.GetRound)
				r.Put("/tee-time", h.RescheduleTeeTime)
				r.Get("/pairings", h.ListPairings)
				r.Put("/pairings", h.SetPairings)

				r.Post("/scorecards", h.CreateScorecard)

				r.Route("/leaderboard", func(r chi.Router) {
					r.Get("/", h.GetLeaderboard)
					r.Get("/chart.png", h.GetLeaderboardChart)
					r.Get("/export.xlsx", h.ExportLeaderboard)
				})
			})
		})

		r.Route("/scorecards/{scorecardID}", func(r chi.Router) {
			r.Get("/", h.GetScorecard)
			r.Get("/holes", h.ListHoleScores)
			r.Put("/tee", h.ChangeTee)
			r.Post("/complete", h.CompleteScorecard)

			r.Route("/holes/{holeID}", func(r chi.Router) {
				r.Put("/strokes", h.RecordStrokes)
				r.Delete("/strokes", h.ClearHoleScore)
				r.Put("/putts", h.RecordPutts)
				r.Put("/notes", h.UpdateHoleNotes)
				r.Put("/photo", h.AttachHolePhoto)
			})
		})
	})

	return r
}
