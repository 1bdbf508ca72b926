package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	api "github.com/katcast/naep-dashboard/internal/api/http"
	"github.com/katcast/naep-dashboard/internal/chart"
	"github.com/katcast/naep-dashboard/internal/config"
	"github.com/katcast/naep-dashboard/internal/dataset"
	"github.com/katcast/naep-dashboard/internal/metrics"
	"github.com/katcast/naep-dashboard/internal/storage"
)

func main() {
	cfg := config.FromEnv()

	settings, err := config.LoadSettings(cfg.SettingsPath)
	if err != nil {
		log.Fatalf("settings: %v", err)
	}
	rendererName := cfg.Renderer
	if settings.Renderer != "" {
		rendererName = settings.Renderer
	}
	renderer, err := chart.ParseRenderer(rendererName)
	if err != nil {
		log.Fatalf("renderer: %v", err)
	}

	m := metrics.New(prometheus.DefaultRegisterer)

	// --- Dataset (startup load is mandatory) ---
	loader := dataset.NewLoader(cfg.DataURL, cfg.FetchTimeout, settings.Palette, m)
	ctx, cancel := context.WithTimeout(context.Background(), cfg.FetchTimeout)
	defer cancel()
	if err := loader.Load(ctx); err != nil {
		log.Fatalf("dataset load failed: %v", err)
	}

	// --- Local assets and copy text ---
	assets, err := storage.NewFSStore(cfg.AssetBasePath)
	if err != nil {
		log.Fatalf("asset store: %v", err)
	}
	copyTexts, err := storage.LoadCopy(assets)
	if err != nil {
		log.Fatalf("copy text: %v", err)
	}

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		ExposedHeaders: []string{"Content-Length"},
		MaxAge:         300,
	}))

	r.Get("/", api.DashboardHandler(loader, copyTexts, settings, renderer))

	r.Route("/api", func(ar chi.Router) {
		ar.Get("/chart", api.ChartHandler(loader, renderer, settings, m))
		ar.Get("/filters", api.FiltersHandler(loader, renderer))
		ar.Post("/refresh", api.RefreshHandler(loader))
	})

	r.Route("/assets", func(ar chi.Router) {
		api.MountAssets(ar, assets)
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if _, ok := loader.Dataset(); !ok {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(200)
	})
	r.Handle("/metrics", promhttp.Handler())

	log.Printf("listening on %s (renderer=%s, data=%s)", cfg.HTTPAddr, renderer, cfg.DataURL)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}
