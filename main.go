package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/EmpoweredVote/covid-dashboard/internal/config"
	"github.com/EmpoweredVote/covid-dashboard/internal/dashboard"
	"github.com/EmpoweredVote/covid-dashboard/internal/dataset"
	"github.com/EmpoweredVote/covid-dashboard/internal/middleware"
)

func RootHandler(w http.ResponseWriter, r *http.Request) {
	response := "Server is up!"
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, response)
}

func main() {
	_ = godotenv.Load(".env.local")

	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// The dataset is loaded once; a failed load leaves nothing to serve.
	store := dataset.NewStore(dataset.NewLoader(cfg.DatasetURL, cfg.ShortNamesURL, cfg.FetchTimeout))
	if _, err := store.Dataset(context.Background()); err != nil {
		log.Fatalf("load dataset: %v", err)
	}

	svc := dashboard.NewService(store, cfg.Options)

	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Get("/", RootHandler)

	r.Mount("/dashboard", dashboard.SetupRoutes(svc, middleware.NewLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)))

	fmt.Printf("Server listening on port :%s...\n", cfg.Port)

	log.Fatal(http.ListenAndServe("0.0.0.0:"+cfg.Port, r))
}
