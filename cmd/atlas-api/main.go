// README: Entry point; loads config, wires providers and services, starts HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"atlas/internal/ai"
	"atlas/internal/config"
	"atlas/internal/enrich"
	httptransport "atlas/internal/http"
	"atlas/internal/infra"
	"atlas/internal/modules/chat"
	"atlas/internal/modules/trip"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Firebase.ProjectID == "" {
		log.Fatal("ATLAS_FIREBASE_PROJECT_ID is required")
	}
	verifier, err := infra.NewFirebaseVerifier(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsFile)
	if err != nil {
		log.Fatalf("firebase init: %v", err)
	}

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	// The generative provider is optional: without a key the planner serves
	// deterministic placeholder plans and chat degrades gracefully.
	var gen trip.Generator
	var chatGen ai.TextGenerator
	if cfg.AI.GeminiKey != "" {
		gemini, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey, cfg.AI.GeminiModel)
		if err != nil {
			log.Fatalf("gemini init: %v", err)
		}
		defer gemini.Close()
		gen = gemini
		chatGen = gemini
	} else {
		log.Println("GEMINI_API_KEY not set; serving placeholder itineraries")
	}

	geocoder, err := enrich.NewGeocoder(cfg.Providers.MapsKey)
	if err != nil {
		log.Fatalf("maps init: %v", err)
	}
	weather := enrich.NewWeatherClient(cfg.Providers.WeatherKey)
	search := enrich.NewSerpClient(cfg.Providers.SerpAPIKey)

	tripStore := trip.NewStore(dbPool)
	summaryCache := trip.NewSummaryCache(redisClient, time.Duration(cfg.Cache.SummaryTTLSeconds)*time.Second)
	tripSvc := trip.NewService(tripStore, summaryCache, gen, geocoder, weather, search)

	chatSvc := chat.NewService(chatGen)

	router := httptransport.NewRouter(httptransport.RouterDeps{
		Trips:    tripSvc,
		Chat:     chatSvc,
		Verifier: verifier,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: router}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
