package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bonesy512/situationship/internal/api"
	"github.com/bonesy512/situationship/internal/auth"
	"github.com/bonesy512/situationship/internal/billing"
	"github.com/bonesy512/situationship/internal/checkin"
	"github.com/bonesy512/situationship/internal/config"
	"github.com/bonesy512/situationship/internal/db"
	"github.com/bonesy512/situationship/internal/insight"
	"github.com/bonesy512/situationship/internal/milestone"
	"github.com/bonesy512/situationship/internal/subscription"
	"github.com/bonesy512/situationship/internal/user"
)

func main() {
	cfg := config.Load()

	bunDB := db.NewBunPostgresClient(cfg.DatabaseURL)
	defer bunDB.Close()

	userRepo := user.NewUserRepository(bunDB)
	checkInRepo := checkin.NewCheckInRepository(bunDB)
	insightRepo := insight.NewInsightRepository(bunDB)
	subscriptionRepo := subscription.NewSubscriptionRepository(bunDB)
	milestoneRepo := milestone.NewMilestoneRepository(bunDB)

	generator, err := insight.NewGeminiGenerator(context.Background(), cfg.GeminiAPIKey)
	if err != nil {
		log.Fatalf("Failed to create Gemini generator: %v", err)
	}

	checkInService := checkin.NewService(checkInRepo)
	insightService := insight.NewService(insightRepo, userRepo, checkInRepo, milestoneRepo, generator)

	billingClient := billing.NewBilling(cfg)

	jwtVerifier, err := auth.NewJWTVerifier(cfg.OAuthClientID)
	if err != nil {
		log.Fatalf("Failed to create JWT verifier: %v", err)
	}
	defer jwtVerifier.Close()

	handler := api.NewHandler(checkInService, insightService, milestoneRepo)
	checkoutHandler := api.NewCheckoutHandler(billingClient, userRepo, subscriptionRepo)
	router := api.SetupRoutes(handler, checkoutHandler, jwtVerifier, userRepo, cfg.AppBaseURL)

	srv := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down server...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	log.Printf("Server starting on %s", cfg.ServerAddr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Server failed to start: %v", err)
	}

	log.Println("Server stopped")
}
