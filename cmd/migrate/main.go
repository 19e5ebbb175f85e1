package main

import (
	"context"
	"log"

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

	ctx := context.Background()

	steps := []struct {
		name string
		run  func(context.Context) error
	}{
		{"users", user.NewUserRepository(bunDB).InitializeDatabase},
		{"check_ins", checkin.NewCheckInRepository(bunDB).InitializeDatabase},
		{"insights", insight.NewInsightRepository(bunDB).InitializeDatabase},
		{"subscriptions", subscription.NewSubscriptionRepository(bunDB).InitializeDatabase},
		{"milestones", milestone.NewMilestoneRepository(bunDB).InitializeDatabase},
	}

	for _, step := range steps {
		if err := step.run(ctx); err != nil {
			log.Fatalf("Failed to initialize %s: %v", step.name, err)
		}
		log.Printf("Initialized %s", step.name)
	}

	log.Println("Database schema is up to date")
}
