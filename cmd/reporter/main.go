package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/KirkDiggler/statbot/internal/common/uuid"
	"github.com/KirkDiggler/statbot/internal/models"
	"github.com/KirkDiggler/statbot/internal/services/messaging"
	"github.com/KirkDiggler/statbot/internal/services/reporter"
	"github.com/spf13/pflag"
)

func main() {
	var (
		webhookURL = pflag.String("webhook-url", "", "Discord webhook URL to post the report to (required)")
		gameID     = pflag.String("game-id", "", "player game ID; a new one is generated when empty")
		timeout    = pflag.Duration("timeout", 10*time.Second, "time allowed for the webhook call")
		c          models.Counters
	)
	pflag.Int64Var(&c.TotalEarned, "earned", 0, "total money earned")
	pflag.Int64Var(&c.TotalSpent, "spent", 0, "total money spent")
	pflag.Int64Var(&c.ObjectsPlaced, "objects-placed", 0, "total objects placed")
	pflag.Int64Var(&c.TimePlayed, "time-played", 0, "total time played in seconds")
	pflag.Int64Var(&c.SeedsPlanted, "seeds-planted", 0, "total seeds planted")
	pflag.Int64Var(&c.PlantsHarvested, "plants-harvested", 0, "total plants harvested")
	pflag.Int64Var(&c.GramsPressed, "grams-pressed", 0, "total grams pressed")
	pflag.Int64Var(&c.OzsSold, "ozs-sold", 0, "total ozs sold")
	pflag.Int64Var(&c.PlantsKilled, "plants-killed", 0, "total plants killed")
	pflag.Parse()

	if *webhookURL == "" {
		log.Fatal("--webhook-url is required")
	}

	id := gameIDOrNew(*gameID, uuid.New())

	poster, err := reporter.NewWebhookPoster(&reporter.WebhookConfig{
		URL: *webhookURL,
	})
	if err != nil {
		log.Fatalf("Failed to create webhook poster: %v", err)
	}

	svc, err := reporter.New(&reporter.Config{
		Poster: poster,
	})
	if err != nil {
		log.Fatalf("Failed to create reporter: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	output, err := svc.Report(ctx, &reporter.ReportInput{
		Snapshot: &models.Snapshot{GameID: id, Counters: c},
	})
	if err != nil {
		log.Fatalf("Failed to send report: %v", err)
	}

	log.Printf("Report sent at %s", output.SentAt.Format(time.RFC3339))

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{})
	if err != nil {
		log.Fatalf("Failed to create messaging service: %v", err)
	}

	text, err := summary(ctx, messagingSvc, &models.Snapshot{GameID: id, Counters: c})
	if err != nil {
		log.Fatalf("Failed to render summary: %v", err)
	}
	fmt.Println(text)
}

// gameIDOrNew returns id, or a freshly generated game ID when id is empty
func gameIDOrNew(id string, ids uuid.UUID) string {
	if id != "" {
		return id
	}

	id = ids.NewGameID()
	log.Printf("Generated game ID %s", id)
	return id
}

// summary renders the sent snapshot the way the game client shows it to the player
func summary(ctx context.Context, messagingSvc messaging.Service, snap *models.Snapshot) (string, error) {
	output, err := messagingSvc.GetStatsMessage(ctx, &messaging.GetStatsMessageInput{
		Kind:     messaging.StatsKindReport,
		GameID:   snap.GameID,
		Counters: snap.Counters,
	})
	if err != nil {
		return "", err
	}
	return output.Message, nil
}
