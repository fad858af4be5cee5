package messaging

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/statbot/internal/services/identity"
	"github.com/KirkDiggler/statbot/internal/services/persistence"
	"github.com/KirkDiggler/statbot/internal/services/stats"
)

// Reply texts
const (
	MessageLinked           = "Game ID linked successfully!"
	MessageUnlinked         = "Game ID unlinked successfully!"
	MessageLinkUsage        = "Invalid command format. Use !link GAME_ID"
	MessageStatsReset       = "Stats reset"
	MessageSaved            = "File saved"
	MessageLoaded           = "File loaded"
	MessageDeleted          = "File deleted"
	MessageNoIDFound        = "No ID found."
	MessageAccountNotLinked = "Discord account does not have a linked game ID."
	MessageGenericFailure   = "Something went wrong, check the bot logs."
)

// service implements the Service interface
type service struct{}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	return &service{}, nil
}

// GetStatsMessage renders a stats reply, one counter per line
func (s *service) GetStatsMessage(ctx context.Context, input *GetStatsMessageInput) (*GetStatsMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var lines []string
	switch input.Kind {
	case StatsKindGlobal:
		lines = append(lines, "Global Stats")
	case StatsKindReport:
		lines = append(lines, fmt.Sprintf("Unique ID: %s", input.GameID))
	}

	c := input.Counters
	lines = append(lines,
		fmt.Sprintf("Total Money Earned: %d", c.TotalEarned),
		fmt.Sprintf("Total $ Spent: %d", c.TotalSpent),
		fmt.Sprintf("Total Objects Placed: %d", c.ObjectsPlaced),
		fmt.Sprintf("Total Time Played: %s", FormatTime(c.TimePlayed)),
		fmt.Sprintf("Total Seeds Planted: %d", c.SeedsPlanted),
		fmt.Sprintf("Total Plants Harvested: %d", c.PlantsHarvested),
		fmt.Sprintf("Total Grams Pressed: %d", c.GramsPressed),
		fmt.Sprintf("Total Ozs Sold: %d", c.OzsSold),
		fmt.Sprintf("Total Plants Killed: %d", c.PlantsKilled),
	)

	return &GetStatsMessageOutput{
		Message: strings.Join(lines, "\n"),
	}, nil
}

// GetErrorMessage returns the denial text for a failed command
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	return &GetErrorMessageOutput{
		Message: errorMessage(input.Command, input.Err),
	}, nil
}

func errorMessage(cmd Command, err error) string {
	switch {
	case errors.Is(err, identity.ErrInvalidGameID):
		return "Please provide a valid Game ID!"
	case errors.Is(err, identity.ErrAlreadyLinked):
		return "You already have a Game ID linked. Use !unlink to unlink your current Game ID."
	case errors.Is(err, identity.ErrNotLinked):
		switch cmd {
		case CommandUnlink:
			return "You don't have a linked Game ID."
		case CommandIDLookup:
			return MessageNoIDFound
		}
		return MessageAccountNotLinked
	case errors.Is(err, stats.ErrStatsNotFound):
		if cmd == CommandStats {
			return "No saved stats found for Game ID."
		}
		return "ID does not have stats."
	case errors.Is(err, persistence.ErrNothingSaved):
		return "No saved data found."
	}

	switch cmd {
	case CommandSave:
		return "Save failed, check the bot logs."
	case CommandLoad:
		return "Load failed, check the bot logs."
	case CommandDeleteSave:
		return "Delete failed, check the bot logs."
	}
	return MessageGenericFailure
}

// FormatTime renders seconds as "1h 1m 1s", leaving out zero parts
func FormatTime(seconds int64) string {
	if seconds == 0 {
		return "0s"
	}
	// totals can dip below zero after a counter reset
	if seconds < 0 {
		return "-" + FormatTime(-seconds)
	}

	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	remaining := seconds % 60

	var parts []string
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	if remaining > 0 {
		parts = append(parts, fmt.Sprintf("%ds", remaining))
	}

	return strings.Join(parts, " ")
}
