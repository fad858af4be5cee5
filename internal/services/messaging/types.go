package messaging

import "github.com/KirkDiggler/statbot/internal/models"

// Command is a chat command keyword
type Command string

const (
	CommandLink        Command = "!link"
	CommandUnlink      Command = "!unlink"
	CommandStats       Command = "!stats"
	CommandGlobalStats Command = "!globalstats"
	CommandIDLookup    Command = "!id"
	CommandResetID     Command = "!resetid"
	CommandResetStats  Command = "!resetstats"
	CommandSave        Command = "!save"
	CommandLoad        Command = "!load"
	CommandDeleteSave  Command = "!delete"
)

// StatsKind selects the header of a stats message
type StatsKind string

const (
	// StatsKindPlayer renders a player's stats without a header
	StatsKindPlayer StatsKind = "player"

	// StatsKindGlobal renders the global totals under a "Global Stats" header
	StatsKindGlobal StatsKind = "global"

	// StatsKindReport renders a player's stats under a "Unique ID" header, as the
	// game client shows them. Report cleanup also matches this header.
	StatsKindReport StatsKind = "report"
)

// GetStatsMessageInput contains parameters for rendering stats
type GetStatsMessageInput struct {
	Kind StatsKind

	// GameID is shown for StatsKindReport
	GameID string

	Counters models.Counters
}

// GetStatsMessageOutput contains the rendered stats
type GetStatsMessageOutput struct {
	Message string
}

// GetErrorMessageInput contains parameters for getting an error message
type GetErrorMessageInput struct {
	// Command is the command that failed
	Command Command

	// Err is the error returned by the service layer
	Err error
}

// GetErrorMessageOutput contains the result of getting an error message
type GetErrorMessageOutput struct {
	Message string
}

// ServiceConfig holds configuration for the messaging service
type ServiceConfig struct{}
