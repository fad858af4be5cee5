package snapshot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/statbot/internal/models"
)

// Report labels
const (
	LabelGameID          = "Game ID"
	LabelUniqueID        = "Unique ID"
	LabelEarned          = "Total $ Earned"
	LabelSpent           = "Total $ Spent"
	LabelObjectsPlaced   = "Total Objects Placed"
	LabelTimePlayed      = "Total Time Played"
	LabelSeedsPlanted    = "Total Seeds Planted"
	LabelPlantsHarvested = "Total Plants Harvested"
	LabelGramsPressed    = "Total Grams Pressed"
	LabelOzsSold         = "Total Ozs Sold"
	LabelPlantsKilled    = "Total Plants Killed"
)

// separator follows every label in a report line
const separator = ": "

var (
	// ErrMissingField is returned when a label is absent or malformed
	ErrMissingField = errors.New("missing field")

	// ErrInvalidNumber is returned when a counter is not an integer
	ErrInvalidNumber = errors.New("invalid number")
)

// ParseError describes which field of a report could not be read
type ParseError struct {
	Label string
	Value string
	Err   error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %v", e.Label, e.Err)
	}
	return fmt.Sprintf("%s: %v %q", e.Label, e.Err, e.Value)
}

// Unwrap returns the underlying sentinel error
func (e *ParseError) Unwrap() error {
	return e.Err
}

// field binds a report label to the counter it fills
type field struct {
	label string
	dst   func(c *models.Counters) *int64
}

// fields lists counters in report order
var fields = []field{
	{LabelEarned, func(c *models.Counters) *int64 { return &c.TotalEarned }},
	{LabelSpent, func(c *models.Counters) *int64 { return &c.TotalSpent }},
	{LabelObjectsPlaced, func(c *models.Counters) *int64 { return &c.ObjectsPlaced }},
	{LabelTimePlayed, func(c *models.Counters) *int64 { return &c.TimePlayed }},
	{LabelSeedsPlanted, func(c *models.Counters) *int64 { return &c.SeedsPlanted }},
	{LabelPlantsHarvested, func(c *models.Counters) *int64 { return &c.PlantsHarvested }},
	{LabelGramsPressed, func(c *models.Counters) *int64 { return &c.GramsPressed }},
	{LabelOzsSold, func(c *models.Counters) *int64 { return &c.OzsSold }},
	{LabelPlantsKilled, func(c *models.Counters) *int64 { return &c.PlantsKilled }},
}

// Value returns the trimmed text following the first occurrence of label.
// It returns an empty string if the label is missing or not followed by ": ".
func Value(content, label string) string {
	idx := strings.Index(content, label)
	if idx == -1 {
		return ""
	}

	rest := content[idx+len(label):]
	if !strings.HasPrefix(rest, separator) {
		return ""
	}
	rest = rest[len(separator):]

	if end := strings.IndexByte(rest, '\n'); end != -1 {
		rest = rest[:end]
	}

	return strings.TrimSpace(rest)
}

// GameID returns the player ID carried by a report or a rendered stats message
func GameID(content string) string {
	if id := Value(content, LabelGameID); id != "" {
		return id
	}
	return Value(content, LabelUniqueID)
}

// Parse reads a full report. Every field is required.
func Parse(content string) (*models.Snapshot, error) {
	gameID := Value(content, LabelGameID)
	if gameID == "" {
		return nil, &ParseError{Label: LabelGameID, Err: ErrMissingField}
	}

	snap := &models.Snapshot{GameID: gameID}
	for _, f := range fields {
		raw := Value(content, f.label)
		if raw == "" {
			return nil, &ParseError{Label: f.label, Err: ErrMissingField}
		}

		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, &ParseError{Label: f.label, Value: raw, Err: ErrInvalidNumber}
		}
		*f.dst(&snap.Counters) = n
	}

	return snap, nil
}

// Format renders a snapshot in the report format read by Parse
func Format(snap *models.Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s%s%s\n", LabelGameID, separator, snap.GameID)
	for _, f := range fields {
		c := snap.Counters
		fmt.Fprintf(&b, "%s%s%d\n", f.label, separator, *f.dst(&c))
	}
	return b.String()
}
