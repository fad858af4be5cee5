package state

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/statbot/internal/models"
)

var (
	// ErrNotFound is returned when a document has never been saved
	ErrNotFound = errors.New("document not found")

	// ErrCorrupt is returned when a saved document cannot be decoded
	ErrCorrupt = errors.New("document is corrupt")
)

// Document names
const (
	DocumentTotals  = "totals"
	DocumentPlayers = "players"
	DocumentLinks   = "links"
)

func encode(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}
	return data, nil
}

// decode rejects unknown fields and trailing data so a foreign or truncated
// document is reported instead of half-loaded
func decode(name string, data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCorrupt, name, err)
	}
	if dec.More() {
		return fmt.Errorf("%w: %s: trailing data", ErrCorrupt, name)
	}
	return nil
}

// livePlayers drops null entries, which older saves wrote for reset players
func livePlayers(raw map[string]*models.PlayerStats) map[string]models.PlayerStats {
	players := make(map[string]models.PlayerStats, len(raw))
	for gameID, stats := range raw {
		if stats == nil {
			continue
		}
		players[gameID] = *stats
	}
	return players
}
