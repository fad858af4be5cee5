package state

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/KirkDiggler/statbot/internal/models"
)

// File names inside the data directory
const (
	totalsFileName  = "playerTotalValues.json"
	playersFileName = "playersValues.json"
	linksFileName   = "ids.json"
)

// FileConfig holds configuration for the JSON file repository
type FileConfig struct {
	// Dir is the directory holding the documents; created if missing
	Dir string
}

// fileRepository implements the Repository interface with one JSON file per document
type fileRepository struct {
	dir string
}

// NewFile creates a new file-backed state repository
func NewFile(cfg *FileConfig) (*fileRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Dir == "" {
		return nil, errors.New("data directory cannot be empty")
	}

	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return &fileRepository{
		dir: cfg.Dir,
	}, nil
}

// SaveTotals writes the global totals file
func (r *fileRepository) SaveTotals(ctx context.Context, input *SaveTotalsInput) error {
	if input == nil || input.Totals == nil {
		return errors.New("input and totals cannot be nil")
	}
	return r.write(ctx, totalsFileName, input.Totals)
}

// GetTotals reads the global totals file
func (r *fileRepository) GetTotals(ctx context.Context) (*models.GlobalTotals, error) {
	var totals models.GlobalTotals
	if err := r.read(ctx, totalsFileName, DocumentTotals, &totals); err != nil {
		return nil, err
	}
	return &totals, nil
}

// SavePlayers writes the player stats file
func (r *fileRepository) SavePlayers(ctx context.Context, input *SavePlayersInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}
	players := input.Players
	if players == nil {
		players = map[string]models.PlayerStats{}
	}
	return r.write(ctx, playersFileName, players)
}

// GetPlayers reads the player stats file
func (r *fileRepository) GetPlayers(ctx context.Context) (*GetPlayersOutput, error) {
	raw := map[string]*models.PlayerStats{}
	if err := r.read(ctx, playersFileName, DocumentPlayers, &raw); err != nil {
		return nil, err
	}
	return &GetPlayersOutput{Players: livePlayers(raw)}, nil
}

// SaveLinks writes the identity links file
func (r *fileRepository) SaveLinks(ctx context.Context, input *SaveLinksInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}
	links := input.Links
	if links == nil {
		links = map[string]string{}
	}
	return r.write(ctx, linksFileName, links)
}

// GetLinks reads the identity links file
func (r *fileRepository) GetLinks(ctx context.Context) (*GetLinksOutput, error) {
	links := map[string]string{}
	if err := r.read(ctx, linksFileName, DocumentLinks, &links); err != nil {
		return nil, err
	}
	return &GetLinksOutput{Links: links}, nil
}

// DeleteAll removes every document file. ErrNotFound means none existed.
func (r *fileRepository) DeleteAll(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	removed := 0
	for _, name := range []string{totalsFileName, playersFileName, linksFileName} {
		err := os.Remove(filepath.Join(r.dir, name))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to delete %s: %w", name, err)
		}
		removed++
	}

	if removed == 0 {
		return ErrNotFound
	}
	return nil
}

// write replaces a file atomically through a temp file in the same directory
func (r *fileRepository) write(ctx context.Context, name string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := encode(v)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(r.dir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", name, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", name, err)
	}

	if err := os.Rename(tmp.Name(), filepath.Join(r.dir, name)); err != nil {
		return fmt.Errorf("failed to replace %s: %w", name, err)
	}
	return nil
}

func (r *fileRepository) read(ctx context.Context, name, document string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := os.ReadFile(filepath.Join(r.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}

	return decode(document, data, v)
}
