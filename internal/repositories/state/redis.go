package state

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/statbot/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Keys for Redis
	totalsKey  = "statbot:totals"
	playersKey = "statbot:players"
	linksKey   = "statbot:ids"
)

// Config holds configuration for the Redis state repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed state repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveTotals persists the global totals to Redis
func (r *redisRepository) SaveTotals(ctx context.Context, input *SaveTotalsInput) error {
	if input == nil || input.Totals == nil {
		return errors.New("input and totals cannot be nil")
	}
	return r.set(ctx, totalsKey, input.Totals)
}

// GetTotals retrieves the global totals from Redis
func (r *redisRepository) GetTotals(ctx context.Context) (*models.GlobalTotals, error) {
	var totals models.GlobalTotals
	if err := r.get(ctx, totalsKey, DocumentTotals, &totals); err != nil {
		return nil, err
	}
	return &totals, nil
}

// SavePlayers persists every player's stats to Redis
func (r *redisRepository) SavePlayers(ctx context.Context, input *SavePlayersInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}
	players := input.Players
	if players == nil {
		players = map[string]models.PlayerStats{}
	}
	return r.set(ctx, playersKey, players)
}

// GetPlayers retrieves every player's stats from Redis
func (r *redisRepository) GetPlayers(ctx context.Context) (*GetPlayersOutput, error) {
	raw := map[string]*models.PlayerStats{}
	if err := r.get(ctx, playersKey, DocumentPlayers, &raw); err != nil {
		return nil, err
	}
	return &GetPlayersOutput{Players: livePlayers(raw)}, nil
}

// SaveLinks persists the identity links to Redis
func (r *redisRepository) SaveLinks(ctx context.Context, input *SaveLinksInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}
	links := input.Links
	if links == nil {
		links = map[string]string{}
	}
	return r.set(ctx, linksKey, links)
}

// GetLinks retrieves the identity links from Redis
func (r *redisRepository) GetLinks(ctx context.Context) (*GetLinksOutput, error) {
	links := map[string]string{}
	if err := r.get(ctx, linksKey, DocumentLinks, &links); err != nil {
		return nil, err
	}
	return &GetLinksOutput{Links: links}, nil
}

// DeleteAll removes every document from Redis. ErrNotFound means none existed.
func (r *redisRepository) DeleteAll(ctx context.Context) error {
	removed, err := r.client.Del(ctx, totalsKey, playersKey, linksKey).Result()
	if err != nil {
		return fmt.Errorf("failed to delete state: %w", err)
	}
	if removed == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *redisRepository) set(ctx context.Context, key string, v any) error {
	data, err := encode(v)
	if err != nil {
		return err
	}

	// No expiration for saved state
	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

func (r *redisRepository) get(ctx context.Context, key, document string, v any) error {
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get %s: %w", key, err)
	}

	return decode(document, data, v)
}
