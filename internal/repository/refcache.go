package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/wb-go/wbf/logger"

	"drivehub/internal/domain"
	"drivehub/internal/service/ports"
)

const (
	citiesKey     = "refdata:cities"
	categoriesKey = "refdata:categories"
)

// RefDataCache is a read-through Redis cache over a RefDataRepo. Reference
// data is externally owned and effectively immutable, so a cache miss or a
// Redis outage simply falls through to the store.
type RefDataCache struct {
	next   ports.RefDataRepo
	client *redis.Client
	ttl    time.Duration
	log    logger.Logger
}

func NewRefDataCache(next ports.RefDataRepo, client *redis.Client, ttl time.Duration, log logger.Logger) *RefDataCache {
	return &RefDataCache{next: next, client: client, ttl: ttl, log: log}
}

func (c *RefDataCache) FindCity(ctx context.Context, idOrName string) (*domain.City, error) {
	return c.next.FindCity(ctx, idOrName)
}

func (c *RefDataCache) FindCategory(ctx context.Context, idOrName string) (*domain.Category, error) {
	return c.next.FindCategory(ctx, idOrName)
}

func (c *RefDataCache) ListCities(ctx context.Context) ([]*domain.City, error) {
	var cities []*domain.City
	if ok := c.fetch(ctx, citiesKey, &cities); ok {
		return cities, nil
	}

	cities, err := c.next.ListCities(ctx)
	if err != nil {
		return nil, err
	}
	c.store(ctx, citiesKey, cities)

	return cities, nil
}

func (c *RefDataCache) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	var categories []*domain.Category
	if ok := c.fetch(ctx, categoriesKey, &categories); ok {
		return categories, nil
	}

	categories, err := c.next.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	c.store(ctx, categoriesKey, categories)

	return categories, nil
}

func (c *RefDataCache) fetch(ctx context.Context, key string, dest any) bool {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn("refdata cache read failed",
				logger.String("key", key),
				logger.String("error", err.Error()),
			)
		}
		return false
	}
	if err = json.Unmarshal(raw, dest); err != nil {
		c.log.Warn("refdata cache entry corrupt",
			logger.String("key", key),
			logger.String("error", err.Error()),
		)
		return false
	}

	return true
}

func (c *RefDataCache) store(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		c.log.Warn("refdata cache marshal failed",
			logger.String("key", key),
			logger.String("error", err.Error()),
		)
		return
	}
	if err = c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.log.Warn("refdata cache write failed",
			logger.String("key", key),
			logger.String("error", err.Error()),
		)
	}
}

// NewRedisClient dials Redis and verifies the connection.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return client, nil
}
