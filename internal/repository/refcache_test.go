package repository

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"drivehub/internal/domain"
)

type stubRefData struct {
	cities     []*domain.City
	categories []*domain.Category
	calls      int
	err        error
}

func (s *stubRefData) FindCity(context.Context, string) (*domain.City, error) {
	return nil, domain.ErrCityNotFound
}

func (s *stubRefData) FindCategory(context.Context, string) (*domain.Category, error) {
	return nil, domain.ErrCategoryNotFound
}

func (s *stubRefData) ListCities(context.Context) ([]*domain.City, error) {
	s.calls++
	return s.cities, s.err
}

func (s *stubRefData) ListCategories(context.Context) ([]*domain.Category, error) {
	s.calls++
	return s.categories, s.err
}

func newCacheLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestRefDataCache_ListCities_MissThenStore(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cities := []*domain.City{{ID: "c1", CityName: "Delhi", State: "Delhi", Country: "India"}}
	stub := &stubRefData{cities: cities}

	cache := NewRefDataCache(stub, client, time.Hour, newCacheLogger(t))

	raw, err := json.Marshal(cities)
	require.NoError(t, err)

	mock.ExpectGet(citiesKey).RedisNil()
	mock.ExpectSet(citiesKey, raw, time.Hour).SetVal("OK")

	got, err := cache.ListCities(context.Background())

	require.NoError(t, err)
	assert.Equal(t, cities, got)
	assert.Equal(t, 1, stub.calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRefDataCache_ListCities_Hit(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cities := []*domain.City{{ID: "c1", CityName: "Mumbai", State: "Maharashtra", Country: "India"}}
	stub := &stubRefData{}

	cache := NewRefDataCache(stub, client, time.Hour, newCacheLogger(t))

	raw, err := json.Marshal(cities)
	require.NoError(t, err)
	mock.ExpectGet(citiesKey).SetVal(string(raw))

	got, err := cache.ListCities(context.Background())

	require.NoError(t, err)
	assert.Equal(t, cities, got)
	assert.Zero(t, stub.calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRefDataCache_ListCategories_RedisDownFallsThrough(t *testing.T) {
	client, mock := redismock.NewClientMock()
	categories := []*domain.Category{{ID: "cat1", CategoryName: "Education"}}
	stub := &stubRefData{categories: categories}

	cache := NewRefDataCache(stub, client, time.Hour, newCacheLogger(t))

	raw, err := json.Marshal(categories)
	require.NoError(t, err)
	mock.ExpectGet(categoriesKey).SetErr(errors.New("connection refused"))
	mock.ExpectSet(categoriesKey, raw, time.Hour).SetErr(errors.New("connection refused"))

	got, err := cache.ListCategories(context.Background())

	require.NoError(t, err)
	assert.Equal(t, categories, got)
	assert.Equal(t, 1, stub.calls)
}

func TestRefDataCache_StoreErrorIgnored(t *testing.T) {
	client, mock := redismock.NewClientMock()
	stub := &stubRefData{err: errors.New("db down")}

	cache := NewRefDataCache(stub, client, time.Hour, newCacheLogger(t))

	mock.ExpectGet(citiesKey).RedisNil()

	_, err := cache.ListCities(context.Background())

	require.Error(t, err)
}
