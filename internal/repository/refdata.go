package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"drivehub/internal/domain"
)

type RefDataRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRefDataRepo(db *dbpg.DB) *RefDataRepository {
	return &RefDataRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// FindCity resolves an id, a bare city name, or "name, state".
func (r *RefDataRepository) FindCity(ctx context.Context, idOrName string) (*domain.City, error) {
	if _, err := uuid.Parse(idOrName); err == nil {
		return r.cityBy(ctx, `SELECT id, city_name, state, country FROM cities WHERE id = $1`, idOrName)
	}

	name, state, hasState := strings.Cut(idOrName, ",")
	name = strings.TrimSpace(name)
	if hasState {
		return r.cityBy(ctx,
			`SELECT id, city_name, state, country FROM cities WHERE city_name = $1 AND state = $2`,
			name, strings.TrimSpace(state))
	}
	return r.cityBy(ctx, `SELECT id, city_name, state, country FROM cities WHERE city_name = $1`, name)
}

func (r *RefDataRepository) cityBy(ctx context.Context, query string, args ...any) (*domain.City, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("get city: %w", err)
	}

	var c domain.City
	if err = row.Scan(&c.ID, &c.CityName, &c.State, &c.Country); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCityNotFound
		}
		return nil, fmt.Errorf("scan city: %w", err)
	}

	return &c, nil
}

func (r *RefDataRepository) FindCategory(ctx context.Context, idOrName string) (*domain.Category, error) {
	query := `SELECT id, category_name FROM categories WHERE category_name = $1`
	if _, err := uuid.Parse(idOrName); err == nil {
		query = `SELECT id, category_name FROM categories WHERE id = $1`
	}

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, idOrName)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}

	var c domain.Category
	if err = row.Scan(&c.ID, &c.CategoryName); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("scan category: %w", err)
	}

	return &c, nil
}

func (r *RefDataRepository) ListCities(ctx context.Context) ([]*domain.City, error) {
	query := `SELECT id, city_name, state, country
			  FROM cities
			  ORDER BY city_name ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list cities: %w", err)
	}
	defer rows.Close()

	var res []*domain.City
	for rows.Next() {
		var c domain.City
		if err = rows.Scan(&c.ID, &c.CityName, &c.State, &c.Country); err != nil {
			return nil, fmt.Errorf("scan city: %w", err)
		}
		res = append(res, &c)
	}

	return res, rows.Err()
}

func (r *RefDataRepository) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	query := `SELECT id, category_name
			  FROM categories
			  ORDER BY category_name ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var res []*domain.Category
	for rows.Next() {
		var c domain.Category
		if err = rows.Scan(&c.ID, &c.CategoryName); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		res = append(res, &c)
	}

	return res, rows.Err()
}
