package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"drivehub/internal/domain"
)

const eventColumns = `id, name, description, start_date, end_date, location,
		latitude, longitude, expected_participants, current_participants,
		status, status_reason, status_updated_by, status_updated_at,
		postponed_until, creator_id, city_id, category_ids, version,
		created_at, updated_at`

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (` + eventColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
					  $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Name, e.Description, e.StartDate, e.EndDate, e.Location,
		e.Latitude, e.Longitude, e.ExpectedParticipants, e.CurrentParticipants,
		e.Status, nullIfEmpty(e.StatusReason), nullIfEmpty(e.StatusUpdatedBy), e.StatusUpdatedAt,
		e.PostponedUntil, e.CreatorID, e.CityID, pq.Array(e.CategoryIDs), e.Version,
		e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return e, nil
}

func (r *EventRepository) List(ctx context.Context, filter domain.ListFilter) ([]*domain.Event, error) {
	var (
		conds []string
		args  []any
	)
	if filter.CityID != "" {
		args = append(args, filter.CityID)
		conds = append(conds, "city_id = $"+strconv.Itoa(len(args)))
	}
	if filter.CategoryID != "" {
		args = append(args, filter.CategoryID)
		conds = append(conds, "$"+strconv.Itoa(len(args))+" = ANY(category_ids)")
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, "status = $"+strconv.Itoa(len(args)))
	}

	query := `SELECT ` + eventColumns + ` FROM events`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	switch {
	case filter.Top > 0 || filter.SortBy == domain.SortByParticipants:
		query += " ORDER BY current_participants DESC"
	default:
		query += " ORDER BY start_date ASC"
	}
	if filter.Top > 0 {
		args = append(args, filter.Top)
		query += " LIMIT $" + strconv.Itoa(len(args))
	}

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

func (r *EventRepository) ListNonTerminal(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE status NOT IN ($1, $2, $3)
			  ORDER BY start_date ASC`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.StatusCompleted, domain.StatusCancelled, domain.StatusNotCompleted,
	)
	if err != nil {
		return nil, fmt.Errorf("list non-terminal events: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

func (r *EventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `UPDATE events
			  SET name = $1, description = $2, start_date = $3, end_date = $4,
				  location = $5, latitude = $6, longitude = $7,
				  expected_participants = $8, city_id = $9, category_ids = $10,
				  version = version + 1, updated_at = now()
			  WHERE id = $11 AND version = $12`

	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.Name, e.Description, e.StartDate, e.EndDate,
		e.Location, e.Latitude, e.Longitude,
		e.ExpectedParticipants, e.CityID, pq.Array(e.CategoryIDs),
		e.ID, e.Version,
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}

	return r.checkWrite(ctx, res, e.ID)
}

func (r *EventRepository) ApplyStatus(ctx context.Context, eventID string, version int64, detail domain.StatusDetail) error {
	query := `UPDATE events
			  SET status = $1, status_reason = $2, postponed_until = $3,
				  status_updated_by = $4, status_updated_at = $5,
				  version = version + 1, updated_at = now()
			  WHERE id = $6 AND version = $7`

	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		detail.Status, nullIfEmpty(detail.Reason), detail.PostponedUntil,
		detail.UpdatedBy, detail.UpdatedAt,
		eventID, version,
	)
	if err != nil {
		return fmt.Errorf("apply status: %w", err)
	}

	return r.checkWrite(ctx, res, eventID)
}

// checkWrite tells a missing row apart from a version mismatch after a
// guarded UPDATE touched nothing.
func (r *EventRepository) checkWrite(ctx context.Context, res sql.Result, eventID string) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("event rows affected: %w", err)
	}
	if rows > 0 {
		return nil
	}

	var exists bool
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy,
		`SELECT EXISTS (SELECT 1 FROM events WHERE id = $1)`, eventID)
	if err != nil {
		return fmt.Errorf("check event exists: %w", err)
	}
	if err = row.Scan(&exists); err != nil {
		return fmt.Errorf("scan event exists: %w", err)
	}
	if !exists {
		return domain.ErrEventNotFound
	}

	return domain.ErrConflict
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	var (
		e            domain.Event
		statusReason sql.NullString
		updatedBy    sql.NullString
		categoryIDs  pq.StringArray
	)
	err := row.Scan(
		&e.ID, &e.Name, &e.Description, &e.StartDate, &e.EndDate, &e.Location,
		&e.Latitude, &e.Longitude, &e.ExpectedParticipants, &e.CurrentParticipants,
		&e.Status, &statusReason, &updatedBy, &e.StatusUpdatedAt,
		&e.PostponedUntil, &e.CreatorID, &e.CityID, &categoryIDs, &e.Version,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.StatusReason = statusReason.String
	e.StatusUpdatedBy = updatedBy.String
	e.CategoryIDs = categoryIDs

	return &e, nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
