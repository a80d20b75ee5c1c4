package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"drivehub/internal/domain"
)

type ParticipantRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewParticipantRepo(db *dbpg.DB) *ParticipantRepository {
	return &ParticipantRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Join inserts the enrollment row and increments current_participants in
// one transaction. The event row is locked first so the capacity and
// duplicate checks cannot race a concurrent joiner.
func (r *ParticipantRepository) Join(ctx context.Context, eventID, userID string) (*domain.Participant, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	lockQuery := `SELECT status, expected_participants, current_participants
				  FROM events
				  WHERE id = $1
				  FOR UPDATE`
	var (
		status   domain.Status
		expected int
		current  int
	)
	if err = tx.QueryRowContext(ctx, lockQuery, eventID).Scan(&status, &expected, &current); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("lock event: %w", err)
	}

	if !status.Joinable() {
		return nil, domain.ErrEventNotJoinable
	}
	if current >= expected {
		return nil, domain.ErrEventFull
	}

	p := &domain.Participant{
		EventID:  eventID,
		UserID:   userID,
		JoinedAt: time.Now().UTC(),
	}
	insertQuery := `INSERT INTO participants (event_id, user_id, joined_at)
					VALUES ($1, $2, $3)`
	if _, err = tx.ExecContext(ctx, insertQuery, p.EventID, p.UserID, p.JoinedAt); err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyJoined
		}
		return nil, fmt.Errorf("insert participant: %w", err)
	}

	counterQuery := `UPDATE events
					 SET current_participants = current_participants + 1,
						 version = version + 1, updated_at = now()
					 WHERE id = $1`
	if _, err = tx.ExecContext(ctx, counterQuery, eventID); err != nil {
		return nil, fmt.Errorf("increment participants: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit join: %w", err)
	}

	return p, nil
}

// Leave deletes the enrollment row and decrements the counter in one
// transaction. The decrement is floor-clamped at zero.
func (r *ParticipantRepository) Leave(ctx context.Context, eventID, userID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	lockQuery := `SELECT status FROM events WHERE id = $1 FOR UPDATE`
	var status domain.Status
	if err = tx.QueryRowContext(ctx, lockQuery, eventID).Scan(&status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("lock event: %w", err)
	}

	if status.Terminal() {
		return domain.ErrEventClosed
	}

	deleteQuery := `DELETE FROM participants WHERE event_id = $1 AND user_id = $2`
	res, err := tx.ExecContext(ctx, deleteQuery, eventID, userID)
	if err != nil {
		return fmt.Errorf("delete participant: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("participant rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotJoined
	}

	counterQuery := `UPDATE events
					 SET current_participants = GREATEST(current_participants - 1, 0),
						 version = version + 1, updated_at = now()
					 WHERE id = $1`
	if _, err = tx.ExecContext(ctx, counterQuery, eventID); err != nil {
		return fmt.Errorf("decrement participants: %w", err)
	}

	return tx.Commit()
}

func (r *ParticipantRepository) Exists(ctx context.Context, eventID, userID string) (bool, error) {
	query := `SELECT EXISTS (
				  SELECT 1 FROM participants WHERE event_id = $1 AND user_id = $2
			  )`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID, userID)
	if err != nil {
		return false, fmt.Errorf("check participant: %w", err)
	}

	var exists bool
	if err = row.Scan(&exists); err != nil {
		return false, fmt.Errorf("scan participant exists: %w", err)
	}

	return exists, nil
}
