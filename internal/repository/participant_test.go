package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"

	"drivehub/internal/domain"
)

func newParticipantRepo(t *testing.T) (*ParticipantRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewParticipantRepo(&dbpg.DB{Master: db}), mock
}

func expectEventLock(mock sqlmock.Sqlmock, eventID string, status domain.Status, expected, current int) {
	mock.ExpectQuery(`SELECT status, expected_participants, current_participants`).
		WithArgs(eventID).
		WillReturnRows(sqlmock.NewRows([]string{"status", "expected_participants", "current_participants"}).
			AddRow(string(status), expected, current))
}

func TestParticipantRepo_Join_RecordAndCounterInOneTx(t *testing.T) {
	repo, mock := newParticipantRepo(t)

	mock.ExpectBegin()
	expectEventLock(mock, "e1", domain.StatusActive, 30, 5)
	mock.ExpectExec(`INSERT INTO participants`).
		WithArgs("e1", "u1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE events`).
		WithArgs("e1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	p, err := repo.Join(context.Background(), "e1", "u1")

	require.NoError(t, err)
	assert.Equal(t, "e1", p.EventID)
	assert.Equal(t, "u1", p.UserID)
	assert.False(t, p.JoinedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestParticipantRepo_Join_FullAtCapacity(t *testing.T) {
	repo, mock := newParticipantRepo(t)

	mock.ExpectBegin()
	expectEventLock(mock, "e1", domain.StatusActive, 1, 1)
	mock.ExpectRollback()

	_, err := repo.Join(context.Background(), "e1", "u2")

	assert.ErrorIs(t, err, domain.ErrEventFull)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestParticipantRepo_Join_DuplicateMapsToAlreadyJoined(t *testing.T) {
	repo, mock := newParticipantRepo(t)

	mock.ExpectBegin()
	expectEventLock(mock, "e1", domain.StatusUpcoming, 30, 5)
	mock.ExpectExec(`INSERT INTO participants`).
		WithArgs("e1", "u1", sqlmock.AnyArg()).
		WillReturnError(&pq.Error{Code: "23505"})
	mock.ExpectRollback()

	_, err := repo.Join(context.Background(), "e1", "u1")

	assert.ErrorIs(t, err, domain.ErrAlreadyJoined)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestParticipantRepo_Join_NotJoinable(t *testing.T) {
	repo, mock := newParticipantRepo(t)

	mock.ExpectBegin()
	expectEventLock(mock, "e1", domain.StatusCancelled, 30, 5)
	mock.ExpectRollback()

	_, err := repo.Join(context.Background(), "e1", "u1")

	assert.ErrorIs(t, err, domain.ErrEventNotJoinable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestParticipantRepo_Join_EventMissing(t *testing.T) {
	repo, mock := newParticipantRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT status, expected_participants, current_participants`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"status", "expected_participants", "current_participants"}))
	mock.ExpectRollback()

	_, err := repo.Join(context.Background(), "missing", "u1")

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestParticipantRepo_Leave_DeleteAndDecrementInOneTx(t *testing.T) {
	repo, mock := newParticipantRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT status FROM events`).
		WithArgs("e1").
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("active"))
	mock.ExpectExec(`DELETE FROM participants`).
		WithArgs("e1", "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE events`).
		WithArgs("e1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Leave(context.Background(), "e1", "u1")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestParticipantRepo_Leave_NotJoined(t *testing.T) {
	repo, mock := newParticipantRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT status FROM events`).
		WithArgs("e1").
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("upcoming"))
	mock.ExpectExec(`DELETE FROM participants`).
		WithArgs("e1", "u9").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.Leave(context.Background(), "e1", "u9")

	assert.ErrorIs(t, err, domain.ErrNotJoined)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestParticipantRepo_Leave_ClosedEvent(t *testing.T) {
	repo, mock := newParticipantRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT status FROM events`).
		WithArgs("e1").
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("completed"))
	mock.ExpectRollback()

	err := repo.Leave(context.Background(), "e1", "u1")

	assert.ErrorIs(t, err, domain.ErrEventClosed)
	assert.NoError(t, mock.ExpectationsWereMet())
}
