package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartrecruit/internal/model"
	"smartrecruit/internal/repository"
)

func TestNotificationPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := NewNotificationPostgres(db)
	now := time.Now().UTC()

	n := &model.Notification{
		ID:       "n-1",
		TargetID: "cand-1",
		Type:     "status_change",
		Title:    "Appointment Letter Issued",
		Message:  "Your appointment letter is ready.",
		Data:     map[string]any{"application_id": "app-1", "status": "hired"},
	}
	data, err := json.Marshal(n.Data)
	require.NoError(t, err)

	rows := sqlmock.NewRows([]string{"id", "target_id", "type", "title", "message", "data", "is_read", "created_at"}).
		AddRow(n.ID, n.TargetID, n.Type, n.Title, n.Message, data, false, now)

	mock.ExpectQuery(`INSERT INTO notifications`).
		WithArgs(n.ID, n.TargetID, n.Type, n.Title, n.Message, data, n.CreatedAt).
		WillReturnRows(rows)

	got, err := repo.Create(context.Background(), n)

	assert.NoError(t, err)
	assert.Equal(t, "cand-1", got.TargetID)
	assert.Equal(t, "app-1", got.Data["application_id"])
	assert.False(t, got.IsRead)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationPostgres_MarkRead(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
		require.NoError(t, err)
		defer db.Close()

		repo := NewNotificationPostgres(db)

		mock.ExpectExec(`UPDATE notifications SET is_read = true`).
			WithArgs("n-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.MarkRead(context.Background(), "n-1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
		require.NoError(t, err)
		defer db.Close()

		repo := NewNotificationPostgres(db)

		mock.ExpectExec(`UPDATE notifications SET is_read = true`).
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err = repo.MarkRead(context.Background(), "missing")

		assert.True(t, errors.Is(err, sql.ErrNoRows))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestNotificationPostgres_ListForTarget(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := NewNotificationPostgres(db)
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM notifications`).
		WithArgs("cand-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	rows := sqlmock.NewRows([]string{"id", "target_id", "type", "title", "message", "data", "is_read", "created_at"}).
		AddRow("n-2", "cand-1", "status_change", "Interview Scheduled", "", []byte(`{}`), false, now).
		AddRow("n-1", "cand-1", "status_change", "Application Received", "", []byte(`{}`), true, now.Add(-time.Hour))

	mock.ExpectQuery(`SELECT id, target_id, type, title, message, data, is_read, created_at\s+FROM notifications`).
		WithArgs("cand-1", 10, 0).
		WillReturnRows(rows)

	res, err := repo.ListForTarget(context.Background(), "cand-1", repository.PageQuery{Limit: 10, Offset: 0})

	assert.NoError(t, err)
	assert.Equal(t, 2, res.Total)
	require.Len(t, res.Items, 2)
	assert.Equal(t, "n-2", res.Items[0].ID)
	assert.True(t, res.Items[1].IsRead)
	assert.NoError(t, mock.ExpectationsWereMet())
}
