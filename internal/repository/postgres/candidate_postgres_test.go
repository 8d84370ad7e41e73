package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidatePostgres_FindByID(t *testing.T) {
	t.Run("loads full profile", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
		require.NoError(t, err)
		defer db.Close()

		repo := NewCandidatePostgres(db)
		now := time.Now().UTC()

		mock.ExpectQuery(`SELECT id, name, COALESCE\(resume_text, ''\), created_at\s+FROM candidates`).
			WithArgs("cand-1").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "resume_text", "created_at"}).
				AddRow("cand-1", "Aisha Khan", "ten years of Go", now))

		mock.ExpectQuery(`FROM experiences`).
			WithArgs("cand-1").
			WillReturnRows(sqlmock.NewRows([]string{"id", "title", "company", "start_date", "end_date", "is_current", "description"}).
				AddRow("exp-2", "Senior Engineer", "Acme", now.AddDate(-2, 0, 0), nil, true, "Platform work").
				AddRow("exp-1", "Engineer", "Initech", now.AddDate(-6, 0, 0), now.AddDate(-2, 0, 0), false, ""))

		mock.ExpectQuery(`FROM educations`).
			WithArgs("cand-1").
			WillReturnRows(sqlmock.NewRows([]string{"id", "institution", "degree", "major", "start_date", "end_date"}).
				AddRow("edu-1", "NUST", "BS", "Computer Science", now.AddDate(-10, 0, 0), now.AddDate(-6, 0, 0)))

		cand, err := repo.FindByID(context.Background(), "cand-1")

		assert.NoError(t, err)
		assert.Equal(t, "Aisha Khan", cand.Name)
		require.Len(t, cand.Experiences, 2)
		assert.True(t, cand.Experiences[0].IsCurrent)
		require.Len(t, cand.Educations, 1)
		assert.Equal(t, "Computer Science", cand.Educations[0].Major)
		assert.Equal(t, "Senior Engineer", cand.CurrentTitle())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing candidate", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
		require.NoError(t, err)
		defer db.Close()

		repo := NewCandidatePostgres(db)

		mock.ExpectQuery(`FROM candidates`).
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		cand, err := repo.FindByID(context.Background(), "missing")

		assert.Nil(t, cand)
		assert.True(t, errors.Is(err, sql.ErrNoRows))
	})
}
