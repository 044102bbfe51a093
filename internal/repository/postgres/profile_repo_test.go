package postgres

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"conferencecentral/internal/domain"
)

func TestProfileRepository_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, display_name, main_email, tee_shirt_size, conference_ids, wishlist_session_ids`).
			WithArgs("user-1").
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "display_name", "main_email", "tee_shirt_size", "conference_ids", "wishlist_session_ids",
			}).AddRow("user-1", "Gopher", "user@example.com", "L_M", "{conf-1}", "{}"))

		repo := NewProfileRepository(db)
		p, err := repo.GetByID(ctx, "user-1")
		require.NoError(t, err)
		require.Equal(t, "Gopher", p.DisplayName)
		require.Equal(t, []string{"conf-1"}, p.ConferenceIDs)
		require.Empty(t, p.WishlistSessionIDs)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, display_name, main_email, tee_shirt_size`).
			WithArgs("user-missing").
			WillReturnError(sql.ErrNoRows)

		repo := NewProfileRepository(db)
		_, err = repo.GetByID(ctx, "user-missing")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestProfileRepository_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT conference_ids FROM profiles WHERE id = \$1 FOR UPDATE`).
			WithArgs("user-1").
			WillReturnRows(sqlmock.NewRows([]string{"conference_ids"}).AddRow("{}"))
		mock.ExpectQuery(`SELECT seats_available FROM conferences WHERE id = \$1 FOR UPDATE`).
			WithArgs("conf-1").
			WillReturnRows(sqlmock.NewRows([]string{"seats_available"}).AddRow(3))
		mock.ExpectExec(`UPDATE profiles SET conference_ids = array_append`).
			WithArgs("user-1", "conf-1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE conferences SET seats_available = seats_available - 1`).
			WithArgs("conf-1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		repo := NewProfileRepository(db)
		require.NoError(t, repo.Register(ctx, "user-1", "conf-1"))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already registered", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT conference_ids FROM profiles WHERE id = \$1 FOR UPDATE`).
			WithArgs("user-1").
			WillReturnRows(sqlmock.NewRows([]string{"conference_ids"}).AddRow("{conf-1}"))
		mock.ExpectQuery(`SELECT seats_available FROM conferences WHERE id = \$1 FOR UPDATE`).
			WithArgs("conf-1").
			WillReturnRows(sqlmock.NewRows([]string{"seats_available"}).AddRow(3))
		mock.ExpectRollback()

		repo := NewProfileRepository(db)
		err = repo.Register(ctx, "user-1", "conf-1")
		require.ErrorIs(t, err, domain.ErrConflict)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no seats", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT conference_ids FROM profiles WHERE id = \$1 FOR UPDATE`).
			WithArgs("user-1").
			WillReturnRows(sqlmock.NewRows([]string{"conference_ids"}).AddRow("{}"))
		mock.ExpectQuery(`SELECT seats_available FROM conferences WHERE id = \$1 FOR UPDATE`).
			WithArgs("conf-1").
			WillReturnRows(sqlmock.NewRows([]string{"seats_available"}).AddRow(0))
		mock.ExpectRollback()

		repo := NewProfileRepository(db)
		err = repo.Register(ctx, "user-1", "conf-1")
		require.ErrorIs(t, err, domain.ErrConflict)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown conference", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT conference_ids FROM profiles WHERE id = \$1 FOR UPDATE`).
			WithArgs("user-1").
			WillReturnRows(sqlmock.NewRows([]string{"conference_ids"}).AddRow("{}"))
		mock.ExpectQuery(`SELECT seats_available FROM conferences WHERE id = \$1 FOR UPDATE`).
			WithArgs("conf-missing").
			WillReturnError(sql.ErrNoRows)
		mock.ExpectRollback()

		repo := NewProfileRepository(db)
		err = repo.Register(ctx, "user-1", "conf-missing")
		require.ErrorIs(t, err, domain.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProfileRepository_Unregister(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT conference_ids FROM profiles WHERE id = \$1 FOR UPDATE`).
			WithArgs("user-1").
			WillReturnRows(sqlmock.NewRows([]string{"conference_ids"}).AddRow("{conf-1,conf-2}"))
		mock.ExpectExec(`UPDATE profiles SET conference_ids = array_remove`).
			WithArgs("user-1", "conf-1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE conferences SET seats_available = seats_available \+ 1`).
			WithArgs("conf-1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		repo := NewProfileRepository(db)
		removed, err := repo.Unregister(ctx, "user-1", "conf-1")
		require.NoError(t, err)
		require.True(t, removed)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not registered", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT conference_ids FROM profiles WHERE id = \$1 FOR UPDATE`).
			WithArgs("user-1").
			WillReturnRows(sqlmock.NewRows([]string{"conference_ids"}).AddRow("{}"))
		mock.ExpectRollback()

		repo := NewProfileRepository(db)
		removed, err := repo.Unregister(ctx, "user-1", "conf-1")
		require.NoError(t, err)
		require.False(t, removed)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
