package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockRepo(t *testing.T) (PromotionRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewPromotionRepository(gdb), mock
}

func TestSearch(t *testing.T) {
	t.Run("Empty term lists newest first", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		rows := sqlmock.NewRows([]string{"id", "title", "promo_code"}).
			AddRow("p2", "Newer", "").
			AddRow("p1", "Older", "")
		mock.ExpectQuery(`SELECT \* FROM "promotions" ORDER BY created_at desc`).
			WillReturnRows(rows)

		promotions, err := repo.Search("")

		assert.NoError(t, err)
		require.Len(t, promotions, 2)
		assert.Equal(t, "p2", promotions[0].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Term matches title or promo code", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		rows := sqlmock.NewRows([]string{"id", "title", "promo_code"}).
			AddRow("p1", "Twilight Nine", "TWILIGHT9")
		mock.ExpectQuery(`SELECT \* FROM "promotions" WHERE title ILIKE \$1 OR promo_code ILIKE \$2 ORDER BY created_at desc`).
			WithArgs("%nine%", "%nine%").
			WillReturnRows(rows)

		promotions, err := repo.Search("nine")

		assert.NoError(t, err)
		assert.Len(t, promotions, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDelete(t *testing.T) {
	t.Run("Hard delete removes the row", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectExec(`DELETE FROM "promotions"`).
			WithArgs("p1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete("p1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Missing row surfaces ErrRecordNotFound", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectExec(`DELETE FROM "promotions"`).
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete("missing"), gorm.ErrRecordNotFound)
	})
}

func TestUpdate(t *testing.T) {
	t.Run("Zero rows affected is NotFound, not success", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectExec(`UPDATE "promotions" SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		_, err := repo.Update("missing", map[string]interface{}{"title": "New"})

		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestIncrementRedemptions(t *testing.T) {
	t.Run("Counter bumps while capacity remains", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectExec(`UPDATE "promotions" SET "current_redemptions"=current_redemptions \+ 1`).
			WithArgs("p1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.IncrementRedemptions("p1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Guard refuses once the limit is reached", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectExec(`UPDATE "promotions" SET "current_redemptions"=current_redemptions \+ 1`).
			WithArgs("full").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.IncrementRedemptions("full"), ErrRedemptionLimit)
	})
}
