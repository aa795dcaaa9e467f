package candidatestore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	dbmodels "talent-tracker-backend/models/db"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// in-memory база живет в рамках одного соединения
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&dbmodels.Candidate{}))
	return db
}

func candidate(email string) dbmodels.Candidate {
	return dbmodels.Candidate{
		FirstName: "John",
		LastName:  "Doe",
		Email:     email,
		Phone:     "+1234567890",
	}
}

func testProvider(t *testing.T, store Provider) {
	ctx := context.Background()

	t.Run(`create assigns id and timestamps`, func(t *testing.T) {
		rec, err := store.Create(ctx, candidate("john.doe@example.com"))
		require.NoError(t, err)
		require.NotZero(t, rec.ID)
		require.False(t, rec.CreatedAt.IsZero())
		require.False(t, rec.UpdatedAt.IsZero())
		require.Nil(t, rec.CvFileName)

		found, err := store.FindByID(ctx, rec.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		require.Equal(t, "john.doe@example.com", found.Email)

		found, err = store.FindByEmail(ctx, "john.doe@example.com")
		require.NoError(t, err)
		require.NotNil(t, found)
		require.Equal(t, rec.ID, found.ID)
	})

	t.Run(`missing records are nil without error`, func(t *testing.T) {
		found, err := store.FindByID(ctx, 100500)
		require.NoError(t, err)
		require.Nil(t, found)

		found, err = store.FindByEmail(ctx, "nobody@example.com")
		require.NoError(t, err)
		require.Nil(t, found)
	})

	t.Run(`duplicate email check`, func(t *testing.T) {
		_, err := store.Create(ctx, candidate("dup@example.com"))
		require.NoError(t, err)
		_, err = store.Create(ctx, candidate("dup@example.com"))
		require.ErrorIs(t, err, ErrDuplicateEmail)
	})

	t.Run(`list newest first`, func(t *testing.T) {
		last, err := store.Create(ctx, candidate("last@example.com"))
		require.NoError(t, err)
		list, err := store.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, list, 3)
		require.Equal(t, last.ID, list[0].ID)
		for idx := 1; idx < len(list); idx++ {
			require.False(t, list[idx].CreatedAt.After(list[idx-1].CreatedAt))
		}
	})
}

func TestGormStore(t *testing.T) {
	testProvider(t, NewInstance(newTestDB(t)))
}

func TestMemStore(t *testing.T) {
	testProvider(t, NewMemInstance())
}
