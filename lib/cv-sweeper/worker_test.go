package cvsweeper

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	candidatestore "talent-tracker-backend/lib/candidate/store"
	filestorage "talent-tracker-backend/lib/file-storage"
	localstorage "talent-tracker-backend/lib/file-storage/local-storage"
	dbmodels "talent-tracker-backend/models/db"
)

func writeFile(t *testing.T, dir, name string, modifiedAt time.Time) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("cv"), 0o644))
	require.NoError(t, os.Chtimes(path, modifiedAt, modifiedAt))
	return path
}

func TestSweep(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	old := now.Add(-2 * time.Hour)

	t.Run(`удаляются только старые файлы без кандидата`, func(t *testing.T) {
		dir := t.TempDir()
		store := candidatestore.NewMemInstance()
		files := filestorage.NewInstance(localstorage.NewInstance(dir), filestorage.DefaultPolicy())

		usedPath := writeFile(t, dir, "cv-1-1.pdf", old)
		orphanPath := writeFile(t, dir, "cv-2-2.pdf", old)
		freshPath := writeFile(t, dir, "cv-3-3.pdf", now)
		_, err := store.Create(ctx, dbmodels.Candidate{
			FirstName:  "Ivan",
			LastName:   "Petrov",
			Email:      "ivan@example.com",
			Phone:      "+79991234567",
			CvFilePath: &usedPath,
		})
		require.NoError(t, err)

		worker := NewInstance(store, files, time.Hour, time.Hour, time.Hour)
		require.Equal(t, 1, worker.sweep(ctx, now))

		require.FileExists(t, usedPath)
		require.FileExists(t, freshPath)
		require.NoFileExists(t, orphanPath)
	})
	t.Run(`каталог еще не создан`, func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "missing")
		files := filestorage.NewInstance(localstorage.NewInstance(dir), filestorage.DefaultPolicy())
		worker := NewInstance(candidatestore.NewMemInstance(), files, time.Hour, time.Hour, time.Hour)
		require.Equal(t, 0, worker.sweep(ctx, now))
	})
}
