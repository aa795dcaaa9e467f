package cvsweeper

import (
	"context"
	"time"

	"talent-tracker-backend/db"
	candidatestore "talent-tracker-backend/lib/candidate/store"
	filestorage "talent-tracker-backend/lib/file-storage"
	baseworker "talent-tracker-backend/lib/utils/base-worker"
	initchecker "talent-tracker-backend/lib/utils/init-checker"
)

// Удаляет файлы резюме, на которые не ссылается ни один кандидат.
// Такие файлы остаются, если процесс упал между сохранением файла и записью кандидата.

const firstRunDelay = time.Minute

type impl struct {
	baseworker.BaseImpl
	store candidatestore.Provider
	files filestorage.Provider
	ttl   time.Duration
}

func StartWorker(ctx context.Context, interval, ttl time.Duration) {
	i := NewInstance(candidatestore.NewInstance(db.DB), filestorage.Instance, firstRunDelay, interval, ttl)
	go i.Run(ctx, i.Sweep)
}

func NewInstance(store candidatestore.Provider, files filestorage.Provider, firstRunDelay, interval, ttl time.Duration) *impl {
	i := &impl{
		BaseImpl: *baseworker.NewInstance("CvSweeperWorker", firstRunDelay, interval),
		store:    store,
		files:    files,
		ttl:      ttl,
	}
	initchecker.CheckInit(
		"store", i.store,
		"files", i.files,
	)
	return i
}

// Sweep один проход очистки
func (i *impl) Sweep(ctx context.Context) {
	i.sweep(ctx, time.Now())
}

func (i *impl) sweep(ctx context.Context, now time.Time) int {
	logger := i.GetLogger()
	stored, err := i.files.List(ctx)
	if err != nil {
		logger.WithError(err).Error("ошибка получения списка файлов")
		return 0
	}
	if len(stored) == 0 {
		return 0
	}
	// список кандидатов читаем после списка файлов: файл, привязанный к кандидату
	// между двумя чтениями, уже будет в used
	list, err := i.store.ListAll(ctx)
	if err != nil {
		logger.WithError(err).Error("ошибка получения списка кандидатов")
		return 0
	}
	used := make(map[string]struct{}, len(list))
	for _, rec := range list {
		if rec.CvFilePath != nil {
			used[*rec.CvFilePath] = struct{}{}
		}
	}

	deleted := 0
	for _, file := range stored {
		if _, ok := used[file.Path]; ok {
			continue
		}
		// свежий файл может принадлежать запросу, который еще выполняется
		if now.Sub(file.ModifiedAt) < i.ttl {
			continue
		}
		if i.files.Delete(ctx, file.Path) {
			logger.WithField("path", file.Path).Info("удален файл резюме без кандидата")
			deleted++
		}
	}
	return deleted
}
