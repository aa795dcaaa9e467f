package localstorage

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	filestorage "talent-tracker-backend/lib/file-storage"
)

func NewInstance(dir string) filestorage.Backend {
	return &impl{dir: dir}
}

type impl struct {
	dir string
}

func (i impl) Save(ctx context.Context, name string, reader io.Reader, contentType string) (string, error) {
	if err := i.ensureDir(); err != nil {
		return "", err
	}
	path := filepath.Join(i.dir, name)
	dst, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", errors.Wrap(err, "ошибка создания файла")
	}
	if _, err = io.Copy(dst, reader); err != nil {
		dst.Close()
		os.Remove(path)
		return "", errors.Wrap(err, "ошибка записи файла")
	}
	if err = dst.Close(); err != nil {
		os.Remove(path)
		return "", errors.Wrap(err, "ошибка записи файла")
	}
	return path, nil
}

func (i impl) Delete(ctx context.Context, path string) (bool, error) {
	err := os.Remove(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (i impl) Open(ctx context.Context, name string) (io.ReadCloser, int64, error) {
	file, err := os.Open(filepath.Join(i.dir, name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, 0, filestorage.ErrFileNotFound
		}
		return nil, 0, err
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, 0, err
	}
	if info.IsDir() {
		file.Close()
		return nil, 0, filestorage.ErrFileNotFound
	}
	return file, info.Size(), nil
}

func (i impl) List(ctx context.Context) ([]filestorage.StoredFile, error) {
	entries, err := os.ReadDir(i.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "ошибка чтения каталога загрузок")
	}
	result := make([]filestorage.StoredFile, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			// удален между ReadDir и Info
			continue
		}
		result = append(result, filestorage.StoredFile{
			Name:       entry.Name(),
			Path:       filepath.Join(i.dir, entry.Name()),
			ModifiedAt: info.ModTime(),
		})
	}
	return result, nil
}

// каталог создается при первой записи
func (i impl) ensureDir() error {
	if err := os.MkdirAll(i.dir, 0o755); err != nil {
		return errors.Wrap(err, "ошибка создания каталога загрузок")
	}
	return nil
}
