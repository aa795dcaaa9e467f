package filestorage

import (
	"context"
	"io"
	"mime/multipart"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Backend место физического хранения файлов
type Backend interface {
	Save(ctx context.Context, name string, reader io.Reader, contentType string) (path string, err error)
	// Delete false без ошибки, если файла уже нет
	Delete(ctx context.Context, path string) (deleted bool, err error)
	// Open ErrFileNotFound, если файла нет
	Open(ctx context.Context, name string) (io.ReadCloser, int64, error)
	List(ctx context.Context) ([]StoredFile, error)
}

// StoredFile файл, лежащий в хранилище
type StoredFile struct {
	Name       string
	Path       string
	ModifiedAt time.Time
}

type Provider interface {
	AcceptConfig() UploadPolicy
	Validate(file *UploadedFile) error
	Accept(ctx context.Context, header *multipart.FileHeader) (*UploadedFile, error)
	Delete(ctx context.Context, path string) bool
	Open(ctx context.Context, name string) (io.ReadCloser, int64, error)
	FileURL(name string) string
	List(ctx context.Context) ([]StoredFile, error)
}

var Instance Provider

func NewHandler(backend Backend, policy UploadPolicy) {
	Instance = NewInstance(backend, policy)
}

func NewInstance(backend Backend, policy UploadPolicy) Provider {
	if policy.NameFunc == nil {
		policy.NameFunc = CVFileName
	}
	return &impl{
		backend: backend,
		policy:  policy,
	}
}

type impl struct {
	backend Backend
	policy  UploadPolicy
}

func (i impl) AcceptConfig() UploadPolicy {
	return i.policy
}

func (i impl) Validate(file *UploadedFile) error {
	return i.policy.Validate(file)
}

func (i impl) Accept(ctx context.Context, header *multipart.FileHeader) (*UploadedFile, error) {
	if header == nil {
		return nil, ErrNoFile
	}
	file := &UploadedFile{
		OriginalName: header.Filename,
		ContentType:  header.Header.Get("Content-Type"),
		Size:         header.Size,
	}
	// фильтр до записи: тип и заявленный размер
	if err := i.policy.Validate(file); err != nil {
		return nil, err
	}

	src, err := header.Open()
	if err != nil {
		return nil, errors.Wrap(err, "ошибка чтения загруженного файла")
	}
	defer src.Close()

	file.Name = i.policy.NameFunc(file.OriginalName)
	counter := &countingReader{reader: io.LimitReader(src, i.policy.MaxSize+1)}
	file.Path, err = i.backend.Save(ctx, file.Name, counter, file.ContentType)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка сохранения файла")
	}
	file.Size = counter.read

	// фактический размер мог не совпасть с заявленным
	if err = i.policy.Validate(file); err != nil {
		i.Delete(ctx, file.Path)
		return nil, err
	}
	log.WithFields(log.Fields{
		"original_name": file.OriginalName,
		"name":          file.Name,
		"size":          file.Size,
	}).Info("файл резюме сохранен")
	return file, nil
}

func (i impl) Delete(ctx context.Context, path string) bool {
	if path == "" {
		return false
	}
	deleted, err := i.backend.Delete(ctx, path)
	if err != nil {
		log.WithError(err).WithField("path", path).Error("ошибка удаления файла")
		return false
	}
	return deleted
}

func (i impl) Open(ctx context.Context, name string) (io.ReadCloser, int64, error) {
	if !IsPlainName(name) {
		return nil, 0, ErrFileNotFound
	}
	return i.backend.Open(ctx, name)
}

func (i impl) List(ctx context.Context) ([]StoredFile, error) {
	return i.backend.List(ctx)
}

func (i impl) FileURL(name string) string {
	return "/api/files/cv/" + name
}

// IsPlainName имя без каталогов, только такие имена выдает хранилище
func IsPlainName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return filepath.Base(name) == name && filepath.ToSlash(name) == name
}

type countingReader struct {
	reader io.Reader
	read   int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.reader.Read(p)
	c.read += int64(n)
	return n, err
}
