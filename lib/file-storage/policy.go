package filestorage

import (
	"fmt"
	"math/rand/v2"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	DefaultMaxSize int64 = 5 * 1024 * 1024
	// MsgUploadFailed сообщение клиенту при отказе в приеме файла
	MsgUploadFailed = "File upload failed"
)

var (
	ErrNoFile           = errors.New("No file provided")
	ErrInvalidExtension = errors.New("Invalid file extension. Only PDF and DOCX files are allowed.")
	ErrInvalidMimeType  = errors.New("Invalid file type. Only PDF and DOCX files are allowed.")
	ErrTooLarge         = errors.New("File size too large. Maximum size is 5MB.")
	ErrFileNotFound     = errors.New("file not found")
)

// UploadPolicy набор правил приема файла резюме
type UploadPolicy struct {
	MaxSize           int64
	AllowedExtensions []string
	AllowedMimeTypes  []string
	NameFunc          func(originalName string) string
}

func DefaultPolicy() UploadPolicy {
	return UploadPolicy{
		MaxSize:           DefaultMaxSize,
		AllowedExtensions: []string{".pdf", ".docx", ".doc"},
		AllowedMimeTypes: []string{
			"application/pdf",
			"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
			"application/msword",
		},
		NameFunc: CVFileName,
	}
}

// CVFileName cv-<unix ms>-<random>.<ext>, расширение берется из исходного имени как есть
func CVFileName(originalName string) string {
	return fmt.Sprintf("cv-%d-%d%s", time.Now().UnixMilli(), rand.IntN(1_000_000_000), filepath.Ext(originalName))
}

// UploadedFile принятый файл. Name и Path заполняются при записи в хранилище
type UploadedFile struct {
	OriginalName string
	ContentType  string
	Size         int64
	Name         string
	Path         string
}

func (p UploadPolicy) Validate(file *UploadedFile) error {
	if file == nil {
		return ErrNoFile
	}
	ext := strings.ToLower(filepath.Ext(file.OriginalName))
	if !slices.Contains(p.AllowedExtensions, ext) {
		return ErrInvalidExtension
	}
	if !slices.Contains(p.AllowedMimeTypes, file.ContentType) {
		return ErrInvalidMimeType
	}
	if file.Size > p.MaxSize {
		return ErrTooLarge
	}
	return nil
}

// IsRejected ошибка отбраковки файла (ответ 400), а не сбой хранилища
func IsRejected(err error) bool {
	return errors.Is(err, ErrNoFile) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidMimeType) ||
		errors.Is(err, ErrTooLarge)
}
