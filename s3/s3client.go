package s3client

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
	filestorage "talent-tracker-backend/lib/file-storage"
)

const pathPrefix = "s3://"

type s3client struct {
	minioClient *minio.Client
	bucketName  string
	bucketMu    sync.Mutex
	bucketReady bool
}

func NewClient(endpoint, accessKeyID, secretAccessKey string, useSSL bool) (*minio.Client, error) {
	return minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKeyID, secretAccessKey, ""),
		Secure: useSSL,
	})
}

// NewBackend хранилище резюме в бакете S3
func NewBackend(minioClient *minio.Client, bucketName string) filestorage.Backend {
	return &s3client{
		minioClient: minioClient,
		bucketName:  bucketName,
	}
}

func (s *s3client) MakeBucket(ctx context.Context) error {
	s.bucketMu.Lock()
	defer s.bucketMu.Unlock()
	if s.bucketReady {
		return nil
	}
	location := "us-east-1"
	exists, err := s.minioClient.BucketExists(ctx, s.bucketName)
	if err != nil {
		return err
	}
	if !exists {
		err = s.minioClient.MakeBucket(ctx, s.bucketName, minio.MakeBucketOptions{Region: location})
		if err != nil {
			return err
		}
	}
	s.bucketReady = true
	return nil
}

func (s *s3client) Save(ctx context.Context, name string, reader io.Reader, contentType string) (string, error) {
	if err := s.MakeBucket(ctx); err != nil {
		return "", errors.Wrap(err, "ошибка создания бакета")
	}
	_, err := s.minioClient.PutObject(ctx, s.bucketName, name, reader, -1, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "ошибка загрузки файла в S3")
	}
	return fmt.Sprintf("%s%s/%s", pathPrefix, s.bucketName, name), nil
}

func (s *s3client) Delete(ctx context.Context, path string) (bool, error) {
	bucket, name, ok := parsePath(path)
	if !ok {
		return false, nil
	}
	_, err := s.minioClient.StatObject(ctx, bucket, name, minio.StatObjectOptions{})
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, err
	}
	if err = s.minioClient.RemoveObject(ctx, bucket, name, minio.RemoveObjectOptions{}); err != nil {
		return false, err
	}
	return true, nil
}

func (s *s3client) Open(ctx context.Context, name string) (io.ReadCloser, int64, error) {
	obj, err := s.minioClient.GetObject(ctx, s.bucketName, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, 0, err
	}
	info, err := obj.Stat()
	if err != nil {
		obj.Close()
		if isNotFound(err) {
			return nil, 0, filestorage.ErrFileNotFound
		}
		return nil, 0, err
	}
	return obj, info.Size, nil
}

func (s *s3client) List(ctx context.Context) ([]filestorage.StoredFile, error) {
	exists, err := s.minioClient.BucketExists(ctx, s.bucketName)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, nil
	}
	var result []filestorage.StoredFile
	for object := range s.minioClient.ListObjects(ctx, s.bucketName, minio.ListObjectsOptions{}) {
		if object.Err != nil {
			return nil, errors.Wrap(object.Err, "ошибка получения списка файлов из S3")
		}
		result = append(result, filestorage.StoredFile{
			Name:       object.Key,
			Path:       fmt.Sprintf("%s%s/%s", pathPrefix, s.bucketName, object.Key),
			ModifiedAt: object.LastModified,
		})
	}
	return result, nil
}

func parsePath(path string) (bucket, name string, ok bool) {
	if !strings.HasPrefix(path, pathPrefix) {
		return "", "", false
	}
	bucket, name, ok = strings.Cut(strings.TrimPrefix(path, pathPrefix), "/")
	if !ok || bucket == "" || name == "" {
		return "", "", false
	}
	return bucket, name, true
}

func isNotFound(err error) bool {
	code := minio.ToErrorResponse(err).Code
	return code == "NoSuchKey" || code == "NoSuchBucket"
}
