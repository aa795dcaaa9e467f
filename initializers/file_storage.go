package initializers

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"talent-tracker-backend/config"
	filestorage "talent-tracker-backend/lib/file-storage"
	localstorage "talent-tracker-backend/lib/file-storage/local-storage"
	s3client "talent-tracker-backend/s3"
)

const (
	BackendLocal = "local"
	BackendS3    = "s3"
)

func InitFileStorage() {
	policy := filestorage.DefaultPolicy()
	if config.Conf.Upload.MaxSize > 0 {
		policy.MaxSize = config.Conf.Upload.MaxSize
	}

	switch config.Conf.Upload.Backend {
	case BackendS3:
		filestorage.NewHandler(initS3Backend(), policy)
	case BackendLocal, "":
		filestorage.NewHandler(localstorage.NewInstance(config.Conf.Upload.Dir), policy)
		log.WithField("dir", config.Conf.Upload.Dir).Info("резюме сохраняются на диск")
	default:
		panic("неизвестный тип хранилища файлов: " + config.Conf.Upload.Backend)
	}
}

func initS3Backend() filestorage.Backend {
	minioClient, err := s3client.NewClient(config.Conf.S3.Endpoint, config.Conf.S3.AccessKeyID,
		config.Conf.S3.SecretAccessKey, *config.Conf.S3.UseSSL)
	if err != nil {
		panic("Ошибка инициализации клиента S3: " + err.Error())
	}

	// Проверка соединения
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if _, err = minioClient.ListBuckets(ctx); err != nil {
		log.WithError(err).Error("S3 соединение не удалось — ListBuckets вернул ошибку")
	}
	log.WithField("bucket", config.Conf.S3.BucketName).Info("S3 клиент успешно инициализирован")
	return s3client.NewBackend(minioClient, config.Conf.S3.BucketName)
}
