package config

import (
	"github.com/gotify/configor"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr string `default:"" env:"APP_HOST"`
		Port       int    `default:"3010" env:"APP_PORT"`
		Env        string `default:"production" env:"APP_ENV"`
		BodyLimit  int    `default:"10485760" env:"APP_BODY_LIMIT"` // 10MB
		LogLevel   string `default:"info" env:"APP_LOG_LEVEL"`
	}
	Database struct {
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"talent-tracker" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	Upload struct {
		Backend string `default:"local" env:"UPLOAD_BACKEND"` // local | s3
		Dir     string `default:"uploads/cvs" env:"UPLOAD_DIR"`
		MaxSize int64  `default:"5242880" env:"UPLOAD_MAX_SIZE"` // 5MB
		// очистка файлов без кандидата, 0 - выключена
		SweepIntervalMin int `default:"60" env:"UPLOAD_SWEEP_INTERVAL_MIN"`
		OrphanTTLMin     int `default:"60" env:"UPLOAD_ORPHAN_TTL_MIN"`
	}
	S3 struct {
		Endpoint        string `default:"127.0.0.1:9000" env:"S3_ENDPOINT"`
		AccessKeyID     string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		UseSSL          *bool  `default:"false" env:"S3_USE_SSL"`
		BucketName      string `default:"candidate-cvs" env:"S3_BUCKET_NAME"`
	}
	Smtp struct {
		User       string `default:"" env:"SMTP_USER"`
		Password   string `default:"" env:"SMTP_PASSWORD"`
		Host       string `default:"" env:"SMTP_HOST"`
		Port       string `default:"" env:"SMTP_PORT"`
		TLSEnabled *bool  `default:"true" env:"SMTP_TLS_ENABLED"`
	}
	Notify struct {
		RecruiterEmail string `default:"" env:"NOTIFY_RECRUITER_EMAIL"`
	}
}

func (c Configuration) IsDevelopment() bool {
	return c.App.Env == "development"
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	// .env is optional, real environment wins
	if err := godotenv.Load(); err != nil {
		log.Debug(".env файл не найден, используются переменные окружения")
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
