package initializers

import (
	log "github.com/sirupsen/logrus"
	"talent-tracker-backend/fiberlog"
)

func jsonFormatter() *log.JSONFormatter {
	return &log.JSONFormatter{
		FieldMap: log.FieldMap{
			log.FieldKeyTime: "@timestamp",
			log.FieldKeyMsg:  "message",
		},
	}
}

func InitLogger(level string) *fiberlog.Config {
	logLevel, err := log.ParseLevel(level)
	if err != nil {
		logLevel = log.InfoLevel
	}
	log.SetFormatter(jsonFormatter())
	log.SetLevel(logLevel)
	if err != nil {
		log.WithError(err).Warn("некорректный уровень логирования, используется info")
	}

	logger := log.New()
	logger.SetFormatter(jsonFormatter())
	logger.SetLevel(logLevel)
	return &fiberlog.Config{
		Logger: logger,
		Tags: []string{
			fiberlog.TagBody,
			fiberlog.TagMethod,
			fiberlog.TagPath,
			fiberlog.TagStatus,
			fiberlog.TagLatency,
			fiberlog.TagIP,
			fiberlog.RequestID,
		},
		MaxBodyLog: 2048,
	}
}
