package initializers

import (
	"talent-tracker-backend/config"
	"talent-tracker-backend/fiberlog"
	"talent-tracker-backend/lib/candidate"
	candidatenotify "talent-tracker-backend/lib/candidate-notify"
	xlsexport "talent-tracker-backend/lib/export/xls"
	filestorage "talent-tracker-backend/lib/file-storage"
	"talent-tracker-backend/lib/smtp"
)

var LoggerConfig *fiberlog.Config

func InitAllServices() {
	config.InitConfig()
	LoggerConfig = InitLogger(config.Conf.App.LogLevel)
	InitDBConnection()
	InitFileStorage()
	InitSmtp()
	xlsexport.NewHandler()
	candidate.NewHandler(filestorage.Instance, candidatenotify.NewInstance(smtp.Instance, filestorage.Instance, config.Conf.Notify.RecruiterEmail))
}
