package utils

import (
	"os"

	"github.com/sirupsen/logrus"
)

var logger = logrus.New()

func InitLogger() {
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if os.Getenv("LOG_LEVEL") == "debug" {
		logger.SetLevel(logrus.DebugLevel)
	}
}

func Logger() *logrus.Logger {
	return logger
}

func LogError(err error, context string) {
	logger.WithError(err).Error(context)
}

func LogPanic(recovered interface{}, context string) {
	logger.WithField("panic", recovered).Error(context)
}
