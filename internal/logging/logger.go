package logging

import (
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var once sync.Once

// Init configures the global logrus logger: JSON to a rotated file plus
// plain text on stdout. Safe to call more than once.
func Init(logFile string) {
	once.Do(func() {
		logrus.SetLevel(logrus.InfoLevel)
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})

		if logFile == "" {
			logrus.SetOutput(os.Stdout)
			return
		}

		rotated := &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		logrus.SetOutput(io.MultiWriter(os.Stdout, rotated))
		logrus.Infof("logger initialized, output to %s", logFile)
	})
}
