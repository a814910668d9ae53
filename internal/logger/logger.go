package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New builds the process logger: JSON output in production, colored text
// elsewhere. An unknown level falls back to info.
func New(level, env string) *logrus.Logger {
	log := logrus.New()

	if env == "production" {
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	log.SetLevel(logLevel)
	log.SetOutput(os.Stdout)

	return log
}

// NewWithWriter builds a logger targeting the given writer. The MCP command
// uses this to keep stdout free for protocol frames.
func NewWithWriter(level string, w io.Writer) *logrus.Logger {
	log := New(level, "production")
	log.SetOutput(w)
	return log
}
