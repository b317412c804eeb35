package utils

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var Logger = logrus.New()

// appHook tags every entry with the deployable it came from.
type appHook struct {
	appName string
}

func (h *appHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *appHook) Fire(entry *logrus.Entry) error {
	entry.Message = "[" + h.appName + "] " + entry.Message
	entry.Data["app"] = h.appName
	return nil
}

// InitLogger configures Logger from LOG_LEVEL (default info) and LOG_FORMAT
// ("json" for JSON lines, text otherwise).
func InitLogger(appName string) {
	configureLogger(Logger, os.Stdout, appName, os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))
}

func configureLogger(l *logrus.Logger, out io.Writer, appName, levelStr, format string) {
	l.SetOutput(out)

	levelStr = strings.ToLower(strings.TrimSpace(levelStr))
	if levelStr == "" {
		levelStr = "info"
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		l.Warnf("Invalid LOG_LEVEL '%s', defaulting to INFO", levelStr)
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	if strings.EqualFold(format, "json") {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	l.ReplaceHooks(make(logrus.LevelHooks))
	l.AddHook(&appHook{appName: appName})
}
