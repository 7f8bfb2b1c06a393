// Package log provides structured, file-backed logging gated by configuration.
package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	logrus "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vidl-cli/vidl/filesystem"
	"github.com/vidl-cli/vidl/key"
	"github.com/vidl-cli/vidl/where"
)

// enabled indicates whether log emissions reach the backend at all.
var enabled bool

// RunID correlates every entry written by one process invocation.
var RunID = uuid.NewString()

var entry = logrus.NewEntry(logrus.StandardLogger()).WithField("run", RunID)

// Setup opens today's log file and applies format and level from configuration.
// When logs.write is false every emission is discarded.
func Setup() error {
	enabled = viper.GetBool(key.LogsWrite)
	if !enabled {
		return nil
	}

	path := filepath.Join(where.Logs(), time.Now().Format("2006-01-02")+".log")

	f, err := filesystem.API().OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o666)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	logrus.SetOutput(f)

	if viper.GetBool(key.LogsJson) {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{DisableColors: true})
	}

	level, err := logrus.ParseLevel(viper.GetString(key.LogsLevel))
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	return nil
}

// Fields is an alias so callers need not import logrus.
type Fields = logrus.Fields

// WithFields returns an entry carrying the run id and the given fields.
// The entry writes nothing while logging is disabled.
func WithFields(fields Fields) *logrus.Entry {
	if !enabled {
		return discard
	}
	return entry.WithFields(fields)
}

var discard = func() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}()

func Error(args ...any) {
	if enabled {
		entry.Error(args...)
	}
}

func Errorf(format string, args ...any) {
	if enabled {
		entry.Errorf(format, args...)
	}
}

func Warn(args ...any) {
	if enabled {
		entry.Warn(args...)
	}
}

func Warnf(format string, args ...any) {
	if enabled {
		entry.Warnf(format, args...)
	}
}

func Info(args ...any) {
	if enabled {
		entry.Info(args...)
	}
}

func Infof(format string, args ...any) {
	if enabled {
		entry.Infof(format, args...)
	}
}

func Debug(args ...any) {
	if enabled {
		entry.Debug(args...)
	}
}

func Debugf(format string, args ...any) {
	if enabled {
		entry.Debugf(format, args...)
	}
}
