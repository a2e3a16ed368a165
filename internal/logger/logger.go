package logger

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	defaultLogger = newLogger(os.Stderr, logrus.WarnLevel)
)

// GetLogLevelFromString maps a level name to a logrus level, warn when unknown
func GetLogLevelFromString(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "warn":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.WarnLevel
	}
}

func newLogger(out io.Writer, level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})
	return l
}

/**
 * Initialize the logging system
 * @param {string} path - Log file path, "console" or empty writes to stderr
 * @param {string} level - Log level (debug/info/warn/error)
 * @param {bool} console - Also write to stderr when logging to a file
 * @param {int} maxSize - Rotation size of the log file in megabytes
 * @description
 * - Log files are rotated by lumberjack, three backups are kept
 * - Falls back to stderr when the log directory cannot be created
 */
func InitLogger(path string, level string, console bool, maxSize int) {
	var output io.Writer = os.Stderr
	if path != "" && path != "console" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err == nil {
			var file io.Writer = &lumberjack.Logger{
				Filename:   path,
				MaxSize:    maxSize,
				MaxBackups: 3,
			}
			if console {
				file = io.MultiWriter(os.Stderr, file)
			}
			output = file
		}
	}
	defaultLogger = newLogger(output, GetLogLevelFromString(level))
}

// SetOutput redirects the logger, tests use it to capture log lines.
func SetOutput(w io.Writer) {
	defaultLogger.SetOutput(w)
}

// SetLevel changes the level of the default logger.
func SetLevel(level string) {
	defaultLogger.SetLevel(GetLogLevelFromString(level))
}

// WithField returns an entry carrying one structured field.
func WithField(key string, value interface{}) *logrus.Entry {
	return defaultLogger.WithField(key, value)
}

// Debug logs at debug level
func Debug(v ...interface{}) {
	defaultLogger.Debugln(v...)
}

// Debugf logs a formatted message at debug level
func Debugf(format string, v ...interface{}) {
	defaultLogger.Debugf(format, v...)
}

// Info logs at info level
func Info(v ...interface{}) {
	defaultLogger.Infoln(v...)
}

// Infof logs a formatted message at info level
func Infof(format string, v ...interface{}) {
	defaultLogger.Infof(format, v...)
}

// Warn logs at warn level
func Warn(v ...interface{}) {
	defaultLogger.Warnln(v...)
}

// Warnf logs a formatted message at warn level
func Warnf(format string, v ...interface{}) {
	defaultLogger.Warnf(format, v...)
}

// Error logs at error level
func Error(v ...interface{}) {
	defaultLogger.Errorln(v...)
}

// Errorf logs a formatted message at error level
func Errorf(format string, v ...interface{}) {
	defaultLogger.Errorf(format, v...)
}

// Fatal logs at fatal level and exits
func Fatal(v ...interface{}) {
	defaultLogger.Fatalln(v...)
}

// Fatalf logs a formatted message at fatal level and exits
func Fatalf(format string, v ...interface{}) {
	defaultLogger.Fatalf(format, v...)
}
