package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// InitLogger configures the default slog logger to write to stderr and, when logPath is not empty,
// to the file at logPath as well. Stdout is left alone because it carries the simulation report.
//
// Parameters:
//   - logPath: file the log is appended to, empty to log only to stderr
//   - logLevel: DEBUG, INFO, WARN or ERROR, as read from the config file
//
// Example:
//
//	func main() {
//		closeLog, err := log.InitLogger("./pager.log", "INFO")
//		if err != nil {
//			panic(err)
//		}
//		defer closeLog()
//	}
func InitLogger(logPath string, logLevel string) (func() error, error) {
	var out io.Writer = os.Stderr
	closeLog := func() error { return nil }

	if logPath != "" {
		logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0666)
		if err != nil {
			return closeLog, err
		}
		out = io.MultiWriter(os.Stderr, logFile)
		closeLog = logFile.Close
	}

	level, err := convertStringToLogLevel(logLevel)

	slog.SetDefault(NewLogger(out, level))

	// Unknown level: INFO is already in place, just tell the user.
	if err != nil {
		slog.Warn(err.Error())
	}

	slog.Debug("Logger configured", "path", logPath, "level", level.String())
	return closeLog, nil
}

// NewLogger builds a text logger writing to out.
func NewLogger(out io.Writer, level slog.Level) *slog.Logger {
	handler := slog.NewTextHandler(out, &slog.HandlerOptions{
		Level: level,
	})
	return slog.New(handler)
}

// convertStringToLogLevel maps the level name from the config file to a slog.Level.
func convertStringToLogLevel(levelStr string) (slog.Level, error) {
	switch levelStr {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "INFO":
		return slog.LevelInfo, nil
	case "WARN":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("log level %q does not exist, using INFO", levelStr)
	}
}
