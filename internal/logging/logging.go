package logging

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Levels lists the names accepted by the --log_level flag.
var Levels = []string{"DEBUG", "INFO", "WARNING", "ERROR", "CRITICAL"}

// ParseLevel maps a --log_level value to a logger level, case-insensitively.
// CRITICAL filters at fatal severity; nothing in this tool logs above error,
// so CRITICAL effectively silences diagnostics.
func ParseLevel(name string) (log.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "DEBUG":
		return log.DebugLevel, nil
	case "INFO":
		return log.InfoLevel, nil
	case "WARNING":
		return log.WarnLevel, nil
	case "ERROR":
		return log.ErrorLevel, nil
	case "CRITICAL":
		return log.FatalLevel, nil
	}
	return 0, fmt.Errorf("unknown log level %q (choose one of %s)", name, strings.Join(Levels, ", "))
}

// New returns the timestamped diagnostic logger shared by all components.
func New(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
	})
}
