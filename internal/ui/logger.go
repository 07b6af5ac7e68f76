package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
)

var logger *log.Logger

func InitLogger(verbose bool) {
	logger = log.NewWithOptions(os.Stderr, log.Options{
		Level:           log.InfoLevel,
		ReportTimestamp: false,
		ReportCaller:    false,
	})

	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
}

func Debug(msg string, args ...any) {
	if logger != nil {
		logger.Debug(msg, args...)
	}
}

func Info(msg string, args ...any) {
	if logger != nil {
		logger.Info(msg, args...)
	}
}

func Warn(msg string, args ...any) {
	if logger != nil {
		logger.Warn(msg, args...)
	}
}

// PrintError writes a styled error line to stdout.
func PrintError(format string, args ...any) {
	fmt.Printf("%s %s\n", ErrorMsg("Error:"), fmt.Sprintf(format, args...))
}

// Fatal prints an error and exits with a failure status.
func Fatal(format string, args ...any) {
	PrintError(format, args...)
	os.Exit(1)
}
