// Package logger writes diagnostic entries to a rotating log file.
// Standard output belongs to the status line, so nothing is ever printed there.
package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures the log file.
type Options struct {
	Path       string
	Debug      bool
	MaxSizeMB  int
	MaxBackups int
}

var (
	debugMode bool
	writer    io.WriteCloser
)

// Init points the logger at opts.Path. Errors are always written there;
// debug entries only when opts.Debug is set. The file is created on the
// first write, so a clean run touches no files.
func Init(opts Options) {
	Close()
	debugMode = opts.Debug
	if opts.Path == "" {
		return
	}
	writer = &lumberjack.Logger{
		Filename:   opts.Path,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		Compress:   false,
	}
}

// Close flushes and releases the log file, if any.
func Close() {
	if writer != nil {
		_ = writer.Close()
		writer = nil
	}
	debugMode = false
}

func IsDebugMode() bool {
	return debugMode
}

func formatEntry(level, message string) string {
	ts := time.Now().Format(time.RFC3339)
	pid := os.Getpid()
	return fmt.Sprintf("[%s] [PID=%d] [%s] %s", ts, pid, level, message)
}

func writeLog(entry string) {
	if writer == nil {
		return
	}
	_, _ = writer.Write([]byte(entry + "\n"))
}

func Debug(message string) {
	if !debugMode {
		return
	}
	writeLog(formatEntry("DEBUG", message))
}

func Debugf(format string, args ...any) {
	if !debugMode {
		return
	}
	Debug(fmt.Sprintf(format, args...))
}

func Error(message string) {
	writeLog(formatEntry("ERROR", message))
}

func Errorf(format string, args ...any) {
	if writer == nil {
		return
	}
	Error(fmt.Sprintf(format, args...))
}
