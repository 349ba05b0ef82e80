package utils

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// Log levels
const (
	INFO  = "INFO"
	WARN  = "WARN"
	ERROR = "ERROR"
	DEBUG = "DEBUG"
)

var (
	instance *Logger
	once     sync.Once
)

// Logger struct
type Logger struct {
	infoLogger  *log.Logger
	warnLogger  *log.Logger
	errorLogger *log.Logger
	debugLogger *log.Logger
}

// getDefaultLogFilePath returns the default log file path
func getDefaultLogFilePath() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "vessel.log"), nil
}

// DataDir returns ~/.vessel, creating it if needed.
func DataDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(homeDir, ".vessel")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

// newLogger builds the four level loggers. Debug lines reach the console
// only in debug mode; they always reach the file.
func newLogger(file io.Writer, console io.Writer, debugMode bool) *Logger {
	var out io.Writer = console
	if file != nil {
		out = io.MultiWriter(file, console)
	}

	var debugWriter io.Writer
	switch {
	case debugMode:
		debugWriter = out
	case file != nil:
		debugWriter = file
	default:
		debugWriter = io.Discard
	}

	return &Logger{
		infoLogger:  log.New(out, "[INFO] ", log.Ldate|log.Ltime),
		warnLogger:  log.New(out, "[WARN] ", log.Ldate|log.Ltime),
		errorLogger: log.New(out, "[ERROR] ", log.Ldate|log.Ltime),
		debugLogger: log.New(debugWriter, "[DEBUG] ", log.Ldate|log.Ltime),
	}
}

// NewLogger creates a new logger instance (singleton)
func NewLogger(logFilePath string, debugMode bool) *Logger {
	once.Do(func() {
		if logFilePath == "" {
			path, err := getDefaultLogFilePath()
			if err != nil {
				log.Printf("Falling back to console logging: %v", err)
				instance = newLogger(nil, os.Stdout, debugMode)
				return
			}
			logFilePath = path
		}

		// Open the log file
		file, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("Failed to open log file, falling back to console logging: %v", err)
			instance = newLogger(nil, os.Stdout, debugMode)
			return
		}

		instance = newLogger(file, os.Stdout, debugMode)
	})
	return instance
}

// GetLogger retrieves the singleton logger instance. If NewLogger was never
// called it installs a console-only logger.
func GetLogger() *Logger {
	once.Do(func() {
		instance = newLogger(nil, os.Stdout, false)
	})
	return instance
}

// Logging methods
func (l *Logger) Info(message string) {
	l.infoLogger.Println(message)
}

func (l *Logger) Warn(message string) {
	l.warnLogger.Println(message)
}

func (l *Logger) Error(message string) {
	l.errorLogger.Println(message)
}

func (l *Logger) Debug(message string) {
	l.debugLogger.Println(message)
}
