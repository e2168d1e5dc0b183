package utils

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

var (
	loggerInstance *Logger
	loggerOnce     sync.Once
)

// Logger writes leveled log lines to the session log file and the console.
type Logger struct {
	infoLogger  *log.Logger
	warnLogger  *log.Logger
	errorLogger *log.Logger
	debugLogger *log.Logger
}

// defaultLogFilePath returns the default log file path, creating the
// application directory if needed.
func defaultLogFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("Failed to get home directory: %v", err)
	}
	logDir := filepath.Join(homeDir, ".listcli")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.Fatalf("Failed to create log directory: %v", err)
	}
	return filepath.Join(logDir, "listcli.log")
}

// NewLogger creates the logger instance (singleton). Debug lines reach the
// console only when debugMode is set; they always reach the log file.
func NewLogger(logFilePath string, debugMode bool) *Logger {
	loggerOnce.Do(func() {
		if logFilePath == "" {
			logFilePath = defaultLogFilePath()
		}

		file, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}

		multiWriter := io.MultiWriter(file, os.Stdout)

		debugWriter := io.Writer(file)
		if debugMode {
			debugWriter = multiWriter
		}

		loggerInstance = &Logger{
			infoLogger:  log.New(multiWriter, "[INFO] ", log.Ldate|log.Ltime),
			warnLogger:  log.New(multiWriter, "[WARN] ", log.Ldate|log.Ltime),
			errorLogger: log.New(multiWriter, "[ERROR] ", log.Ldate|log.Ltime),
			debugLogger: log.New(debugWriter, "[DEBUG] ", log.Ldate|log.Ltime),
		}
	})
	return loggerInstance
}

// GetLogger retrieves the singleton logger instance. If NewLogger was never
// called it falls back to a console-only logger, so library-level callers
// never have to care about logger setup.
func GetLogger() *Logger {
	loggerOnce.Do(func() {
		loggerInstance = &Logger{
			infoLogger:  log.New(os.Stdout, "[INFO] ", log.Ldate|log.Ltime),
			warnLogger:  log.New(os.Stdout, "[WARN] ", log.Ldate|log.Ltime),
			errorLogger: log.New(os.Stderr, "[ERROR] ", log.Ldate|log.Ltime),
			debugLogger: log.New(io.Discard, "[DEBUG] ", log.Ldate|log.Ltime),
		}
	})
	return loggerInstance
}

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
