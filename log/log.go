package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

var logFileName = filepath.Join(os.TempDir(), "galeria.log")

var (
	InfoLog    *log.Logger
	WarningLog *log.Logger
	ErrorLog   *log.Logger

	globalLogFile *os.File
)

// Initialize opens the log file and sets up the global loggers. Every log
// statement writes to the file; the TUI owns the screen so nothing goes to
// stdout. Call Close before exiting.
func Initialize() {
	f, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		// Fall back to discarding logs rather than fighting the TUI for stdout.
		InfoLog = log.New(io.Discard, "", 0)
		WarningLog = log.New(io.Discard, "", 0)
		ErrorLog = log.New(io.Discard, "", 0)
		return
	}

	InfoLog = log.New(f, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
	WarningLog = log.New(f, "WARN: ", log.Ldate|log.Ltime|log.Lshortfile)
	ErrorLog = log.New(f, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)
	globalLogFile = f

	InitDebug()
}

// Close closes the log file and, if anything was written, prints its location.
func Close() {
	CloseDebug()
	if globalLogFile == nil {
		return
	}
	stat, err := globalLogFile.Stat()
	_ = globalLogFile.Close()
	if err == nil && stat.Size() > 0 {
		fmt.Println("wrote logs to " + logFileName)
	}
}
