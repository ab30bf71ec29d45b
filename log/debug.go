// Package log provides file-backed logging plus an env-gated debug log.
// Enable debug traces by setting GALERIA_DEBUG=1.
package log

import (
	"io"
	"log"
	"os"
	"path/filepath"
)

var (
	DebugEnabled bool
	DebugLog     *log.Logger
	debugLogFile *os.File
)

var debugLogFileName = filepath.Join(os.TempDir(), "galeria-debug.log")

// InitDebug initializes debug logging if GALERIA_DEBUG=1 is set.
// Called from Initialize.
func InitDebug() {
	if os.Getenv("GALERIA_DEBUG") != "1" {
		// No-op logger so call sites never need a nil check.
		DebugLog = log.New(io.Discard, "", 0)
		return
	}

	DebugEnabled = true

	f, err := os.OpenFile(debugLogFileName, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	if err != nil {
		if ErrorLog != nil {
			ErrorLog.Printf("could not open debug log file: %s", err)
		}
		DebugLog = log.New(io.Discard, "", 0)
		return
	}

	DebugLog = log.New(f, "DEBUG:", log.Ldate|log.Ltime|log.Lmicroseconds)
	debugLogFile = f

	DebugLog.Printf("debug log: %s", debugLogFileName)
}

// CloseDebug closes the debug log file.
func CloseDebug() {
	if debugLogFile != nil {
		_ = debugLogFile.Close()
	}
}

// Debug logs a debug message if debug mode is enabled.
func Debug(format string, v ...interface{}) {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Printf(format, v...)
	}
}

// InputTrace logs key handling events.
func InputTrace(format string, v ...interface{}) {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Printf("[INPUT] "+format, v...)
	}
}

// RenderTrace logs render events for a component.
func RenderTrace(component, format string, v ...interface{}) {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Printf("[RENDER:"+component+"] "+format, v...)
	}
}
