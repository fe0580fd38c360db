package utils

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

var debugLogger *log.Logger
var debugFile *os.File

// DebugLogPath returns the path of the debug log file
func DebugLogPath() string {
	return filepath.Join(os.TempDir(), "golist_debug.log")
}

func InitDebugLogger() {
	var err error
	debugFile, err = os.OpenFile(DebugLogPath(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create log file: %v\n", err)
		return
	}

	SetDebugOutput(debugFile)
	debugLogger.Println("=== Debug Session Start ===", time.Now())
}

// SetDebugOutput routes diagnostics to w. A nil writer disables them.
func SetDebugOutput(w io.Writer) {
	if w == nil {
		debugLogger = nil
		return
	}
	debugLogger = log.New(w, "", log.Ldate|log.Ltime|log.Lshortfile)
}

func CloseDebugLogger() {
	if debugFile != nil {
		debugLogger.Println("=== Debug Session End ===", time.Now())
		debugFile.Close()
		debugFile = nil
	}
	debugLogger = nil
}

func DebugLog(format string, args ...interface{}) {
	if debugLogger != nil {
		debugLogger.Output(2, fmt.Sprintf(format, args...))
	}
}
