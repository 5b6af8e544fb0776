package erl

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

type ILogger interface {
	Println(v ...any)
	Printf(format string, v ...any)
}

// Logger is used by erl and its subpackages. Replace it to route logs
// elsewhere.
var Logger ILogger = NewLogger(zerolog.ConsoleWriter{Out: os.Stdout})

// NewLogger returns an [ILogger] writing structured zerolog events to w.
func NewLogger(w io.Writer) ILogger {
	return zeroLogger{zl: zerolog.New(w).With().Timestamp().Str("module", "erl").Logger()}
}

type zeroLogger struct {
	zl zerolog.Logger
}

func (l zeroLogger) Println(v ...any) {
	l.zl.Info().Msg(strings.TrimSuffix(fmt.Sprintln(v...), "\n"))
}

func (l zeroLogger) Printf(format string, v ...any) {
	l.zl.Info().Msgf(format, v...)
}

var debugLog = false

var debugLogMutex sync.RWMutex

func DebugLogEnabled() bool {
	defer debugLogMutex.RUnlock()
	debugLogMutex.RLock()
	return debugLog
}

func SetDebugLog(v bool) {
	defer debugLogMutex.Unlock()
	debugLogMutex.Lock()

	debugLog = v
}

func DebugPrintln(v ...any) {
	if DebugLogEnabled() {
		Logger.Println(v...)
	}
}

func DebugPrintf(format string, v ...any) {
	if DebugLogEnabled() {
		Logger.Printf(format, v...)
	}
}
