package logger

import (
	"go.uber.org/zap"
)

// Log is the process-wide logger. It defaults to a nop so packages
// that log (worker pool, middleware) stay safe to use before Init
// runs; cmd replaces it with a real logger at boot.
var Log = zap.NewNop()

// Init builds the global logger. Debug mode uses the development
// config (console encoder, DPanic on bugs), otherwise production JSON.
func Init(debug bool) error {
	var err error
	if debug {
		Log, err = zap.NewDevelopment()
	} else {
		Log, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(Log)
	return nil
}

// Sync flushes buffered entries. Call on shutdown.
func Sync() {
	if Log != nil {
		_ = Log.Sync()
	}
}
