package log

import (
	stdlog "log"
	"strings"
)

// RedirectStdLog reroutes the standard library's global logger through the
// facade at InfoLevel, so third-party code logging via package log shares
// trawl's formatting and destination.
func RedirectStdLog(logger Logger) {
	stdlog.SetFlags(0)
	stdlog.SetOutput(stdLogWriter{logger: logger})
}

type stdLogWriter struct {
	logger Logger
}

func (w stdLogWriter) Write(p []byte) (int, error) {
	msg := strings.TrimRight(string(p), "\n")
	if msg != "" {
		w.logger.Info(msg)
	}
	return len(p), nil
}
