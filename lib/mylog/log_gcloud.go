package mylog

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/MarcGrol/shopfront/lib/mycontext"
)

func init() {
	if os.Getenv("GOOGLE_CLOUD_PROJECT") != "" {
		New = newGcloudLogger
	}
}

// Cloud Logging picks up these fields from JSON lines written to stdout.
const (
	severityField = "severity"
	traceField    = "logging.googleapis.com/trace"
	labelsField   = "logging.googleapis.com/labels"
)

type structuredLogger struct {
	componentName string
	logger        zerolog.Logger
}

func newGcloudLogger(componentName string) Logger {
	return structuredLogger{
		componentName: componentName,
		logger: zerolog.New(os.Stdout).
			With().
			Str("component", componentName).
			Logger(),
	}
}

func (l structuredLogger) Log(ctx context.Context, traceLabel string, severity Severity, format string, a ...any) {
	// Log() emits an event without zerolog's own level field; severity is set explicitly.
	event := l.logger.Log().Str(severityField, string(severity))
	if traceLabel != "" {
		event = event.Dict(labelsField, zerolog.Dict().Str("aggregate", traceLabel))
	}
	if trace := mycontext.TraceFromContext(ctx); trace != "" {
		event = event.Str(traceField, trace)
	}
	event.Msg(l.componentName + ":" + fmt.Sprintf(format, a...))
}
