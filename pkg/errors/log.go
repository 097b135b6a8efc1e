package errors

import (
	"os"

	"github.com/rs/zerolog"
)

// LogHandler is an ErrorHandler that writes structured log events.
type LogHandler struct {
	// Logger receives the events. When nil, JSON lines go to stderr.
	Logger *zerolog.Logger
	// Verbose adds stack traces to the events.
	Verbose bool
}

// NewLogHandler returns a handler writing through logger.
func NewLogHandler(logger zerolog.Logger, verbose bool) *LogHandler {
	return &LogHandler{Logger: &logger, Verbose: verbose}
}

func (h *LogHandler) logger() *zerolog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	l := zerolog.New(os.Stderr).With().Timestamp().Logger()
	h.Logger = &l
	return h.Logger
}

// HandleError logs a SwitchError at error level.
func (h *LogHandler) HandleError(err *SwitchError) {
	if err == nil {
		return
	}
	event := h.logger().Error().
		Str("op", err.Op).
		Stringer("kind", err.Kind).
		Err(err.Err)
	if err.Path != "" {
		event = event.Str("path", err.Path)
	}
	if h.Verbose && err.StackTrace != "" {
		event = event.Str("stack", err.StackTrace)
	}
	event.Msg("switchkit error")
}

// HandlePanic logs a PanicError at error level.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	event := h.logger().Error().Interface("panic", err.Value)
	if err.Op != "" {
		event = event.Str("op", err.Op)
	}
	if h.Verbose && err.StackTrace != "" {
		event = event.Str("stack", err.StackTrace)
	}
	event.Msg("switchkit panic recovered")
}
