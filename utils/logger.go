package utils

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger wraps slog.Logger with the site's request and booking helpers.
type Logger struct {
	*slog.Logger
}

// NewLogger builds a text logger in gin debug mode and a JSON logger
// otherwise.
func NewLogger(level string) *Logger {
	lvl := ParseLogLevel(level)
	opts := &slog.HandlerOptions{
		Level:     lvl,
		AddSource: lvl == slog.LevelDebug,
	}

	var handler slog.Handler
	if gin.Mode() == gin.DebugMode {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}
	return &Logger{Logger: slog.New(handler)}
}

// ParseLogLevel converts LOG_LEVEL values to slog levels; unknown values
// mean info.
func ParseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithError adds err to the logger context.
func (l *Logger) WithError(err error) *Logger {
	return &Logger{Logger: l.Logger.With(slog.String("error", err.Error()))}
}

// WithSession adds the visitor session token to the logger context.
func (l *Logger) WithSession(token string) *Logger {
	return &Logger{Logger: l.Logger.With(slog.String("session", token))}
}

// LogHTTPRequest logs one served request.
func (l *Logger) LogHTTPRequest(c *gin.Context, duration time.Duration) {
	l.Logger.InfoContext(c.Request.Context(),
		"HTTP Request",
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
		slog.String("query", c.Request.URL.RawQuery),
		slog.Int("status", c.Writer.Status()),
		slog.Duration("duration", duration),
		slog.String("ip", c.ClientIP()),
		slog.Int("size", c.Writer.Size()),
	)
}

// LogUpstreamCall logs one call to the reservation service.
func (l *Logger) LogUpstreamCall(ctx context.Context, method, url string, status int, duration time.Duration, err error) {
	if err != nil {
		l.Logger.WarnContext(ctx,
			"Reservation Service Call Failed",
			slog.String("method", method),
			slog.String("url", url),
			slog.Int("status", status),
			slog.Duration("duration", duration),
			slog.String("error", err.Error()),
		)
		return
	}
	l.Logger.DebugContext(ctx,
		"Reservation Service Call",
		slog.String("method", method),
		slog.String("url", url),
		slog.Int("status", status),
		slog.Duration("duration", duration),
	)
}

// LogBookingSubmitted logs an acknowledged booking.
func (l *Logger) LogBookingSubmitted(ctx context.Context, reference string, roomID uint, nights int, email string) {
	l.Logger.InfoContext(ctx,
		"Booking Submitted",
		slog.String("reference", reference),
		slog.Uint64("room_id", uint64(roomID)),
		slog.Int("nights", nights),
		slog.String("email", MaskEmail(email)),
	)
}

// LogContactMessageSent logs an acknowledged contact message.
func (l *Logger) LogContactMessageSent(ctx context.Context, subject, email string) {
	l.Logger.InfoContext(ctx, "Contact Message Sent",
		slog.String("subject", subject),
		slog.String("email", MaskEmail(email)),
	)
}

var defaultLogger = &Logger{Logger: slog.Default()}

// GetLogger returns the process logger.
func GetLogger() *Logger {
	return defaultLogger
}

// SetLogger replaces the process logger.
func SetLogger(logger *Logger) {
	defaultLogger = logger
}
