package pkg

import (
	"io"
	"log/slog"
	"strings"
)

func NewLogger(w io.Writer, level string) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: parseLevel(level)})
	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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

// MaskSecret оставляет от ключа только края, чтобы его можно было опознать в логах.
func MaskSecret(secret string) string {
	const visible = 4

	if len(secret) <= visible*2 {
		return strings.Repeat("*", len(secret))
	}

	return secret[:visible] + "…" + secret[len(secret)-visible:]
}
