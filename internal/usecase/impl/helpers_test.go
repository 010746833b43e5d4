package impl

import (
	"io"
	"log/slog"

	"plantcare/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(maxResults int) *config.Config {
	cfg := &config.Config{}
	cfg.Suggestion.MaxResults = maxResults

	return cfg
}

func ptr[T any](v T) *T {
	return &v
}
