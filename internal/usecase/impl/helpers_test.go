package impl

import (
	"io"
	"log/slog"

	"bazaar/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Search: &config.SearchConfig{
			DefaultRadiusKm: 10,
			MaxRadiusKm:     100,
			DefaultPageSize: 10,
			MaxPageSize:     100,
			PopularLimit:    10,
		},
	}
}
