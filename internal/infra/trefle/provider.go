package trefle

import (
	"log/slog"
	"net/http"

	"plantcare/config"
	"plantcare/internal/domain/service"
	"plantcare/internal/infra/cache"

	"go.uber.org/fx"
)

// LookupParams holds dependencies for the plant lookup, injected by Fx
type LookupParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Store  cache.Store `optional:"true"`
}

// NewPlantLookup builds the Trefle client, wrapped with the response cache when one is available.
func NewPlantLookup(params LookupParams) service.PlantLookup {
	cfg := params.Config.Trefle
	if cfg == nil {
		cfg = &config.TrefleConfig{}
	}

	lookup := NewClient(cfg, http.DefaultClient, params.Logger)
	if params.Store == nil {
		return lookup
	}

	params.Logger.Info("Trefle responses cached in Redis", slog.Duration("ttl", cfg.CacheTTL))

	return NewCachedClient(lookup, params.Store, cfg.CacheTTL, params.Logger)
}

// Module provides the Trefle FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewPlantLookup,
	),
)
