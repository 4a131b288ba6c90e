package history

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Swethareddy21395/EchoText/internal/config"
)

// Module provides synthesis history dependencies.
var Module = fx.Module("history",
	fx.Provide(NewStoreProvider),
)

// NewStoreProvider creates a Store with a config-derived cache size.
func NewStoreProvider(logger *zap.Logger, cfg *config.Config) Store {
	size := cfg.History.CacheSize
	if size <= 0 {
		logger.Warn("History CacheSize is not configured or is invalid, defaulting to 50",
			zap.Int("configuredSize", size))
		size = 50
	}

	return NewStore(logger, size)
}
