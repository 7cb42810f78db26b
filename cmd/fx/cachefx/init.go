package cachefx

import (
	"time"

	"go.uber.org/fx"

	"lotus/internal/services"
	mem "lotus/pkg/memcache"
)

var Module = fx.Provide(
	provideResetTokens, providePublicCache)

func provideResetTokens() mem.ResetTokenStore {
	return mem.NewResetTokens()
}

func providePublicCache() services.PublicCache {
	return mem.NewPublicCache(5 * time.Minute)
}
