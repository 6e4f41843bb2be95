package memcachefx

import (
	"go.uber.org/fx"

	mem "yatra/pkg/memcache"
)

var Module = fx.Provide(provideQueryCache)

func provideQueryCache() mem.QueryCache {
	return mem.NewQueryCache()
}
