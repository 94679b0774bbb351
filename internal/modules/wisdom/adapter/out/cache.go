package out

import (
	"time"

	"github.com/coocood/freecache"

	wisdomout "gentlemind/internal/modules/wisdom/port/out"
	"gentlemind/internal/platform/logging"
)

type FreeCache struct {
	cache *freecache.Cache
	ttl   int
}

// NewCache returns a freecache-backed cache, or a no-op one when caching is
// disabled or sized at zero.
func NewCache(enabled bool, sizeMB int, ttl time.Duration, logger logging.Logger) wisdomout.Cache {
	if !enabled || sizeMB <= 0 {
		logger.Infof(logging.TypeWisdom, "Wisdom cache disabled")
		return noopCache{}
	}
	seconds := max(int(ttl.Seconds()), 1)
	logger.Infof(logging.TypeWisdom, "Wisdom cache initialized: %dMB, TTL=%ds", sizeMB, seconds)
	return &FreeCache{cache: freecache.NewCache(sizeMB * 1024 * 1024), ttl: seconds}
}

func (c *FreeCache) Get(key string) (string, bool) {
	val, err := c.cache.Get([]byte(key))
	if err != nil {
		return "", false
	}
	return string(val), true
}

func (c *FreeCache) Set(key, value string) {
	_ = c.cache.Set([]byte(key), []byte(value), c.ttl)
}

type noopCache struct{}

func (noopCache) Get(string) (string, bool) { return "", false }
func (noopCache) Set(string, string)        {}
