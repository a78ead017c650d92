package viewer

import (
	"strconv"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/glintdev/glint/internal/log"
)

const (
	cacheExpiration      = 5 * time.Minute
	cacheCleanupInterval = 10 * time.Minute
)

// renderCache memoizes rendered lines. Rendering applies per-span lipgloss
// styles and tab expansion, which dominates View() cost on large files; a
// line renders identically until the buffer, the width, or the theme
// changes, and all three flush the cache.
type renderCache struct {
	cache *gocache.Cache
}

func newRenderCache() *renderCache {
	return &renderCache{cache: gocache.New(cacheExpiration, cacheCleanupInterval)}
}

// key builds the cache key for a line at a given render width.
func (c *renderCache) key(line, width int) string {
	return strconv.Itoa(line) + ":" + strconv.Itoa(width)
}

// Get retrieves a rendered line.
func (c *renderCache) Get(line, width int) (string, bool) {
	v, found := c.cache.Get(c.key(line, width))
	if !found {
		return "", false
	}
	s, ok := v.(string)
	if !ok {
		log.Error(log.CatCache, "wrong type in render cache", "line", line)
		return "", false
	}
	return s, true
}

// Set stores a rendered line.
func (c *renderCache) Set(line, width int, rendered string) {
	c.cache.Set(c.key(line, width), rendered, gocache.DefaultExpiration)
}

// Flush drops every cached line.
func (c *renderCache) Flush() {
	c.cache.Flush()
}
