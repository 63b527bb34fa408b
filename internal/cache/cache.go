package cache

import (
	"bytes"
	"crypto/md5"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/gin-gonic/gin"
	"github.com/medscanlabs/oncoserve/internal/monitoring"
)

// Cache stores rendered prediction responses keyed by request body. Entries
// expire after the configured TTL and the least recently used entry is
// evicted once maxEntries is reached.
type Cache struct {
	lru        *expirable.LRU[string, []byte]
	ttl        time.Duration
	maxEntries int
}

// NewCache creates a new cache with the specified TTL and capacity
func NewCache(ttl time.Duration, maxEntries int) *Cache {
	return &Cache{
		lru:        expirable.NewLRU[string, []byte](maxEntries, nil, ttl),
		ttl:        ttl,
		maxEntries: maxEntries,
	}
}

// generateKey creates a consistent key from the request body
func (c *Cache) generateKey(input string) string {
	hash := md5.Sum([]byte(input))
	return fmt.Sprintf("%x", hash)
}

// Get retrieves an item from the cache
func (c *Cache) Get(key string) ([]byte, bool) {
	return c.lru.Get(key)
}

// Set stores an item in the cache
func (c *Cache) Set(key string, data []byte) {
	c.lru.Add(key, data)
}

// Delete removes an item from the cache
func (c *Cache) Delete(key string) {
	c.lru.Remove(key)
}

// Clear removes all items from the cache
func (c *Cache) Clear() {
	c.lru.Purge()
}

// Size returns the number of items in the cache
func (c *Cache) Size() int {
	return c.lru.Len()
}

// Stats returns cache statistics
func (c *Cache) Stats() map[string]interface{} {
	return map[string]interface{}{
		"items":       c.lru.Len(),
		"max_entries": c.maxEntries,
		"ttl_seconds": c.ttl.Seconds(),
	}
}

// Middleware creates a Gin middleware for caching prediction responses.
// Identical feature vectors produce identical predictions for a given model,
// so the raw request body is a sound cache key.
func (c *Cache) Middleware(metrics *monitoring.Metrics, logger *monitoring.Logger) func(*gin.Context) {
	return func(ctx *gin.Context) {
		// Only cache POST requests to /predict
		if ctx.Request.Method != "POST" || ctx.Request.URL.Path != "/predict" {
			ctx.Next()
			return
		}

		// Read request body
		body, err := io.ReadAll(ctx.Request.Body)
		if err != nil {
			ctx.Next()
			return
		}

		// Restore body for next handler
		ctx.Request.Body = io.NopCloser(bytes.NewBuffer(body))

		// Generate cache key from request body
		cacheKey := c.generateKey(string(body))

		// Check cache
		if cachedData, found := c.Get(cacheKey); found {
			logger.CacheLogger("get", cacheKey, true, c.Size())
			metrics.IncrementCacheHit()
			ctx.Data(http.StatusOK, "application/json", cachedData)
			ctx.Abort()
			return
		}

		// Cache miss - capture response
		logger.CacheLogger("get", cacheKey, false, c.Size())
		metrics.IncrementCacheMiss()

		// Create a response writer wrapper to capture the response
		wrapper := &responseWriter{ResponseWriter: ctx.Writer, body: &bytes.Buffer{}}

		ctx.Writer = wrapper
		ctx.Next()

		// Cache the response if successful
		if ctx.Writer.Status() == http.StatusOK {
			c.Set(cacheKey, wrapper.body.Bytes())
			logger.CacheLogger("set", cacheKey, false, c.Size())
		}
	}
}

// responseWriter wraps gin.ResponseWriter to capture response body
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *responseWriter) Write(data []byte) (int, error) {
	w.body.Write(data)
	return w.ResponseWriter.Write(data)
}

func (w *responseWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
