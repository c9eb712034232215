package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/patrickmn/go-cache"
)

type cachedResponse struct {
	status      int
	contentType []byte
	body        []byte
}

// ResponseCache serves successful GET responses from an in-memory store.
// Keyed by the full request URI; entries expire after the given duration.
func (m *Middleware) ResponseCache(store *cache.Cache, duration time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Method() != fiber.MethodGet {
			return c.Next()
		}

		key := c.OriginalURL()
		if resp, found := store.Get(key); found {
			cached := resp.(cachedResponse)
			c.Set(fiber.HeaderContentType, string(cached.contentType))
			return c.Status(cached.status).Send(cached.body)
		}

		if err := c.Next(); err != nil {
			return err
		}

		// Only cache successful responses
		status := c.Response().StatusCode()
		if status >= 200 && status < 300 {
			response := cachedResponse{
				status:      status,
				contentType: append([]byte(nil), c.Response().Header.ContentType()...),
				body:        append([]byte(nil), c.Response().Body()...),
			}
			store.Set(key, response, duration)
		}

		return nil
	}
}
