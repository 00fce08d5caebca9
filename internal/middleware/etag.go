package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/etag"
)

// NewETag tags successful responses with a weak ETag. A conditional GET
// whose If-None-Match list holds the current tag, or "*", gets a 304.
func NewETag() fiber.Handler {
	tag := etag.New(etag.Config{Weak: true})
	return func(c *fiber.Ctx) error {
		if err := tag(c); err != nil {
			return err
		}
		if c.Method() != fiber.MethodGet && c.Method() != fiber.MethodHead {
			return nil
		}
		if c.Response().StatusCode() != fiber.StatusOK || c.Get(fiber.HeaderIfNoneMatch) == "" {
			return nil
		}
		// etag only compares a single tag, lists are matched here
		if c.Fresh() {
			c.Context().ResetBody()
			c.Status(fiber.StatusNotModified)
		}
		return nil
	}
}
