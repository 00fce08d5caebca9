package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/segmentio/ksuid"
)

const RequestIDKey = "requestid"

// NewRequestID tags every request with a sortable id, reusing the one set by
// an upstream proxy when present.
func NewRequestID() fiber.Handler {
	return requestid.New(requestid.Config{
		Header:     fiber.HeaderXRequestID,
		ContextKey: RequestIDKey,
		Generator: func() string {
			return ksuid.New().String()
		},
	})
}
