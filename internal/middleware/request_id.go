package middleware

import (
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

const HeaderRequestID = "X-Request-ID"

// RequestID tags every request with an id, reusing the client's header when
// one is present.
func RequestID() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		id := c.Request.Header.Get(HeaderRequestID)
		if id == "" {
			id = uuid.New().String()
		}

		c.Set("request_id", id)
		c.Writer.Header().Set(HeaderRequestID, id)

		c.Next()
	}
}
