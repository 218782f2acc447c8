package http_requestid_middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const HeaderName = "X-Request-ID"

// Middleware tags every request with an id, reusing the client's when set.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderName)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(HeaderName, id)
		c.Next()
	}
}
