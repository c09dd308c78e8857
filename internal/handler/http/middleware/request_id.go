package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/QAForum/internal/domain/contract"
)

const (
	RequestIDHeader     = "X-Request-ID"
	ContextRequestIDKey = "requestID"
)

// RequestID propagates the caller's X-Request-ID or generates a new one.
func RequestID(gen contract.IUUIDGenerator) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > 128 {
			id = gen.NewUUID()
		}
		c.Set(ContextRequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}
