package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/moodtrackr/backend/internal/logger"
)

// RequestIDHeader is the header used to propagate correlation IDs.
const RequestIDHeader = "X-Request-ID"

// RequestID assigns a correlation ID to every request.
// An incoming X-Request-ID header is honored; otherwise a UUID is generated.
// The ID is stored in the gin context, the request context (for logging),
// and echoed back in the response headers.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set("request_id", requestID)
		c.Header(RequestIDHeader, requestID)

		ctx := logger.WithRequestID(c.Request.Context(), requestID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
