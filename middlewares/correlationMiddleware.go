package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mosaicerp/mosaic_backend/utils"
)

const correlationHeader = "X-Correlation-Id"

// CorrelationMiddleware tags every request with a correlation id, minting
// one when the caller did not send it.
func CorrelationMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		correlationId := c.Request.Header.Get(correlationHeader)
		if correlationId == "" {
			correlationId = uuid.NewString()
		}

		ctx := utils.SetCorrelationIdInContext(c.Request.Context(), correlationId)
		c.Request = c.Request.WithContext(ctx)
		c.Writer.Header().Set(correlationHeader, correlationId)
		c.Next()
	}
}
