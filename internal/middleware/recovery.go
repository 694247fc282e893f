package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/gmoreira/marketpulse/internal/domain/dto"
	"github.com/gmoreira/marketpulse/internal/logger"
)

// RecoveryMiddleware recovers from any panic raised while handling a
// request, logs the stack trace, and answers with the structured 500
// body. A panic never takes the process down with it.
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.L().Error().
					Str("panic", fmt.Sprintf("%v", r)).
					Bytes("stack", debug.Stack()).
					Msg("panic recovered")

				errResponse := dto.NewErrorResponse("internal server error", dto.Metadata{})
				c.AbortWithStatusJSON(http.StatusInternalServerError, errResponse)
			}
		}()

		c.Next()
	}
}
