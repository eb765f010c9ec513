package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mosaicerp/mosaic_backend/utils"
)

// AuthMiddleware resolves the tenant from a Bearer token. Requests without a
// token pass through; handlers that need a tenant reject them later.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.Request.Header.Get("Authorization")

		if auth == "" {
			c.Next()
			return
		}

		const bearer = "Bearer "
		if !strings.HasPrefix(auth, bearer) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}
		auth = auth[len(bearer):]

		validate, err := utils.JwtValidate(auth)
		if err != nil || !validate.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}

		claim, _ := validate.Claims.(*utils.JwtCustomClaim)

		ctx := utils.SetTokenInContext(c.Request.Context(), auth)
		ctx = utils.SetUserIdInContext(ctx, claim.ID)
		ctx = utils.SetBusinessIdInContext(ctx, claim.BusinessId)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
