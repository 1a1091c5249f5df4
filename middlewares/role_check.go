package middlewares

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/delishdine/restaurant-app/utils"
)

// RequireRole allows the request through only when the authenticated
// identity carries one of the permitted roles. Must run after
// AuthMiddleware; an absent identity is forbidden, not unauthorized, to
// match the guard it replaces.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, exists := c.Get(CtxRole)
		if exists {
			for _, role := range roles {
				if current == role {
					c.Next()
					return
				}
			}
		}
		utils.RespondError(c, http.StatusForbidden, errors.New("Forbidden"))
		c.Abort()
	}
}
