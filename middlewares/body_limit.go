package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MaxBodyBytes caps request bodies at 1 MB, the same guard the frontend was
// built against.
const MaxBodyBytes = 1_000_000

// BodyLimit wraps the request body so reads past the cap fail with
// http.MaxBytesError, which the JSON binding helpers turn into a 413.
func BodyLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodyBytes)
		c.Next()
	}
}
