package utils

import "github.com/gin-gonic/gin"

// RespondError writes the flat {"error": "..."} envelope every failing
// endpoint shares. The frontend reads data.error verbatim, so keep it flat.
func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, gin.H{"error": err.Error()})
}
