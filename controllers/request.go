package controllers

import (
	"errors"
	"io"
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"

	"github.com/delishdine/restaurant-app/utils"
)

// emailPattern is the same loose local@domain.tld check the contact form
// uses client-side.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// bindJSON decodes the request body into dst and reports failures with the
// shared error envelope. An empty body decodes as an empty payload; a body
// past the 1 MB cap answers 413; anything else unparseable answers 400.
func bindJSON(c *gin.Context, dst interface{}) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}

	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		utils.RespondError(c, http.StatusRequestEntityTooLarge, errors.New("Payload too large"))
		c.Abort()
		return false
	}

	utils.RespondError(c, http.StatusBadRequest, errors.New("Invalid JSON"))
	return false
}
