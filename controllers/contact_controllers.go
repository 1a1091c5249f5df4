package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/delishdine/restaurant-app/models"
	"github.com/delishdine/restaurant-app/utils"
	"github.com/delishdine/restaurant-app/validation"
)

type ContactController struct {
	DB *gorm.DB
}

func NewContactController(db *gorm.DB) *ContactController {
	return &ContactController{DB: db}
}

var contactRules = []validation.Rule{
	{Field: "name", Type: validation.KindString, MinLength: 2},
	{Field: "email", Type: validation.KindString, Pattern: emailPattern},
	{Field: "message", Type: validation.KindString, MinLength: 5},
}

// SubmitContact stores a contact-form message. The collection is a
// write-only sink: no endpoint reads it back.
func (cc *ContactController) SubmitContact(c *gin.Context) {
	var payload map[string]interface{}
	if !bindJSON(c, &payload) {
		return
	}

	if violations := validation.Apply(payload, contactRules); len(violations) > 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New(validation.First(violations)))
		return
	}

	msg := models.ContactMessage{
		Name:    payload["name"].(string),
		Email:   payload["email"].(string),
		Message: payload["message"].(string),
	}
	if err := cc.DB.Create(&msg).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":      msg.ID,
		"message": "Form submitted successfully!",
	})
}
