package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/delishdine/restaurant-app/controllers"
	"github.com/delishdine/restaurant-app/models"
)

func setupContactRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	contactCtrl := controllers.NewContactController(db)
	r.POST("/api/contact", contactCtrl.SubmitContact)
	return r
}

func TestSubmitContact(t *testing.T) {
	db := setupTestDB(t)
	r := setupContactRouter(db)

	w := doJSON(t, r, http.MethodPost, "/api/contact", map[string]interface{}{
		"name":    "Ali",
		"email":   "ali@example.com",
		"message": "Hello there",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, float64(1), resp["id"])
	assert.Equal(t, "Form submitted successfully!", resp["message"])

	// The message is stored with a creation timestamp.
	var stored models.ContactMessage
	assert.NoError(t, db.First(&stored, 1).Error)
	assert.Equal(t, "ali@example.com", stored.Email)
	assert.False(t, stored.CreatedAt.IsZero())
}

func TestSubmitContactBadEmail(t *testing.T) {
	db := setupTestDB(t)
	r := setupContactRouter(db)

	w := doJSON(t, r, http.MethodPost, "/api/contact", map[string]interface{}{
		"name":    "Ali",
		"email":   "not-an-email",
		"message": "Hello there",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "email format is invalid", decodeBody(t, w)["error"])

	// Nothing stored on rejection.
	var count int64
	db.Model(&models.ContactMessage{}).Count(&count)
	assert.Zero(t, count)
}

func TestSubmitContactFirstViolationWins(t *testing.T) {
	db := setupTestDB(t)
	r := setupContactRouter(db)

	// Every field invalid: the response names the first declared field.
	w := doJSON(t, r, http.MethodPost, "/api/contact", map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "name is required", decodeBody(t, w)["error"])
}

func TestSubmitContactMalformedJSON(t *testing.T) {
	db := setupTestDB(t)
	r := setupContactRouter(db)

	w := doRaw(t, r, http.MethodPost, "/api/contact", "{not json")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid JSON", decodeBody(t, w)["error"])
}
