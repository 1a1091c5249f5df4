package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/delishdine/restaurant-app/models"
	"github.com/delishdine/restaurant-app/utils"
	"github.com/delishdine/restaurant-app/validation"
)

type MenuController struct {
	DB *gorm.DB
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{DB: db}
}

var menuCreateRules = []validation.Rule{
	{Field: "name", Type: validation.KindString, MinLength: 2},
	{Field: "type", Type: validation.KindString, Enum: models.MenuTypes},
	{Field: "price", Type: validation.KindNumber, Int: true, Min: validation.MinOf(0)},
	{Field: "is_active", Type: validation.KindBoolean, Optional: true},
}

// GetActiveMenu lists the dishes currently on the card. Deactivated items
// stay in the store but never show here.
func (mc *MenuController) GetActiveMenu(c *gin.Context) {
	items := make([]models.MenuItem, 0)
	if err := mc.DB.Where("is_active = ?", true).Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreateMenuItem adds a dish (admin surface). Validation failures answer
// with the full issue list so the admin UI can mark every bad field.
func (mc *MenuController) CreateMenuItem(c *gin.Context) {
	var payload map[string]interface{}
	if !bindJSON(c, &payload) {
		return
	}

	if violations := validation.Apply(payload, menuCreateRules); len(violations) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Validation failed",
			"details": violations,
		})
		return
	}

	item := models.MenuItem{
		Name:     payload["name"].(string),
		Type:     payload["type"].(string),
		Price:    int64(payload["price"].(float64)),
		IsActive: true,
	}
	if active, ok := payload["is_active"].(bool); ok {
		item.IsActive = active
	}

	if err := mc.DB.Create(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

// DeactivateMenuItem takes a dish off the card. Items are never deleted;
// this is the only lifecycle transition they have.
func (mc *MenuController) DeactivateMenuItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("menu_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid menu id"))
		return
	}

	var item models.MenuItem
	if err := mc.DB.First(&item, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Menu item not found"))
		return
	}

	item.IsActive = false
	if err := mc.DB.Save(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, item)
}
