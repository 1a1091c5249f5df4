package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/delishdine/restaurant-app/models"
	"github.com/delishdine/restaurant-app/utils"
	"github.com/delishdine/restaurant-app/validation"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

var registerRules = []validation.Rule{
	{Field: "name", Type: validation.KindString, MinLength: 2},
	{Field: "email", Type: validation.KindString, Pattern: emailPattern},
	{Field: "password", Type: validation.KindString, MinLength: 6},
	{Field: "role", Type: validation.KindString, Optional: true,
		Enum: []string{models.RoleAdmin, models.RoleStaff}},
}

// Register creates a staff account. Role defaults to staff.
func (uc *UserController) Register(c *gin.Context) {
	var payload map[string]interface{}
	if !bindJSON(c, &payload) {
		return
	}

	if violations := validation.Apply(payload, registerRules); len(violations) > 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New(validation.First(violations)))
		return
	}

	email := payload["email"].(string)
	var existing int64
	if err := uc.DB.Model(&models.User{}).Where("email = ?", email).Count(&existing).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if existing > 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("Email already registered"))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload["password"].(string)), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	user := models.User{
		Name:     payload["name"].(string),
		Email:    email,
		Password: string(hash),
		Role:     models.RoleStaff,
	}
	if role, ok := payload["role"].(string); ok && role != "" {
		user.Role = role
	}

	if err := uc.DB.Create(&user).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": user.ID})
}

// Login verifies credentials and issues an 8-hour bearer token.
func (uc *UserController) Login(c *gin.Context) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !bindJSON(c, &body) {
		return
	}

	var user models.User
	if err := uc.DB.Where("email = ?", body.Email).First(&user).Error; err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("Invalid email or password"))
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)) != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("Invalid email or password"))
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
