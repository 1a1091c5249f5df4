package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/delishdine/restaurant-app/models"
	"github.com/delishdine/restaurant-app/utils"
	"github.com/delishdine/restaurant-app/validation"
)

type ReservationController struct {
	DB *gorm.DB
}

func NewReservationController(db *gorm.DB) *ReservationController {
	return &ReservationController{DB: db}
}

var reservationRules = []validation.Rule{
	{Field: "customer_name", Type: validation.KindString, MinLength: 2},
	{Field: "phone", Type: validation.KindString, Optional: true},
	{Field: "table_no", Type: validation.KindNumber, Int: true, Min: validation.MinOf(1)},
	// Minimum length 10 is a cheap "looks like a date" check; the value is
	// stored as sent, the way the datetime-local input produces it.
	{Field: "reserved_at", Type: validation.KindString, MinLength: 10},
	{Field: "notes", Type: validation.KindString, Optional: true},
}

// CreateReservation books a table. The same table cannot be booked twice
// for the same time; a second attempt answers 409.
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var payload map[string]interface{}
	if !bindJSON(c, &payload) {
		return
	}

	if violations := validation.Apply(payload, reservationRules); len(violations) > 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New(validation.First(violations)))
		return
	}

	tableNo := int(payload["table_no"].(float64))
	reservedAt := payload["reserved_at"].(string)

	var taken int64
	err := rc.DB.Model(&models.Reservation{}).
		Where("table_no = ? AND reserved_at = ?", tableNo, reservedAt).
		Count(&taken).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if taken > 0 {
		utils.RespondError(c, http.StatusConflict,
			fmt.Errorf("Table %d is already reserved at %s", tableNo, reservedAt))
		return
	}

	resv := models.Reservation{
		CustomerName: payload["customer_name"].(string),
		TableNo:      tableNo,
		ReservedAt:   reservedAt,
	}
	if phone, ok := payload["phone"].(string); ok && phone != "" {
		resv.Phone = &phone
	}
	if notes, ok := payload["notes"].(string); ok && notes != "" {
		resv.Notes = &notes
	}

	if err := rc.DB.Create(&resv).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": resv.ID})
}

// GetAllReservations lists reservations by reserved_at descending. ISO-8601
// strings sort lexicographically in time order; id breaks ties.
func (rc *ReservationController) GetAllReservations(c *gin.Context) {
	reservations := make([]models.Reservation, 0)
	err := rc.DB.Order("reserved_at DESC, id DESC").Find(&reservations).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, reservations)
}
