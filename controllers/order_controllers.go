package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/delishdine/restaurant-app/models"
	"github.com/delishdine/restaurant-app/utils"
)

type OrderController struct {
	DB *gorm.DB
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db}
}

// CreateOrder validates every line item against the active menu before any
// row is written, then stores the order and its items in one transaction.
// All-or-nothing: one bad item rejects the whole request.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var payload map[string]interface{}
	if !bindJSON(c, &payload) {
		return
	}

	items, _ := payload["items"].([]interface{})
	if len(items) == 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("items is required (non-empty array)"))
		return
	}

	rows := make([]models.OrderItem, 0, len(items))
	for _, raw := range items {
		entry, ok := raw.(map[string]interface{})
		if !ok {
			utils.RespondError(c, http.StatusBadRequest, errors.New("Invalid order items"))
			return
		}
		menuItemID, idOK := entry["menu_item_id"].(float64)
		quantity, qtyOK := entry["quantity"].(float64)
		if !idOK || !qtyOK || quantity <= 0 ||
			menuItemID != float64(int64(menuItemID)) || quantity != float64(int64(quantity)) {
			utils.RespondError(c, http.StatusBadRequest, errors.New("Invalid order items"))
			return
		}

		var item models.MenuItem
		err := oc.DB.Where("id = ? AND is_active = ?", int64(menuItemID), true).First(&item).Error
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest,
				fmt.Errorf("Menu item not found or inactive: %d", int64(menuItemID)))
			return
		}

		rows = append(rows, models.OrderItem{
			MenuItemID: item.ID,
			Quantity:   int(quantity),
		})
	}

	order := models.Order{
		Status: models.OrderStatusPending,
		Items:  rows,
	}
	if name, ok := payload["customer_name"].(string); ok && name != "" {
		order.CustomerName = &name
	}

	if err := oc.DB.Create(&order).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"order_id": order.ID})
}

// GetAllOrders lists orders newest first. The sort happens at read time;
// descending id breaks created_at ties deterministically.
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	orders := make([]models.Order, 0)
	err := oc.DB.Preload("Items").Order("created_at DESC, id DESC").Find(&orders).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// UpdateOrderStatus moves an order through Pending -> Confirmed -> Served,
// or to Cancelled while it has not been served (admin surface).
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("order_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid order id"))
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if !bindJSON(c, &body) {
		return
	}
	if !models.ValidOrderStatus(body.Status) {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("unknown status: %s", body.Status))
		return
	}

	var order models.Order
	if err := oc.DB.Preload("Items").First(&order, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Order not found"))
		return
	}

	if !order.CanTransitionTo(body.Status) {
		utils.RespondError(c, http.StatusBadRequest,
			fmt.Errorf("cannot change status from %s to %s", order.Status, body.Status))
		return
	}

	order.Status = body.Status
	if err := oc.DB.Save(&order).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, order)
}
