package models

import "time"

// Order statuses. Every order starts as Pending; staff move it forward.
const (
	OrderStatusPending   = "Pending"
	OrderStatusConfirmed = "Confirmed"
	OrderStatusServed    = "Served"
	OrderStatusCancelled = "Cancelled"
)

// orderTransitions is the allowed state machine:
// Pending -> Confirmed -> Served, with Cancelled reachable until serving.
var orderTransitions = map[string][]string{
	OrderStatusPending:   {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed: {OrderStatusServed, OrderStatusCancelled},
}

type Order struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	CustomerName *string     `gorm:"type:varchar(255)" json:"customer_name"`
	Status       string      `gorm:"type:varchar(20);not null;default:'Pending'" json:"status"`
	CreatedAt    time.Time   `gorm:"not null" json:"created_at"`
	Items        []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
}

// CanTransitionTo reports whether the order may move to the given status.
func (o *Order) CanTransitionTo(status string) bool {
	for _, next := range orderTransitions[o.Status] {
		if next == status {
			return true
		}
	}
	return false
}

// ValidOrderStatus reports whether s names any known status.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusServed, OrderStatusCancelled:
		return true
	}
	return false
}
