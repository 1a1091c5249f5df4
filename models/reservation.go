package models

// Reservation books a table for a point in time. ReservedAt stays the string
// the client sent (datetime-local format); listing sorts on it
// lexicographically, which is chronological for ISO-8601 strings.
type Reservation struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	CustomerName string  `gorm:"type:varchar(255);not null" json:"customer_name"`
	Phone        *string `gorm:"type:varchar(50)" json:"phone"`
	TableNo      int     `gorm:"not null;index:idx_table_slot" json:"table_no"`
	ReservedAt   string  `gorm:"type:varchar(50);not null;index:idx_table_slot" json:"reserved_at"`
	Notes        *string `gorm:"type:text" json:"notes"`
}
