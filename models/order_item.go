package models

// OrderItem is a by-value line snapshot: MenuItemID is recorded as it was at
// order time and is never re-checked against the menu afterwards.
type OrderItem struct {
	ID         uint `gorm:"primaryKey" json:"-"`
	OrderID    uint `gorm:"not null;index" json:"-"`
	MenuItemID uint `gorm:"not null" json:"menu_item_id"`
	Quantity   int  `gorm:"not null" json:"quantity"`
}
