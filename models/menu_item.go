package models

// Menu item types the kitchen recognizes.
const (
	MenuTypeStarter = "Starter"
	MenuTypeMain    = "Main"
	MenuTypeDessert = "Dessert"
	MenuTypeDrink   = "Drink"
)

// MenuTypes lists the valid values in menu-card order.
var MenuTypes = []string{MenuTypeStarter, MenuTypeMain, MenuTypeDessert, MenuTypeDrink}

// MenuItem is a dish on the card. Price is in minor currency units (Rs. 850
// is stored as 850). Items are never deleted; deactivation hides them from
// the public menu and blocks new orders referencing them.
type MenuItem struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"type:varchar(255);not null" json:"name"`
	Type     string `gorm:"type:varchar(20);not null" json:"type"`
	Price    int64  `gorm:"not null" json:"price"`
	IsActive bool   `gorm:"not null;default:true" json:"is_active"`
}

// ValidMenuType reports whether t is one of the four known types.
func ValidMenuType(t string) bool {
	for _, known := range MenuTypes {
		if t == known {
			return true
		}
	}
	return false
}
