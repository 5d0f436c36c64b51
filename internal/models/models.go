package models

import (
	"time"
)

// User - customers, admins and the suppliers that stock and purchases
// reference. Company fields are only meaningful for suppliers, RoleType
// only for admins.
type User struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Username         string    `gorm:"uniqueIndex;size:50" json:"username"`
	PasswordHash     string    `json:"-"` // Never return this in JSON
	Contact          string    `gorm:"size:20" json:"contact"`
	Email            string    `gorm:"size:100" json:"email"`
	RegistrationType string    `gorm:"size:20" json:"registration_type"` // 'customer', 'supplier', 'admin'
	RoleType         string    `gorm:"size:50" json:"role_type,omitempty"`
	CompanyName      string    `gorm:"size:100" json:"company_name,omitempty"`
	CompanyCity      string    `gorm:"size:50" json:"company_city,omitempty"`
	CompanyPhone     string    `gorm:"size:20" json:"company_phone,omitempty"`
	CompanyCategory  string    `gorm:"size:50" json:"company_category,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// InventoryItem - one stock row per item name. SupplierID is nil only on
// rows the engine creates implicitly from a supplier-less expense.
type InventoryItem struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	ItemName   string  `gorm:"size:100;index" json:"item_name"`
	Category   string  `gorm:"size:50" json:"category"`
	Quantity   int     `json:"quantity"`
	UnitCost   float64 `json:"unit_cost"`
	SupplierID *uint   `json:"supplier_id"`
	Supplier   *User   `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
}

// TotalValue is always derived, never stored.
func (i InventoryItem) TotalValue() float64 {
	return float64(i.Quantity) * i.UnitCost
}

// Expense - a purchase record. Every expense feeds the inventory row that
// shares its (normalized) name.
type Expense struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ExpenseDate time.Time `json:"expense_date"`
	Category    string    `gorm:"size:50" json:"category"`
	SupplierID  *uint     `json:"supplier_id"`
	Supplier    *User     `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
	ExpenseName string    `gorm:"size:100;index" json:"expense_name"`
	TotalItems  int       `json:"total_items"`
	UnitCost    float64   `json:"unit_cost"`
	TotalCost   float64   `json:"total_cost"` // TotalItems * UnitCost
}

// Sale - one sold line. Registered in batches, each deducting stock.
type Sale struct {
	ID           uint          `gorm:"primaryKey" json:"id"`
	ItemID       uint          `json:"item_id"`
	Item         InventoryItem `gorm:"foreignKey:ItemID" json:"item"`
	QuantitySold int           `json:"quantity_sold"`
	UnitPrice    float64       `json:"unit_price"`
	TotalCost    float64       `json:"total_cost"` // QuantitySold * UnitPrice
	SaleDate     time.Time     `json:"sale_date"`
}
