package database

import (
	"brewbite-pos/internal/models"

	"gorm.io/gorm"
)

// Read-only aggregations for the reporting screens. None of these touch
// consistency; they only render what the engine has committed.

// DailyTotal is one day's summed amount.
type DailyTotal struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
}

// CategoryTotal is one category's summed amount.
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

// SupplierExpense is one supplier+category expense bucket.
type SupplierExpense struct {
	Supplier string  `json:"supplier"`
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

// ProfitSummary compares all-time sales against all-time expenses.
type ProfitSummary struct {
	TotalSales    float64 `json:"total_sales"`
	TotalExpenses float64 `json:"total_expenses"`
	Difference    float64 `json:"difference"`
}

// ValuationItem is one stock row of the valuation report.
type ValuationItem struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	CostPrice float64 `json:"cost_price"`
	TotalCost float64 `json:"total_cost"`
}

// CategoryGroup is one category's table in the valuation report.
type CategoryGroup struct {
	CategoryName string          `json:"category_name"`
	Items        []ValuationItem `json:"items"`
	Subtotal     float64         `json:"subtotal"`
}

// ValuationResponse is the full stock valuation payload.
type ValuationResponse struct {
	Categories []CategoryGroup `json:"categories"`
	GrandTotal float64         `json:"grand_total"`
}

// SalesPerDay sums sale totals grouped by calendar day.
func SalesPerDay(db *gorm.DB) ([]DailyTotal, error) {
	var results []DailyTotal
	err := db.Model(&models.Sale{}).
		Select("DATE(sale_date) as date, COALESCE(SUM(total_cost), 0) as total").
		Group("DATE(sale_date)").
		Order("DATE(sale_date)").
		Scan(&results).Error
	return results, err
}

// SalesByCategory sums sale totals grouped by the sold item's category.
func SalesByCategory(db *gorm.DB) ([]CategoryTotal, error) {
	var results []CategoryTotal
	err := db.Table("sales").
		Select("inventory_items.category as category, COALESCE(SUM(sales.total_cost), 0) as total").
		Joins("JOIN inventory_items ON sales.item_id = inventory_items.id").
		Group("inventory_items.category").
		Scan(&results).Error
	return results, err
}

// ExpensesPerDay sums expense totals grouped by calendar day.
func ExpensesPerDay(db *gorm.DB) ([]DailyTotal, error) {
	var results []DailyTotal
	err := db.Model(&models.Expense{}).
		Select("DATE(expense_date) as date, COALESCE(SUM(total_cost), 0) as total").
		Group("DATE(expense_date)").
		Order("DATE(expense_date)").
		Scan(&results).Error
	return results, err
}

// ExpenseVsSales compares total sales with total expenses.
func ExpenseVsSales(db *gorm.DB) (*ProfitSummary, error) {
	var summary ProfitSummary

	err := db.Model(&models.Sale{}).
		Select("COALESCE(SUM(total_cost), 0)").
		Scan(&summary.TotalSales).Error
	if err != nil {
		return nil, err
	}

	err = db.Model(&models.Expense{}).
		Select("COALESCE(SUM(total_cost), 0)").
		Scan(&summary.TotalExpenses).Error
	if err != nil {
		return nil, err
	}

	summary.Difference = summary.TotalSales - summary.TotalExpenses
	return &summary, nil
}

// ExpensesBySupplier sums expense totals per supplier and category.
func ExpensesBySupplier(db *gorm.DB) ([]SupplierExpense, error) {
	var results []SupplierExpense
	err := db.Table("expenses").
		Select("users.company_name as supplier, expenses.category as category, COALESCE(SUM(expenses.total_cost), 0) as total").
		Joins("JOIN users ON expenses.supplier_id = users.id").
		Group("users.company_name, expenses.category").
		Scan(&results).Error
	return results, err
}

// StockValuation groups current stock by category, valuing each row at
// quantity times unit cost.
func StockValuation(db *gorm.DB) (*ValuationResponse, error) {
	var items []models.InventoryItem
	if err := db.Order("category, item_name").Find(&items).Error; err != nil {
		return nil, err
	}

	resp := &ValuationResponse{}
	var group *CategoryGroup
	for _, item := range items {
		if group == nil || group.CategoryName != item.Category {
			resp.Categories = append(resp.Categories, CategoryGroup{CategoryName: item.Category})
			group = &resp.Categories[len(resp.Categories)-1]
		}
		value := item.TotalValue()
		group.Items = append(group.Items, ValuationItem{
			Name:      item.ItemName,
			Quantity:  item.Quantity,
			CostPrice: item.UnitCost,
			TotalCost: value,
		})
		group.Subtotal += value
		resp.GrandTotal += value
	}
	return resp, nil
}
