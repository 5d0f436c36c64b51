package engine

import (
	"context"
	"time"

	"brewbite-pos/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ExpenseInput carries a new purchase. SupplierID is optional; when set it
// must reference a supplier user.
type ExpenseInput struct {
	Date       time.Time
	Category   string
	SupplierID *uint
	Name       string
	TotalItems int
	UnitCost   float64
}

// AddExpense records a purchase and mirrors it into stock: an existing
// item with the same name gains the purchased quantity and takes the new
// unit cost as its costing basis (last write wins); an unknown name
// creates the inventory row.
func (e *Engine) AddExpense(ctx context.Context, in ExpenseInput) (*models.Expense, error) {
	name, err := requireName("expense_name", in.Name)
	if err != nil {
		return nil, err
	}
	if err := validateExpenseCategory(in.Category); err != nil {
		return nil, err
	}
	if err := requireNonNegativeInt("total_items", in.TotalItems); err != nil {
		return nil, err
	}
	if err := requireNonNegative("unit_cost", in.UnitCost); err != nil {
		return nil, err
	}

	var expense *models.Expense
	err = e.transact(ctx, "add expense", func(tx *gorm.DB) error {
		if in.SupplierID != nil {
			if err := requireSupplier(tx, *in.SupplierID); err != nil {
				return err
			}
		}

		expense = &models.Expense{
			ExpenseDate: in.Date,
			Category:    in.Category,
			SupplierID:  in.SupplierID,
			ExpenseName: name,
			TotalItems:  in.TotalItems,
			UnitCost:    in.UnitCost,
			TotalCost:   float64(in.TotalItems) * in.UnitCost,
		}
		if err := tx.Create(expense).Error; err != nil {
			return err
		}

		item, err := findItemByName(tx, name)
		if err != nil {
			return err
		}
		if item != nil {
			item.Quantity += in.TotalItems
			item.UnitCost = in.UnitCost
			return tx.Save(item).Error
		}
		return tx.Create(&models.InventoryItem{
			ItemName:   name,
			Category:   in.Category,
			Quantity:   in.TotalItems,
			UnitCost:   in.UnitCost,
			SupplierID: in.SupplierID,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	e.log.Info("expense added",
		zap.Uint("expense_id", expense.ID),
		zap.String("expense_name", expense.ExpenseName),
		zap.Int("total_items", expense.TotalItems))
	return expense, nil
}

// UpdateExpense applies one field change to an expense and keeps the
// matching inventory row aligned: a quantity change flows into stock as a
// delta (no floor at zero; a negative count flags mis-tracked stock), a
// rename moves the stock linkage instead of creating a second item. The
// stored total cost is recomputed whenever quantity or unit cost change.
func (e *Engine) UpdateExpense(ctx context.Context, id uint, upd ExpenseUpdate) (*models.Expense, error) {
	switch u := upd.(type) {
	case SetExpenseCategory:
		if err := validateExpenseCategory(u.Category); err != nil {
			return nil, err
		}
	case SetExpenseName:
		if _, err := requireName("expense_name", u.Name); err != nil {
			return nil, err
		}
	case SetExpenseTotalItems:
		if err := requireNonNegativeInt("total_items", u.TotalItems); err != nil {
			return nil, err
		}
	case SetExpenseUnitCost:
		if err := requireNonNegative("unit_cost", u.UnitCost); err != nil {
			return nil, err
		}
	}

	var expense models.Expense
	err := e.transact(ctx, "update expense", func(tx *gorm.DB) error {
		if err := tx.First(&expense, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return &NotFoundError{Entity: "expense", ID: id}
			}
			return err
		}

		switch u := upd.(type) {
		case SetExpenseDate:
			expense.ExpenseDate = u.Date
		case SetExpenseCategory:
			expense.Category = u.Category
		case SetExpenseSupplier:
			if u.SupplierID != nil {
				if err := requireSupplier(tx, *u.SupplierID); err != nil {
					return err
				}
			}
			expense.SupplierID = u.SupplierID
		case SetExpenseTotalItems:
			diff := u.TotalItems - expense.TotalItems
			item, err := findItemByName(tx, expense.ExpenseName)
			if err != nil {
				return err
			}
			if item != nil {
				item.Quantity += diff
				if err := tx.Save(item).Error; err != nil {
					return err
				}
			}
			expense.TotalItems = u.TotalItems
			expense.TotalCost = float64(expense.TotalItems) * expense.UnitCost
		case SetExpenseName:
			name, _ := requireName("expense_name", u.Name)
			item, err := findItemByName(tx, expense.ExpenseName)
			if err != nil {
				return err
			}
			if item != nil {
				item.ItemName = name
				if err := tx.Save(item).Error; err != nil {
					return err
				}
			}
			expense.ExpenseName = name
		case SetExpenseUnitCost:
			expense.UnitCost = u.UnitCost
			expense.TotalCost = float64(expense.TotalItems) * expense.UnitCost
		}

		return tx.Save(&expense).Error
	})
	if err != nil {
		return nil, err
	}

	e.log.Info("expense updated", zap.Uint("expense_id", expense.ID))
	return &expense, nil
}

// DeleteExpense removes a purchase and takes its quantity back out of
// stock. An item driven to zero or below is deleted outright, not clamped.
func (e *Engine) DeleteExpense(ctx context.Context, id uint) error {
	err := e.transact(ctx, "delete expense", func(tx *gorm.DB) error {
		var expense models.Expense
		if err := tx.First(&expense, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return &NotFoundError{Entity: "expense", ID: id}
			}
			return err
		}

		item, err := findItemByName(tx, expense.ExpenseName)
		if err != nil {
			return err
		}
		if item != nil {
			item.Quantity -= expense.TotalItems
			if item.Quantity <= 0 {
				if err := tx.Delete(item).Error; err != nil {
					return err
				}
			} else if err := tx.Save(item).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&expense).Error
	})
	if err != nil {
		return err
	}

	e.log.Info("expense deleted", zap.Uint("expense_id", id))
	return nil
}

// ListExpenses returns all expenses with their supplier preloaded.
func (e *Engine) ListExpenses(ctx context.Context) ([]models.Expense, error) {
	var expenses []models.Expense
	err := e.db.WithContext(ctx).Preload("Supplier").Find(&expenses).Error
	if err != nil {
		return nil, &InfrastructureError{Op: "list expenses", Err: err}
	}
	return expenses, nil
}

// syncExpenseFromInventory gives a directly entered inventory item an
// expense trail. Create-only reconciliation: if any expense already
// carries the item's name, nothing happens - existing expenses are never
// updated from the inventory side.
func syncExpenseFromInventory(tx *gorm.DB, item *models.InventoryItem) error {
	var count int64
	err := tx.Model(&models.Expense{}).
		Where("LOWER(TRIM(expense_name)) = ?", normalizeName(item.ItemName)).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return tx.Create(&models.Expense{
		ExpenseDate: time.Now(),
		Category:    item.Category,
		SupplierID:  item.SupplierID,
		ExpenseName: item.ItemName,
		TotalItems:  item.Quantity,
		UnitCost:    item.UnitCost,
		TotalCost:   float64(item.Quantity) * item.UnitCost,
	}).Error
}
