package engine

import (
	"context"

	"brewbite-pos/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// InventoryInput carries a directly entered stock item. Unlike expenses,
// the supplier is mandatory here.
type InventoryInput struct {
	Name       string
	Category   string
	Quantity   int
	UnitCost   float64
	SupplierID uint
}

// AddInventoryItem records new stock and, when no expense yet carries the
// item's name, creates one so that every stock entry has a purchase trail.
func (e *Engine) AddInventoryItem(ctx context.Context, in InventoryInput) (*models.InventoryItem, error) {
	name, err := requireName("item_name", in.Name)
	if err != nil {
		return nil, err
	}
	if err := validateInventoryCategory(in.Category); err != nil {
		return nil, err
	}
	if err := requireNonNegativeInt("quantity", in.Quantity); err != nil {
		return nil, err
	}
	if err := requireNonNegative("unit_cost", in.UnitCost); err != nil {
		return nil, err
	}
	if in.SupplierID == 0 {
		return nil, &ValidationError{Field: "supplier_id", Value: in.SupplierID, Reason: "supplier is required"}
	}

	var item *models.InventoryItem
	err = e.transact(ctx, "add inventory item", func(tx *gorm.DB) error {
		if err := requireSupplier(tx, in.SupplierID); err != nil {
			return err
		}
		sid := in.SupplierID
		item = &models.InventoryItem{
			ItemName:   name,
			Category:   in.Category,
			Quantity:   in.Quantity,
			UnitCost:   in.UnitCost,
			SupplierID: &sid,
		}
		if err := tx.Create(item).Error; err != nil {
			return err
		}
		return syncExpenseFromInventory(tx, item)
	})
	if err != nil {
		return nil, err
	}

	e.log.Info("inventory item added",
		zap.Uint("item_id", item.ID),
		zap.String("item_name", item.ItemName),
		zap.Int("quantity", item.Quantity))
	return item, nil
}

// FetchInventory returns stock rows with suppliers preloaded, optionally
// filtered by category. Empty category means everything.
func (e *Engine) FetchInventory(ctx context.Context, category string) ([]models.InventoryItem, error) {
	query := e.db.WithContext(ctx).Preload("Supplier")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	var items []models.InventoryItem
	if err := query.Find(&items).Error; err != nil {
		return nil, &InfrastructureError{Op: "fetch inventory", Err: err}
	}
	return items, nil
}

// UpdateInventoryItem applies one field change to a stock row. Inventory
// edits never flow back into expenses; the purchase trail created at add
// time is the only expense-side effect inventory ever has.
func (e *Engine) UpdateInventoryItem(ctx context.Context, id uint, upd InventoryUpdate) (*models.InventoryItem, error) {
	switch u := upd.(type) {
	case SetItemName:
		if _, err := requireName("item_name", u.Name); err != nil {
			return nil, err
		}
	case SetItemCategory:
		if err := validateInventoryCategory(u.Category); err != nil {
			return nil, err
		}
	case SetItemQuantity:
		if err := requireNonNegativeInt("quantity", u.Quantity); err != nil {
			return nil, err
		}
	case SetItemUnitCost:
		if err := requireNonNegative("unit_cost", u.UnitCost); err != nil {
			return nil, err
		}
	}

	var item models.InventoryItem
	err := e.transact(ctx, "update inventory item", func(tx *gorm.DB) error {
		if err := tx.First(&item, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return &NotFoundError{Entity: "inventory item", ID: id}
			}
			return err
		}

		switch u := upd.(type) {
		case SetItemName:
			name, _ := requireName("item_name", u.Name)
			item.ItemName = name
		case SetItemCategory:
			item.Category = u.Category
		case SetItemQuantity:
			item.Quantity = u.Quantity
		case SetItemUnitCost:
			item.UnitCost = u.UnitCost
		}

		return tx.Save(&item).Error
	})
	if err != nil {
		return nil, err
	}

	e.log.Info("inventory item updated", zap.Uint("item_id", item.ID))
	return &item, nil
}

// DeleteInventoryItem removes a stock row. The item's expense history is
// left untouched.
func (e *Engine) DeleteInventoryItem(ctx context.Context, id uint) error {
	err := e.transact(ctx, "delete inventory item", func(tx *gorm.DB) error {
		var item models.InventoryItem
		if err := tx.First(&item, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return &NotFoundError{Entity: "inventory item", ID: id}
			}
			return err
		}
		return tx.Delete(&item).Error
	})
	if err != nil {
		return err
	}

	e.log.Info("inventory item deleted", zap.Uint("item_id", id))
	return nil
}
