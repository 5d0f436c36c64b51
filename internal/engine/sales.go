package engine

import (
	"context"
	"errors"
	"time"

	"brewbite-pos/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SaleLine is one item of a sales batch.
type SaleLine struct {
	ItemID    uint
	Quantity  int
	UnitPrice float64
}

// SaleRecord is a sale joined with the name of the item it sold, the
// shape the sales listing renders.
type SaleRecord struct {
	ID           uint      `json:"id"`
	ItemID       uint      `json:"item_id"`
	ItemName     string    `json:"item_name"`
	QuantitySold int       `json:"quantity_sold"`
	UnitPrice    float64   `json:"unit_price"`
	TotalCost    float64   `json:"total_cost"`
	SaleDate     time.Time `json:"sale_date"`
}

// RegisterSales applies a batch of sale lines atomically: every line
// deducts its quantity from stock and inserts a sale row, and a failure
// anywhere rolls back the whole batch. A line naming a missing item or
// asking for more than is on hand fails with a stock conflict.
func (e *Engine) RegisterSales(ctx context.Context, lines []SaleLine) ([]models.Sale, error) {
	for _, line := range lines {
		if err := requirePositiveInt("quantity", line.Quantity); err != nil {
			return nil, err
		}
		if err := requirePositive("unit_price", line.UnitPrice); err != nil {
			return nil, err
		}
	}

	var sales []models.Sale
	err := e.transact(ctx, "register sales", func(tx *gorm.DB) error {
		for _, line := range lines {
			var item models.InventoryItem
			err := tx.First(&item, line.ItemID).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return insufficientStock(line.ItemID, line.Quantity, 0)
			}
			if err != nil {
				return err
			}
			if item.Quantity < line.Quantity {
				return insufficientStock(line.ItemID, line.Quantity, item.Quantity)
			}

			item.Quantity -= line.Quantity
			if err := tx.Save(&item).Error; err != nil {
				return err
			}

			sale := models.Sale{
				ItemID:       line.ItemID,
				QuantitySold: line.Quantity,
				UnitPrice:    line.UnitPrice,
				TotalCost:    float64(line.Quantity) * line.UnitPrice,
				SaleDate:     time.Now(),
			}
			if err := tx.Create(&sale).Error; err != nil {
				return err
			}
			sales = append(sales, sale)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	e.log.Info("sales registered", zap.Int("lines", len(sales)))
	return sales, nil
}

// ListSales returns all sales records joined with their item names.
func (e *Engine) ListSales(ctx context.Context) ([]SaleRecord, error) {
	var records []SaleRecord
	err := e.db.WithContext(ctx).Model(&models.Sale{}).
		Select("sales.id, sales.item_id, inventory_items.item_name, sales.quantity_sold, sales.unit_price, sales.total_cost, sales.sale_date").
		Joins("JOIN inventory_items ON sales.item_id = inventory_items.id").
		Scan(&records).Error
	if err != nil {
		return nil, &InfrastructureError{Op: "list sales", Err: err}
	}
	return records, nil
}

// UpdateSalesRecord changes the sold quantity or the unit price of one
// sale and recomputes its total. Stock is intentionally not re-adjusted:
// inventory deduction happens at registration time only.
func (e *Engine) UpdateSalesRecord(ctx context.Context, id uint, upd SaleUpdate) (*models.Sale, error) {
	switch u := upd.(type) {
	case SetSaleQuantity:
		if err := requirePositiveInt("quantity_sold", u.Quantity); err != nil {
			return nil, err
		}
	case SetSaleUnitPrice:
		if err := requirePositive("unit_price", u.UnitPrice); err != nil {
			return nil, err
		}
	}

	var sale models.Sale
	err := e.transact(ctx, "update sales record", func(tx *gorm.DB) error {
		if err := tx.First(&sale, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return &NotFoundError{Entity: "sales record", ID: id}
			}
			return err
		}

		switch u := upd.(type) {
		case SetSaleQuantity:
			sale.QuantitySold = u.Quantity
		case SetSaleUnitPrice:
			sale.UnitPrice = u.UnitPrice
		}
		sale.TotalCost = float64(sale.QuantitySold) * sale.UnitPrice

		return tx.Save(&sale).Error
	})
	if err != nil {
		return nil, err
	}

	e.log.Info("sales record updated", zap.Uint("sales_id", sale.ID))
	return &sale, nil
}

// DeleteSalesRecord removes one sale. The deducted stock is intentionally
// not restored, mirroring UpdateSalesRecord's rule that inventory moves
// only at registration.
func (e *Engine) DeleteSalesRecord(ctx context.Context, id uint) error {
	err := e.transact(ctx, "delete sales record", func(tx *gorm.DB) error {
		var sale models.Sale
		if err := tx.First(&sale, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return &NotFoundError{Entity: "sales record", ID: id}
			}
			return err
		}
		return tx.Delete(&sale).Error
	})
	if err != nil {
		return err
	}

	e.log.Info("sales record deleted", zap.Uint("sales_id", id))
	return nil
}
