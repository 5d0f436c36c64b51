package engine

import (
	"context"
	"testing"

	"brewbite-pos/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedItem(t *testing.T, e *Engine, name string, quantity int) *models.InventoryItem {
	t.Helper()
	supplier := seedSupplier(t, e)
	item, err := e.AddInventoryItem(context.Background(), InventoryInput{
		Name: name, Category: "Food", Quantity: quantity, UnitCost: 1.0,
		SupplierID: supplier.ID,
	})
	require.NoError(t, err)
	return item
}

func TestRegisterSalesDeductsStock(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()
	item := seedItem(t, e, "Brownies", 12)

	sales, err := e.RegisterSales(ctx, []SaleLine{
		{ItemID: item.ID, Quantity: 5, UnitPrice: 2.5},
	})
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, 12.5, sales[0].TotalCost)

	var got models.InventoryItem
	require.NoError(t, e.db.First(&got, item.ID).Error)
	assert.Equal(t, 7, got.Quantity)
}

func TestRegisterSalesInsufficientStock(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()
	item := seedItem(t, e, "Muffins", 2)

	_, err := e.RegisterSales(ctx, []SaleLine{
		{ItemID: item.ID, Quantity: 5, UnitPrice: 10},
	})
	var ce *ConflictError
	require.ErrorAs(t, err, &ce)
	assert.Contains(t, ce.Error(), "insufficient stock")

	var got models.InventoryItem
	require.NoError(t, e.db.First(&got, item.ID).Error)
	assert.Equal(t, 2, got.Quantity, "no partial deduction")
	assert.Zero(t, countSales(t, e))
}

func TestRegisterSalesUnknownItemIsStockConflict(t *testing.T) {
	e := newTestEngine(t)

	_, err := e.RegisterSales(context.Background(), []SaleLine{
		{ItemID: 404, Quantity: 1, UnitPrice: 1},
	})
	var ce *ConflictError
	require.ErrorAs(t, err, &ce)
}

func TestRegisterSalesBatchAtomicity(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()
	plenty := seedItem(t, e, "Lattes", 10)
	scarce := seedItem(t, e, "Flat Whites", 1)

	_, err := e.RegisterSales(ctx, []SaleLine{
		{ItemID: plenty.ID, Quantity: 3, UnitPrice: 3.2},
		{ItemID: scarce.ID, Quantity: 4, UnitPrice: 3.4},
	})
	var ce *ConflictError
	require.ErrorAs(t, err, &ce)

	// The first line's deduction and insertion must be rolled back too.
	var got models.InventoryItem
	require.NoError(t, e.db.First(&got, plenty.ID).Error)
	assert.Equal(t, 10, got.Quantity)
	assert.Zero(t, countSales(t, e))
}

func TestRegisterSalesRejectsNonPositiveLines(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()
	item := seedItem(t, e, "Teacakes", 10)

	var ve *ValidationError
	_, err := e.RegisterSales(ctx, []SaleLine{{ItemID: item.ID, Quantity: 0, UnitPrice: 1}})
	require.ErrorAs(t, err, &ve)

	_, err = e.RegisterSales(ctx, []SaleLine{{ItemID: item.ID, Quantity: 1, UnitPrice: 0}})
	require.ErrorAs(t, err, &ve)

	var got models.InventoryItem
	require.NoError(t, e.db.First(&got, item.ID).Error)
	assert.Equal(t, 10, got.Quantity)
}

func TestUpdateSalesRecordRecomputesTotal(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()
	item := seedItem(t, e, "Paninis", 20)

	sales, err := e.RegisterSales(ctx, []SaleLine{{ItemID: item.ID, Quantity: 4, UnitPrice: 5.0}})
	require.NoError(t, err)

	updated, err := e.UpdateSalesRecord(ctx, sales[0].ID, SetSaleQuantity{Quantity: 6})
	require.NoError(t, err)
	assert.Equal(t, 30.0, updated.TotalCost)

	updated, err = e.UpdateSalesRecord(ctx, sales[0].ID, SetSaleUnitPrice{UnitPrice: 4.5})
	require.NoError(t, err)
	assert.Equal(t, 27.0, updated.TotalCost)

	// Stock moves only at registration, never on later edits.
	var got models.InventoryItem
	require.NoError(t, e.db.First(&got, item.ID).Error)
	assert.Equal(t, 16, got.Quantity)
}

func TestDeleteSalesRecordLeavesStockAlone(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()
	item := seedItem(t, e, "Smoothies", 9)

	sales, err := e.RegisterSales(ctx, []SaleLine{{ItemID: item.ID, Quantity: 3, UnitPrice: 4.0}})
	require.NoError(t, err)

	require.NoError(t, e.DeleteSalesRecord(ctx, sales[0].ID))

	assert.Zero(t, countSales(t, e))
	var got models.InventoryItem
	require.NoError(t, e.db.First(&got, item.ID).Error)
	assert.Equal(t, 6, got.Quantity, "deleting a sale does not restore stock")
}

func TestDeleteSalesRecordNotFound(t *testing.T) {
	e := newTestEngine(t)

	err := e.DeleteSalesRecord(context.Background(), 31)
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "sales record", nf.Entity)
}

func TestListSalesJoinsItemNames(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()
	item := seedItem(t, e, "Iced Tea", 15)

	_, err := e.RegisterSales(ctx, []SaleLine{{ItemID: item.ID, Quantity: 2, UnitPrice: 2.2}})
	require.NoError(t, err)

	records, err := e.ListSales(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Iced Tea", records[0].ItemName)
	assert.Equal(t, 4.4, records[0].TotalCost)
}
