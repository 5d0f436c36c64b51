package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpenseUpdateForField(t *testing.T) {
	upd, err := ExpenseUpdateForField("total_items", float64(15))
	require.NoError(t, err)
	assert.Equal(t, SetExpenseTotalItems{TotalItems: 15}, upd)

	upd, err = ExpenseUpdateForField("expense_date", "2026-08-30")
	require.NoError(t, err)
	assert.Equal(t, day("2026-08-30"), upd.(SetExpenseDate).Date)

	upd, err = ExpenseUpdateForField("supplier_id", nil)
	require.NoError(t, err)
	assert.Nil(t, upd.(SetExpenseSupplier).SupplierID)

	var ve *ValidationError
	_, err = ExpenseUpdateForField("total_cost", float64(10))
	require.ErrorAs(t, err, &ve, "derived fields are not updatable")
	assert.Equal(t, "field", ve.Field)

	_, err = ExpenseUpdateForField("total_items", 2.5)
	require.ErrorAs(t, err, &ve, "fractional item counts are rejected")

	_, err = ExpenseUpdateForField("expense_name", 12)
	require.ErrorAs(t, err, &ve)
}

func TestInventoryUpdateForFieldRejectsUnknown(t *testing.T) {
	var ve *ValidationError
	_, err := InventoryUpdateForField("supplier_id", float64(1))
	require.ErrorAs(t, err, &ve, "the supplier linkage is not editable in place")

	_, err = InventoryUpdateForField("sparkle", "yes")
	require.ErrorAs(t, err, &ve)
}

func TestSaleUpdateForField(t *testing.T) {
	upd, err := SaleUpdateForField("unit_price", float64(3.75))
	require.NoError(t, err)
	assert.Equal(t, SetSaleUnitPrice{UnitPrice: 3.75}, upd)

	var ve *ValidationError
	_, err = SaleUpdateForField("item_id", float64(2))
	require.ErrorAs(t, err, &ve, "a sale cannot be repointed at another item")

	_, err = SaleUpdateForField("sale_date", "2026-08-30")
	require.ErrorAs(t, err, &ve)
}

func TestUserUpdateForField(t *testing.T) {
	upd, err := UserUpdateForField("contact", "0777000111")
	require.NoError(t, err)
	assert.Equal(t, SetUserContact{Contact: "0777000111"}, upd)

	var ve *ValidationError
	_, err = UserUpdateForField("registration_type", "admin")
	require.ErrorAs(t, err, &ve, "registration type is fixed at registration")

	_, err = UserUpdateForField("username", "other")
	require.ErrorAs(t, err, &ve)
}
