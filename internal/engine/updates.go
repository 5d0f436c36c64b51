package engine

import (
	"fmt"
	"time"
)

// Field updates are closed sum types: one variant per field an operation
// is allowed to touch. A field outside the set cannot be expressed, so
// there is no runtime allow-list to get out of sync with the schema.

// ExpenseUpdate is one permitted change to an expense row.
type ExpenseUpdate interface{ isExpenseUpdate() }

type SetExpenseDate struct{ Date time.Time }
type SetExpenseCategory struct{ Category string }
type SetExpenseSupplier struct{ SupplierID *uint }
type SetExpenseName struct{ Name string }
type SetExpenseTotalItems struct{ TotalItems int }
type SetExpenseUnitCost struct{ UnitCost float64 }

func (SetExpenseDate) isExpenseUpdate()       {}
func (SetExpenseCategory) isExpenseUpdate()   {}
func (SetExpenseSupplier) isExpenseUpdate()   {}
func (SetExpenseName) isExpenseUpdate()       {}
func (SetExpenseTotalItems) isExpenseUpdate() {}
func (SetExpenseUnitCost) isExpenseUpdate()   {}

// InventoryUpdate is one permitted change to an inventory item.
type InventoryUpdate interface{ isInventoryUpdate() }

type SetItemName struct{ Name string }
type SetItemCategory struct{ Category string }
type SetItemQuantity struct{ Quantity int }
type SetItemUnitCost struct{ UnitCost float64 }

func (SetItemName) isInventoryUpdate()     {}
func (SetItemCategory) isInventoryUpdate() {}
func (SetItemQuantity) isInventoryUpdate() {}
func (SetItemUnitCost) isInventoryUpdate() {}

// SaleUpdate is one permitted change to a sales record. Only the sold
// quantity and the unit price are mutable after registration.
type SaleUpdate interface{ isSaleUpdate() }

type SetSaleQuantity struct{ Quantity int }
type SetSaleUnitPrice struct{ UnitPrice float64 }

func (SetSaleQuantity) isSaleUpdate()  {}
func (SetSaleUnitPrice) isSaleUpdate() {}

// UserUpdate is one permitted change to a user record.
type UserUpdate interface{ isUserUpdate() }

type SetUserPassword struct{ Password string }
type SetUserContact struct{ Contact string }
type SetUserEmail struct{ Email string }
type SetUserRoleType struct{ RoleType string }
type SetUserCompanyName struct{ CompanyName string }
type SetUserCompanyCity struct{ CompanyCity string }
type SetUserCompanyPhone struct{ CompanyPhone string }
type SetUserCompanyCategory struct{ CompanyCategory string }

func (SetUserPassword) isUserUpdate()        {}
func (SetUserContact) isUserUpdate()         {}
func (SetUserEmail) isUserUpdate()           {}
func (SetUserRoleType) isUserUpdate()        {}
func (SetUserCompanyName) isUserUpdate()     {}
func (SetUserCompanyCity) isUserUpdate()     {}
func (SetUserCompanyPhone) isUserUpdate()    {}
func (SetUserCompanyCategory) isUserUpdate() {}

// The *UpdateForField constructors translate the loosely typed JSON shape
// {"field": ..., "value": ...} coming over HTTP into a closed variant.
// Unknown field names are rejected here, before any row lookup happens.

func ExpenseUpdateForField(field string, value any) (ExpenseUpdate, error) {
	switch field {
	case "expense_date":
		s, err := stringValue(field, value)
		if err != nil {
			return nil, err
		}
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			return nil, &ValidationError{Field: field, Value: s, Reason: "expected YYYY-MM-DD"}
		}
		return SetExpenseDate{Date: d}, nil
	case "category":
		s, err := stringValue(field, value)
		if err != nil {
			return nil, err
		}
		return SetExpenseCategory{Category: s}, nil
	case "supplier_id":
		if value == nil {
			return SetExpenseSupplier{}, nil
		}
		id, err := intValue(field, value)
		if err != nil {
			return nil, err
		}
		sid := uint(id)
		return SetExpenseSupplier{SupplierID: &sid}, nil
	case "expense_name":
		s, err := stringValue(field, value)
		if err != nil {
			return nil, err
		}
		return SetExpenseName{Name: s}, nil
	case "total_items":
		n, err := intValue(field, value)
		if err != nil {
			return nil, err
		}
		return SetExpenseTotalItems{TotalItems: n}, nil
	case "unit_cost":
		f, err := floatValue(field, value)
		if err != nil {
			return nil, err
		}
		return SetExpenseUnitCost{UnitCost: f}, nil
	}
	return nil, &ValidationError{Field: "field", Value: field, Reason: "not an updatable expense field"}
}

func InventoryUpdateForField(field string, value any) (InventoryUpdate, error) {
	switch field {
	case "item_name":
		s, err := stringValue(field, value)
		if err != nil {
			return nil, err
		}
		return SetItemName{Name: s}, nil
	case "category":
		s, err := stringValue(field, value)
		if err != nil {
			return nil, err
		}
		return SetItemCategory{Category: s}, nil
	case "quantity":
		n, err := intValue(field, value)
		if err != nil {
			return nil, err
		}
		return SetItemQuantity{Quantity: n}, nil
	case "unit_cost":
		f, err := floatValue(field, value)
		if err != nil {
			return nil, err
		}
		return SetItemUnitCost{UnitCost: f}, nil
	}
	return nil, &ValidationError{Field: "field", Value: field, Reason: "not an updatable inventory field"}
}

func SaleUpdateForField(field string, value any) (SaleUpdate, error) {
	switch field {
	case "quantity_sold":
		n, err := intValue(field, value)
		if err != nil {
			return nil, err
		}
		return SetSaleQuantity{Quantity: n}, nil
	case "unit_price":
		f, err := floatValue(field, value)
		if err != nil {
			return nil, err
		}
		return SetSaleUnitPrice{UnitPrice: f}, nil
	}
	return nil, &ValidationError{Field: "field", Value: field, Reason: "not an updatable sales field"}
}

func UserUpdateForField(field string, value any) (UserUpdate, error) {
	known := map[string]bool{
		"password": true, "contact": true, "email": true, "role_type": true,
		"company_name": true, "company_city": true, "company_phone": true,
		"company_category": true,
	}
	if !known[field] {
		return nil, &ValidationError{Field: "field", Value: field, Reason: "not an updatable user field"}
	}
	s, err := stringValue(field, value)
	if err != nil {
		return nil, err
	}
	switch field {
	case "password":
		return SetUserPassword{Password: s}, nil
	case "contact":
		return SetUserContact{Contact: s}, nil
	case "email":
		return SetUserEmail{Email: s}, nil
	case "role_type":
		return SetUserRoleType{RoleType: s}, nil
	case "company_name":
		return SetUserCompanyName{CompanyName: s}, nil
	case "company_city":
		return SetUserCompanyCity{CompanyCity: s}, nil
	case "company_phone":
		return SetUserCompanyPhone{CompanyPhone: s}, nil
	default:
		return SetUserCompanyCategory{CompanyCategory: s}, nil
	}
}

func stringValue(field string, value any) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", &ValidationError{Field: field, Value: value, Reason: "expected a string"}
	}
	return s, nil
}

// intValue accepts both Go ints and the float64 that encoding/json
// produces for every number, as long as it is integral.
func intValue(field string, value any) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case float64:
		if v != float64(int(v)) {
			return 0, &ValidationError{Field: field, Value: value, Reason: "expected a whole number"}
		}
		return int(v), nil
	}
	return 0, &ValidationError{Field: field, Value: fmt.Sprintf("%v", value), Reason: "expected a number"}
}

func floatValue(field string, value any) (float64, error) {
	switch v := value.(type) {
	case int:
		return float64(v), nil
	case float64:
		return v, nil
	}
	return 0, &ValidationError{Field: field, Value: fmt.Sprintf("%v", value), Reason: "expected a number"}
}
