package engine

import "strings"

// Registration types accepted for users.
const (
	RegistrationCustomer = "customer"
	RegistrationSupplier = "supplier"
	RegistrationAdmin    = "admin"
)

// The two category enumerations are disjoint sets: an expense category is
// never a valid inventory category and vice versa.
var expenseCategories = []string{"Food", "Beverages", "Cleaning", "Maintenance", "Other"}

var inventoryCategories = []string{
	"Food", "Tea", "Coffee", "Soft Drinks", "Cleaning Products",
	"Maintenance", "Dairy Items", "Alcoholic Drinks", "Stationary",
}

var registrationTypes = []string{RegistrationCustomer, RegistrationSupplier, RegistrationAdmin}

// ExpenseCategories returns the closed set of expense categories.
func ExpenseCategories() []string {
	return append([]string(nil), expenseCategories...)
}

// InventoryCategories returns the closed set of inventory categories.
func InventoryCategories() []string {
	return append([]string(nil), inventoryCategories...)
}

func oneOf(value string, allowed []string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}

func validateExpenseCategory(category string) error {
	if !oneOf(category, expenseCategories) {
		return &ValidationError{Field: "category", Value: category, Reason: "not a valid expense category"}
	}
	return nil
}

func validateInventoryCategory(category string) error {
	if !oneOf(category, inventoryCategories) {
		return &ValidationError{Field: "category", Value: category, Reason: "not a valid inventory category"}
	}
	return nil
}

func validateRegistrationType(rt string) error {
	if !oneOf(rt, registrationTypes) {
		return &ValidationError{Field: "registration_type", Value: rt, Reason: "not a valid registration type"}
	}
	return nil
}

// requireName trims the given name and rejects it when nothing remains.
func requireName(field, name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", &ValidationError{Field: field, Value: name, Reason: "cannot be empty"}
	}
	return trimmed, nil
}

func requireNonNegativeInt(field string, value int) error {
	if value < 0 {
		return &ValidationError{Field: field, Value: value, Reason: "cannot be negative"}
	}
	return nil
}

func requireNonNegative(field string, value float64) error {
	if value < 0 {
		return &ValidationError{Field: field, Value: value, Reason: "cannot be negative"}
	}
	return nil
}

func requirePositiveInt(field string, value int) error {
	if value <= 0 {
		return &ValidationError{Field: field, Value: value, Reason: "must be a positive number"}
	}
	return nil
}

func requirePositive(field string, value float64) error {
	if value <= 0 {
		return &ValidationError{Field: field, Value: value, Reason: "must be a positive number"}
	}
	return nil
}
