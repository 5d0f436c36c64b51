package engine

import (
	"context"
	"errors"
	"strings"

	"brewbite-pos/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Engine coordinates every mutation of users, expenses, inventory and
// sales so that the three stay mutually consistent: each expense mutation
// is mirrored into stock, each sale deducts stock, and the whole write
// plan for one logical operation commits or rolls back as a unit.
//
// The expense/inventory sync is deliberately asymmetric: inventory
// creation produces an expense trail once, expense mutations always flow
// into inventory, and inventory edits never flow back into expenses.
type Engine struct {
	db  *gorm.DB
	log *zap.Logger
}

// New creates an Engine on top of an open database handle.
func New(db *gorm.DB, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{db: db, log: logger}
}

// transact runs fn inside one transaction scoped to ctx. Any error rolls
// the whole transaction back; expected domain errors pass through
// verbatim, everything else is wrapped with the operation name.
func (e *Engine) transact(ctx context.Context, op string, fn func(tx *gorm.DB) error) error {
	err := e.db.WithContext(ctx).Transaction(fn)
	if err == nil {
		return nil
	}
	if isDomainError(err) {
		return err
	}
	e.log.Error("operation failed", zap.String("op", op), zap.Error(err))
	return &InfrastructureError{Op: op, Err: err}
}

// normalizeName is the de-duplication key linking expenses to inventory
// rows: trimmed and case-folded, so "  Milk " and "milk" are one item.
func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// findItemByName resolves the inventory row matching a purchase or sync
// name, or nil when no such row exists.
func findItemByName(tx *gorm.DB, name string) (*models.InventoryItem, error) {
	var item models.InventoryItem
	err := tx.Where("LOWER(TRIM(item_name)) = ?", normalizeName(name)).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// requireSupplier confirms that id belongs to a user registered as a
// supplier. Any other user, or no user at all, is a validation failure.
func requireSupplier(tx *gorm.DB, id uint) error {
	var supplier models.User
	err := tx.Where("id = ? AND registration_type = ?", id, RegistrationSupplier).
		First(&supplier).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &ValidationError{Field: "supplier_id", Value: id, Reason: "supplier does not exist"}
	}
	return err
}
