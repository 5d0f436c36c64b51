package engine

import (
	"context"
	"errors"

	"brewbite-pos/internal/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RegisterUserInput carries a new registration. The company fields only
// apply to suppliers, RoleType only to admins; both may be left empty.
type RegisterUserInput struct {
	Username         string
	Password         string
	Contact          string
	Email            string
	RegistrationType string
	RoleType         string
	CompanyName      string
	CompanyCity      string
	CompanyPhone     string
	CompanyCategory  string
}

// RegisterUser stores a new user with a bcrypt password hash. Username
// and email must both be unused.
func (e *Engine) RegisterUser(ctx context.Context, in RegisterUserInput) (*models.User, error) {
	username, err := requireName("username", in.Username)
	if err != nil {
		return nil, err
	}
	if in.Password == "" {
		return nil, &ValidationError{Field: "password", Value: "", Reason: "cannot be empty"}
	}
	if err := validateRegistrationType(in.RegistrationType); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, &InfrastructureError{Op: "hash password", Err: err}
	}

	user := &models.User{
		Username:         username,
		PasswordHash:     string(hashed),
		Contact:          in.Contact,
		Email:            in.Email,
		RegistrationType: in.RegistrationType,
		RoleType:         in.RoleType,
		CompanyName:      in.CompanyName,
		CompanyCity:      in.CompanyCity,
		CompanyPhone:     in.CompanyPhone,
		CompanyCategory:  in.CompanyCategory,
	}
	err = e.transact(ctx, "register user", func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&models.User{}).
			Where("username = ? OR email = ?", username, in.Email).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return &ConflictError{Message: "username or email already exists"}
		}
		return tx.Create(user).Error
	})
	if err != nil {
		return nil, err
	}

	e.log.Info("user registered",
		zap.Uint("user_id", user.ID),
		zap.String("username", user.Username),
		zap.String("registration_type", user.RegistrationType))
	return user, nil
}

// Authenticate verifies a username/password pair against the stored
// bcrypt hash and returns the matching user.
func (e *Engine) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	var user models.User
	err := e.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, &InfrastructureError{Op: "authenticate", Err: err}
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// ListUsers returns every registered user.
func (e *Engine) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := e.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, &InfrastructureError{Op: "list users", Err: err}
	}
	return users, nil
}

// ListSuppliers returns only the users registered as suppliers, the set
// valid as supplier references on expenses and inventory.
func (e *Engine) ListSuppliers(ctx context.Context) ([]models.User, error) {
	var suppliers []models.User
	err := e.db.WithContext(ctx).
		Where("registration_type = ?", RegistrationSupplier).
		Find(&suppliers).Error
	if err != nil {
		return nil, &InfrastructureError{Op: "list suppliers", Err: err}
	}
	return suppliers, nil
}

// UpdateUser applies one field change to a user. A password change is
// re-hashed before storage.
func (e *Engine) UpdateUser(ctx context.Context, id uint, upd UserUpdate) (*models.User, error) {
	var user models.User
	err := e.transact(ctx, "update user", func(tx *gorm.DB) error {
		if err := tx.First(&user, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return &NotFoundError{Entity: "user", ID: id}
			}
			return err
		}

		switch u := upd.(type) {
		case SetUserPassword:
			if u.Password == "" {
				return &ValidationError{Field: "password", Value: "", Reason: "cannot be empty"}
			}
			hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			user.PasswordHash = string(hashed)
		case SetUserContact:
			user.Contact = u.Contact
		case SetUserEmail:
			user.Email = u.Email
		case SetUserRoleType:
			user.RoleType = u.RoleType
		case SetUserCompanyName:
			user.CompanyName = u.CompanyName
		case SetUserCompanyCity:
			user.CompanyCity = u.CompanyCity
		case SetUserCompanyPhone:
			user.CompanyPhone = u.CompanyPhone
		case SetUserCompanyCategory:
			user.CompanyCategory = u.CompanyCategory
		}

		return tx.Save(&user).Error
	})
	if err != nil {
		return nil, err
	}

	e.log.Info("user updated", zap.Uint("user_id", user.ID))
	return &user, nil
}

// DeleteUser removes a user. A supplier takes its owned records with it:
// every expense and inventory item referencing it is deleted in the same
// transaction.
func (e *Engine) DeleteUser(ctx context.Context, id uint) error {
	err := e.transact(ctx, "delete user", func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return &NotFoundError{Entity: "user", ID: id}
			}
			return err
		}

		if user.RegistrationType == RegistrationSupplier {
			if err := tx.Where("supplier_id = ?", id).Delete(&models.Expense{}).Error; err != nil {
				return err
			}
			if err := tx.Where("supplier_id = ?", id).Delete(&models.InventoryItem{}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&user).Error
	})
	if err != nil {
		return err
	}

	e.log.Info("user deleted", zap.Uint("user_id", id))
	return nil
}
