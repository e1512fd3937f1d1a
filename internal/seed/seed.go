// internal/seed/seed.go

// Package seed bootstraps the platform admin account directly in the core
// API's relational database. It is the one part of this service that talks
// to a database instead of the HTTP API: the admin must exist before anyone
// can sign in to create it.
package seed

import (
	"errors"
	"fmt"

	"github.com/gatherhub/gatherhub/internal/domain/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultBcryptCost is used when Config leaves Cost unset.
const DefaultBcryptCost = 12

// Config names the admin account to ensure.
type Config struct {
	Email    string
	Password string
	Name     string
	Contact  string
	Cost     int // bcrypt cost; 0 means DefaultBcryptCost
}

// Validate reports the first missing or unusable field.
func (c Config) Validate() error {
	switch {
	case c.Email == "":
		return errors.New("admin email is required")
	case c.Password == "":
		return errors.New("admin password is required")
	case c.Name == "":
		return errors.New("admin name is required")
	case c.Contact == "":
		return errors.New("admin contact is required")
	case c.Cost != 0 && (c.Cost < bcrypt.MinCost || c.Cost > bcrypt.MaxCost):
		return fmt.Errorf("bcrypt cost %d outside [%d, %d]", c.Cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return nil
}

func (c Config) cost() int {
	if c.Cost == 0 {
		return DefaultBcryptCost
	}
	return c.Cost
}

// action is what one EnsureAdmin run has to do.
type action int

const (
	// actionNone: an admin row already exists somewhere.
	actionNone action = iota
	// actionCreateAdminRow: user is already ADMIN but no profile row
	// exists yet.
	actionCreateAdminRow
	// actionPromote: user exists with another role; promote and create the
	// profile row.
	actionPromote
	// actionCreateAll: no user with the seed email; create account and
	// profile row.
	actionCreateAll
)

// plan decides what a run must do from what is already in the database.
// Any admin row at all, for any account, means the platform is seeded and
// nothing happens. Pure, so idempotence is testable without a connection.
func plan(user *User, anyAdminRow bool) action {
	switch {
	case anyAdminRow:
		return actionNone
	case user == nil:
		return actionCreateAll
	case user.Role != models.RoleAdmin:
		return actionPromote
	}
	return actionCreateAdminRow
}

// EnsureAdmin makes sure the configured admin account exists, creating or
// promoting as needed. All writes of one run share a transaction, so a
// half-seeded admin can never be observed. A second run with the same
// config performs no writes.
func EnsureAdmin(db *gorm.DB, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var adminRows int64
		if err := tx.Model(&Admin{}).Count(&adminRows).Error; err != nil {
			return fmt.Errorf("count admin rows: %w", err)
		}

		var user User
		err := tx.Where("email = ?", cfg.Email).First(&user).Error

		var existing *User
		switch {
		case err == nil:
			existing = &user
		case errors.Is(err, gorm.ErrRecordNotFound):
		default:
			return fmt.Errorf("look up user: %w", err)
		}

		switch plan(existing, adminRows > 0) {
		case actionNone:
			return nil

		case actionCreateAdminRow:
			return createAdminRow(tx, existing)

		case actionPromote:
			if err := tx.Model(existing).Updates(map[string]any{
				"role":   models.RoleAdmin,
				"status": models.StatusActive,
			}).Error; err != nil {
				return fmt.Errorf("promote user: %w", err)
			}
			return createAdminRow(tx, existing)

		case actionCreateAll:
			hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), cfg.cost())
			if err != nil {
				return fmt.Errorf("hash password: %w", err)
			}
			created := User{
				Name:      cfg.Name,
				Email:     cfg.Email,
				Password:  string(hash),
				ContactNo: cfg.Contact,
				Role:      models.RoleAdmin,
				Status:    models.StatusActive,
			}
			if err := tx.Create(&created).Error; err != nil {
				return fmt.Errorf("create user: %w", err)
			}
			return createAdminRow(tx, &created)
		}
		return nil
	})
}

func createAdminRow(tx *gorm.DB, user *User) error {
	row := Admin{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
	}
	if err := tx.Create(&row).Error; err != nil {
		return fmt.Errorf("create admin row: %w", err)
	}
	return nil
}
