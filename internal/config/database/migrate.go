package database

import (
	"identity-service/internal/model"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// RunMigrations creates or updates every identity table. Join tables are
// registered first so user_roles and role_permissions get their CreatedAt
// column instead of the bare two-column default.
func RunMigrations(db *gorm.DB) error {
	logrus.Info("Starting database migrations")

	if err := db.SetupJoinTable(&model.User{}, "Roles", &model.UserRole{}); err != nil {
		logrus.WithError(err).Error("Failed to register user_roles join table")
		return err
	}
	if err := db.SetupJoinTable(&model.Role{}, "Permissions", &model.RolePermission{}); err != nil {
		logrus.WithError(err).Error("Failed to register role_permissions join table")
		return err
	}

	if err := db.AutoMigrate(
		&model.Permission{},
		&model.Role{},
		&model.User{},
		&model.UserDetail{},
	); err != nil {
		logrus.WithError(err).Error("Failed to run migrations")
		return err
	}

	logrus.Info("Database migrations completed successfully")
	return nil
}
