package repository

import (
	"context"
	"identity-service/internal/model"

	"gorm.io/gorm"
)

type PermissionRepository struct {
	Repository[model.Permission]
}

func NewPermissionRepository(db *gorm.DB) *PermissionRepository {
	return &PermissionRepository{
		Repository: Repository[model.Permission]{db},
	}
}

// FindByNames returns the permissions matching the given names.
func (r *PermissionRepository) FindByNames(ctx context.Context, names []string) ([]model.Permission, error) {
	var permissions []model.Permission
	err := r.getDb(ctx).Where("name IN ?", names).Find(&permissions).Error
	return permissions, err
}
