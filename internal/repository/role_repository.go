package repository

import (
	"context"
	"identity-service/internal/model"

	"gorm.io/gorm"
)

type RoleRepository struct {
	Repository[model.Role]
}

func NewRoleRepository(db *gorm.DB) *RoleRepository {
	return &RoleRepository{
		Repository: Repository[model.Role]{db},
	}
}

// FindByName finds a role by its unique name.
func (r *RoleRepository) FindByName(ctx context.Context, role *model.Role, name string) error {
	return r.getDb(ctx).Where("name = ?", name).First(role).Error
}

// FindByNames returns the roles matching the given names.
func (r *RoleRepository) FindByNames(ctx context.Context, names []string) ([]model.Role, error) {
	var roles []model.Role
	err := r.getDb(ctx).Where("name IN ?", names).Find(&roles).Error
	return roles, err
}

// FindDefault returns the role flagged as the self-registration default.
func (r *RoleRepository) FindDefault(ctx context.Context, role *model.Role) error {
	return r.getDb(ctx).Where("is_default = ?", true).First(role).Error
}

// FindAllWithPermissions returns every role with its permissions preloaded.
func (r *RoleRepository) FindAllWithPermissions(ctx context.Context) ([]model.Role, error) {
	var roles []model.Role
	err := r.getDb(ctx).Preload("Permissions").Order("name").Find(&roles).Error
	return roles, err
}
