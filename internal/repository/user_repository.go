package repository

import (
	"context"
	"identity-service/internal/dto"
	"identity-service/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	Repository[model.User]
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		Repository: Repository[model.User]{db},
	}
}

// CountByEmail returns the number of users with the given email.
func (r *UserRepository) CountByEmail(ctx context.Context, email string) (int64, error) {
	var total int64
	err := r.getDb(ctx).Model(&model.User{}).Where("email = ?", email).Count(&total).Error
	return total, err
}

// CountByUsername returns the number of users with the given username.
func (r *UserRepository) CountByUsername(ctx context.Context, username string) (int64, error) {
	var total int64
	err := r.getDb(ctx).Model(&model.User{}).Where("username = ?", username).Count(&total).Error
	return total, err
}

// FindByEmail finds a user by email.
func (r *UserRepository) FindByEmail(ctx context.Context, user *model.User, email string) error {
	return r.getDb(ctx).Where("email = ?", email).First(user).Error
}

// FindByUUID finds a user by UUID with roles, their permissions, and the
// profile detail preloaded.
func (r *UserRepository) FindByUUID(ctx context.Context, user *model.User, uuid string) error {
	return r.getDb(ctx).
		Preload("Roles").
		Preload("Roles.Permissions").
		Preload("Detail").
		Where("uuid = ?", uuid).
		First(user).Error
}

// ReplaceRoles makes the given roles the user's complete role set, removing
// assignments that are no longer present.
func (r *UserRepository) ReplaceRoles(ctx context.Context, user *model.User, roles []model.Role) error {
	return r.getDb(ctx).Model(user).Association("Roles").Replace(roles)
}

// FindAll returns every user ordered by username.
func (r *UserRepository) FindAll(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := r.getDb(ctx).Order("username").Find(&users).Error
	return users, err
}

// FindAllWithoutDetail returns the users that have no detail row yet.
func (r *UserRepository) FindAllWithoutDetail(ctx context.Context) ([]model.User, error) {
	db := r.getDb(ctx)
	sub := db.Session(&gorm.Session{NewDB: true}).Model(&model.UserDetail{}).Select("user_uuid")

	var users []model.User
	err := db.Where("uuid NOT IN (?)", sub).Order("username").Find(&users).Error
	return users, err
}

// Search returns a list of users and total count based on filter and pagination.
func (r *UserRepository) Search(ctx context.Context, request *dto.SearchUserRequest) ([]*model.User, int64, error) {
	db := r.getDb(ctx)

	var users []*model.User
	if err := db.Scopes(r.FilterUser(request)).Preload("Roles").
		Offset((request.Page - 1) * request.Size).Limit(request.Size).
		Find(&users).Error; err != nil {
		return nil, 0, err
	}

	var total int64 = 0
	if err := db.Model(&model.User{}).Scopes(r.FilterUser(request)).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// FilterUser returns a GORM scope for filtering users by username or email.
func (r *UserRepository) FilterUser(request *dto.SearchUserRequest) func(tx *gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		if username := request.Username; username != "" {
			username = "%" + username + "%"
			tx = tx.Where("username LIKE ?", username)
		}

		if email := request.Email; email != "" {
			email = "%" + email + "%"
			tx = tx.Where("email LIKE ?", email)
		}

		return tx
	}
}
