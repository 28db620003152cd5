package repository

import (
	"context"
	"identity-service/internal/model"

	"gorm.io/gorm"
)

type UserDetailRepository struct {
	Repository[model.UserDetail]
}

func NewUserDetailRepository(db *gorm.DB) *UserDetailRepository {
	return &UserDetailRepository{
		Repository: Repository[model.UserDetail]{db},
	}
}

// FindByUserUUID finds the detail row belonging to the given user.
func (r *UserDetailRepository) FindByUserUUID(ctx context.Context, detail *model.UserDetail, userUUID string) error {
	return r.getDb(ctx).Where("user_uuid = ?", userUUID).First(detail).Error
}
