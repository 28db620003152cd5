package model

import (
	"time"

	"identity-service/internal/utils/idgen"

	"gorm.io/gorm"
)

type Role struct {
	UUID        string       `gorm:"primaryKey;size:36" json:"uuid"`
	Name        string       `gorm:"size:64;uniqueIndex;not null" json:"name"`
	Description string       `gorm:"size:256" json:"description,omitempty"`
	IsDefault   bool         `gorm:"not null;default:false" json:"is_default"`
	Permissions []Permission `gorm:"many2many:role_permissions;" json:"permissions,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

func (r *Role) BeforeCreate(*gorm.DB) error {
	if r.UUID == "" {
		r.UUID = idgen.New()
	}
	return nil
}
