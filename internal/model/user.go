package model

import (
	"time"

	"identity-service/internal/utils/idgen"

	"gorm.io/gorm"
)

type User struct {
	UUID           string         `gorm:"primaryKey;size:36" json:"uuid"`
	Username       string         `gorm:"size:64;uniqueIndex;not null" json:"username"`
	Email          string         `gorm:"size:256;uniqueIndex;not null" json:"email"`
	Password       string         `gorm:"size:128;not null" json:"-"`
	FullName       string         `gorm:"size:128;not null" json:"full_name"`
	EmailConfirmed bool           `gorm:"not null;default:false" json:"email_confirmed"`
	PhoneNumber    string         `gorm:"size:32" json:"phone_number,omitempty"`
	PhoneConfirmed bool           `gorm:"not null;default:false" json:"phone_confirmed"`
	Roles          []Role         `gorm:"many2many:user_roles;" json:"roles,omitempty"`
	Detail         *UserDetail    `gorm:"foreignKey:UserUUID;references:UUID" json:"detail,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

func (u *User) BeforeCreate(*gorm.DB) error {
	if u.UUID == "" {
		u.UUID = idgen.New()
	}
	return nil
}
