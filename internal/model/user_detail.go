package model

import (
	"time"

	"identity-service/internal/utils/idgen"

	"gorm.io/gorm"
)

// UserDetail is the one-to-one profile extension of a User. The unique index
// on UserUUID is what enforces "at most one detail row per user".
type UserDetail struct {
	UUID           string        `gorm:"primaryKey;size:36" json:"uuid"`
	UserUUID       string        `gorm:"size:36;uniqueIndex;not null" json:"user_uuid"`
	BirthDate      time.Time     `json:"birth_date"`
	Address        string        `gorm:"size:256" json:"address"`
	IdentityNumber string        `gorm:"size:32" json:"identity_number"`
	UserType       int           `json:"user_type"`
	Gender         int           `json:"gender"`
	Nationality    int           `json:"nationality"`
	Extra          ExtraDocument `gorm:"type:text" json:"extra"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

func (d *UserDetail) BeforeCreate(*gorm.DB) error {
	if d.UUID == "" {
		d.UUID = idgen.New()
	}
	return nil
}
