package model

import (
	"identity-service/internal/utils/idgen"

	"gorm.io/gorm"
)

type Permission struct {
	UUID string `gorm:"primaryKey;size:36" json:"uuid"`
	Name string `gorm:"size:64;uniqueIndex;not null" json:"name"`
}

func (p *Permission) BeforeCreate(*gorm.DB) error {
	if p.UUID == "" {
		p.UUID = idgen.New()
	}
	return nil
}
