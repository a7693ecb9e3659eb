package models

import (
	"time"

	"gorm.io/gorm"
)

// BaseModel tüm tablolarda ortak olan alanlardır. Silme işlemleri soft delete'tir.
type BaseModel struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
