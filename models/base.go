package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base は全モデル共通のID（不透明な文字列）とタイムスタンプ。
type Base struct {
	ID        string    `json:"_id" gorm:"primaryKey;type:varchar(36)"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
