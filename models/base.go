package models

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type contextKey string

const contextUserIDKey contextKey = "audit_user_id"

// ContextWithUserID işlemi yapan kullanıcıyı context'e koyar; BaseModel
// hook'ları CreatedBy/UpdatedBy alanlarını buradan doldurur.
func ContextWithUserID(ctx context.Context, userID uint) context.Context {
	return context.WithValue(ctx, contextUserIDKey, userID)
}

// UserIDFromContext context'teki kullanıcı ID'sini okur.
func UserIDFromContext(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(contextUserIDKey).(uint)
	return id, ok
}

// BaseModel tüm tabloların ortak alanları + denetim (audit) kolonları.
type BaseModel struct {
	ID        uint           `gorm:"primarykey"`
	CreatedAt time.Time      `gorm:"index"`
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
	CreatedBy uint           `gorm:"index"`
	UpdatedBy uint
	DeletedBy uint
}

// BeforeCreate işlemi yapan kullanıcıyı CreatedBy/UpdatedBy'a yazar.
func (m *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if userID, ok := UserIDFromContext(tx.Statement.Context); ok {
		m.CreatedBy = userID
		m.UpdatedBy = userID
	}
	return nil
}

// BeforeUpdate işlemi yapan kullanıcıyı UpdatedBy'a yazar.
func (m *BaseModel) BeforeUpdate(tx *gorm.DB) error {
	if userID, ok := UserIDFromContext(tx.Statement.Context); ok {
		m.UpdatedBy = userID
	}
	return nil
}
