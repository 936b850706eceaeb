package model

import (
	"time"
)

// RefreshToken guarda el hash HMAC del refresh token emitido; el valor en
// claro solo viaja en la cookie.
type RefreshToken struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Token     []byte    `gorm:"type:bytea;not null;uniqueIndex" json:"-"`
	Subject   string    `gorm:"size:64;not null;index" json:"subject"`
	Role      string    `gorm:"size:20;not null" json:"role"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}
