package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel representa una cuenta staff (tabla users). Los socios NO viven
// acá: su credencial está en la tabla Socio y entra por el login por RUT.
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserName  string    `gorm:"size:50;not null" json:"user_name" validate:"required,min=3,max=50"`
	Email     string    `gorm:"size:255;unique;not null" json:"email" validate:"required,email"`
	Password  string    `gorm:"not null" json:"-" validate:"required,min=8"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	IsSuper   bool      `gorm:"not null;default:false" json:"is_super"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}
