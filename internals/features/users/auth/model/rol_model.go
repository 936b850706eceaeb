package model

import (
	"time"

	"github.com/google/uuid"
)

// Rol: admin o socio (tabla roles, cargada por seed).
type Rol struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Nombre      string `gorm:"size:20;unique;not null" json:"nombre"`
	Descripcion string `gorm:"size:255" json:"descripcion"`
}

func (Rol) TableName() string {
	return "roles"
}

// UsuarioRol: una asignación de rol por cuenta staff.
type UsuarioRol struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UsuarioID       uuid.UUID `gorm:"type:uuid;unique;not null" json:"usuario_id"`
	RolID           uint      `gorm:"not null" json:"rol_id"`
	Rol             Rol       `gorm:"foreignKey:RolID" json:"rol"`
	FechaAsignacion time.Time `gorm:"autoCreateTime" json:"fecha_asignacion"`
}

func (UsuarioRol) TableName() string {
	return "usuario_roles"
}
