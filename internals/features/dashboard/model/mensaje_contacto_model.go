package model

import "time"

// MensajeContacto: formulario público de contacto, revisado desde el
// panel admin.
type MensajeContacto struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	Nombre   string    `gorm:"size:120;not null" json:"nombre"`
	Email    string    `gorm:"size:255;not null" json:"email"`
	Asunto   string    `gorm:"size:200" json:"asunto"`
	Mensaje  string    `gorm:"type:text;not null" json:"mensaje"`
	Leido    bool      `gorm:"default:false" json:"leido"`
	CreadoEn time.Time `gorm:"autoCreateTime" json:"creado_en"`
}

func (MensajeContacto) TableName() string { return "mensajes_contacto" }
