package model

import (
	"time"

	"github.com/google/uuid"
)

// Comentario usa una unión etiquetada {tipo, owner_id} en vez del par
// genérico (content_type, object_id): el tipo es uno de los tres tipos de
// artículo y el resolver por tipo vive en el controller.
type Comentario struct {
	ID       uint         `gorm:"primaryKey" json:"id"`
	Tipo     TipoArticulo `gorm:"size:12;not null;index:idx_comentarios_owner" json:"tipo"`
	OwnerID  uuid.UUID    `gorm:"type:uuid;not null;index:idx_comentarios_owner" json:"owner_id"`
	Nombre   string       `gorm:"size:120;not null" json:"nombre"`
	Email    string       `gorm:"size:255;not null" json:"email"`
	Texto    string       `gorm:"type:text;not null" json:"texto"`
	CreadoEn time.Time    `gorm:"autoCreateTime" json:"creado_en"`
}

func (Comentario) TableName() string { return "comentarios" }
