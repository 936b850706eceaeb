package model

type Categoria struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Nombre string `gorm:"size:120;unique;not null" json:"nombre"`
	Slug   string `gorm:"size:140;uniqueIndex;not null" json:"slug"`
}

func (Categoria) TableName() string { return "categorias" }
