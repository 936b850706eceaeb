package model

// Jerarquía geográfica de referencia (Región → Provincia → Comuna).
// Los ids son los del documento paisdata.json, no seriales propios.

type Region struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Region      string `gorm:"size:64;not null" json:"region"`
	Abreviatura string `gorm:"size:4" json:"abreviatura"`
	Capital     string `gorm:"size:64" json:"capital"`
}

func (Region) TableName() string {
	return "regiones"
}

type Provincia struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Provincia string `gorm:"size:64;not null" json:"provincia"`
	RegionID  uint   `gorm:"not null;index" json:"region_id"`
	Region    Region `gorm:"foreignKey:RegionID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Provincia) TableName() string {
	return "provincias"
}

type Comuna struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Comuna      string    `gorm:"size:64;not null" json:"comuna"`
	ProvinciaID uint      `gorm:"not null;index" json:"provincia_id"`
	Provincia   Provincia `gorm:"foreignKey:ProvinciaID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Comuna) TableName() string {
	return "comunas"
}
