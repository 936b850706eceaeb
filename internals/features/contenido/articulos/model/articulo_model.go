package model

import (
	"time"

	"github.com/google/uuid"
)

// TipoArticulo distingue las tres tablas hermanas de contenido. Es un enum
// explícito: acá nunca se "cambia la clase" de una instancia, cada tipo es
// un struct concreto y el tipo se decide al crear.
type TipoArticulo string

const (
	TipoArticuloArticulo  TipoArticulo = "articulo"
	TipoArticuloNoticia   TipoArticulo = "noticia"
	TipoArticuloReportaje TipoArticulo = "reportaje"
)

// ParseTipoArticulo valida el parámetro de ruta; "" si no es un tipo conocido.
func ParseTipoArticulo(s string) (TipoArticulo, bool) {
	switch TipoArticulo(s) {
	case TipoArticuloArticulo, TipoArticuloNoticia, TipoArticuloReportaje:
		return TipoArticulo(s), true
	}
	return "", false
}

// Tabla devuelve la tabla del tipo.
func (t TipoArticulo) Tabla() string {
	switch t {
	case TipoArticuloNoticia:
		return "noticias"
	case TipoArticuloReportaje:
		return "reportajes"
	default:
		return "articulos"
	}
}

const (
	EstadoBorrador  = "DRAFT"
	EstadoPublicado = "PUBLISHED"

	AutorPorDefecto = "Descubre Curicó"
)

// ArticuloBase es la forma común de Articulo/Noticia/Reportaje.
type ArticuloBase struct {
	ID            uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Titulo        string    `gorm:"size:200;not null" json:"titulo"`
	Slug          string    `gorm:"size:220;uniqueIndex;not null" json:"slug"`
	Resumen       string    `gorm:"type:text" json:"resumen"`
	Autor         string    `gorm:"size:120;default:'Descubre Curicó'" json:"autor"`
	Portada       string    `gorm:"type:text" json:"portada"`
	Estado        string    `gorm:"size:12;default:'PUBLISHED'" json:"estado"`
	PublicadoEn   time.Time `json:"publicado_en"`
	CreadoEn      time.Time `gorm:"autoCreateTime" json:"creado_en"`
	ActualizadoEn time.Time `gorm:"autoUpdateTime" json:"actualizado_en"`
}

type Articulo struct {
	ArticuloBase `gorm:"embedded"`
	Categorias   []Categoria      `gorm:"many2many:articulo_categorias" json:"categorias"`
	Bloques      []BloqueArticulo `gorm:"foreignKey:ArticuloID;constraint:OnDelete:CASCADE" json:"bloques"`
}

func (Articulo) TableName() string { return "articulos" }

type Noticia struct {
	ArticuloBase `gorm:"embedded"`
	Categorias   []Categoria     `gorm:"many2many:noticia_categorias" json:"categorias"`
	Bloques      []BloqueNoticia `gorm:"foreignKey:NoticiaID;constraint:OnDelete:CASCADE" json:"bloques"`
}

func (Noticia) TableName() string { return "noticias" }

type Reportaje struct {
	ArticuloBase `gorm:"embedded"`
	Categorias   []Categoria       `gorm:"many2many:reportaje_categorias" json:"categorias"`
	Bloques      []BloqueReportaje `gorm:"foreignKey:ReportajeID;constraint:OnDelete:CASCADE" json:"bloques"`
}

func (Reportaje) TableName() string { return "reportajes" }
