package model

import (
	"github.com/google/uuid"

	helper "descubrecurico_backend/internals/helpers"
)

// Tipos de bloque de contenido.
const (
	BloqueTexto     = "TEXT"
	BloqueSubtitulo = "SUBTITLE"
	BloqueImagen    = "IMAGE"
	BloqueEnlace    = "URL"
	BloqueYouTube   = "YOUTUBE"
	BloqueVideo     = "VIDEO"
)

var TiposBloque = []string{BloqueTexto, BloqueSubtitulo, BloqueImagen, BloqueEnlace, BloqueYouTube, BloqueVideo}

// BloqueBase: fragmento tipado y ordenado del cuerpo. El orden lo fija el
// usuario; duplicados y saltos son legales y solo afectan la presentación.
type BloqueBase struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Tipo         string `gorm:"size:12;default:'TEXT'" json:"tipo"`
	Orden        uint   `gorm:"default:0" json:"orden"`
	Texto        string `gorm:"type:text" json:"texto"`
	Subtitulo    string `gorm:"size:200" json:"subtitulo"`
	Imagen       string `gorm:"type:text" json:"imagen"`
	PieDeFoto    string `gorm:"size:200" json:"pie_de_foto"`
	EstiloImagen string `gorm:"size:20;default:'default'" json:"estilo_imagen"`
	URL          string `gorm:"type:text" json:"url"`
}

// EmbedSrc entrega la URL embebible para bloques YOUTUBE; vacío si la URL
// no tiene una forma reconocida.
func (b BloqueBase) EmbedSrc() string {
	if b.Tipo != BloqueYouTube {
		return ""
	}
	return helper.YouTubeEmbedSrc(b.URL)
}

type BloqueArticulo struct {
	BloqueBase `gorm:"embedded"`
	ArticuloID uuid.UUID `gorm:"type:uuid;not null;index" json:"articulo_id"`
}

func (BloqueArticulo) TableName() string { return "bloques_articulo" }

type BloqueNoticia struct {
	BloqueBase `gorm:"embedded"`
	NoticiaID  uuid.UUID `gorm:"type:uuid;not null;index" json:"noticia_id"`
}

func (BloqueNoticia) TableName() string { return "bloques_noticia" }

type BloqueReportaje struct {
	BloqueBase  `gorm:"embedded"`
	ReportajeID uuid.UUID `gorm:"type:uuid;not null;index" json:"reportaje_id"`
}

func (BloqueReportaje) TableName() string { return "bloques_reportaje" }
