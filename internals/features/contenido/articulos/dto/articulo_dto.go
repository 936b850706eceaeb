package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "descubrecurico_backend/internals/features/contenido/articulos/model"
)

/* ==============================
   CREATE / UPDATE
============================== */

type BloqueRequest struct {
	Tipo         string `json:"tipo" validate:"required,oneof=TEXT SUBTITLE IMAGE URL YOUTUBE VIDEO"`
	Orden        uint   `json:"orden" validate:"omitempty"`
	Texto        string `json:"texto" validate:"omitempty"`
	Subtitulo    string `json:"subtitulo" validate:"omitempty,max=200"`
	Imagen       string `json:"imagen" validate:"omitempty"`
	PieDeFoto    string `json:"pie_de_foto" validate:"omitempty,max=200"`
	EstiloImagen string `json:"estilo_imagen" validate:"omitempty,oneof=default rounded wide shadow"`
	URL          string `json:"url" validate:"omitempty"`
}

func (b BloqueRequest) ToBase() model.BloqueBase {
	estilo := b.EstiloImagen
	if estilo == "" {
		estilo = "default"
	}
	return model.BloqueBase{
		Tipo:         b.Tipo,
		Orden:        b.Orden,
		Texto:        strings.TrimSpace(b.Texto),
		Subtitulo:    strings.TrimSpace(b.Subtitulo),
		Imagen:       strings.TrimSpace(b.Imagen),
		PieDeFoto:    strings.TrimSpace(b.PieDeFoto),
		EstiloImagen: estilo,
		URL:          strings.TrimSpace(b.URL),
	}
}

type CreateArticuloRequest struct {
	Titulo      string     `json:"titulo" validate:"required,max=200"`
	Resumen     string     `json:"resumen" validate:"omitempty"`
	Autor       string     `json:"autor" validate:"omitempty,max=120"`
	Estado      string     `json:"estado" validate:"omitempty,oneof=DRAFT PUBLISHED"`
	PublicadoEn *time.Time `json:"publicado_en" validate:"omitempty"`

	// Selección de categorías existentes + texto libre "nuevas"
	Categorias       []uint `json:"categorias" validate:"omitempty"`
	NuevasCategorias string `json:"nuevas_categorias" validate:"omitempty"`

	Bloques []BloqueRequest `json:"bloques" validate:"omitempty,dive"`
}

func (r *CreateArticuloRequest) ToBase() model.ArticuloBase {
	autor := strings.TrimSpace(r.Autor)
	if autor == "" {
		autor = model.AutorPorDefecto
	}
	estado := r.Estado
	if estado == "" {
		estado = model.EstadoPublicado
	}
	pub := time.Now()
	if r.PublicadoEn != nil {
		pub = *r.PublicadoEn
	}
	return model.ArticuloBase{
		Titulo:      strings.TrimSpace(r.Titulo),
		Resumen:     strings.TrimSpace(r.Resumen),
		Autor:       autor,
		Estado:      estado,
		PublicadoEn: pub,
	}
}

// UpdateArticuloRequest: misma forma, todos los campos opcionales. Los
// bloques se reemplazan como conjunto (semántica de formset).
type UpdateArticuloRequest struct {
	Titulo      *string    `json:"titulo" validate:"omitempty,max=200"`
	Resumen     *string    `json:"resumen" validate:"omitempty"`
	Autor       *string    `json:"autor" validate:"omitempty,max=120"`
	Estado      *string    `json:"estado" validate:"omitempty,oneof=DRAFT PUBLISHED"`
	PublicadoEn *time.Time `json:"publicado_en" validate:"omitempty"`

	Categorias       *[]uint `json:"categorias" validate:"omitempty"`
	NuevasCategorias string  `json:"nuevas_categorias" validate:"omitempty"`

	Bloques *[]BloqueRequest `json:"bloques" validate:"omitempty,dive"`
}

/* ==============================
   Comentarios
============================== */

type CreateComentarioRequest struct {
	Nombre string `json:"nombre" validate:"required,max=120"`
	Email  string `json:"email" validate:"required,email,max=255"`
	Texto  string `json:"texto" validate:"required"`
}

/* ==============================
   Helpers puros
============================== */

// ParseNuevasCategorias separa el texto libre por comas, recorta espacios,
// descarta vacíos y deduplica (match exacto, sensible a mayúsculas)
// preservando el orden de aparición.
func ParseNuevasCategorias(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	seen := make(map[string]struct{})
	var out []string
	for _, part := range strings.Split(raw, ",") {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

/* ==============================
   RESPONSES
============================== */

type CategoriaResponse struct {
	ID     uint   `json:"id"`
	Nombre string `json:"nombre"`
	Slug   string `json:"slug"`
}

func FromCategoria(c model.Categoria) CategoriaResponse {
	return CategoriaResponse{ID: c.ID, Nombre: c.Nombre, Slug: c.Slug}
}

func FromCategorias(cs []model.Categoria) []CategoriaResponse {
	out := make([]CategoriaResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromCategoria(c))
	}
	return out
}

type BloqueResponse struct {
	ID           uint   `json:"id"`
	Tipo         string `json:"tipo"`
	Orden        uint   `json:"orden"`
	Texto        string `json:"texto,omitempty"`
	Subtitulo    string `json:"subtitulo,omitempty"`
	Imagen       string `json:"imagen,omitempty"`
	PieDeFoto    string `json:"pie_de_foto,omitempty"`
	EstiloImagen string `json:"estilo_imagen,omitempty"`
	URL          string `json:"url,omitempty"`
	EmbedSrc     string `json:"embed_src,omitempty"`
}

func FromBloqueBase(id uint, b model.BloqueBase) BloqueResponse {
	return BloqueResponse{
		ID:           id,
		Tipo:         b.Tipo,
		Orden:        b.Orden,
		Texto:        b.Texto,
		Subtitulo:    b.Subtitulo,
		Imagen:       b.Imagen,
		PieDeFoto:    b.PieDeFoto,
		EstiloImagen: b.EstiloImagen,
		URL:          b.URL,
		EmbedSrc:     b.EmbedSrc(),
	}
}

type ComentarioResponse struct {
	ID       uint      `json:"id"`
	Nombre   string    `json:"nombre"`
	Texto    string    `json:"texto"`
	CreadoEn time.Time `json:"creado_en"`
}

func FromComentario(m model.Comentario) ComentarioResponse {
	return ComentarioResponse{ID: m.ID, Nombre: m.Nombre, Texto: m.Texto, CreadoEn: m.CreadoEn}
}

// ArticuloListItem es la fila común de las tres tablas en el listado
// combinado.
type ArticuloListItem struct {
	ID          uuid.UUID `json:"id"`
	Tipo        string    `json:"tipo"`
	Titulo      string    `json:"titulo"`
	Slug        string    `json:"slug"`
	Resumen     string    `json:"resumen"`
	Autor       string    `json:"autor"`
	Portada     string    `json:"portada"`
	Estado      string    `json:"estado"`
	PublicadoEn time.Time `json:"publicado_en"`
}

type ArticuloResponse struct {
	ID          uuid.UUID            `json:"id"`
	Tipo        string               `json:"tipo"`
	Titulo      string               `json:"titulo"`
	Slug        string               `json:"slug"`
	Resumen     string               `json:"resumen"`
	Autor       string               `json:"autor"`
	Portada     string               `json:"portada"`
	Estado      string               `json:"estado"`
	PublicadoEn time.Time            `json:"publicado_en"`
	CreadoEn    time.Time            `json:"creado_en"`
	Categorias  []CategoriaResponse  `json:"categorias"`
	Bloques     []BloqueResponse     `json:"bloques"`
	Comentarios []ComentarioResponse `json:"comentarios,omitempty"`
}

func fromBase(tipo model.TipoArticulo, b model.ArticuloBase) ArticuloResponse {
	return ArticuloResponse{
		ID:          b.ID,
		Tipo:        string(tipo),
		Titulo:      b.Titulo,
		Slug:        b.Slug,
		Resumen:     b.Resumen,
		Autor:       b.Autor,
		Portada:     b.Portada,
		Estado:      b.Estado,
		PublicadoEn: b.PublicadoEn,
		CreadoEn:    b.CreadoEn,
	}
}

func FromArticulo(m *model.Articulo) ArticuloResponse {
	resp := fromBase(model.TipoArticuloArticulo, m.ArticuloBase)
	resp.Categorias = FromCategorias(m.Categorias)
	for _, b := range m.Bloques {
		resp.Bloques = append(resp.Bloques, FromBloqueBase(b.ID, b.BloqueBase))
	}
	return resp
}

func FromNoticia(m *model.Noticia) ArticuloResponse {
	resp := fromBase(model.TipoArticuloNoticia, m.ArticuloBase)
	resp.Categorias = FromCategorias(m.Categorias)
	for _, b := range m.Bloques {
		resp.Bloques = append(resp.Bloques, FromBloqueBase(b.ID, b.BloqueBase))
	}
	return resp
}

func FromReportaje(m *model.Reportaje) ArticuloResponse {
	resp := fromBase(model.TipoArticuloReportaje, m.ArticuloBase)
	resp.Categorias = FromCategorias(m.Categorias)
	for _, b := range m.Bloques {
		resp.Bloques = append(resp.Bloques, FromBloqueBase(b.ID, b.BloqueBase))
	}
	return resp
}
