package dto

import (
	"strings"
	"time"

	model "descubrecurico_backend/internals/features/socios/empresas/model"
)

/* ==============================
   CREATE / UPDATE
============================== */

type CreateEmpresaRequest struct {
	Nombre            string   `json:"nombre" form:"nombre" validate:"required,max=255"`
	RUT               string   `json:"rut" form:"rut" validate:"omitempty,max=20"`
	RunSocio          string   `json:"run_socio" form:"run_socio" validate:"omitempty,max=12"`
	DireccionCompleta string   `json:"direccion_completa" form:"direccion_completa" validate:"omitempty"`
	Calle             string   `json:"calle" form:"calle" validate:"omitempty,max=255"`
	ComunaID          *uint    `json:"comuna_id" form:"comuna_id" validate:"omitempty"`
	Telefono          string   `json:"telefono" form:"telefono" validate:"omitempty,max=30"`
	Correo            string   `json:"correo" form:"correo" validate:"omitempty,email,max=255"`
	Instagram         string   `json:"instagram" form:"instagram" validate:"omitempty,max=255"`
	Facebook          string   `json:"facebook" form:"facebook" validate:"omitempty,max=255"`
	Web               string   `json:"web" form:"web" validate:"omitempty,max=255"`
	Latitud                *float64 `json:"latitud" form:"latitud" validate:"omitempty,gte=-90,lte=90"`
	Longitud               *float64 `json:"longitud" form:"longitud" validate:"omitempty,gte=-180,lte=180"`
	RubroID                *uint    `json:"rubro_id" form:"rubro_id" validate:"omitempty"`
	TipoComercializacionID *uint    `json:"tipo_comercializacion_id" form:"tipo_comercializacion_id" validate:"omitempty"`
}

func (r *CreateEmpresaRequest) Normalizar() {
	r.Nombre = strings.TrimSpace(r.Nombre)
	r.RUT = strings.TrimSpace(r.RUT)
	r.RunSocio = strings.TrimSpace(r.RunSocio)
	r.DireccionCompleta = strings.TrimSpace(r.DireccionCompleta)
	r.Calle = strings.TrimSpace(r.Calle)
	r.Correo = strings.ToLower(strings.TrimSpace(r.Correo))
}

type UpdateEmpresaRequest struct {
	Nombre            *string  `json:"nombre" validate:"omitempty,max=255"`
	DireccionCompleta *string  `json:"direccion_completa" validate:"omitempty"`
	Calle             *string  `json:"calle" validate:"omitempty,max=255"`
	ComunaID          *uint    `json:"comuna_id" validate:"omitempty"`
	Telefono          *string  `json:"telefono" validate:"omitempty,max=30"`
	Correo            *string  `json:"correo" validate:"omitempty,email,max=255"`
	Instagram         *string  `json:"instagram" validate:"omitempty,max=255"`
	Facebook          *string  `json:"facebook" validate:"omitempty,max=255"`
	Web               *string  `json:"web" validate:"omitempty,max=255"`
	Latitud                *float64 `json:"latitud" validate:"omitempty,gte=-90,lte=90"`
	Longitud               *float64 `json:"longitud" validate:"omitempty,gte=-180,lte=180"`
	RubroID                *uint    `json:"rubro_id" validate:"omitempty"`
	TipoComercializacionID *uint    `json:"tipo_comercializacion_id" validate:"omitempty"`
}

// Mutaciones independientes del ciclo de vida: tres ejes, sin acoples
// automáticos entre ellos.
type CambiarSolicitudRequest struct {
	EstadoSolicitud string `json:"estado_solicitud" validate:"required,oneof=pendiente aprobada rechazada"`
}

type CambiarPagoRequest struct {
	EstadoPago string `json:"estado_pago" validate:"required,oneof=pendiente pagado"`
}

type CambiarActivoRequest struct {
	Activo *bool `json:"activo" validate:"required"`
}

/* ==============================
   RESPONSES
============================== */

// Coordenadas por defecto del mapa del directorio (centro aproximado de la
// provincia de Curicó).
const (
	MapaLatPorDefecto = -35.0
	MapaLngPorDefecto = -71.2
)

type EmpresaPublicaResponse struct {
	IDEmpresa         uint     `json:"id_empresa"`
	Nombre            string   `json:"nombre"`
	DireccionCompleta string   `json:"direccion_completa,omitempty"`
	Calle             string   `json:"calle,omitempty"`
	Comuna            string   `json:"comuna,omitempty"`
	Telefono          string   `json:"telefono,omitempty"`
	Correo            string   `json:"correo,omitempty"`
	Instagram         string   `json:"instagram,omitempty"`
	Facebook          string   `json:"facebook,omitempty"`
	Web               string   `json:"web,omitempty"`
	Foto              string   `json:"foto,omitempty"`
	Rubro             string   `json:"rubro,omitempty"`
	TipoComercializacion string `json:"tipo_comercializacion,omitempty"`
	Latitud           float64  `json:"latitud"`
	Longitud          float64  `json:"longitud"`
}

func FromEmpresaPublica(m *model.Empresa) EmpresaPublicaResponse {
	resp := EmpresaPublicaResponse{
		IDEmpresa:         m.IDEmpresa,
		Nombre:            m.Nombre,
		DireccionCompleta: m.DireccionCompleta,
		Calle:             m.Calle,
		Telefono:          m.Telefono,
		Correo:            m.Correo,
		Instagram:         m.Instagram,
		Facebook:          m.Facebook,
		Web:               m.Web,
		Foto:              m.Foto,
		Latitud:           MapaLatPorDefecto,
		Longitud:          MapaLngPorDefecto,
	}
	if m.Comuna != nil {
		resp.Comuna = m.Comuna.Comuna
	}
	if m.Rubro != nil {
		resp.Rubro = m.Rubro.NombreRubro
	}
	if m.TipoComercializacion != nil {
		resp.TipoComercializacion = m.TipoComercializacion.NombreTipo
	}
	if m.Latitud != nil {
		resp.Latitud = *m.Latitud
	}
	if m.Longitud != nil {
		resp.Longitud = *m.Longitud
	}
	return resp
}

type EmpresaAdminResponse struct {
	EmpresaPublicaResponse
	RUT                string    `json:"rut,omitempty"`
	SocioID            *uint     `json:"socio_id,omitempty"`
	SocioNombre        string    `json:"socio_nombre,omitempty"`
	EstadoSolicitud    string    `json:"estado_solicitud"`
	EstadoPago         string    `json:"estado_pago"`
	EncuestaRespondida bool      `json:"encuesta_respondida"`
	Activo             bool      `json:"activo"`
	FechaCreacion      time.Time `json:"fecha_creacion"`
}

func FromEmpresaAdmin(m *model.Empresa) EmpresaAdminResponse {
	resp := EmpresaAdminResponse{
		EmpresaPublicaResponse: FromEmpresaPublica(m),
		SocioID:                m.SocioID,
		EstadoSolicitud:        m.EstadoSolicitud,
		EstadoPago:             m.EstadoPago,
		EncuestaRespondida:     m.EncuestaRespondida,
		Activo:                 m.Activo,
		FechaCreacion:          m.FechaCreacion,
	}
	if m.RUT != nil {
		resp.RUT = *m.RUT
	}
	if m.Socio != nil {
		resp.SocioNombre = m.Socio.NombreCompleto()
	}
	return resp
}
