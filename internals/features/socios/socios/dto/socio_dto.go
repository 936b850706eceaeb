package dto

import (
	"strings"
	"time"

	model "descubrecurico_backend/internals/features/socios/socios/model"
)

type RegistroSocioRequest struct {
	RUN             string `json:"run" validate:"required,max=12"`
	Nombre          string `json:"nombre" validate:"required,max=50"`
	ApellidoPaterno string `json:"apellido_paterno" validate:"required,max=50"`
	ApellidoMaterno string `json:"apellido_materno" validate:"required,max=50"`
	Celular         string `json:"celular" validate:"omitempty,max=12"`
	Fijo            string `json:"fijo" validate:"omitempty,max=12"`
	Correo          string `json:"correo" validate:"required,email,max=50"`
	Direccion       string `json:"direccion" validate:"omitempty,max=256"`
	Numero          string `json:"numero" validate:"omitempty,max=256"`
	ComunaID        uint   `json:"comuna_id" validate:"required"`
	RegionID        uint   `json:"region_id" validate:"required"`
	Contrasena      string `json:"contrasena" validate:"required,min=8,max=72"`
}

func (r *RegistroSocioRequest) Normalizar() {
	r.RUN = strings.TrimSpace(r.RUN)
	r.Nombre = strings.TrimSpace(r.Nombre)
	r.ApellidoPaterno = strings.TrimSpace(r.ApellidoPaterno)
	r.ApellidoMaterno = strings.TrimSpace(r.ApellidoMaterno)
	r.Correo = strings.ToLower(strings.TrimSpace(r.Correo))
	r.Direccion = strings.TrimSpace(r.Direccion)
	r.Numero = strings.TrimSpace(r.Numero)
}

type CreateRubroRequest struct {
	NombreRubro string `json:"nombre_rubro" validate:"required,max=150"`
}

type CreateTipoComercializacionRequest struct {
	NombreTipo string `json:"nombre_tipo" validate:"required,max=50"`
}

type SocioResponse struct {
	SocioID         uint      `json:"socio_id"`
	RUT             string    `json:"rut"`
	Nombre          string    `json:"nombre"`
	ApellidoPaterno string    `json:"apellido_paterno"`
	ApellidoMaterno string    `json:"apellido_materno"`
	Celular         string    `json:"celular,omitempty"`
	Fijo            string    `json:"fijo,omitempty"`
	Correo          string    `json:"correo"`
	Direccion       string    `json:"direccion,omitempty"`
	Numero          string    `json:"numero,omitempty"`
	ComunaID        uint      `json:"comuna_id"`
	Comuna          string    `json:"comuna,omitempty"`
	RegionID        uint      `json:"region_id"`
	Region          string    `json:"region,omitempty"`
	Estado          string    `json:"estado"`
	FechaCreacion   time.Time `json:"fecha_creacion"`
}

func FromSocio(m *model.Socio) SocioResponse {
	return SocioResponse{
		SocioID:         m.SocioID,
		RUT:             m.SocioRUT,
		Nombre:          m.SocioNombre,
		ApellidoPaterno: m.SocioApellidoPaterno,
		ApellidoMaterno: m.SocioApellidoMaterno,
		Celular:         m.SocioCelular,
		Fijo:            m.SocioFijo,
		Correo:          m.SocioCorreo,
		Direccion:       m.SocioDireccion,
		Numero:          m.SocioNumero,
		ComunaID:        m.SocioComunaID,
		Comuna:          m.SocioComuna.Comuna,
		RegionID:        m.SocioRegionID,
		Region:          m.SocioRegion.Region,
		Estado:          m.SocioEstado,
		FechaCreacion:   m.SocioFechaCreacion,
	}
}
