package model

import (
	"time"
)

// Rubro clasifica el giro de una empresa (gastronomía, turismo, etc.).
type Rubro struct {
	IDRubro     uint   `gorm:"column:id_rubro;primaryKey" json:"id_rubro"`
	NombreRubro string `gorm:"column:nombre_rubro;size:150;unique;not null" json:"nombre_rubro"`
}

func (Rubro) TableName() string {
	return "rubros"
}

// TipoComercializacion: canal de venta (local, online, ambos...).
type TipoComercializacion struct {
	IDTipo     uint   `gorm:"column:id_tipo;primaryKey" json:"id_tipo"`
	NombreTipo string `gorm:"column:nombre_tipo;size:50;unique;not null" json:"nombre_tipo"`
}

func (TipoComercializacion) TableName() string {
	return "tipos_comercializacion"
}

// Socio: miembro del gremio. El RUT se guarda normalizado (sin puntuación,
// mayúsculas) y la contraseña siempre con bcrypt; nunca se persiste texto
// plano ni se "detecta" un hash ya aplicado.
type Socio struct {
	SocioID              uint      `gorm:"column:socio_id;primaryKey" json:"socio_id"`
	SocioRUT             string    `gorm:"column:socio_rut;size:10;unique;not null" json:"socio_rut"`
	SocioNombre          string    `gorm:"column:socio_nombre;size:50;not null" json:"socio_nombre"`
	SocioApellidoPaterno string    `gorm:"column:socio_apellido_paterno;size:50;not null" json:"socio_apellido_paterno"`
	SocioApellidoMaterno string    `gorm:"column:socio_apellido_materno;size:50;not null" json:"socio_apellido_materno"`
	SocioCelular         string    `gorm:"column:socio_celular;size:12" json:"socio_celular"`
	SocioFijo            string    `gorm:"column:socio_fijo;size:12" json:"socio_fijo"`
	SocioCorreo          string    `gorm:"column:socio_correo;size:50;unique;not null" json:"socio_correo"`
	SocioDireccion       string    `gorm:"column:socio_direccion;size:256" json:"socio_direccion"`
	SocioNumero          string    `gorm:"column:socio_numero;size:256" json:"socio_numero"`
	SocioComunaID        uint      `gorm:"column:socio_comuna_id;not null" json:"socio_comuna_id"`
	SocioComuna          Comuna    `gorm:"foreignKey:SocioComunaID" json:"socio_comuna"`
	SocioRegionID        uint      `gorm:"column:socio_region_id;not null" json:"socio_region_id"`
	SocioRegion          Region    `gorm:"foreignKey:SocioRegionID" json:"socio_region"`
	SocioEstado          string    `gorm:"column:socio_estado;size:50" json:"socio_estado"`
	SocioContrasena      string    `gorm:"column:socio_contrasena;size:128" json:"-"`
	SocioFechaCreacion   time.Time `gorm:"column:socio_fecha_creacion;autoCreateTime" json:"socio_fecha_creacion"`
}

func (Socio) TableName() string {
	return "socios"
}

// NombreCompleto para la sesión y los listados.
func (s Socio) NombreCompleto() string {
	return s.SocioNombre + " " + s.SocioApellidoPaterno
}
