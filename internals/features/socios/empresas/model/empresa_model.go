package model

import (
	"time"

	socioModel "descubrecurico_backend/internals/features/socios/socios/model"
)

// Estados del ciclo de vida de una empresa. Son tres ejes independientes:
// solicitud, pago y visibilidad pública (activo); el admin muta cada uno
// por separado, no hay transiciones automáticas entre ellos.
const (
	SolicitudPendiente = "pendiente"
	SolicitudAprobada  = "aprobada"
	SolicitudRechazada = "rechazada"

	PagoPendiente = "pendiente"
	PagoPagado    = "pagado"
)

type Empresa struct {
	IDEmpresa         uint               `gorm:"column:id_empresa;primaryKey" json:"id_empresa"`
	Nombre            string             `gorm:"size:255;not null" json:"nombre"`
	RUT               *string            `gorm:"column:rut;size:20;unique" json:"rut,omitempty"`
	DireccionCompleta string             `gorm:"column:direccion_completa;type:text" json:"direccion_completa"`
	Calle             string             `gorm:"size:255" json:"calle"`
	ComunaID          *uint              `gorm:"column:comuna_id" json:"comuna_id,omitempty"`
	Comuna            *socioModel.Comuna `gorm:"foreignKey:ComunaID;constraint:OnDelete:SET NULL" json:"comuna,omitempty"`
	Telefono          string             `gorm:"size:30" json:"telefono"`
	Correo            string             `gorm:"size:255" json:"correo"`
	Instagram         string             `gorm:"size:255" json:"instagram"`
	Facebook          string             `gorm:"size:255" json:"facebook"`
	Web               string             `gorm:"size:255" json:"web"`
	Foto              string             `gorm:"type:text" json:"foto"`

	Latitud  *float64 `gorm:"type:numeric(17,14)" json:"latitud,omitempty"`
	Longitud *float64 `gorm:"type:numeric(17,14)" json:"longitud,omitempty"`

	SocioID *uint             `gorm:"column:socio_id" json:"socio_id,omitempty"`
	Socio   *socioModel.Socio `gorm:"foreignKey:SocioID;constraint:OnDelete:SET NULL" json:"socio,omitempty"`

	RubroID *uint             `gorm:"column:rubro_id" json:"rubro_id,omitempty"`
	Rubro   *socioModel.Rubro `gorm:"foreignKey:RubroID;constraint:OnDelete:SET NULL" json:"rubro,omitempty"`

	TipoComercializacionID *uint                            `gorm:"column:tipo_comercializacion_id" json:"tipo_comercializacion_id,omitempty"`
	TipoComercializacion   *socioModel.TipoComercializacion `gorm:"foreignKey:TipoComercializacionID;constraint:OnDelete:SET NULL" json:"tipo_comercializacion,omitempty"`

	EstadoSolicitud    string `gorm:"column:estado_solicitud;size:20;default:'pendiente'" json:"estado_solicitud"`
	EstadoPago         string `gorm:"column:estado_pago;size:20;default:'pendiente'" json:"estado_pago"`
	EncuestaRespondida bool   `gorm:"column:encuesta_respondida;default:false" json:"encuesta_respondida"`
	Activo             bool   `gorm:"default:false" json:"activo"`

	// Pago de membresía vía Midtrans (opcional al flujo manual del admin).
	PagoOrderID string `gorm:"column:pago_order_id;size:100" json:"pago_order_id,omitempty"`
	PagoToken   string `gorm:"column:pago_token;type:text" json:"-"`

	FechaCreacion time.Time `gorm:"column:fecha_creacion;autoCreateTime" json:"fecha_creacion"`
}

func (Empresa) TableName() string {
	return "empresas"
}
