package model

import (
	"time"

	"gorm.io/datatypes"

	empresaModel "descubrecurico_backend/internals/features/socios/empresas/model"
)

const (
	RespuestaSi = "si"
	RespuestaNo = "no"
)

// Encuesta de incorporación: una por empresa (unique FK). La constraint es
// la fuente de verdad del get-or-create; ver controller.
type Encuesta struct {
	IDEncuesta uint                 `gorm:"column:id_encuesta;primaryKey" json:"id_encuesta"`
	EmpresaID  uint                 `gorm:"column:empresa_id;uniqueIndex;not null" json:"empresa_id"`
	Empresa    *empresaModel.Empresa `gorm:"foreignKey:EmpresaID;constraint:OnDelete:CASCADE" json:"-"`

	Pregunta1DescuentoComercializacion string `gorm:"column:pregunta_1_descuento_comercializacion;size:2" json:"pregunta_1_descuento_comercializacion"`
	Pregunta2TipoDescuento             string `gorm:"column:pregunta_2_tipo_descuento;size:255" json:"pregunta_2_tipo_descuento"`
	Pregunta2Porcentaje                *int   `gorm:"column:pregunta_2_porcentaje" json:"pregunta_2_porcentaje,omitempty"`
	Pregunta3ValorEmpresa              string `gorm:"column:pregunta_3_valor_empresa;type:text" json:"pregunta_3_valor_empresa"`
	Pregunta4EmpresaReferencia         string `gorm:"column:pregunta_4_empresa_referencia;size:255" json:"pregunta_4_empresa_referencia"`

	// Snapshot crudo de lo enviado, por si el cuestionario cambia.
	RespuestasRaw datatypes.JSON `gorm:"column:respuestas_raw" json:"respuestas_raw,omitempty"`

	FechaCreacion       time.Time `gorm:"column:fecha_creacion;autoCreateTime" json:"fecha_creacion"`
	FechaActualizacion  time.Time `gorm:"column:fecha_actualizacion;autoUpdateTime" json:"fecha_actualizacion"`
}

func (Encuesta) TableName() string {
	return "encuestas"
}
