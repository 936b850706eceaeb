package dto

import (
	"strings"
	"time"

	model "descubrecurico_backend/internals/features/socios/encuestas/model"
)

// SubmitEncuestaRequest: si la pregunta 1 es "si", el tipo de descuento y
// el porcentaje pasan a ser obligatorios (los dos, cada uno con su error
// de campo).
type SubmitEncuestaRequest struct {
	Pregunta1DescuentoComercializacion string `json:"pregunta_1_descuento_comercializacion" validate:"required,oneof=si no"`
	Pregunta2TipoDescuento             string `json:"pregunta_2_tipo_descuento" validate:"required_if=Pregunta1DescuentoComercializacion si,max=255"`
	Pregunta2Porcentaje                *int   `json:"pregunta_2_porcentaje" validate:"required_if=Pregunta1DescuentoComercializacion si,omitempty,gte=0,lte=100"`
	Pregunta3ValorEmpresa              string `json:"pregunta_3_valor_empresa" validate:"required"`
	Pregunta4EmpresaReferencia         string `json:"pregunta_4_empresa_referencia" validate:"required,max=255"`
}

func (r *SubmitEncuestaRequest) Normalizar() {
	r.Pregunta1DescuentoComercializacion = strings.ToLower(strings.TrimSpace(r.Pregunta1DescuentoComercializacion))
	r.Pregunta2TipoDescuento = strings.TrimSpace(r.Pregunta2TipoDescuento)
	r.Pregunta3ValorEmpresa = strings.TrimSpace(r.Pregunta3ValorEmpresa)
	r.Pregunta4EmpresaReferencia = strings.TrimSpace(r.Pregunta4EmpresaReferencia)
}

type EncuestaResponse struct {
	IDEncuesta    uint      `json:"id_encuesta"`
	EmpresaID     uint      `json:"empresa_id"`
	Pregunta1     string    `json:"pregunta_1_descuento_comercializacion"`
	Pregunta2     string    `json:"pregunta_2_tipo_descuento,omitempty"`
	Porcentaje    *int      `json:"pregunta_2_porcentaje,omitempty"`
	Pregunta3     string    `json:"pregunta_3_valor_empresa"`
	Pregunta4     string    `json:"pregunta_4_empresa_referencia"`
	FechaCreacion time.Time `json:"fecha_creacion"`
}

func FromEncuesta(m *model.Encuesta) EncuestaResponse {
	return EncuestaResponse{
		IDEncuesta:    m.IDEncuesta,
		EmpresaID:     m.EmpresaID,
		Pregunta1:     m.Pregunta1DescuentoComercializacion,
		Pregunta2:     m.Pregunta2TipoDescuento,
		Porcentaje:    m.Pregunta2Porcentaje,
		Pregunta3:     m.Pregunta3ValorEmpresa,
		Pregunta4:     m.Pregunta4EmpresaReferencia,
		FechaCreacion: m.FechaCreacion,
	}
}
