package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func camposConError(err error) map[string]bool {
	campos := map[string]bool{}
	if err == nil {
		return campos
	}
	for _, fe := range err.(validator.ValidationErrors) {
		campos[fe.Field()] = true
	}
	return campos
}

func TestSubmitEncuestaCondicional(t *testing.T) {
	v := validator.New()
	pct := 15

	// Con descuento: tipo y porcentaje son obligatorios, cada uno con
	// su propio error de campo.
	req := SubmitEncuestaRequest{
		Pregunta1DescuentoComercializacion: "si",
		Pregunta3ValorEmpresa:              "Tradición familiar",
		Pregunta4EmpresaReferencia:         "Viña del Valle",
	}
	campos := camposConError(v.Struct(req))
	assert.True(t, campos["Pregunta2TipoDescuento"])
	assert.True(t, campos["Pregunta2Porcentaje"])

	// Completa, pasa.
	req.Pregunta2TipoDescuento = "Descuento socio"
	req.Pregunta2Porcentaje = &pct
	require.NoError(t, v.Struct(req))

	// Sin descuento: los campos de la pregunta 2 pueden venir vacíos.
	sin := SubmitEncuestaRequest{
		Pregunta1DescuentoComercializacion: "no",
		Pregunta3ValorEmpresa:              "Calidad",
		Pregunta4EmpresaReferencia:         "Ninguna",
	}
	require.NoError(t, v.Struct(sin))
}

func TestSubmitEncuestaRangos(t *testing.T) {
	v := validator.New()

	fuera := 120
	req := SubmitEncuestaRequest{
		Pregunta1DescuentoComercializacion: "si",
		Pregunta2TipoDescuento:             "Descuento",
		Pregunta2Porcentaje:                &fuera,
		Pregunta3ValorEmpresa:              "Calidad",
		Pregunta4EmpresaReferencia:         "Ninguna",
	}
	campos := camposConError(v.Struct(req))
	assert.True(t, campos["Pregunta2Porcentaje"])

	req.Pregunta1DescuentoComercializacion = "quizas"
	campos = camposConError(v.Struct(req))
	assert.True(t, campos["Pregunta1DescuentoComercializacion"])
}

func TestNormalizar(t *testing.T) {
	req := SubmitEncuestaRequest{
		Pregunta1DescuentoComercializacion: "  SI ",
		Pregunta2TipoDescuento:             " 2x1 ",
		Pregunta3ValorEmpresa:              " Cercanía ",
		Pregunta4EmpresaReferencia:         " Otra ",
	}
	req.Normalizar()
	assert.Equal(t, "si", req.Pregunta1DescuentoComercializacion)
	assert.Equal(t, "2x1", req.Pregunta2TipoDescuento)
	assert.Equal(t, "Cercanía", req.Pregunta3ValorEmpresa)
	assert.Equal(t, "Otra", req.Pregunta4EmpresaReferencia)
}
