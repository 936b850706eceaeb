package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizarRUT(t *testing.T) {
	assert.Equal(t, "123456785", NormalizarRUT("12.345.678-5"))
	assert.Equal(t, "6K", NormalizarRUT(" 6-k "))
	assert.Equal(t, "", NormalizarRUT(""))
}

func TestValidarRUT(t *testing.T) {
	// Válidos con y sin puntuación.
	assert.NoError(t, ValidarRUT("12.345.678-5"))
	assert.NoError(t, ValidarRUT("123456785"))
	assert.NoError(t, ValidarRUT("14-0"))  // 11 - resto == 11 → '0'
	assert.NoError(t, ValidarRUT("6-K"))   // 11 - resto == 10 → 'K'
	assert.NoError(t, ValidarRUT("6-k"))   // la K minúscula también sirve

	// Dígito verificador equivocado.
	assert.ErrorIs(t, ValidarRUT("12.345.678-9"), ErrRUTDV)

	// Cuerpo no numérico o demasiado corto.
	assert.ErrorIs(t, ValidarRUT("12a45678-5"), ErrRUTCuerpo)
	assert.ErrorIs(t, ValidarRUT("5"), ErrRUTCuerpo)
	assert.ErrorIs(t, ValidarRUT(""), ErrRUTCuerpo)
}
