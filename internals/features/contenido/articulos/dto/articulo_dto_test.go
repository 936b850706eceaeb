package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNuevasCategorias(t *testing.T) {
	assert.Equal(t,
		[]string{"Vinos", "Historia"},
		ParseNuevasCategorias("Vinos, Vinos, Historia"))

	assert.Equal(t,
		[]string{"Gastronomía", "Turismo rural"},
		ParseNuevasCategorias("  Gastronomía ,, Turismo rural ,"))

	// La coincidencia es exacta: mayúsculas distintas son categorías distintas.
	assert.Equal(t,
		[]string{"Vinos", "vinos"},
		ParseNuevasCategorias("Vinos, vinos"))

	assert.Nil(t, ParseNuevasCategorias(""))
	assert.Nil(t, ParseNuevasCategorias("  ,  , "))
}
