package helper

import (
	"errors"
	"strings"
)

var (
	ErrRUTCuerpo = errors.New("el RUN debe tener una parte numérica válida")
	ErrRUTDV     = errors.New("el RUN ingresado no es válido")
)

// NormalizarRUT quita puntos y guiones y pasa a mayúsculas: "12.987.654-3"
// queda "129876543". No valida nada.
func NormalizarRUT(rut string) string {
	rut = strings.ToUpper(strings.TrimSpace(rut))
	rut = strings.ReplaceAll(rut, ".", "")
	rut = strings.ReplaceAll(rut, "-", "")
	return rut
}

// ValidarRUT verifica el dígito verificador módulo 11 de un RUT chileno.
// Acepta el RUT con o sin puntuación. Pesos 2,3,4,5,6,7 cíclicos desde el
// dígito menos significativo; 11-resto==11 → '0', ==10 → 'K', si no el dígito.
func ValidarRUT(rut string) error {
	rut = NormalizarRUT(rut)
	if len(rut) < 2 {
		return ErrRUTCuerpo
	}

	cuerpo := rut[:len(rut)-1]
	dv := rut[len(rut)-1]

	suma := 0
	multiplicador := 2
	for i := len(cuerpo) - 1; i >= 0; i-- {
		d := cuerpo[i]
		if d < '0' || d > '9' {
			return ErrRUTCuerpo
		}
		suma += int(d-'0') * multiplicador
		if multiplicador == 7 {
			multiplicador = 2
		} else {
			multiplicador++
		}
	}

	resto := suma % 11
	verificador := 11 - resto

	var dvEsperado byte
	switch verificador {
	case 11:
		dvEsperado = '0'
	case 10:
		dvEsperado = 'K'
	default:
		dvEsperado = byte('0' + verificador)
	}

	if dv != dvEsperado {
		return ErrRUTDV
	}
	return nil
}
