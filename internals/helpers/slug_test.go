package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Fiesta de la Vendimia", "fiesta-de-la-vendimia"},
		{"Curicó  y sus   rincones", "curico-y-sus-rincones"},
		{"¡Ñandú & Cía!", "nandu-cia"},
		{"---", "item"},
		{"", "item"},
		{"MAYÚSCULAS", "mayusculas"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.in, 100), "Slugify(%q)", tc.in)
	}
}

func TestSlugifyRespetaLargoMaximo(t *testing.T) {
	long := "titulo-muy-largo-que-no-termina-nunca-jamas-de-los-jamases"
	got := Slugify(long, 20)
	assert.LessOrEqual(t, len(got), 20)
	assert.NotEqual(t, "-", got[len(got)-1:])
}

// El segundo título idéntico recibe el sufijo -1, el tercero -2.
func TestNextSlugCandidateSecuencia(t *testing.T) {
	base := Slugify("Fiestas Patrias en Curicó", 220)

	assert.Equal(t, "fiestas-patrias-en-curico", NextSlugCandidate(base, 0, 220))
	assert.Equal(t, "fiestas-patrias-en-curico-1", NextSlugCandidate(base, 1, 220))
	assert.Equal(t, "fiestas-patrias-en-curico-2", NextSlugCandidate(base, 2, 220))
}

func TestNextSlugCandidateRecortaParaElSufijo(t *testing.T) {
	base := "abcdefghij" // 10 runas
	got := NextSlugCandidate(base, 7, 10)
	assert.LessOrEqual(t, len(got), 10)
	assert.Equal(t, "-7", got[len(got)-2:])
}

func TestIsDuplicateKey(t *testing.T) {
	assert.False(t, IsDuplicateKey(nil))
	assert.True(t, IsDuplicateKey(errString("ERROR: duplicate key value violates unique constraint \"idx\" (SQLSTATE 23505)")))
	assert.False(t, IsDuplicateKey(errString("connection refused")))
}

type errString string

func (e errString) Error() string { return string(e) }
