package helper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordYCheck(t *testing.T) {
	hash, err := HashPassword("secreto123")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$2"))

	assert.True(t, CheckPasswordHash("secreto123", hash))
	assert.False(t, CheckPasswordHash("otracosa", hash))
	assert.False(t, CheckPasswordHash("secreto123", "no-es-un-hash"))
}

// El texto que ya parece hash se vuelve a hashear igual; nunca se
// intenta adivinar si la entrada venía hasheada.
func TestHashPasswordNoDetectaHashes(t *testing.T) {
	previo, err := HashPassword("clave")
	require.NoError(t, err)

	doble, err := HashPassword(previo)
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash(previo, doble))
	assert.False(t, CheckPasswordHash("clave", doble))
}
