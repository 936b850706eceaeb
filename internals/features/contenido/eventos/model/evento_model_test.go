package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEstaActivo(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	e := Evento{FechaTermino: now.Add(24 * time.Hour)}
	assert.True(t, e.EstaActivo(now))

	// El día exacto de término sigue activo; se apaga recién después.
	e.FechaTermino = now
	assert.True(t, e.EstaActivo(now))

	e.FechaTermino = now.Add(-time.Second)
	assert.False(t, e.EstaActivo(now))

	a := Actividad{FechaTermino: now}
	assert.True(t, a.EstaActiva(now))
	assert.False(t, a.EstaActiva(now.Add(time.Minute)))
}
