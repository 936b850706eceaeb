package model

import (
	"time"
)

// Evento y Actividad son dos tablas planas casi idénticas; se mantienen
// separadas como en el dominio original.

type Evento struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Titulo        string    `gorm:"size:200;not null" json:"titulo"`
	Slug          string    `gorm:"size:220;uniqueIndex;not null" json:"slug"`
	Descripcion   string    `gorm:"type:text;not null" json:"descripcion"`
	FechaInicio   time.Time `gorm:"not null" json:"fecha_inicio"`
	FechaTermino  time.Time `gorm:"not null" json:"fecha_termino"`
	Lugar         string    `gorm:"size:200" json:"lugar"`
	CreadoEn      time.Time `gorm:"autoCreateTime" json:"creado_en"`
	ActualizadoEn time.Time `gorm:"autoUpdateTime" json:"actualizado_en"`
}

func (Evento) TableName() string { return "eventos" }

// EstaActivo: el evento aún no termina.
func (e Evento) EstaActivo(now time.Time) bool {
	return !e.FechaTermino.Before(now)
}

type Actividad struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Titulo        string    `gorm:"size:200;not null" json:"titulo"`
	Slug          string    `gorm:"size:220;uniqueIndex;not null" json:"slug"`
	Descripcion   string    `gorm:"type:text;not null" json:"descripcion"`
	FechaInicio   time.Time `gorm:"not null" json:"fecha_inicio"`
	FechaTermino  time.Time `gorm:"not null" json:"fecha_termino"`
	Lugar         string    `gorm:"size:200" json:"lugar"`
	CreadoEn      time.Time `gorm:"autoCreateTime" json:"creado_en"`
	ActualizadoEn time.Time `gorm:"autoUpdateTime" json:"actualizado_en"`
}

func (Actividad) TableName() string { return "actividades" }

func (a Actividad) EstaActiva(now time.Time) bool {
	return !a.FechaTermino.Before(now)
}
