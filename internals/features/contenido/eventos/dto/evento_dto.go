package dto

import (
	"strings"
	"time"

	model "descubrecurico_backend/internals/features/contenido/eventos/model"
)

type CreateEventoRequest struct {
	Titulo       string    `json:"titulo" validate:"required,max=200"`
	Descripcion  string    `json:"descripcion" validate:"required"`
	FechaInicio  time.Time `json:"fecha_inicio" validate:"required"`
	FechaTermino time.Time `json:"fecha_termino" validate:"required"`
	Lugar        string    `json:"lugar" validate:"omitempty,max=200"`
}

type UpdateEventoRequest struct {
	Titulo       *string    `json:"titulo" validate:"omitempty,max=200"`
	Descripcion  *string    `json:"descripcion" validate:"omitempty"`
	FechaInicio  *time.Time `json:"fecha_inicio" validate:"omitempty"`
	FechaTermino *time.Time `json:"fecha_termino" validate:"omitempty"`
	Lugar        *string    `json:"lugar" validate:"omitempty,max=200"`
}

type EventoResponse struct {
	ID           uint      `json:"id"`
	Tipo         string    `json:"tipo"`
	Titulo       string    `json:"titulo"`
	Slug         string    `json:"slug"`
	Descripcion  string    `json:"descripcion"`
	FechaInicio  time.Time `json:"fecha_inicio"`
	FechaTermino time.Time `json:"fecha_termino"`
	Lugar        string    `json:"lugar"`
	Activo       bool      `json:"activo"`
}

func FromEvento(m model.Evento, now time.Time) EventoResponse {
	return EventoResponse{
		ID:           m.ID,
		Tipo:         "evento",
		Titulo:       m.Titulo,
		Slug:         m.Slug,
		Descripcion:  m.Descripcion,
		FechaInicio:  m.FechaInicio,
		FechaTermino: m.FechaTermino,
		Lugar:        m.Lugar,
		Activo:       m.EstaActivo(now),
	}
}

func FromActividad(m model.Actividad, now time.Time) EventoResponse {
	return EventoResponse{
		ID:           m.ID,
		Tipo:         "actividad",
		Titulo:       m.Titulo,
		Slug:         m.Slug,
		Descripcion:  m.Descripcion,
		FechaInicio:  m.FechaInicio,
		FechaTermino: m.FechaTermino,
		Lugar:        m.Lugar,
		Activo:       m.EstaActiva(now),
	}
}

func (r *CreateEventoRequest) Normalizar() {
	r.Titulo = strings.TrimSpace(r.Titulo)
	r.Descripcion = strings.TrimSpace(r.Descripcion)
	r.Lugar = strings.TrimSpace(r.Lugar)
}
