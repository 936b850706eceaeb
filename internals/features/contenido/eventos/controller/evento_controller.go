package controller

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "descubrecurico_backend/internals/features/contenido/eventos/dto"
	model "descubrecurico_backend/internals/features/contenido/eventos/model"
	helper "descubrecurico_backend/internals/helpers"
)

type EventoController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewEventoController(db *gorm.DB) *EventoController {
	return &EventoController{
		DB:        db,
		Validator: validator.New(),
	}
}

// tablaEvento resuelve el parámetro :tipo (evento|actividad).
func tablaEvento(c *fiber.Ctx) (string, error) {
	switch strings.TrimSpace(c.Params("tipo")) {
	case "evento", "eventos":
		return "eventos", nil
	case "actividad", "actividades":
		return "actividades", nil
	}
	return "", fiber.NewError(fiber.StatusNotFound, "Tipo desconocido")
}

func slugEvento(ctx context.Context, db *gorm.DB, table, titulo string, excludeID *uint) (string, error) {
	base := helper.Slugify(titulo, 220)
	var scope func(*gorm.DB) *gorm.DB
	if excludeID != nil {
		id := *excludeID
		scope = func(q *gorm.DB) *gorm.DB { return q.Where("id <> ?", id) }
	}
	return helper.EnsureUniqueSlug(ctx, db, table, "slug", base, scope, 220)
}

const maxSlugRetries = 3

/* ==============================
   Público
============================== */

// GET /api/eventos: eventos y actividades juntos, más el próximo por
// iniciar de cada tipo.
func (ctl *EventoController) Listar(c *fiber.Ctx) error {
	now := time.Now()

	var eventos []model.Evento
	if err := ctl.DB.WithContext(c.Context()).Order("fecha_inicio ASC").Find(&eventos).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	var actividades []model.Actividad
	if err := ctl.DB.WithContext(c.Context()).Order("fecha_inicio ASC").Find(&actividades).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	items := make([]dto.EventoResponse, 0, len(eventos)+len(actividades))
	var proximoEvento, proximaActividad *dto.EventoResponse
	for _, e := range eventos {
		r := dto.FromEvento(e, now)
		items = append(items, r)
		if proximoEvento == nil && !e.FechaInicio.Before(now) {
			rr := r
			proximoEvento = &rr
		}
	}
	for _, a := range actividades {
		r := dto.FromActividad(a, now)
		items = append(items, r)
		if proximaActividad == nil && !a.FechaInicio.Before(now) {
			rr := r
			proximaActividad = &rr
		}
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].FechaInicio.Before(items[j].FechaInicio)
	})

	return helper.Success(c, "Agenda", fiber.Map{
		"items":             items,
		"proximo_evento":    proximoEvento,
		"proxima_actividad": proximaActividad,
	})
}

// GET /api/eventos/:tipo/:slug
func (ctl *EventoController) Detalle(c *fiber.Ctx) error {
	table, err := tablaEvento(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	slug := strings.TrimSpace(c.Params("slug"))
	now := time.Now()

	if table == "eventos" {
		var row model.Evento
		if err := ctl.DB.WithContext(c.Context()).First(&row, "slug = ?", slug).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusNotFound, "Evento no encontrado")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		return helper.Success(c, "Detalle", dto.FromEvento(row, now))
	}

	var row model.Actividad
	if err := ctl.DB.WithContext(c.Context()).First(&row, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Actividad no encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Detalle", dto.FromActividad(row, now))
}

/* ==============================
   Admin
============================== */

// POST /api/a/eventos/:tipo
func (ctl *EventoController) Crear(c *fiber.Ctx) error {
	table, err := tablaEvento(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var req dto.CreateEventoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalizar()
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.FechaTermino.Before(req.FechaInicio) {
		return helper.JsonErrorWithDetails(c, fiber.StatusUnprocessableEntity, "Validación fallida",
			fiber.Map{"fecha_termino": "El término no puede ser anterior al inicio."})
	}

	now := time.Now()
	var resp dto.EventoResponse

	// Transacción + reintento: la unique constraint del slug es la fuente
	// de verdad, no el check previo.
	for intento := 0; ; intento++ {
		err = ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
			slug, serr := slugEvento(c.Context(), tx, table, req.Titulo, nil)
			if serr != nil {
				return serr
			}

			if table == "eventos" {
				row := model.Evento{
					Titulo:       req.Titulo,
					Slug:         slug,
					Descripcion:  req.Descripcion,
					FechaInicio:  req.FechaInicio,
					FechaTermino: req.FechaTermino,
					Lugar:        req.Lugar,
				}
				if cerr := tx.Create(&row).Error; cerr != nil {
					return cerr
				}
				resp = dto.FromEvento(row, now)
				return nil
			}

			row := model.Actividad{
				Titulo:       req.Titulo,
				Slug:         slug,
				Descripcion:  req.Descripcion,
				FechaInicio:  req.FechaInicio,
				FechaTermino: req.FechaTermino,
				Lugar:        req.Lugar,
			}
			if cerr := tx.Create(&row).Error; cerr != nil {
				return cerr
			}
			resp = dto.FromActividad(row, now)
			return nil
		})

		if err == nil {
			break
		}
		if helper.IsDuplicateKey(err) && intento < maxSlugRetries {
			continue
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if table == "eventos" {
		return helper.JsonCreated(c, "Evento creado", resp)
	}
	return helper.JsonCreated(c, "Actividad creada", resp)
}

// PUT /api/a/eventos/:tipo/:id
func (ctl *EventoController) Actualizar(c *fiber.Ctx) error {
	table, err := tablaEvento(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.UpdateEventoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if req.Titulo != nil && strings.TrimSpace(*req.Titulo) != "" {
		titulo := strings.TrimSpace(*req.Titulo)
		uid := uint(id)
		slug, serr := slugEvento(c.Context(), ctl.DB, table, titulo, &uid)
		if serr != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, serr.Error())
		}
		updates["titulo"] = titulo
		updates["slug"] = slug
	}
	if req.Descripcion != nil {
		updates["descripcion"] = strings.TrimSpace(*req.Descripcion)
	}
	if req.FechaInicio != nil {
		updates["fecha_inicio"] = *req.FechaInicio
	}
	if req.FechaTermino != nil {
		updates["fecha_termino"] = *req.FechaTermino
	}
	if req.Lugar != nil {
		updates["lugar"] = strings.TrimSpace(*req.Lugar)
	}
	if len(updates) == 0 {
		return helper.Success(c, "Sin cambios", fiber.Map{"id": id})
	}

	res := ctl.DB.WithContext(c.Context()).Table(table).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Registro no encontrado")
	}
	return helper.JsonUpdated(c, "Registro actualizado", fiber.Map{"id": id})
}

// DELETE /api/a/eventos/:tipo/:id
func (ctl *EventoController) Eliminar(c *fiber.Ctx) error {
	table, err := tablaEvento(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var res *gorm.DB
	if table == "eventos" {
		res = ctl.DB.WithContext(c.Context()).Delete(&model.Evento{}, id)
	} else {
		res = ctl.DB.WithContext(c.Context()).Delete(&model.Actividad{}, id)
	}
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Registro no encontrado")
	}
	return helper.JsonDeleted(c, "Registro eliminado", fiber.Map{"id": id})
}
