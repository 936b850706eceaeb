package controller

import (
	"strings"

	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "descubrecurico_backend/internals/features/contenido/articulos/dto"
	model "descubrecurico_backend/internals/features/contenido/articulos/model"
	helper "descubrecurico_backend/internals/helpers"
)

type ComentarioController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewComentarioController(db *gorm.DB) *ComentarioController {
	return &ComentarioController{
		DB:        db,
		Validator: validator.New(),
	}
}

// POST /api/contenido/:tipo/:id/comentarios: público
func (ctl *ComentarioController) Crear(c *fiber.Ctx) error {
	tipo, err := parseTipoParam(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	// el dueño debe existir en la tabla del tipo
	var count int64
	if err := ctl.DB.WithContext(c.Context()).Table(tipo.Tabla()).
		Where("id = ?", id).Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if count == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Contenido no encontrado")
	}

	var req dto.CreateComentarioRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := model.Comentario{
		Tipo:    tipo,
		OwnerID: id,
		Nombre:  strings.TrimSpace(req.Nombre),
		Email:   strings.TrimSpace(req.Email),
		Texto:   strings.TrimSpace(req.Texto),
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Comentario publicado", dto.FromComentario(row))
}

// DELETE /api/a/contenido/comentarios/:id: moderación (admin)
func (ctl *ComentarioController) Eliminar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	res := ctl.DB.WithContext(c.Context()).Delete(&model.Comentario{}, id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Comentario no encontrado")
	}
	return helper.JsonDeleted(c, "Comentario eliminado", fiber.Map{"id": id})
}
