package controller

import (
	"errors"
	"strconv"
	"strings"

	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	articuloModel "descubrecurico_backend/internals/features/contenido/articulos/model"
	eventoModel "descubrecurico_backend/internals/features/contenido/eventos/model"
	dashModel "descubrecurico_backend/internals/features/dashboard/model"
	empresaModel "descubrecurico_backend/internals/features/socios/empresas/model"
	socioModel "descubrecurico_backend/internals/features/socios/socios/model"
	helper "descubrecurico_backend/internals/helpers"
)

type DashboardController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{
		DB:        db,
		Validator: validator.New(),
	}
}

/* ==============================
   Admin
============================== */

// GET /api/a/dashboard: totales del panel
func (ctl *DashboardController) ResumenAdmin(c *fiber.Ctx) error {
	counts := fiber.Map{}
	type conteo struct {
		clave  string
		modelo interface{}
	}
	for _, item := range []conteo{
		{"socios", &socioModel.Socio{}},
		{"empresas", &empresaModel.Empresa{}},
		{"articulos", &articuloModel.Articulo{}},
		{"noticias", &articuloModel.Noticia{}},
		{"reportajes", &articuloModel.Reportaje{}},
		{"eventos", &eventoModel.Evento{}},
		{"actividades", &eventoModel.Actividad{}},
	} {
		var n int64
		if err := ctl.DB.WithContext(c.Context()).Model(item.modelo).Count(&n).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		counts[item.clave] = n
	}

	var pendientes, sinLeer int64
	if err := ctl.DB.WithContext(c.Context()).Model(&empresaModel.Empresa{}).
		Where("estado_solicitud = ?", empresaModel.SolicitudPendiente).
		Count(&pendientes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := ctl.DB.WithContext(c.Context()).Model(&dashModel.MensajeContacto{}).
		Where("leido = ?", false).Count(&sinLeer).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	counts["solicitudes_pendientes"] = pendientes
	counts["mensajes_sin_leer"] = sinLeer

	return helper.Success(c, "Resumen", counts)
}

/* ==============================
   Socio
============================== */

// GET /api/s/dashboard: el socio de la request con sus empresas
func (ctl *DashboardController) ResumenSocio(c *fiber.Ctx) error {
	rawID, _ := c.Locals("socio_id").(string)
	socioID, err := strconv.Atoi(rawID)
	if err != nil || socioID <= 0 {
		return helper.JsonError(c, fiber.StatusForbidden, "La identidad no corresponde a un socio")
	}

	var socio socioModel.Socio
	if err := ctl.DB.WithContext(c.Context()).
		Preload("SocioComuna").Preload("SocioRegion").
		First(&socio, socioID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Socio no encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var empresas []empresaModel.Empresa
	if err := ctl.DB.WithContext(c.Context()).
		Preload("Rubro").Preload("Comuna").
		Where("socio_id = ?", socio.SocioID).
		Order("fecha_creacion DESC").
		Find(&empresas).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Panel del socio", fiber.Map{
		"socio_id":     socio.SocioID,
		"socio_nombre": socio.NombreCompleto(),
		"socio_rut":    socio.SocioRUT,
		"empresas":     empresas,
	})
}

/* ==============================
   Contacto
============================== */

type crearMensajeRequest struct {
	Nombre  string `json:"nombre" validate:"required,max=120"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Asunto  string `json:"asunto" validate:"omitempty,max=200"`
	Mensaje string `json:"mensaje" validate:"required"`
}

// POST /api/contacto: público
func (ctl *DashboardController) CrearMensaje(c *fiber.Ctx) error {
	var req crearMensajeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := dashModel.MensajeContacto{
		Nombre:  strings.TrimSpace(req.Nombre),
		Email:   strings.TrimSpace(req.Email),
		Asunto:  strings.TrimSpace(req.Asunto),
		Mensaje: strings.TrimSpace(req.Mensaje),
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Mensaje recibido, te contactaremos pronto", fiber.Map{"id": row.ID})
}

// GET /api/a/mensajes: ?leido=0|1
func (ctl *DashboardController) ListarMensajes(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.Context()).Model(&dashModel.MensajeContacto{})
	if v := strings.TrimSpace(c.Query("leido")); v != "" {
		q = q.Where("leido = ?", v == "1" || strings.EqualFold(v, "true"))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	var rows []dashModel.MensajeContacto
	if err := q.Order("creado_en DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Mensajes de contacto", fiber.Map{
		"items":      rows,
		"pagination": helper.BuildPagination(total, len(rows), paging),
	})
}

// PATCH /api/a/mensajes/:id/leido
func (ctl *DashboardController) MarcarLeido(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	res := ctl.DB.WithContext(c.Context()).Model(&dashModel.MensajeContacto{}).
		Where("id = ?", id).Update("leido", true)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Mensaje no encontrado")
	}
	return helper.JsonUpdated(c, "Mensaje marcado como leído", fiber.Map{"id": id})
}
