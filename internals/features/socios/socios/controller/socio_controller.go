package controller

import (
	"errors"
	"strings"

	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	empresaModel "descubrecurico_backend/internals/features/socios/empresas/model"
	dto "descubrecurico_backend/internals/features/socios/socios/dto"
	model "descubrecurico_backend/internals/features/socios/socios/model"
	helper "descubrecurico_backend/internals/helpers"
)

type SocioController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewSocioController(db *gorm.DB) *SocioController {
	return &SocioController{
		DB:        db,
		Validator: validator.New(),
	}
}

/* ==============================
   Registro (público)
============================== */

// POST /api/socios/registro
func (ctl *SocioController) Registrar(c *fiber.Ctx) error {
	var req dto.RegistroSocioRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalizar()
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := helper.ValidarRUT(req.RUN); err != nil {
		return helper.JsonErrorWithDetails(c, fiber.StatusUnprocessableEntity, "Validación fallida",
			fiber.Map{"run": err.Error()})
	}
	rut := helper.NormalizarRUT(req.RUN)

	// la comuna debe pertenecer a la región indicada
	var comuna model.Comuna
	if err := ctl.DB.WithContext(c.Context()).Preload("Provincia").
		First(&comuna, req.ComunaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonErrorWithDetails(c, fiber.StatusUnprocessableEntity, "Validación fallida",
				fiber.Map{"comuna_id": "Comuna desconocida."})
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if comuna.Provincia.RegionID != req.RegionID {
		return helper.JsonErrorWithDetails(c, fiber.StatusUnprocessableEntity, "Validación fallida",
			fiber.Map{"comuna_id": "La comuna no pertenece a la región seleccionada."})
	}

	hashed, err := helper.HashPassword(req.Contrasena)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo procesar la contraseña")
	}

	row := model.Socio{
		SocioRUT:             rut,
		SocioNombre:          req.Nombre,
		SocioApellidoPaterno: req.ApellidoPaterno,
		SocioApellidoMaterno: req.ApellidoMaterno,
		SocioCelular:         req.Celular,
		SocioFijo:            req.Fijo,
		SocioCorreo:          req.Correo,
		SocioDireccion:       req.Direccion,
		SocioNumero:          req.Numero,
		SocioComunaID:        req.ComunaID,
		SocioRegionID:        req.RegionID,
		SocioEstado:          "Activo",
		SocioContrasena:      hashed,
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&row).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Ya existe un socio con ese RUN o correo")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	row.SocioComuna = comuna
	return helper.JsonCreated(c, "Socio registrado", dto.FromSocio(&row))
}

/* ==============================
   Referencias para formularios (público)
============================== */

// GET /api/geo/regiones
func (ctl *SocioController) ListarRegiones(c *fiber.Ctx) error {
	var rows []model.Region
	if err := ctl.DB.WithContext(c.Context()).Order("id ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Regiones", rows)
}

// GET /api/geo/regiones/:id/comunas
func (ctl *SocioController) ListarComunasDeRegion(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	var rows []model.Comuna
	if err := ctl.DB.WithContext(c.Context()).
		Joins("JOIN provincias p ON p.id = comunas.provincia_id").
		Where("p.region_id = ?", id).
		Order("comunas.comuna ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Comunas", rows)
}

// GET /api/rubros
func (ctl *SocioController) ListarRubros(c *fiber.Ctx) error {
	var rows []model.Rubro
	if err := ctl.DB.WithContext(c.Context()).Order("nombre_rubro ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Rubros", rows)
}

// GET /api/tipos-comercializacion
func (ctl *SocioController) ListarTiposComercializacion(c *fiber.Ctx) error {
	var rows []model.TipoComercializacion
	if err := ctl.DB.WithContext(c.Context()).Order("nombre_tipo ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Tipos de comercialización", rows)
}

/* ==============================
   Admin
============================== */

// POST /api/a/rubros
func (ctl *SocioController) CrearRubro(c *fiber.Ctx) error {
	var req dto.CreateRubroRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	row := model.Rubro{NombreRubro: strings.TrimSpace(req.NombreRubro)}
	if err := ctl.DB.WithContext(c.Context()).Create(&row).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "El rubro ya existe")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Rubro creado", row)
}

// POST /api/a/tipos-comercializacion
func (ctl *SocioController) CrearTipoComercializacion(c *fiber.Ctx) error {
	var req dto.CreateTipoComercializacionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	row := model.TipoComercializacion{NombreTipo: strings.TrimSpace(req.NombreTipo)}
	if err := ctl.DB.WithContext(c.Context()).Create(&row).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "El tipo ya existe")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Tipo creado", row)
}

// GET /api/a/socios: listado con paginación y búsqueda ?q= (RUT o nombre)
func (ctl *SocioController) Listar(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.Context()).Model(&model.Socio{}).
		Preload("SocioComuna").Preload("SocioRegion")
	if term := strings.TrimSpace(c.Query("q")); term != "" {
		like := "%" + strings.ToLower(term) + "%"
		q = q.Where(
			"socio_rut LIKE ? OR LOWER(socio_nombre) LIKE ? OR LOWER(socio_apellido_paterno) LIKE ?",
			"%"+helper.NormalizarRUT(term)+"%", like, like,
		)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.Socio
	if err := q.Order("socio_fecha_creacion DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	items := make([]dto.SocioResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.FromSocio(&rows[i]))
	}
	return helper.Success(c, "Socios", fiber.Map{
		"items":      items,
		"pagination": helper.BuildPagination(total, len(items), paging),
	})
}

// GET /api/a/socios/:id: detalle con sus empresas
func (ctl *SocioController) Detalle(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var row model.Socio
	if err := ctl.DB.WithContext(c.Context()).
		Preload("SocioComuna").Preload("SocioRegion").
		First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Socio no encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var empresas []empresaModel.Empresa
	if err := ctl.DB.WithContext(c.Context()).
		Preload("Rubro").Preload("Comuna").
		Where("socio_id = ?", row.SocioID).
		Order("fecha_creacion DESC").
		Find(&empresas).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Detalle de socio", fiber.Map{
		"socio":    dto.FromSocio(&row),
		"empresas": empresas,
	})
}

// DELETE /api/a/socios/:id: las empresas quedan con socio_id NULL (FK SET NULL)
func (ctl *SocioController) Eliminar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	res := ctl.DB.WithContext(c.Context()).Delete(&model.Socio{}, id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Socio no encontrado")
	}
	return helper.JsonDeleted(c, "Socio eliminado", fiber.Map{"socio_id": id})
}
