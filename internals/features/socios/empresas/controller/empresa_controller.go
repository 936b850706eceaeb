package controller

import (
	"bytes"
	"errors"
	"html/template"
	"strings"

	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"descubrecurico_backend/internals/constants"
	dto "descubrecurico_backend/internals/features/socios/empresas/dto"
	model "descubrecurico_backend/internals/features/socios/empresas/model"
	socioModel "descubrecurico_backend/internals/features/socios/socios/model"
	helper "descubrecurico_backend/internals/helpers"
	middlewares "descubrecurico_backend/internals/middlewares"
)

type EmpresaController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewEmpresaController(db *gorm.DB) *EmpresaController {
	return &EmpresaController{
		DB:        db,
		Validator: validator.New(),
	}
}

/* ==============================
   Fragmento AJAX del listado admin
============================== */

// Fila del refresco incremental de la tabla admin; se entrega como
// {html, count} cuando la request trae el marcador XMLHttpRequest.
var tablaEmpresasTmpl = template.Must(template.New("filas").Parse(strings.TrimSpace(`
{{range .}}<tr data-id="{{.IDEmpresa}}">
  <td>{{.Nombre}}</td>
  <td>{{.Rubro}}</td>
  <td>{{.SocioNombre}}</td>
  <td>{{.EstadoSolicitud}}</td>
  <td>{{.EstadoPago}}</td>
  <td>{{if .EncuestaRespondida}}Sí{{else}}No{{end}}</td>
  <td>{{if .Activo}}Visible{{else}}Oculta{{end}}</td>
</tr>
{{end}}`)))

func esAJAX(c *fiber.Ctx) bool {
	return strings.EqualFold(c.Get("X-Requested-With"), "XMLHttpRequest")
}

/* ==============================
   Crear (socio o admin)
============================== */

// POST /api/s/empresas: acepta JSON o multipart (campo "foto" opcional).
// El RUN del socio dueño viene en run_socio; si falta se toma de la
// identidad socio de la request.
func (ctl *EmpresaController) Crear(c *fiber.Ctx) error {
	var req dto.CreateEmpresaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalizar()
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	run := req.RunSocio
	if run == "" {
		run, _ = c.Locals("socio_rut").(string)
	}
	if run == "" {
		if sess, err := middlewares.GetSession(c); err == nil {
			run, _ = sess.Get(constants.SesSocioRUT).(string)
		}
	}
	if strings.TrimSpace(run) == "" {
		return helper.JsonErrorWithDetails(c, fiber.StatusUnprocessableEntity, "Validación fallida",
			fiber.Map{"run_socio": "Debe indicar el RUN del socio."})
	}

	var socio socioModel.Socio
	if err := ctl.DB.WithContext(c.Context()).
		Where("socio_rut = ?", helper.NormalizarRUT(run)).
		First(&socio).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonErrorWithDetails(c, fiber.StatusUnprocessableEntity, "Validación fallida",
				fiber.Map{"run_socio": "El RUN ingresado no corresponde a un socio registrado."})
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	row := model.Empresa{
		Nombre:            req.Nombre,
		DireccionCompleta: req.DireccionCompleta,
		Calle:             req.Calle,
		ComunaID:          req.ComunaID,
		Telefono:          req.Telefono,
		Correo:            req.Correo,
		Instagram:         req.Instagram,
		Facebook:          req.Facebook,
		Web:               req.Web,
		Latitud:           req.Latitud,
		Longitud:          req.Longitud,
		SocioID:           &socio.SocioID,
		RubroID:           req.RubroID,
		TipoComercializacionID: req.TipoComercializacionID,
		EstadoSolicitud:   model.SolicitudPendiente,
		EstadoPago:        model.PagoPendiente,
	}
	if req.RUT != "" {
		rut := helper.NormalizarRUT(req.RUT)
		row.RUT = &rut
	}

	if fh, err := c.FormFile("foto"); err == nil && fh != nil {
		url, uerr := helper.GuardarImagen("empresas/fotos", fh)
		if uerr != nil {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, uerr.Error())
		}
		row.Foto = url
	}

	if err := ctl.DB.WithContext(c.Context()).Create(&row).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Ya existe una empresa con ese RUT")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// empresa en curso: la encuesta se retoma desde la sesión
	if sess, err := middlewares.GetSession(c); err == nil {
		sess.Set(constants.SesEmpresaID, int(row.IDEmpresa))
		_ = sess.Save()
	}

	row.Socio = &socio
	return helper.JsonCreated(c, "Empresa creada, continúa con la encuesta", dto.FromEmpresaAdmin(&row))
}

/* ==============================
   Directorio público
============================== */

// GET /api/empresas: solo empresas activas, con coordenadas de mapa
// (fallback al centro de Curicó).
func (ctl *EmpresaController) Directorio(c *fiber.Ctx) error {
	q := ctl.DB.WithContext(c.Context()).Model(&model.Empresa{}).
		Preload("Comuna").Preload("Rubro").Preload("TipoComercializacion").
		Where("activo = ?", true)

	if rubro := strings.TrimSpace(c.Query("rubro")); rubro != "" {
		q = q.Where("rubro_id = ?", rubro)
	}

	var rows []model.Empresa
	if err := q.Order("nombre ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	items := make([]dto.EmpresaPublicaResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.FromEmpresaPublica(&rows[i]))
	}
	return helper.Success(c, "Directorio de empresas", fiber.Map{
		"items": items,
		"mapa": fiber.Map{
			"centro_lat": dto.MapaLatPorDefecto,
			"centro_lng": dto.MapaLngPorDefecto,
		},
	})
}

/* ==============================
   Admin: listado con filtros
============================== */

// GET /api/a/empresas: filtros rubro, estado_solicitud, estado_pago,
// encuesta_respondida, activo, page. Con X-Requested-With: XMLHttpRequest
// responde {html, count} para el refresco de la tabla.
func (ctl *EmpresaController) Listar(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.Context()).Model(&model.Empresa{}).
		Preload("Comuna").Preload("Rubro").Preload("TipoComercializacion").Preload("Socio")

	if v := strings.TrimSpace(c.Query("rubro")); v != "" {
		q = q.Where("rubro_id = ?", v)
	}
	if v := strings.TrimSpace(c.Query("estado_solicitud")); v != "" {
		q = q.Where("estado_solicitud = ?", v)
	}
	if v := strings.TrimSpace(c.Query("estado_pago")); v != "" {
		q = q.Where("estado_pago = ?", v)
	}
	if v := strings.TrimSpace(c.Query("encuesta_respondida")); v != "" {
		q = q.Where("encuesta_respondida = ?", v == "1" || strings.EqualFold(v, "true"))
	}
	if v := strings.TrimSpace(c.Query("activo")); v != "" {
		q = q.Where("activo = ?", v == "1" || strings.EqualFold(v, "true"))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.Empresa
	if err := q.Order("fecha_creacion DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	items := make([]dto.EmpresaAdminResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.FromEmpresaAdmin(&rows[i]))
	}

	if esAJAX(c) {
		var buf bytes.Buffer
		if err := tablaEmpresasTmpl.Execute(&buf, items); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(fiber.Map{
			"html":  buf.String(),
			"count": total,
		})
	}

	return helper.Success(c, "Empresas", fiber.Map{
		"items":      items,
		"pagination": helper.BuildPagination(total, len(items), paging),
	})
}

// GET /api/a/empresas/:id
func (ctl *EmpresaController) Detalle(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	var row model.Empresa
	if err := ctl.DB.WithContext(c.Context()).
		Preload("Comuna").Preload("Rubro").Preload("TipoComercializacion").Preload("Socio").
		First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Empresa no encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Detalle de empresa", dto.FromEmpresaAdmin(&row))
}

/* ==============================
   Admin: ciclo de vida (tres ejes independientes)
============================== */

func (ctl *EmpresaController) mutarCampo(c *fiber.Ctx, campo string, valor interface{}) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	res := ctl.DB.WithContext(c.Context()).Model(&model.Empresa{}).
		Where("id_empresa = ?", id).Update(campo, valor)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Empresa no encontrada")
	}
	return helper.JsonUpdated(c, "Empresa actualizada", fiber.Map{"id_empresa": id, campo: valor})
}

// PATCH /api/a/empresas/:id/solicitud
func (ctl *EmpresaController) CambiarSolicitud(c *fiber.Ctx) error {
	var req dto.CambiarSolicitudRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	return ctl.mutarCampo(c, "estado_solicitud", req.EstadoSolicitud)
}

// PATCH /api/a/empresas/:id/pago
func (ctl *EmpresaController) CambiarPago(c *fiber.Ctx) error {
	var req dto.CambiarPagoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	return ctl.mutarCampo(c, "estado_pago", req.EstadoPago)
}

// PATCH /api/a/empresas/:id/activo
func (ctl *EmpresaController) CambiarActivo(c *fiber.Ctx) error {
	var req dto.CambiarActivoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	return ctl.mutarCampo(c, "activo", *req.Activo)
}

/* ==============================
   Admin: update / delete / foto
============================== */

// PUT /api/a/empresas/:id
func (ctl *EmpresaController) Actualizar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.UpdateEmpresaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if req.Nombre != nil && strings.TrimSpace(*req.Nombre) != "" {
		updates["nombre"] = strings.TrimSpace(*req.Nombre)
	}
	if req.DireccionCompleta != nil {
		updates["direccion_completa"] = strings.TrimSpace(*req.DireccionCompleta)
	}
	if req.Calle != nil {
		updates["calle"] = strings.TrimSpace(*req.Calle)
	}
	if req.ComunaID != nil {
		updates["comuna_id"] = *req.ComunaID
	}
	if req.Telefono != nil {
		updates["telefono"] = strings.TrimSpace(*req.Telefono)
	}
	if req.Correo != nil {
		updates["correo"] = strings.ToLower(strings.TrimSpace(*req.Correo))
	}
	if req.Instagram != nil {
		updates["instagram"] = strings.TrimSpace(*req.Instagram)
	}
	if req.Facebook != nil {
		updates["facebook"] = strings.TrimSpace(*req.Facebook)
	}
	if req.Web != nil {
		updates["web"] = strings.TrimSpace(*req.Web)
	}
	if req.Latitud != nil {
		updates["latitud"] = *req.Latitud
	}
	if req.Longitud != nil {
		updates["longitud"] = *req.Longitud
	}
	if req.RubroID != nil {
		updates["rubro_id"] = *req.RubroID
	}
	if req.TipoComercializacionID != nil {
		updates["tipo_comercializacion_id"] = *req.TipoComercializacionID
	}
	if len(updates) == 0 {
		return helper.Success(c, "Sin cambios", fiber.Map{"id_empresa": id})
	}

	res := ctl.DB.WithContext(c.Context()).Model(&model.Empresa{}).
		Where("id_empresa = ?", id).Updates(updates)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Empresa no encontrada")
	}
	return helper.JsonUpdated(c, "Empresa actualizada", fiber.Map{"id_empresa": id})
}

// DELETE /api/a/empresas/:id: la encuesta asociada cae en cascada
func (ctl *EmpresaController) Eliminar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	res := ctl.DB.WithContext(c.Context()).Delete(&model.Empresa{}, id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Empresa no encontrada")
	}
	return helper.JsonDeleted(c, "Empresa eliminada", fiber.Map{"id_empresa": id})
}

// POST /api/s/empresas/:id/foto: multipart "foto"
func (ctl *EmpresaController) SubirFoto(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	fh, err := c.FormFile("foto")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Falta el archivo 'foto'")
	}
	url, err := helper.GuardarImagen("empresas/fotos", fh)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	res := ctl.DB.WithContext(c.Context()).Model(&model.Empresa{}).
		Where("id_empresa = ?", id).Update("foto", url)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Empresa no encontrada")
	}
	return helper.JsonUpdated(c, "Foto actualizada", fiber.Map{"foto": url})
}
