package controller

import (
	"errors"

	"github.com/bytedance/sonic"
	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"descubrecurico_backend/internals/constants"
	empresaModel "descubrecurico_backend/internals/features/socios/empresas/model"
	dto "descubrecurico_backend/internals/features/socios/encuestas/dto"
	model "descubrecurico_backend/internals/features/socios/encuestas/model"
	helper "descubrecurico_backend/internals/helpers"
	middlewares "descubrecurico_backend/internals/middlewares"
)

type EncuestaController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewEncuestaController(db *gorm.DB) *EncuestaController {
	return &EncuestaController{
		DB:        db,
		Validator: validator.New(),
	}
}

// empresaEnCurso lee la empresa pendiente de encuesta desde la sesión.
func empresaEnCurso(c *fiber.Ctx) (uint, bool) {
	sess, err := middlewares.GetSession(c)
	if err != nil {
		return 0, false
	}
	switch v := sess.Get(constants.SesEmpresaID).(type) {
	case int:
		if v > 0 {
			return uint(v), true
		}
	case int64:
		if v > 0 {
			return uint(v), true
		}
	case float64:
		if v > 0 {
			return uint(v), true
		}
	case uint:
		if v > 0 {
			return v, true
		}
	}
	return 0, false
}

// GET /api/s/encuesta: empresa en curso + encuesta existente si la hay.
func (ctl *EncuestaController) EnCurso(c *fiber.Ctx) error {
	empresaID, ok := empresaEnCurso(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity,
			"No hay una empresa en curso; primero registra la empresa.")
	}

	var empresa empresaModel.Empresa
	if err := ctl.DB.WithContext(c.Context()).First(&empresa, empresaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Empresa no encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	resp := fiber.Map{
		"empresa_id":     empresa.IDEmpresa,
		"empresa_nombre": empresa.Nombre,
	}
	var existente model.Encuesta
	err := ctl.DB.WithContext(c.Context()).
		Where("empresa_id = ?", empresaID).First(&existente).Error
	if err == nil {
		resp["encuesta"] = dto.FromEncuesta(&existente)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Encuesta en curso", resp)
}

// POST /api/s/encuesta: responde (o completa) la encuesta de la empresa
// en curso. Get-or-create en transacción: la unique constraint sobre
// empresa_id es la fuente de verdad, un choque concurrente se resuelve
// releyendo la fila.
func (ctl *EncuestaController) Responder(c *fiber.Ctx) error {
	empresaID, ok := empresaEnCurso(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity,
			"No hay una empresa en curso; primero registra la empresa.")
	}

	var req dto.SubmitEncuestaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalizar()
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	raw, err := sonic.Marshal(req)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var row model.Encuesta
	txErr := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		var empresa empresaModel.Empresa
		if err := tx.First(&empresa, empresaID).Error; err != nil {
			return err
		}

		err := tx.Where("empresa_id = ?", empresaID).First(&row).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			row = model.Encuesta{EmpresaID: empresaID}
			if cerr := tx.Create(&row).Error; cerr != nil {
				if helper.IsDuplicateKey(cerr) {
					// otro submit ganó la carrera: usa su fila
					if rerr := tx.Where("empresa_id = ?", empresaID).First(&row).Error; rerr != nil {
						return rerr
					}
				} else {
					return cerr
				}
			}
		} else if err != nil {
			return err
		}

		porcentaje := req.Pregunta2Porcentaje
		tipoDescuento := req.Pregunta2TipoDescuento
		if req.Pregunta1DescuentoComercializacion == model.RespuestaNo {
			porcentaje = nil
			tipoDescuento = ""
		}

		if err := tx.Model(&row).Updates(map[string]interface{}{
			"pregunta_1_descuento_comercializacion": req.Pregunta1DescuentoComercializacion,
			"pregunta_2_tipo_descuento":             tipoDescuento,
			"pregunta_2_porcentaje":                 porcentaje,
			"pregunta_3_valor_empresa":              req.Pregunta3ValorEmpresa,
			"pregunta_4_empresa_referencia":         req.Pregunta4EmpresaReferencia,
			"respuestas_raw":                        datatypes.JSON(raw),
		}).Error; err != nil {
			return err
		}

		return tx.Model(&empresa).Update("encuesta_respondida", true).Error
	})
	if txErr != nil {
		if errors.Is(txErr, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Empresa no encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, txErr.Error())
	}

	// encuesta lista: se suelta la empresa en curso
	if sess, err := middlewares.GetSession(c); err == nil {
		sess.Delete(constants.SesEmpresaID)
		_ = sess.Save()
	}

	if err := ctl.DB.WithContext(c.Context()).
		Where("empresa_id = ?", empresaID).First(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Encuesta enviada", dto.FromEncuesta(&row))
}

// GET /api/a/encuestas/:empresa_id: lectura admin
func (ctl *EncuestaController) PorEmpresa(c *fiber.Ctx) error {
	id, err := c.ParamsInt("empresa_id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	var row model.Encuesta
	if err := ctl.DB.WithContext(c.Context()).
		Where("empresa_id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "La empresa aún no responde la encuesta")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Encuesta", dto.FromEncuesta(&row))
}
