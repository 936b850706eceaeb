package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	model "descubrecurico_backend/internals/features/socios/empresas/model"
	service "descubrecurico_backend/internals/features/socios/empresas/service"
	helper "descubrecurico_backend/internals/helpers"
)

type PagoController struct {
	DB *gorm.DB
}

func NewPagoController(db *gorm.DB) *PagoController {
	return &PagoController{DB: db}
}

// POST /api/s/empresas/:id/pagar: genera el token Snap de la cuota de
// membresía. El estado_pago solo cambia vía webhook o acción del admin.
func (ctl *PagoController) CrearPago(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var row model.Empresa
	if err := ctl.DB.WithContext(c.Context()).First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Empresa no encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if row.EstadoPago == model.PagoPagado {
		return helper.JsonError(c, fiber.StatusConflict, "La cuota ya está pagada")
	}

	orderID, token, redirectURL, err := service.GenerateSnapToken(&row, row.Correo, row.Telefono)
	if err != nil {
		log.Printf("[ERROR] midtrans snap empresa=%d: %v", row.IDEmpresa, err)
		return helper.JsonError(c, fiber.StatusBadGateway, "No se pudo iniciar el pago")
	}

	if err := ctl.DB.WithContext(c.Context()).Model(&row).
		Updates(map[string]interface{}{
			"pago_order_id": orderID,
			"pago_token":    token,
		}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Pago iniciado", fiber.Map{
		"order_id":     orderID,
		"token":        token,
		"redirect_url": redirectURL,
		"monto":        service.MontoMembresia(),
	})
}

type notificacionMidtrans struct {
	OrderID           string `json:"order_id"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
}

// POST /api/pagos/notification: webhook de Midtrans. El estado se
// reconsulta contra la API; nunca se confía en el body entrante.
func (ctl *PagoController) Notificacion(c *fiber.Ctx) error {
	var notif notificacionMidtrans
	if err := c.BodyParser(&notif); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	orderID := strings.TrimSpace(notif.OrderID)
	if orderID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "order_id requerido")
	}

	status, err := service.VerifyTransaction(orderID)
	if err != nil {
		log.Printf("[ERROR] midtrans verify order=%s: %v", orderID, err)
		return helper.JsonError(c, fiber.StatusBadGateway, "No se pudo verificar la transacción")
	}

	var row model.Empresa
	if err := ctl.DB.WithContext(c.Context()).
		Where("pago_order_id = ?", orderID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Orden desconocida")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	switch status {
	case "capture", "settlement":
		if err := ctl.DB.WithContext(c.Context()).Model(&row).
			Update("estado_pago", model.PagoPagado).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		log.Printf("✅ Pago confirmado empresa=%d order=%s", row.IDEmpresa, orderID)
	case "deny", "cancel", "expire":
		log.Printf("⚠️ Pago fallido empresa=%d order=%s status=%s", row.IDEmpresa, orderID, status)
	default:
		// pending u otros estados intermedios: sin cambios
	}

	return helper.Success(c, "Notificación procesada", fiber.Map{
		"order_id": orderID,
		"status":   status,
	})
}
