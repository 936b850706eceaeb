package service

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/midtrans/midtrans-go/snap"
	"github.com/google/uuid"

	model "descubrecurico_backend/internals/features/socios/empresas/model"
)

var (
	SnapClient snap.Client
	CoreClient coreapi.Client
)

// InitMidtrans se llama una vez al bootstrap. MIDTRANS_ENV=production
// cambia a producción; por defecto sandbox.
func InitMidtrans(serverKey string) {
	env := midtrans.Sandbox
	if os.Getenv("MIDTRANS_ENV") == "production" {
		env = midtrans.Production
	}
	SnapClient.New(serverKey, env)
	CoreClient.New(serverKey, env)
}

// MontoMembresia lee el valor de la cuota desde env (CLP), default 50000.
func MontoMembresia() int64 {
	if raw := os.Getenv("MEMBRESIA_MONTO"); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil && v > 0 {
			return v
		}
	}
	return 50000
}

// NuevoOrderID arma el order id del pago de membresía: EMP-<id>-<uuid>.
func NuevoOrderID(empresaID uint) string {
	return fmt.Sprintf("EMP-%d-%s", empresaID, uuid.NewString()[:8])
}

// GenerateSnapToken crea la transacción Snap de la cuota de membresía de
// una empresa y devuelve (orderID, token, redirectURL).
func GenerateSnapToken(e *model.Empresa, correo, telefono string) (string, string, string, error) {
	if e == nil || e.IDEmpresa == 0 {
		return "", "", "", errors.New("empresa inválida")
	}

	orderID := NuevoOrderID(e.IDEmpresa)
	monto := MontoMembresia()

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: monto,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: e.Nombre,
			Email: correo,
			Phone: telefono,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    fmt.Sprintf("membresia-%d", e.IDEmpresa),
				Price: monto,
				Qty:   1,
				Name:  "Cuota de membresía " + e.Nombre,
			},
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", "", err
	}
	return orderID, resp.Token, resp.RedirectURL, nil
}

// VerifyTransaction consulta el estado real del order en Midtrans; el
// webhook nunca confía en el payload entrante.
func VerifyTransaction(orderID string) (string, error) {
	resp, err := CoreClient.CheckTransaction(orderID)
	if err != nil {
		return "", err
	}
	if resp == nil {
		return "", errors.New("respuesta vacía de midtrans")
	}
	return resp.TransactionStatus, nil
}
