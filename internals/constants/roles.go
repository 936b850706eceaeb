package constants

import "fmt"

const (
	RoleAdmin = "admin"
	RoleSocio = "socio"
)

// Mensajes de error por rol
const (
	ErrSoloAdmin = "Solo un administrador puede acceder a %s."
	ErrSoloSocio = "Solo un socio o administrador puede acceder a %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrSoloAdmin, feature)
}

func RoleErrorSocio(feature string) string {
	return fmt.Sprintf(ErrSoloSocio, feature)
}

var (
	AllRoles = []string{
		RoleAdmin,
		RoleSocio,
	}

	AdminOnly = []string{
		RoleAdmin,
	}

	SocioAndAdmin = []string{
		RoleSocio,
		RoleAdmin,
	}
)
