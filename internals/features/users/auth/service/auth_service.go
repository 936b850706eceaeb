package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"descubrecurico_backend/internals/constants"
	socioModel "descubrecurico_backend/internals/features/socios/socios/model"
	model "descubrecurico_backend/internals/features/users/auth/model"
	helper "descubrecurico_backend/internals/helpers"
)

// ErrCredenciales es el fallo uniforme de login: no revela si el usuario,
// RUT o la contraseña fueron el problema.
var ErrCredenciales = errors.New("Usuario o contraseña incorrectos")

// RolSinAsignar marca una cuenta staff autenticada pero sin rol: pasa la
// autenticación y choca con 403 en los gates.
const RolSinAsignar = "sin_rol"

// Authenticate es el login unificado de dos estrategias:
//  1. cuenta staff por username/email + bcrypt;
//  2. si falla, el identificador se normaliza como RUT y se busca un Socio.
//
// Ambas rutas producen la misma Identity; cambia solo el rol y los campos
// socio_*.
func Authenticate(ctx context.Context, db *gorm.DB, identificador, password string) (Identity, error) {
	identificador = strings.TrimSpace(identificador)
	if identificador == "" || password == "" {
		return Identity{}, ErrCredenciales
	}

	// 1) staff
	var user model.UserModel
	err := db.WithContext(ctx).
		Where("(user_name = ? OR email = ?) AND is_active = ?", identificador, strings.ToLower(identificador), true).
		First(&user).Error
	switch {
	case err == nil:
		if helper.CheckPasswordHash(password, user.Password) {
			return identidadStaff(ctx, db, &user)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		// sigue con la estrategia RUT
	default:
		return Identity{}, err
	}

	// 2) socio por RUT
	rut := helper.NormalizarRUT(identificador)
	var socio socioModel.Socio
	if err := db.WithContext(ctx).Where("socio_rut = ?", rut).First(&socio).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Identity{}, ErrCredenciales
		}
		return Identity{}, err
	}
	if !helper.CheckPasswordHash(password, socio.SocioContrasena) {
		return Identity{}, ErrCredenciales
	}

	return Identity{
		Subject:     strconv.Itoa(int(socio.SocioID)),
		Role:        constants.RoleSocio,
		UserName:    socio.NombreCompleto(),
		SocioID:     strconv.Itoa(int(socio.SocioID)),
		SocioNombre: socio.NombreCompleto(),
		SocioRUT:    socio.SocioRUT,
	}, nil
}

func identidadStaff(ctx context.Context, db *gorm.DB, user *model.UserModel) (Identity, error) {
	role := RolSinAsignar
	if user.IsSuper {
		role = constants.RoleAdmin
	} else {
		var asignacion model.UsuarioRol
		err := db.WithContext(ctx).Preload("Rol").
			Where("usuario_id = ?", user.ID).First(&asignacion).Error
		switch {
		case err == nil:
			role = asignacion.Rol.Nombre
		case errors.Is(err, gorm.ErrRecordNotFound):
			// queda sin rol
		default:
			return Identity{}, err
		}
	}

	return Identity{
		Subject:  user.ID.String(),
		Role:     role,
		UserName: user.UserName,
	}, nil
}

// IdentityForSubject reconstruye la identidad al refrescar el access token.
func IdentityForSubject(ctx context.Context, db *gorm.DB, subject, role string) (Identity, error) {
	if role == constants.RoleSocio {
		id, err := strconv.Atoi(subject)
		if err != nil {
			return Identity{}, ErrRefreshInvalido
		}
		var socio socioModel.Socio
		if err := db.WithContext(ctx).First(&socio, id).Error; err != nil {
			return Identity{}, ErrRefreshInvalido
		}
		return Identity{
			Subject:     subject,
			Role:        constants.RoleSocio,
			UserName:    socio.NombreCompleto(),
			SocioID:     subject,
			SocioNombre: socio.NombreCompleto(),
			SocioRUT:    socio.SocioRUT,
		}, nil
	}

	var user model.UserModel
	if err := db.WithContext(ctx).Where("id = ? AND is_active = ?", subject, true).First(&user).Error; err != nil {
		return Identity{}, ErrRefreshInvalido
	}
	return identidadStaff(ctx, db, &user)
}
