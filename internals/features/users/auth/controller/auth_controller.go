package controller

import (
	"errors"
	"strconv"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"descubrecurico_backend/internals/configs"
	"descubrecurico_backend/internals/constants"
	dto "descubrecurico_backend/internals/features/users/auth/dto"
	model "descubrecurico_backend/internals/features/users/auth/model"
	service "descubrecurico_backend/internals/features/users/auth/service"
	helper "descubrecurico_backend/internals/helpers"
	middlewares "descubrecurico_backend/internals/middlewares"
)

type AuthController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{
		DB:        db,
		Validator: validator.New(),
	}
}

func setAuthCookies(c *fiber.Ctx, access, refresh string) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    access,
		HTTPOnly: true,
		SameSite: "Lax",
		Expires:  time.Now().Add(service.AccessTokenTTL),
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refresh,
		HTTPOnly: true,
		SameSite: "Lax",
		Expires:  time.Now().Add(service.RefreshTokenTTL),
	})
}

func clearAuthCookies(c *fiber.Ctx) {
	for _, name := range []string{"access_token", "refresh_token"} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			HTTPOnly: true,
			SameSite: "Lax",
			Expires:  time.Now().Add(-time.Hour),
		})
	}
}

func (ctl *AuthController) emitir(c *fiber.Ctx, id service.Identity) error {
	access, err := service.NewAccessToken(id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo emitir el token")
	}
	refresh, err := service.NewRefreshToken(ctl.DB.WithContext(c.Context()), id.Subject, id.Role)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo emitir el refresh token")
	}
	setAuthCookies(c, access, refresh)

	// canal socio: la sesión server-side espeja los claims socio_*
	if id.Role == constants.RoleSocio {
		if sess, serr := middlewares.GetSession(c); serr == nil {
			socioID, _ := strconv.Atoi(id.SocioID)
			sess.Set(constants.SesEsSocioLogin, true)
			sess.Set(constants.SesSocioID, socioID)
			sess.Set(constants.SesSocioNombre, id.SocioNombre)
			sess.Set(constants.SesSocioRUT, id.SocioRUT)
			_ = sess.Save()
		}
	}

	return helper.Success(c, "Sesión iniciada", dto.LoginResponse{
		AccessToken: access,
		Role:        id.Role,
		UserName:    id.UserName,
		SocioID:     id.SocioID,
		SocioRUT:    id.SocioRUT,
	})
}

// POST /api/auth/login
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	id, err := service.Authenticate(c.Context(), ctl.DB, req.Identificador, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrCredenciales) {
			return helper.JsonError(c, fiber.StatusUnauthorized, service.ErrCredenciales.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error interno de autenticación")
	}
	return ctl.emitir(c, id)
}

// POST /api/auth/login-google: solo cuentas staff existentes, no crea
// usuarios.
func (ctl *AuthController) LoginGoogle(c *fiber.Ctx) error {
	var req dto.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(req.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token de Google inválido")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(req.IDToken)
	if err != nil || claimSet.Email == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token de Google inválido")
	}

	var user model.UserModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("email = ? AND is_active = ?", strings.ToLower(claimSet.Email), true).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "No existe una cuenta para ese correo")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	id, err := service.IdentityForSubject(c.Context(), ctl.DB, user.ID.String(), "")
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error interno de autenticación")
	}
	return ctl.emitir(c, id)
}

// POST /api/a/auth/register: alta de cuentas staff, con rol asignado
func (ctl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	hashed, err := helper.HashPassword(req.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo procesar la contraseña")
	}

	rolNombre := req.Rol
	if rolNombre == "" {
		rolNombre = constants.RoleSocio
	}

	var user model.UserModel
	txErr := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		user = model.UserModel{
			UserName: strings.TrimSpace(req.UserName),
			Email:    strings.ToLower(strings.TrimSpace(req.Email)),
			Password: hashed,
			IsActive: true,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		var rol model.Rol
		if err := tx.Where("nombre = ?", rolNombre).First(&rol).Error; err != nil {
			return err
		}
		return tx.Create(&model.UsuarioRol{UsuarioID: user.ID, RolID: rol.ID}).Error
	})
	if txErr != nil {
		if helper.IsDuplicateKey(txErr) {
			return helper.JsonError(c, fiber.StatusConflict, "Ya existe una cuenta con ese correo")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, txErr.Error())
	}

	return helper.JsonCreated(c, "Cuenta creada", fiber.Map{
		"id":        user.ID,
		"user_name": user.UserName,
		"email":     user.Email,
		"rol":       rolNombre,
	})
}

// POST /api/auth/refresh: rota el access token a partir del refresh cookie
func (ctl *AuthController) Refresh(c *fiber.Ctx) error {
	plain := c.Cookies("refresh_token")
	row, err := service.LookupRefreshToken(ctl.DB.WithContext(c.Context()), plain)
	if err != nil {
		if errors.Is(err, service.ErrRefreshInvalido) {
			clearAuthCookies(c)
			return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	id, err := service.IdentityForSubject(c.Context(), ctl.DB, row.Subject, row.Role)
	if err != nil {
		clearAuthCookies(c)
		return helper.JsonError(c, fiber.StatusUnauthorized, "Sesión expirada")
	}

	access, err := service.NewAccessToken(id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo emitir el token")
	}
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    access,
		HTTPOnly: true,
		SameSite: "Lax",
		Expires:  time.Now().Add(service.AccessTokenTTL),
	})
	return helper.Success(c, "Token renovado", fiber.Map{"access_token": access})
}

// POST /api/auth/logout: blacklist del access, borra el refresh y destruye
// la sesión con todas sus claves (incluida la empresa en curso).
func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	auth := strings.TrimSpace(c.Get("Authorization"))
	token := ""
	if fields := strings.Fields(auth); len(fields) == 2 && strings.EqualFold(fields[0], "Bearer") {
		token = fields[1]
	}
	if token == "" {
		token = c.Cookies("access_token")
	}

	if token != "" {
		expiredAt := time.Time{}
		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
			return []byte(configs.JWTSecret), nil
		}); err == nil {
			if exp, ok := claims["exp"].(float64); ok {
				expiredAt = time.Unix(int64(exp), 0)
			}
		}
		if err := service.BlacklistAccessToken(ctl.DB.WithContext(c.Context()), token, expiredAt); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
	}

	if err := service.DeleteRefreshToken(ctl.DB.WithContext(c.Context()), c.Cookies("refresh_token")); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if sess, err := middlewares.GetSession(c); err == nil {
		_ = sess.Destroy()
	}
	clearAuthCookies(c)

	return helper.Success(c, "Sesión cerrada", nil)
}

// GET /api/auth/me: identidad resuelta de la request
func (ctl *AuthController) Me(c *fiber.Ctx) error {
	role, _ := c.Locals("userRole").(string)
	if role == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Debes iniciar sesión")
	}
	resp := fiber.Map{
		"user_id":   c.Locals("user_id"),
		"role":      role,
		"user_name": c.Locals("user_name"),
	}
	if socioID, ok := c.Locals("socio_id").(string); ok && socioID != "" {
		resp["socio_id"] = socioID
		resp["socio_nombre"] = c.Locals("socio_nombre")
		resp["socio_rut"] = c.Locals("socio_rut")
	}
	return helper.Success(c, "Identidad", resp)
}
