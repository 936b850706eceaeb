package auth

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"descubrecurico_backend/internals/configs"
	authModel "descubrecurico_backend/internals/features/users/auth/model"
)

// AuthMiddleware exige un token válido: sin token (ni sesión) la request
// se corta con 401.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := resolveIdentity(c, db); err != nil {
			return err
		}
		if c.Locals("userRole") == nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Debes iniciar sesión")
		}
		return c.Next()
	}
}

// OptionalAuthMiddleware resuelve la identidad si viene token, pero deja
// pasar requests anónimas; el gate por rol decide después entre 401 y 403.
// Un token presente pero inválido o en blacklist sigue siendo 401.
func OptionalAuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := extractBearerToken(c); err != nil {
			return c.Next() // anónimo
		}
		if err := resolveIdentity(c, db); err != nil {
			return err
		}
		return c.Next()
	}
}

func resolveIdentity(c *fiber.Ctx, db *gorm.DB) error {
	tokenString, err := extractBearerToken(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, err.Error())
	}

	// Cek blacklist una vez por request
	if c.Locals("token_checked") == nil {
		var existing authModel.TokenBlacklist
		if err := db.Where("token = ? AND deleted_at IS NULL", tokenString).First(&existing).Error; err == nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token is blacklisted")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Println("[ERROR] DB error al chequear blacklist:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
		}
		c.Locals("token_checked", true)
	}

	secretKey := configs.JWTSecret
	if secretKey == "" {
		log.Println("[ERROR] JWT_SECRET vacío")
		return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
	}

	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secretKey), nil
	}); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
	}

	if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
	}

	storeClaimsToLocals(c, claims)
	return nil
}
