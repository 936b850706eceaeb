package service

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"descubrecurico_backend/internals/configs"
	model "descubrecurico_backend/internals/features/users/auth/model"
	helper "descubrecurico_backend/internals/helpers"
)

const (
	AccessTokenTTL  = 2 * time.Hour
	RefreshTokenTTL = 7 * 24 * time.Hour
)

var ErrRefreshInvalido = errors.New("refresh token inválido o expirado")

// Identity es la identidad unificada del sistema: admin y socio comparten
// la misma forma de token, cambia solo el rol y los claims socio_*.
type Identity struct {
	Subject     string // uuid staff o id numérico del socio
	Role        string
	UserName    string
	SocioID     string
	SocioNombre string
	SocioRUT    string
}

// NewAccessToken firma el access token HS256 con los claims unificados.
func NewAccessToken(id Identity) (string, error) {
	if configs.JWTSecret == "" {
		return "", errors.New("JWT_SECRET no configurado")
	}
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":       id.Subject,
		"role":      id.Role,
		"user_name": id.UserName,
		"iat":       now.Unix(),
		"exp":       now.Add(AccessTokenTTL).Unix(),
	}
	if id.SocioID != "" {
		claims["socio_id"] = id.SocioID
		claims["socio_nombre"] = id.SocioNombre
		claims["socio_rut"] = id.SocioRUT
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}

// hashRefresh: en la tabla solo vive el HMAC del refresh token, nunca el
// valor en claro.
func hashRefresh(plain string) []byte {
	mac := hmac.New(sha256.New, []byte(configs.JWTRefreshSecret))
	mac.Write([]byte(plain))
	return mac.Sum(nil)
}

// NewRefreshToken emite un refresh token opaco y persiste su hash.
func NewRefreshToken(db *gorm.DB, subject, role string) (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	plain := hex.EncodeToString(buf)

	row := model.RefreshToken{
		Token:     hashRefresh(plain),
		Subject:   subject,
		Role:      role,
		ExpiresAt: time.Now().Add(RefreshTokenTTL),
	}
	if err := db.Create(&row).Error; err != nil {
		return "", err
	}
	return plain, nil
}

// LookupRefreshToken valida el refresh entrante contra su hash.
func LookupRefreshToken(db *gorm.DB, plain string) (*model.RefreshToken, error) {
	if plain == "" {
		return nil, ErrRefreshInvalido
	}
	var row model.RefreshToken
	if err := db.Where("token = ?", hashRefresh(plain)).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRefreshInvalido
		}
		return nil, err
	}
	if time.Now().After(row.ExpiresAt) {
		_ = db.Delete(&row).Error
		return nil, ErrRefreshInvalido
	}
	return &row, nil
}

// DeleteRefreshToken invalida el refresh en logout.
func DeleteRefreshToken(db *gorm.DB, plain string) error {
	if plain == "" {
		return nil
	}
	return db.Where("token = ?", hashRefresh(plain)).Delete(&model.RefreshToken{}).Error
}

// BlacklistAccessToken deja el access token fuera de juego hasta su exp.
func BlacklistAccessToken(db *gorm.DB, token string, expiredAt time.Time) error {
	if token == "" {
		return nil
	}
	if expiredAt.IsZero() {
		expiredAt = time.Now().Add(AccessTokenTTL)
	}
	row := model.TokenBlacklist{Token: token, ExpiredAt: expiredAt}
	err := db.Create(&row).Error
	if err != nil && !helper.IsDuplicateKey(err) {
		return err
	}
	return nil
}
