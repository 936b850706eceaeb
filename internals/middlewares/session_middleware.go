package middlewares

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

var (
	sessionStore *session.Store
	sessionOnce  sync.Once
)

// SessionStore entrega el store de sesión server-side (cookie descubre_sid).
// Guarda las claves del canal socio y la empresa en curso de encuesta.
func SessionStore() *session.Store {
	sessionOnce.Do(func() {
		sessionStore = session.New(session.Config{
			KeyLookup:      "cookie:descubre_sid",
			Expiration:     12 * time.Hour,
			CookieHTTPOnly: true,
			CookieSameSite: "Lax",
		})
	})
	return sessionStore
}

// GetSession abre (o crea) la sesión de la request.
func GetSession(c *fiber.Ctx) (*session.Session, error) {
	return SessionStore().Get(c)
}
