package configs

import (
	"time"

	"github.com/gofiber/fiber/v2/middleware/session"
)

// SetupSession flash mesajları için kullanılan session store'u oluşturur.
func SetupSession() *session.Store {
	return session.New(session.Config{
		Expiration:     time.Duration(GetEnvInt("SESSION_EXPIRATION_HOURS", 24)) * time.Hour,
		KeyLookup:      "cookie:rehber_session",
		CookieHTTPOnly: true,
		CookieSecure:   GetEnvBool("SESSION_COOKIE_SECURE", false),
		CookieSameSite: "Lax",
	})
}
