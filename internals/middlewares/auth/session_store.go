package auth

import (
	"log"
	"time"

	"mantenimiento_backend/internals/configs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// Session keys
const (
	SessLoggedIn = "logged_in"
	SessUserID   = "user_id"
	SessUsername = "username"
	SessRole     = "role"
)

const SessionCookie = "session_id"

// NewSessionStore builds the server-side session store. Sessions live in
// memory unless SESSION_REDIS_URL points at a Redis server.
func NewSessionStore() *session.Store {
	var storage fiber.Storage
	if url := configs.GetEnv("SESSION_REDIS_URL"); url != "" {
		rs, err := NewRedisStorage(url, "sess:")
		if err != nil {
			log.Printf("[AUTH] ⚠️ Redis session storage unavailable (%v), using memory", err)
		} else {
			log.Println("[AUTH] ✅ sessions stored in Redis")
			storage = rs
		}
	}
	return NewSessionStoreWith(storage)
}

// NewSessionStoreWith builds a store over storage (nil = in-memory).
func NewSessionStoreWith(storage fiber.Storage) *session.Store {
	return session.New(session.Config{
		Expiration:     configs.GetEnvDuration("SESSION_TTL", 12*time.Hour),
		Storage:        storage,
		KeyLookup:      "cookie:" + SessionCookie,
		CookieHTTPOnly: true,
		CookieSameSite: fiber.CookieSameSiteLaxMode,
		CookieSecure:   configs.GetEnvBool("SESSION_COOKIE_SECURE", configs.IsProduction()),
		CookiePath:     "/",
	})
}
