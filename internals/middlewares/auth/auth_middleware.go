// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"gorm.io/gorm"

	"mantenimiento_backend/internals/configs"
	authRepo "mantenimiento_backend/internals/features/users/auth/repository"
	helper "mantenimiento_backend/internals/helpers"
	helperAuth "mantenimiento_backend/internals/helpers/auth"
)

// LoadAuthContext resolves the caller once per request and stores it as a
// *helperAuth.AuthContext in locals. It never rejects: guards decide.
// The session cookie wins; otherwise a valid, non-revoked bearer token.
func LoadAuthContext(db *gorm.DB, store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if a := fromSession(c, store); a != nil {
			helperAuth.Set(c, a)
			return c.Next()
		}
		if a := fromBearer(c, db); a != nil {
			helperAuth.Set(c, a)
			return c.Next()
		}
		helperAuth.Set(c, &helperAuth.AuthContext{})
		return c.Next()
	}
}

func fromSession(c *fiber.Ctx, store *session.Store) *helperAuth.AuthContext {
	if store == nil || c.Cookies(SessionCookie) == "" {
		return nil
	}
	sess, err := store.Get(c)
	if err != nil {
		log.Printf("[AUTH] session load error: %v", err)
		return nil
	}
	loggedIn, _ := sess.Get(SessLoggedIn).(bool)
	if !loggedIn {
		return nil
	}
	userID, _ := sess.Get(SessUserID).(uint)
	username, _ := sess.Get(SessUsername).(string)
	role, _ := sess.Get(SessRole).(string)
	if userID == 0 || role == "" {
		return nil
	}
	return &helperAuth.AuthContext{
		LoggedIn: true,
		UserID:   userID,
		Username: username,
		Role:     role,
		Source:   helperAuth.SourceSession,
	}
}

func fromBearer(c *fiber.Ctx, db *gorm.DB) *helperAuth.AuthContext {
	raw := helper.GetBearerToken(c)
	if raw == "" || configs.JWTSecret == "" {
		return nil
	}
	claims, err := helper.ParseAccessToken(configs.JWTSecret, raw)
	if err != nil {
		log.Printf("[AUTH] rejected bearer token: %v", err)
		return nil
	}
	revoked, err := authRepo.IsTokenBlacklisted(c.UserContext(), db, raw)
	if err != nil {
		log.Printf("[AUTH] blacklist lookup failed: %v", err)
		return nil
	}
	if revoked {
		log.Println("[AUTH] bearer token is blacklisted")
		return nil
	}
	uid, err := claims.UserID()
	if err != nil {
		return nil
	}
	return &helperAuth.AuthContext{
		LoggedIn: true,
		UserID:   uid,
		Username: claims.Username,
		Role:     claims.Role,
		Source:   helperAuth.SourceBearer,
		Token:    raw,
	}
}

// StartSession writes a fresh session for the user. The session id is
// regenerated so a pre-login id can never be reused.
func StartSession(c *fiber.Ctx, store *session.Store, userID uint, username, role string) error {
	sess, err := store.Get(c)
	if err != nil {
		return err
	}
	if err := sess.Regenerate(); err != nil {
		return err
	}
	sess.Set(SessLoggedIn, true)
	sess.Set(SessUserID, userID)
	sess.Set(SessUsername, username)
	sess.Set(SessRole, role)
	return sess.Save()
}

// EndSession destroys the whole session in one step.
func EndSession(c *fiber.Ctx, store *session.Store) error {
	sess, err := store.Get(c)
	if err != nil {
		return err
	}
	return sess.Destroy()
}
