// Package testutil builds throwaway databases and fully wired apps for
// package tests.
package testutil

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"mantenimiento_backend/internals/configs"
	database "mantenimiento_backend/internals/databases"
	"mantenimiento_backend/internals/databases/migrations"
	"mantenimiento_backend/internals/features/parts/documents/storage"
	authHelper "mantenimiento_backend/internals/features/users/auth/helper"
	authModel "mantenimiento_backend/internals/features/users/auth/model"
	authMiddleware "mantenimiento_backend/internals/middlewares/auth"
	routes "mantenimiento_backend/internals/route"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// NewDB opens a temp-file SQLite store with every migration applied.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()
	configs.Plant = configs.DefaultPlantConfig()
	decimal.MarshalJSONWithoutQuotes = true

	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if _, err := migrations.Apply(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// NewApp wires the real routes over db with in-memory sessions and disk
// documents under a temp dir.
func NewApp(t *testing.T, db *gorm.DB) *fiber.App {
	t.Helper()
	t.Setenv("BCRYPT_COST", "4")
	t.Setenv("RATE_LIMIT_GLOBAL", "100000")
	t.Setenv("RATE_LIMIT_LOGIN", "100000")
	t.Setenv("RATE_LIMIT_REGISTER", "100000")
	t.Setenv("HTTP_ACCESS_LOG", "false")

	docs, err := storage.NewDiskStore(t.TempDir())
	if err != nil {
		t.Fatalf("disk store: %v", err)
	}
	return routes.NewApp(db, authMiddleware.NewSessionStoreWith(nil), docs)
}

// CreateUser inserts a user directly, bypassing registration rules.
func CreateUser(t *testing.T, db *gorm.DB, username, password, role string) *authModel.UserModel {
	t.Helper()
	t.Setenv("BCRYPT_COST", "4")
	hash, err := authHelper.HashPassword(password)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	u := &authModel.UserModel{Username: username, PasswordHash: hash, Role: role}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return u
}

// Login creates a user with role and returns its session cookie.
func Login(t *testing.T, app *fiber.App, db *gorm.DB, username, role string) *http.Cookie {
	t.Helper()
	const password = "secret-pass"
	CreateUser(t, db, username, password, role)

	form := url.Values{"username": {username}, "password": {password}}
	req := httptest.NewRequest(fiber.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("login request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != fiber.StatusSeeOther {
		t.Fatalf("login %s: status %d", username, resp.StatusCode)
	}
	for _, c := range resp.Cookies() {
		if c.Name == authMiddleware.SessionCookie {
			return c
		}
	}
	t.Fatalf("login %s: no session cookie", username)
	return nil
}

// Do runs req against app, attaching cookie when non-nil.
func Do(t *testing.T, app *fiber.App, req *http.Request, cookie *http.Cookie) *http.Response {
	t.Helper()
	if cookie != nil {
		req.AddCookie(cookie)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", req.Method, req.URL, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

// JSON builds a request with a JSON body.
func JSON(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return req
}

// SetJWTSecret enables bearer tokens for the rest of the test.
func SetJWTSecret(t *testing.T, secret string) {
	t.Helper()
	prev := configs.JWTSecret
	configs.JWTSecret = secret
	t.Cleanup(func() { configs.JWTSecret = prev })
}
