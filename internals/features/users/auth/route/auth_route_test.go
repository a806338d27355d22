package route_test

import (
	"encoding/json"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"mantenimiento_backend/internals/constants"
	authModel "mantenimiento_backend/internals/features/users/auth/model"
	"mantenimiento_backend/internals/testutil"

	"github.com/gofiber/fiber/v2"
)

func TestPublicRegisterCreatesEmployee(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(t, db)

	resp := testutil.Do(t, app, testutil.JSON(fiber.MethodPost, "/register",
		`{"username":"Nuevo","password":"segura123"}`), nil)
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}

	var u authModel.UserModel
	if err := db.Where("username = ?", "nuevo").First(&u).Error; err != nil {
		t.Fatalf("user not stored: %v", err)
	}
	if u.Role != constants.RoleEmployee {
		t.Fatalf("role = %q, want employee", u.Role)
	}
	if u.PasswordHash == "segura123" {
		t.Fatal("password stored in clear text")
	}
}

func TestAnonymousCannotRegisterAdmin(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(t, db)

	resp := testutil.Do(t, app, testutil.JSON(fiber.MethodPost, "/register",
		`{"username":"intruso","password":"segura123","role":"admin"}`), nil)
	if resp.StatusCode != fiber.StatusForbidden {
		t.Fatalf("status = %d, want 403", resp.StatusCode)
	}
	var n int64
	db.Model(&authModel.UserModel{}).Where("username = ?", "intruso").Count(&n)
	if n != 0 {
		t.Fatal("admin account was created")
	}
}

func TestAdminSessionCanRegisterAdmin(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(t, db)
	admin := testutil.Login(t, app, db, "jefe", constants.RoleAdmin)

	resp := testutil.Do(t, app, testutil.JSON(fiber.MethodPost, "/register",
		`{"username":"segundo","password":"segura123","role":"admin"}`), admin)
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}
}

func TestDuplicateUsernameConflicts(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(t, db)
	testutil.CreateUser(t, db, "ana", "segura123", constants.RoleEmployee)

	resp := testutil.Do(t, app, testutil.JSON(fiber.MethodPost, "/register",
		`{"username":"ana","password":"otra-clave"}`), nil)
	if resp.StatusCode != fiber.StatusConflict {
		t.Fatalf("status = %d, want 409", resp.StatusCode)
	}
}

func TestLoginRedirectsToSafeNext(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(t, db)
	testutil.CreateUser(t, db, "ana", "segura123", constants.RoleEmployee)

	cases := map[string]string{
		"/indicadores":         "/indicadores",
		"//evil.example.com":   "/",
		"https://evil.example": "/",
	}
	for next, want := range cases {
		form := url.Values{"username": {"ana"}, "password": {"segura123"}, "next": {next}}
		req := httptest.NewRequest(fiber.MethodPost, "/login", strings.NewReader(form.Encode()))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
		resp := testutil.Do(t, app, req, nil)
		if resp.StatusCode != fiber.StatusSeeOther {
			t.Fatalf("next=%q: status = %d, want 303", next, resp.StatusCode)
		}
		if loc := resp.Header.Get(fiber.HeaderLocation); loc != want {
			t.Fatalf("next=%q: location = %q, want %q", next, loc, want)
		}
	}
}

func TestLoginRejectsBadPassword(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(t, db)
	testutil.CreateUser(t, db, "ana", "segura123", constants.RoleEmployee)

	for _, body := range []string{
		`{"username":"ana","password":"incorrecta"}`,
		`{"username":"nadie","password":"incorrecta"}`,
	} {
		resp := testutil.Do(t, app, testutil.JSON(fiber.MethodPost, "/login", body), nil)
		if resp.StatusCode != fiber.StatusUnauthorized {
			t.Fatalf("%s: status = %d, want 401", body, resp.StatusCode)
		}
		for _, c := range resp.Cookies() {
			if c.Name == "session_id" && c.Value != "" {
				t.Fatalf("%s: session cookie issued on failed login", body)
			}
		}
	}
}

func TestLogoutEndsSession(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(t, db)
	cookie := testutil.Login(t, app, db, "ana", constants.RoleEmployee)

	resp := testutil.Do(t, app, httptest.NewRequest(fiber.MethodGet, "/api/auth/me", nil), cookie)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("me status = %d, want 200", resp.StatusCode)
	}
	var me struct {
		Data struct {
			Username string `json:"username"`
			Role     string `json:"role"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&me); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if me.Data.Username != "ana" || me.Data.Role != constants.RoleEmployee {
		t.Fatalf("me = %+v", me.Data)
	}

	resp = testutil.Do(t, app, httptest.NewRequest(fiber.MethodGet, "/logout", nil), cookie)
	if resp.StatusCode != fiber.StatusFound {
		t.Fatalf("logout status = %d, want 302", resp.StatusCode)
	}

	resp = testutil.Do(t, app, httptest.NewRequest(fiber.MethodGet, "/api/auth/me", nil), cookie)
	if resp.StatusCode != fiber.StatusFound {
		t.Fatalf("me after logout = %d, want 302 to login", resp.StatusCode)
	}
}

func TestBearerTokenAuthenticatesAndRevokes(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(t, db)
	testutil.SetJWTSecret(t, "test-secret")
	testutil.CreateUser(t, db, "jefe", "segura123", constants.RoleAdmin)

	resp := testutil.Do(t, app, testutil.JSON(fiber.MethodPost, "/api/auth/token",
		`{"username":"jefe","password":"segura123"}`), nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("token status = %d, want 200", resp.StatusCode)
	}
	var tok struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil || tok.Data.AccessToken == "" {
		t.Fatalf("token body: %v %+v", err, tok)
	}
	bearer := "Bearer " + tok.Data.AccessToken

	req := httptest.NewRequest(fiber.MethodGet, "/api/auth/me", nil)
	req.Header.Set(fiber.HeaderAuthorization, bearer)
	if resp := testutil.Do(t, app, req, nil); resp.StatusCode != fiber.StatusOK {
		t.Fatalf("me with bearer = %d, want 200", resp.StatusCode)
	}

	req = httptest.NewRequest(fiber.MethodPost, "/api/auth/logout", nil)
	req.Header.Set(fiber.HeaderAuthorization, bearer)
	if resp := testutil.Do(t, app, req, nil); resp.StatusCode != fiber.StatusOK {
		t.Fatalf("logout with bearer = %d, want 200", resp.StatusCode)
	}

	req = httptest.NewRequest(fiber.MethodGet, "/api/auth/me", nil)
	req.Header.Set(fiber.HeaderAuthorization, bearer)
	if resp := testutil.Do(t, app, req, nil); resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("me with revoked bearer = %d, want 401", resp.StatusCode)
	}
}
