package routes_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"net/url"
	"testing"

	"mantenimiento_backend/internals/constants"
	"mantenimiento_backend/internals/testutil"

	"github.com/gofiber/fiber/v2"
)

func decode(t *testing.T, body io.Reader, v any) {
	t.Helper()
	if err := json.NewDecoder(body).Decode(v); err != nil {
		t.Fatalf("decode: %v", err)
	}
}

func TestHealthReportsDatabase(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(t, db)

	resp := testutil.Do(t, app, httptest.NewRequest(fiber.MethodGet, "/health", nil), nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var body map[string]any
	decode(t, resp.Body, &body)
	if body["database"] != "Connected" {
		t.Fatalf("database = %v", body["database"])
	}
}

func TestRecordedEfficiencyAppearsInItsWeek(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(t, db)
	cookie := testutil.Login(t, app, db, "ana", constants.RoleEmployee)

	resp := testutil.Do(t, app, testutil.JSON(fiber.MethodPost, "/guardar_eficiencia",
		`{"maquina":"T1","noParteInterno":"P-100","nombreOperador":"Ana","programado":100,"real":95,"scrap":5,"fecha":"2024-03-04"}`), cookie)
	if resp.StatusCode != fiber.StatusCreated {
		b, _ := io.ReadAll(resp.Body)
		t.Fatalf("create status = %d: %s", resp.StatusCode, b)
	}
	var created struct {
		Success bool `json:"success"`
		Data    struct {
			Semana int `json:"semana"`
			Anio   int `json:"anio"`
		} `json:"data"`
	}
	decode(t, resp.Body, &created)
	if !created.Success || created.Data.Semana != 10 || created.Data.Anio != 2024 {
		t.Fatalf("created = %+v", created)
	}

	resp = testutil.Do(t, app, httptest.NewRequest(fiber.MethodGet, "/obtener_eficiencias_semanal/2024/10", nil), nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("weekly status = %d", resp.StatusCode)
	}
	var rows []struct {
		Maquina      string  `json:"maquina"`
		PiezasReales float64 `json:"piezas_reales"`
		Semana       int     `json:"semana"`
		Anio         int     `json:"anio"`
	}
	decode(t, resp.Body, &rows)
	if len(rows) != 1 || rows[0].Maquina != "T1" || rows[0].PiezasReales != 95 || rows[0].Semana != 10 || rows[0].Anio != 2024 {
		t.Fatalf("week 10 rows = %+v", rows)
	}

	resp = testutil.Do(t, app, httptest.NewRequest(fiber.MethodGet, "/obtener_eficiencias_semanal/2024/11", nil), nil)
	decode(t, resp.Body, &rows)
	if len(rows) != 0 {
		t.Fatalf("week 11 rows = %+v, want none", rows)
	}
}

func TestEmployeeGetsForbiddenOnAdminRoute(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(t, db)
	cookie := testutil.Login(t, app, db, "luis", constants.RoleEmployee)

	resp := testutil.Do(t, app, httptest.NewRequest(fiber.MethodPost, "/eliminar_eficiencia/1", nil), cookie)
	if resp.StatusCode != fiber.StatusForbidden {
		t.Fatalf("status = %d, want 403", resp.StatusCode)
	}
	if loc := resp.Header.Get(fiber.HeaderLocation); loc != "" {
		t.Fatalf("forbidden response redirected to %q", loc)
	}
	var body struct {
		Success   bool   `json:"success"`
		ErrorCode string `json:"error_code"`
	}
	decode(t, resp.Body, &body)
	if body.Success || body.ErrorCode != "FORBIDDEN" {
		t.Fatalf("body = %+v", body)
	}
}

func TestAnonymousIsRedirectedToLogin(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(t, db)

	for _, target := range []string{"/eliminar_eficiencia/1", "/guardar_eficiencia"} {
		resp := testutil.Do(t, app, httptest.NewRequest(fiber.MethodPost, target, nil), nil)
		if resp.StatusCode != fiber.StatusFound {
			t.Fatalf("%s: status = %d, want 302", target, resp.StatusCode)
		}
		loc, err := url.Parse(resp.Header.Get(fiber.HeaderLocation))
		if err != nil {
			t.Fatalf("%s: location: %v", target, err)
		}
		if loc.Path != "/login" || loc.Query().Get("next") != target {
			t.Fatalf("%s: location = %q, want /login with next=%s", target, loc, target)
		}
	}

	resp := testutil.Do(t, app, httptest.NewRequest(fiber.MethodGet, "/indicadores", nil), nil)
	if resp.StatusCode != fiber.StatusFound {
		t.Fatalf("page status = %d, want 302", resp.StatusCode)
	}
}

func TestAnonymousAPICallerGets401(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(t, db)

	cases := []struct {
		name   string
		header string
		value  string
	}{
		{"accept json", fiber.HeaderAccept, fiber.MIMEApplicationJSON},
		{"bearer", fiber.HeaderAuthorization, "Bearer garbage"},
		{"xhr", fiber.HeaderXRequestedWith, "XMLHttpRequest"},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(fiber.MethodPost, "/eliminar_eficiencia/1", nil)
		req.Header.Set(tc.header, tc.value)
		resp := testutil.Do(t, app, req, nil)
		if resp.StatusCode != fiber.StatusUnauthorized {
			t.Fatalf("%s: status = %d, want 401", tc.name, resp.StatusCode)
		}
		if loc := resp.Header.Get(fiber.HeaderLocation); loc != "" {
			t.Fatalf("%s: unexpected redirect to %q", tc.name, loc)
		}
	}

	resp := testutil.Do(t, app, testutil.JSON(fiber.MethodPost, "/guardar_eficiencia", `{}`), nil)
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("json create status = %d, want 401", resp.StatusCode)
	}
}

func TestAdminCanDelete(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(t, db)
	employee := testutil.Login(t, app, db, "ana", constants.RoleEmployee)
	admin := testutil.Login(t, app, db, "jefe", constants.RoleAdmin)

	resp := testutil.Do(t, app, testutil.JSON(fiber.MethodPost, "/guardar_disponibilidad",
		`{"maquina":"T1","noParteInterno":"P-100","operador":"Ana","causaParo":"ajuste","minutos":30,"fecha":"2024-03-05"}`), employee)
	if resp.StatusCode != fiber.StatusCreated {
		b, _ := io.ReadAll(resp.Body)
		t.Fatalf("create status = %d: %s", resp.StatusCode, b)
	}

	resp = testutil.Do(t, app, httptest.NewRequest(fiber.MethodPost, "/eliminar_disponibilidad/1", nil), admin)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("delete status = %d, want 200", resp.StatusCode)
	}
	resp = testutil.Do(t, app, httptest.NewRequest(fiber.MethodPost, "/eliminar_disponibilidad/1", nil), admin)
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("second delete status = %d, want 404", resp.StatusCode)
	}
}

func TestDashboardRendersForLoggedInUser(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(t, db)
	cookie := testutil.Login(t, app, db, "ana", constants.RoleEmployee)

	resp := testutil.Do(t, app, httptest.NewRequest(fiber.MethodGet, "/", nil), cookie)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get(fiber.HeaderContentType); ct != fiber.MIMETextHTMLCharsetUTF8 {
		t.Fatalf("content type = %q", ct)
	}
}
