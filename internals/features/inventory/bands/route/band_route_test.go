package route_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"mantenimiento_backend/internals/constants"
	"mantenimiento_backend/internals/testutil"

	"github.com/gofiber/fiber/v2"
)

func TestBandLoanCannotExceedStock(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(t, db)
	cookie := testutil.Login(t, app, db, "ana", constants.RoleEmployee)

	resp := testutil.Do(t, app, testutil.JSON(fiber.MethodPost, "/guardar_banda",
		`{"nombre_producto":"Banda B-42","columna":"C3","codigo_proveedor":"PR-9","cantidad_prestada":5,"cantidad_actual":2}`), cookie)
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	var body struct {
		Errors map[string][]string `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Errors["cantidad_prestada"]) == 0 {
		t.Fatalf("errors = %v, want cantidad_prestada", body.Errors)
	}
}

func TestBandCreateStoresRemainingStock(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(t, db)
	cookie := testutil.Login(t, app, db, "ana", constants.RoleEmployee)

	resp := testutil.Do(t, app, testutil.JSON(fiber.MethodPost, "/guardar_banda",
		`{"nombre_producto":"Banda B-42","columna":"C3","codigo_proveedor":"PR-9","cantidad_prestada":2,"cantidad_actual":10}`), cookie)
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}

	resp = testutil.Do(t, app, httptest.NewRequest(fiber.MethodGet, "/buscar_bandas?q=pr-9", nil), nil)
	var rows []struct {
		CantidadActual int `json:"cantidad_actual"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(rows) != 1 || rows[0].CantidadActual != 8 {
		t.Fatalf("rows = %+v, want one band with 8 left", rows)
	}
}
