package route_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"mantenimiento_backend/internals/constants"
	"mantenimiento_backend/internals/testutil"

	"github.com/gofiber/fiber/v2"
)

type partRow struct {
	ID             uint   `json:"id"`
	NoParteInterno string `json:"no_parte_interno"`
	PiezaXHora     int    `json:"pieza_x_hora"`
}

func partBody(perHour string) string {
	return `{"no_parte_interno":"P-1","no_parte_cliente":"C-9","descripcion":"buje","cliente":"Acme","materia_prima":"laton","pieza_x_hora":` + perHour + `}`
}

func TestPartSpecCreateRejectsDuplicate(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(t, db)
	cookie := testutil.Login(t, app, db, "ana", constants.RoleEmployee)

	resp := testutil.Do(t, app, testutil.JSON(fiber.MethodPost, "/guardar_parte_pieza", partBody("120")), cookie)
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("first insert = %d, want 201", resp.StatusCode)
	}

	resp = testutil.Do(t, app, testutil.JSON(fiber.MethodPost, "/guardar_parte_pieza", partBody("90")), cookie)
	if resp.StatusCode != fiber.StatusConflict {
		t.Fatalf("duplicate insert = %d, want 409", resp.StatusCode)
	}
	var body struct {
		Success   bool   `json:"success"`
		ErrorCode string `json:"error_code"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Success || body.ErrorCode != "CONFLICT" {
		t.Fatalf("duplicate body = %+v", body)
	}
}

func TestPartSpecAdminLifecycle(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(t, db)
	employee := testutil.Login(t, app, db, "ana", constants.RoleEmployee)
	admin := testutil.Login(t, app, db, "jefe", constants.RoleAdmin)

	resp := testutil.Do(t, app, testutil.JSON(fiber.MethodPost, "/guardar_parte_pieza", partBody("120")), employee)
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("create = %d, want 201", resp.StatusCode)
	}

	resp = testutil.Do(t, app, httptest.NewRequest(fiber.MethodGet, "/obtener_parte_pieza/1", nil), nil)
	var got partRow
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.NoParteInterno != "P-1" || got.PiezaXHora != 120 {
		t.Fatalf("get = %+v", got)
	}

	resp = testutil.Do(t, app, testutil.JSON(fiber.MethodPost, "/actualizar_parte_pieza/1", partBody("150")), employee)
	if resp.StatusCode != fiber.StatusForbidden {
		t.Fatalf("employee update = %d, want 403", resp.StatusCode)
	}
	resp = testutil.Do(t, app, testutil.JSON(fiber.MethodPost, "/actualizar_parte_pieza/1", partBody("150")), admin)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("admin update = %d, want 200", resp.StatusCode)
	}

	resp = testutil.Do(t, app, testutil.JSON(fiber.MethodPost, "/api/amef/revision",
		`{"no_parte_interno":"P-1","revision":1,"descripcion":"rebaba","autor":"Ana","equipo":"calidad","sev":5,"occ":2,"det":3}`), employee)
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("revision = %d, want 201", resp.StatusCode)
	}

	resp = testutil.Do(t, app, httptest.NewRequest(fiber.MethodPost, "/eliminar_parte_pieza/1", nil), employee)
	if resp.StatusCode != fiber.StatusForbidden {
		t.Fatalf("employee delete = %d, want 403", resp.StatusCode)
	}
	resp = testutil.Do(t, app, httptest.NewRequest(fiber.MethodPost, "/eliminar_parte_pieza/1", nil), admin)
	if resp.StatusCode != fiber.StatusConflict {
		t.Fatalf("delete with revisions = %d, want 409", resp.StatusCode)
	}

	resp = testutil.Do(t, app, httptest.NewRequest(fiber.MethodDelete, "/api/amef/revision/1", nil), admin)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("revision delete = %d, want 200", resp.StatusCode)
	}
	resp = testutil.Do(t, app, httptest.NewRequest(fiber.MethodPost, "/eliminar_parte_pieza/1", nil), admin)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("admin delete = %d, want 200", resp.StatusCode)
	}
	resp = testutil.Do(t, app, httptest.NewRequest(fiber.MethodGet, "/obtener_parte_pieza/1", nil), nil)
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("get after delete = %d, want 404", resp.StatusCode)
	}
}
