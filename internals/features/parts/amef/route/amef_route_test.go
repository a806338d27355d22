package route_test

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"mantenimiento_backend/internals/constants"
	"mantenimiento_backend/internals/testutil"

	"github.com/gofiber/fiber/v2"
)

const revision = `{"no_parte_interno":"P-100","revision":1,"descripcion":"rebaba en cuerda","autor":"Ana","equipo":"calidad","sev":7,"occ":3,"det":4%s}`

func TestRevisionNeedsExistingPart(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(t, db)
	cookie := testutil.Login(t, app, db, "ana", constants.RoleEmployee)

	resp := testutil.Do(t, app, testutil.JSON(fiber.MethodPost, "/api/amef/revision", fmt.Sprintf(revision, "")), cookie)
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("revision for unknown part = %d, want 404", resp.StatusCode)
	}
}

func TestRevisionComputesRPN(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(t, db)
	cookie := testutil.Login(t, app, db, "ana", constants.RoleEmployee)

	resp := testutil.Do(t, app, testutil.JSON(fiber.MethodPost, "/api/partes/add",
		`{"no_parte_interno":"P-100","no_parte_cliente":"C-55","descripcion":"tornillo"}`), cookie)
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("quick part = %d, want 201", resp.StatusCode)
	}

	for _, extra := range []string{"", `,"rpn":50`} {
		resp = testutil.Do(t, app, testutil.JSON(fiber.MethodPost, "/api/amef/revision", fmt.Sprintf(revision, extra)), cookie)
		if resp.StatusCode != fiber.StatusCreated {
			t.Fatalf("revision %q = %d, want 201", extra, resp.StatusCode)
		}
	}

	resp = testutil.Do(t, app, httptest.NewRequest(fiber.MethodGet, "/api/amef/revisions/P-100", nil), nil)
	var rows []struct {
		Rpn float64 `json:"rpn"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %+v, want 2", rows)
	}
	got := map[float64]bool{rows[0].Rpn: true, rows[1].Rpn: true}
	if !got[84] || !got[50] {
		t.Fatalf("rpn values = %+v, want 84 and 50", rows)
	}
}
