package route_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"mantenimiento_backend/internals/constants"
	"mantenimiento_backend/internals/testutil"

	"github.com/gofiber/fiber/v2"
)

type planRow struct {
	ID          uint                      `json:"id"`
	MachineName string                    `json:"machine_name"`
	Year        int                       `json:"year"`
	OrderIndex  int                       `json:"order_index"`
	Status      map[string]map[string]any `json:"status"`
}

func TestSaveInsertsThenMerges(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(t, db)
	cookie := testutil.Login(t, app, db, "ana", constants.RoleEmployee)

	resp := testutil.Do(t, app, testutil.JSON(fiber.MethodPost, "/api/mantenimiento/save",
		`{"machineName":"Torno 1","weekNumber":3,"year":2024,"status":{"enero-1":{"status":"programado","date":""}}}`), cookie)
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("first save = %d, want 201", resp.StatusCode)
	}

	resp = testutil.Do(t, app, testutil.JSON(fiber.MethodPost, "/api/mantenimiento/save",
		`{"machineName":"Torno 1","weekNumber":3,"year":2024,"status":{"enero-2":{"status":"realizado","date":"2024-01-10"}}}`), cookie)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("second save = %d, want 200", resp.StatusCode)
	}

	resp = testutil.Do(t, app, httptest.NewRequest(fiber.MethodGet, "/api/mantenimiento/2024", nil), nil)
	var rows []planRow
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %+v, want one machine", rows)
	}
	st := rows[0].Status
	if st["enero-1"]["status"] != "programado" || st["enero-2"]["status"] != "realizado" {
		t.Fatalf("status = %v, want both cells merged", st)
	}
}

func TestUpdateCellAndReorder(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(t, db)
	cookie := testutil.Login(t, app, db, "ana", constants.RoleEmployee)

	for _, name := range []string{"Torno 1", "Fresa 2"} {
		resp := testutil.Do(t, app, testutil.JSON(fiber.MethodPost, "/api/mantenimiento/save",
			`{"machineName":"`+name+`","weekNumber":1,"year":2024,"status":{}}`), cookie)
		if resp.StatusCode != fiber.StatusCreated {
			t.Fatalf("save %s = %d", name, resp.StatusCode)
		}
	}

	resp := testutil.Do(t, app, testutil.JSON(fiber.MethodPost, "/api/mantenimiento/update",
		`{"machineId":2,"month":"marzo","week":"4","newStatus":"realizado","newDate":"2024-03-22"}`), cookie)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("update cell = %d, want 200", resp.StatusCode)
	}
	resp = testutil.Do(t, app, testutil.JSON(fiber.MethodPost, "/api/mantenimiento/update",
		`{"machineId":99,"month":"marzo","week":"4","newStatus":"realizado"}`), cookie)
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("update missing row = %d, want 404", resp.StatusCode)
	}

	resp = testutil.Do(t, app, testutil.JSON(fiber.MethodPost, "/api/mantenimiento/reorder",
		`[{"id":1,"order_index":1},{"id":2,"order_index":0}]`), cookie)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("reorder = %d, want 200", resp.StatusCode)
	}

	resp = testutil.Do(t, app, httptest.NewRequest(fiber.MethodGet, "/api/mantenimiento/2024", nil), nil)
	var rows []planRow
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(rows) != 2 || rows[0].MachineName != "Fresa 2" {
		t.Fatalf("rows = %+v, want Fresa 2 first", rows)
	}
	if rows[0].Status["marzo-4"]["status"] != "realizado" {
		t.Fatalf("cell = %v", rows[0].Status)
	}

	resp = testutil.Do(t, app, testutil.JSON(fiber.MethodPost, "/api/mantenimiento/reorder",
		`[{"id":1,"order_index":0},{"id":77,"order_index":1}]`), cookie)
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("reorder unknown id = %d, want 404", resp.StatusCode)
	}
}
