package route_test

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"mantenimiento_backend/internals/features/metrics/history/model"
	"mantenimiento_backend/internals/testutil"

	"github.com/gofiber/fiber/v2"
)

type pagedResponse struct {
	Success bool                              `json:"success"`
	Data    []model.HistoricalEfficiencyModel `json:"data"`
	Meta    struct {
		Page       int   `json:"page"`
		PerPage    int   `json:"per_page"`
		Total      int64 `json:"total"`
		TotalPages int   `json:"total_pages"`
		HasNext    bool  `json:"has_next"`
	} `json:"pagination"`
}

func TestEfficiencyHistoryPaginates(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(t, db)

	at := time.Date(2024, 3, 11, 0, 5, 0, 0, time.UTC)
	for i := 1; i <= 5; i++ {
		maquina := "Torno 1"
		if i%2 == 0 {
			maquina = "Prensa 2"
		}
		row := model.HistoricalEfficiencyModel{
			OrigenID:    uint(i),
			Maquina:     maquina,
			Fecha:       fmt.Sprintf("2024-03-0%d", i),
			Semana:      9,
			Anio:        2024,
			ArchivadoEn: at,
		}
		if err := db.Create(&row).Error; err != nil {
			t.Fatalf("seed history: %v", err)
		}
	}

	resp := testutil.Do(t, app, httptest.NewRequest(fiber.MethodGet, "/api/historial/eficiencia?per_page=2&page=1&sort_by=fecha&order=asc", nil), nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var body pagedResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Meta.Total != 5 || body.Meta.TotalPages != 3 || !body.Meta.HasNext {
		t.Fatalf("meta = %+v", body.Meta)
	}
	if len(body.Data) != 2 || body.Data[0].Fecha != "2024-03-01" {
		t.Fatalf("first page = %+v", body.Data)
	}

	resp = testutil.Do(t, app, httptest.NewRequest(fiber.MethodGet, "/api/historial/eficiencia?maquina=Prensa%202", nil), nil)
	body = pagedResponse{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Meta.Total != 2 {
		t.Fatalf("filtered total = %d, want 2", body.Meta.Total)
	}
}

func TestHistoryRejectsBadWeek(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(t, db)

	resp := testutil.Do(t, app, httptest.NewRequest(fiber.MethodGet, "/api/historial/disponibilidad?semana=60", nil), nil)
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}
