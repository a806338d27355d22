package controller

import (
	"strconv"
	"strings"

	"mantenimiento_backend/internals/features/metrics/history/repository"
	helper "mantenimiento_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
)

type HistoryController[M any] struct {
	Repo *repository.HistoryRepository[M]
}

func New[M any](repo *repository.HistoryRepository[M]) *HistoryController[M] {
	return &HistoryController[M]{Repo: repo}
}

// GET /api/historial/<x>?maquina=&anio=&semana=&page=&per_page=&sort_by=&order=
func (h *HistoryController[M]) List(c *fiber.Ctx) error {
	f, err := parseFilter(c)
	if err != nil {
		return helper.RespondError(c, err)
	}
	p := helper.ParseFiber(c, "fecha", "desc", helper.DefaultOpts)

	rows, total, err := h.Repo.Page(c.UserContext(), f, p)
	if err != nil {
		return helper.RespondError(c, err)
	}
	return helper.JsonPaged(c, h.Repo.Label+" history", rows, helper.BuildMeta(total, p))
}

func parseFilter(c *fiber.Ctx) (repository.Filter, error) {
	f := repository.Filter{Maquina: c.Query("maquina")}
	var err error
	if f.Anio, err = optionalInt(c.Query("anio"), "anio", 1, 9999); err != nil {
		return f, err
	}
	if f.Semana, err = optionalInt(c.Query("semana"), "semana", 1, 53); err != nil {
		return f, err
	}
	return f, nil
}

func optionalInt(raw, field string, lo, hi int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < lo || n > hi {
		return 0, helper.FieldErr(field, field+" must be between "+strconv.Itoa(lo)+" and "+strconv.Itoa(hi))
	}
	return n, nil
}
