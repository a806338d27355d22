package crud

import (
	"strconv"
	"strings"

	helper "mantenimiento_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Payload is a request DTO for model M.
type Payload[M any] interface {
	Normalize()
	Check() error
	ApplyTo(m *M)
}

// CreateChecker runs extra validation that only applies to inserts.
type CreateChecker interface {
	CheckCreate() error
}

// CreateAdjuster lets a payload change the model right before insert.
type CreateAdjuster[M any] interface {
	AdjustCreate(m *M)
}

// UpdateGuard validates a payload against the stored row.
type UpdateGuard[M any] interface {
	CheckAgainst(current *M) error
}

// Controller exposes the legacy save/list/get/search/update/delete routes
// for one entity. Lists and details answer with bare JSON arrays/objects,
// the shape the existing pages consume.
type Controller[M any, P any, PP interface {
	*P
	Payload[M]
}] struct {
	Repo      *Repository[M]
	Validator *validator.Validate
}

func NewController[M any, P any, PP interface {
	*P
	Payload[M]
}](repo *Repository[M]) *Controller[M, P, PP] {
	return &Controller[M, P, PP]{Repo: repo, Validator: helper.NewValidator()}
}

func (h *Controller[M, P, PP]) parse(c *fiber.Ctx) (PP, error) {
	p := PP(new(P))
	if err := c.BodyParser(p); err != nil {
		return nil, helper.ValidationErr("invalid request body")
	}
	p.Normalize()
	if err := helper.ValidateStruct(h.Validator, p); err != nil {
		return nil, err
	}
	if err := p.Check(); err != nil {
		return nil, err
	}
	return p, nil
}

// POST /guardar_<x>
func (h *Controller[M, P, PP]) Create(c *fiber.Ctx) error {
	p, err := h.parse(c)
	if err != nil {
		return helper.RespondError(c, err)
	}
	if cc, ok := any(p).(CreateChecker); ok {
		if err := cc.CheckCreate(); err != nil {
			return helper.RespondError(c, err)
		}
	}
	var m M
	p.ApplyTo(&m)
	if adj, ok := any(p).(CreateAdjuster[M]); ok {
		adj.AdjustCreate(&m)
	}
	if err := h.Repo.Create(c.UserContext(), &m); err != nil {
		return helper.RespondError(c, err)
	}
	return helper.JsonCreated(c, h.Repo.Label+" saved", m)
}

// GET /obtener_<x>
func (h *Controller[M, P, PP]) List(c *fiber.Ctx) error {
	items, err := h.Repo.List(c.UserContext())
	if err != nil {
		return helper.RespondError(c, err)
	}
	return c.JSON(items)
}

// GET /buscar_<x>?q=
func (h *Controller[M, P, PP]) Search(c *fiber.Ctx) error {
	items, err := h.Repo.Search(c.UserContext(), c.Query("q"))
	if err != nil {
		return helper.RespondError(c, err)
	}
	return c.JSON(items)
}

// GET /obtener_<x>/:id
func (h *Controller[M, P, PP]) Get(c *fiber.Ctx) error {
	id, err := ParamID(c, "id")
	if err != nil {
		return helper.RespondError(c, err)
	}
	m, err := h.Repo.Get(c.UserContext(), id)
	if err != nil {
		return helper.RespondError(c, err)
	}
	return c.JSON(m)
}

// POST /actualizar_<x>/:id
func (h *Controller[M, P, PP]) Update(c *fiber.Ctx) error {
	id, err := ParamID(c, "id")
	if err != nil {
		return helper.RespondError(c, err)
	}
	p, err := h.parse(c)
	if err != nil {
		return helper.RespondError(c, err)
	}
	m, err := h.Repo.Update(c.UserContext(), id, func(current *M) error {
		if g, ok := any(p).(UpdateGuard[M]); ok {
			if err := g.CheckAgainst(current); err != nil {
				return err
			}
		}
		p.ApplyTo(current)
		return nil
	})
	if err != nil {
		return helper.RespondError(c, err)
	}
	return helper.JsonUpdated(c, h.Repo.Label+" updated", m)
}

// POST /eliminar_<x>/:id
func (h *Controller[M, P, PP]) Delete(c *fiber.Ctx) error {
	id, err := ParamID(c, "id")
	if err != nil {
		return helper.RespondError(c, err)
	}
	if err := h.Repo.Delete(c.UserContext(), id); err != nil {
		return helper.RespondError(c, err)
	}
	return helper.JsonDeleted(c, h.Repo.Label+" deleted", fiber.Map{"id": id})
}

// ParamID parses a positive integer route parameter.
func ParamID(c *fiber.Ctx, name string) (uint, error) {
	raw := strings.TrimSpace(c.Params(name))
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, helper.FieldErr(name, name+" must be a positive integer")
	}
	return uint(id), nil
}
