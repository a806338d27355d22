package middlewares

import (
	"context"
	"log"
	"time"

	"mantenimiento_backend/internals/configs"
	"mantenimiento_backend/internals/helpers/dbtime"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/utils"
)

// RequestContext tags the request with an id, bounds it with
// REQUEST_TIMEOUT and exposes the plant time zone to handlers.
func RequestContext() fiber.Handler {
	timeout := configs.GetEnvDuration("REQUEST_TIMEOUT", 5*time.Second)
	loc := configs.Plant.Location()

	return func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = utils.UUID()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)
		c.Locals(dbtime.LocPlantLoc, loc)

		start := time.Now()
		ctx, cancel := context.WithTimeout(c.Context(), timeout)
		defer cancel()
		c.SetUserContext(ctx)

		err := c.Next()
		log.Printf("[REQ] id=%s %s %s status=%d dur=%s", id, c.Method(), c.OriginalURL(), c.Response().StatusCode(), time.Since(start))
		return err
	}
}
