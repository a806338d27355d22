package scheduler

import (
	"context"
	"log"
	"time"

	"mantenimiento_backend/internals/features/metrics/rollover/service"

	"github.com/robfig/cron/v3"
)

const runTimeout = 5 * time.Minute

// NewCron builds the process-wide cron runner on the plant clock. Jobs
// that are still running when their next tick fires are skipped.
func NewCron(loc *time.Location) *cron.Cron {
	if loc == nil {
		loc = time.UTC
	}
	return cron.New(
		cron.WithLocation(loc),
		cron.WithChain(cron.Recover(cron.DefaultLogger), cron.SkipIfStillRunning(cron.DefaultLogger)),
	)
}

// RunAtStartup performs the mandatory rollover before the listener opens.
func RunAtStartup(svc *service.Service) {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()
	log.Println("[ROLLOVER] startup run...")
	svc.RunAndLog(ctx)
}

// Register schedules the weekly rollover on c with a standard 5-field spec.
func Register(c *cron.Cron, spec string, svc *service.Service) error {
	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
		defer cancel()
		svc.RunAndLog(ctx)
	})
	if err != nil {
		return err
	}
	log.Printf("[ROLLOVER] scheduled %q", spec)
	return nil
}
