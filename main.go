package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"

	"mantenimiento_backend/internals/configs"
	database "mantenimiento_backend/internals/databases"
	"mantenimiento_backend/internals/databases/migrations"
	rolloverScheduler "mantenimiento_backend/internals/features/metrics/rollover/scheduler"
	rolloverService "mantenimiento_backend/internals/features/metrics/rollover/service"
	"mantenimiento_backend/internals/features/parts/documents/storage"
	scheduler "mantenimiento_backend/internals/features/users/auth/scheduler"
	"mantenimiento_backend/internals/helpers/notify"
	authMiddleware "mantenimiento_backend/internals/middlewares/auth"
	routes "mantenimiento_backend/internals/route"
	"mantenimiento_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()

	// unit values travel as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	// 🔌 DB connect + pool
	database.ConnectDB()
	database.TunePool()

	applied, err := migrations.Apply(database.DB)
	if err != nil {
		log.Fatalf("❌ migrations failed: %v", err)
	}
	if len(applied) > 0 {
		log.Printf("✅ migrations applied: %v", applied)
	}

	bootCtx, cancelBoot := context.WithTimeout(context.Background(), time.Minute)
	if err := seeds.RunAllSeeds(bootCtx, database.DB); err != nil {
		cancelBoot()
		log.Fatalf("❌ seeding failed: %v", err)
	}

	docs, err := storage.New(bootCtx, configs.GetEnv("DOCUMENT_STORAGE", storage.BackendDisk), configs.Plant.UploadDir)
	cancelBoot()
	if err != nil {
		log.Fatalf("❌ document storage: %v", err)
	}
	log.Printf("✅ documents stored on %s", docs.Name())

	// ⏱ weekly rollover: once before listening, then on schedule
	loc := configs.Plant.Location()
	var notifier notify.Notifier = notify.Nop{}
	if hook := notify.NewSlackWebhook(configs.GetEnv("SLACK_WEBHOOK_URL"), configs.GetEnv("SLACK_CHANNEL")); hook != nil {
		notifier = hook
	}
	rollover := rolloverService.New(database.DB, loc, notifier)
	rolloverScheduler.RunAtStartup(rollover)

	jobs := rolloverScheduler.NewCron(loc)
	if configs.Plant.RolloverDisabled {
		log.Println("[ROLLOVER] scheduled runs disabled")
	} else if err := rolloverScheduler.Register(jobs, configs.Plant.RolloverCron, rollover); err != nil {
		log.Fatalf("❌ invalid rollover schedule %q: %v", configs.Plant.RolloverCron, err)
	}
	if err := scheduler.RegisterBlacklistCleanup(jobs, database.DB); err != nil {
		log.Fatalf("❌ invalid cleanup schedule: %v", err)
	}
	jobs.Start()

	app := routes.NewApp(database.DB, authMiddleware.NewSessionStore(), docs)

	// 🔒 keep-alive and server timeouts
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := configs.GetEnv("PORT", "5000")

	go func() {
		log.Printf("✅ Listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown: cron, http, DB pool
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 shutting down...")

	<-jobs.Stop().Done()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)
	database.Close()
}
