package scheduler

import (
	"context"
	"log"
	"time"

	"mantenimiento_backend/internals/configs"
	authRepo "mantenimiento_backend/internals/features/users/auth/repository"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

const cleanupBatch = 100

// RegisterBlacklistCleanup purges revoked tokens that expired more than
// TOKEN_BLACKLIST_TTL_DAYS ago (default 7), daily by default.
func RegisterBlacklistCleanup(c *cron.Cron, db *gorm.DB) error {
	spec := configs.GetEnv("BLACKLIST_CLEANUP_CRON", "30 3 * * *")
	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		RunBlacklistCleanup(ctx, db, time.Now())
	})
	if err != nil {
		return err
	}
	log.Printf("[CLEANUP] token_blacklist cleanup scheduled %q", spec)
	return nil
}

// RunBlacklistCleanup deletes expired rows in batches until none are left.
func RunBlacklistCleanup(ctx context.Context, db *gorm.DB, now time.Time) int64 {
	ttlDays := configs.GetEnvInt("TOKEN_BLACKLIST_TTL_DAYS", 7)
	cutoff := now.Add(-time.Duration(ttlDays) * 24 * time.Hour)

	var total int64
	for {
		n, err := authRepo.PurgeExpiredBlacklist(ctx, db, cutoff, cleanupBatch)
		if err != nil {
			log.Printf("[CLEANUP ERROR] token_blacklist purge failed: %v", err)
			return total
		}
		total += n
		if n < cleanupBatch {
			break
		}
	}
	if total > 0 {
		log.Printf("[CLEANUP] %d expired tokens removed", total)
	} else {
		log.Println("[CLEANUP] no expired tokens to remove")
	}
	return total
}
