// internals/features/users/auth/scheduler/cleanup.go
package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"

	tenancyModel "igrejaku_backend/internals/features/churches/tenancy/model"
	authModel "igrejaku_backend/internals/features/users/auth/model"
)

// StartAuthCleanupScheduler remove, a cada 24h, token_blacklist vencida,
// refresh tokens expirados/revogados e overrides de visão já expirados.
func StartAuthCleanupScheduler(db *gorm.DB) {
	go func() {
		ttlDays := 7
		if val := os.Getenv("TOKEN_BLACKLIST_TTL_DAYS"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
				ttlDays = parsed
			}
		}

		for {
			runCleanup(db, ttlDays)
			time.Sleep(24 * time.Hour)
		}
	}()
}

func runCleanup(db *gorm.DB, ttlDays int) {
	log.Println("[CLEANUP] Limpando token_blacklist, refresh_tokens e church_view_sessions...")

	deleteBefore := time.Now().UTC().Add(-time.Duration(ttlDays) * 24 * time.Hour)

	if res := db.Unscoped().
		Where("expired_at < ?", deleteBefore).
		Delete(&authModel.TokenBlacklist{}); res.Error != nil {
		log.Printf("[CLEANUP ERROR] blacklist: %v", res.Error)
	} else if res.RowsAffected > 0 {
		log.Printf("[CLEANUP] %d tokens removidos da blacklist", res.RowsAffected)
	}

	if res := db.
		Where("expires_at < now() OR revoked_at IS NOT NULL").
		Delete(&authModel.RefreshToken{}); res.Error != nil {
		log.Printf("[CLEANUP ERROR] refresh_tokens: %v", res.Error)
	} else if res.RowsAffected > 0 {
		log.Printf("[CLEANUP] %d refresh tokens removidos", res.RowsAffected)
	}

	if res := db.
		Where("church_view_expires_at < now()").
		Delete(&tenancyModel.ChurchViewSession{}); res.Error != nil {
		log.Printf("[CLEANUP ERROR] church_view_sessions: %v", res.Error)
	} else if res.RowsAffected > 0 {
		log.Printf("[CLEANUP] %d sessões de visão expiradas removidas", res.RowsAffected)
	}
}
