package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	model "descubrecurico_backend/internals/features/users/auth/model"
)

// StartBlacklistCleanupScheduler purga cada hora los tokens en blacklist ya
// vencidos y los refresh tokens expirados.
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()

			res := db.Unscoped().
				Where("expired_at < ?", now).
				Delete(&model.TokenBlacklist{})
			if res.Error != nil {
				log.Printf("[ERROR] limpieza de blacklist: %v", res.Error)
			} else if res.RowsAffected > 0 {
				log.Printf("🧹 Blacklist: %d tokens vencidos eliminados", res.RowsAffected)
			}

			res = db.Where("expires_at < ?", now).Delete(&model.RefreshToken{})
			if res.Error != nil {
				log.Printf("[ERROR] limpieza de refresh tokens: %v", res.Error)
			} else if res.RowsAffected > 0 {
				log.Printf("🧹 Refresh tokens expirados eliminados: %d", res.RowsAffected)
			}
		}
	}()
}
