package utils

import (
	"log"

	"github.com/robfig/cron/v3"

	"scholarship/config"
	"scholarship/database"
	"scholarship/models"
)

// InitializeApplicationScheduler sets up the daily pending application digest
func InitializeApplicationScheduler() {
	if config.AppConfig.AdminEmail == "" {
		log.Println("[APP-SCHEDULER] ADMIN_EMAIL not set, digest scheduler disabled")
		return
	}

	c := cron.New()

	// Run daily at 9 AM to summarize pending applications
	c.AddFunc("0 9 * * *", func() {
		log.Println("[APP-SCHEDULER] Running daily pending application digest...")
		SendPendingApplicationDigest()
	})

	c.Start()
	log.Println("[APP-SCHEDULER] Application scheduler started - runs daily at 9 AM")
}

// SendPendingApplicationDigest counts pending applications per type and mails
// the digest to the admin inbox.
func SendPendingApplicationDigest() {
	db := database.Database.Db

	types := []string{
		models.ApplicationSchoolFees,
		models.ApplicationTravelExpenses,
		models.ApplicationStudyBooks,
	}

	pendingByType := make(map[string]int64, len(types))
	var total int64
	for _, appType := range types {
		var count int64
		if err := db.Model(&models.Application{}).
			Where("status = ? AND application_type = ?", models.StatusPending, appType).
			Count(&count).Error; err != nil {
			log.Printf("[APP-SCHEDULER] Error counting %s applications: %v", appType, err)
			return
		}
		pendingByType[appType] = count
		total += count
	}

	if total == 0 {
		log.Println("[APP-SCHEDULER] No pending applications, digest skipped")
		return
	}

	if err := SendPendingDigestEmail(config.AppConfig.AdminEmail, pendingByType, total); err != nil {
		log.Printf("[APP-SCHEDULER] Error sending digest email: %v", err)
		return
	}
	log.Printf("[APP-SCHEDULER] Digest sent: %d pending applications", total)
}
