package utils

import (
	"context"
	"log"
	"time"

	"medipulse/config"
	"medipulse/history"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[HISTORY-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// purgeExpiredHistory removes records older than the configured retention
// window across all users.
func purgeExpiredHistory() {
	days := config.AppConfig.HistoryRetentionDays
	if days <= 0 {
		return
	}

	cutoff := time.Now().AddDate(0, 0, -days)
	removed, err := history.Records.PurgeOlderThan(context.Background(), cutoff)
	if err != nil {
		logScheduler("Error purging expired history: " + err.Error())
		return
	}
	if removed > 0 {
		logScheduler("Purged expired history records older than " + cutoff.Format(time.RFC3339))
	}
}

// InitializeHistoryScheduler starts the retention scheduler. Returns nil
// when retention is disabled.
func InitializeHistoryScheduler() *cron.Cron {
	if config.AppConfig.HistoryRetentionDays <= 0 {
		logScheduler("History retention disabled (HISTORY_RETENTION_DAYS not set)")
		return nil
	}

	c := cron.New()

	// Daily at 03:00 server time
	c.AddFunc("0 3 * * *", purgeExpiredHistory)
	c.Start()

	logScheduler("History retention scheduler started - runs daily at 03:00")
	return c
}
