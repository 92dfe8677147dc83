package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"
)

// StartPublishScheduler menjalankan promoter tiap interval detik (default 60).
// Error di satu cycle tidak boleh mematikan loop; cycle berikutnya jalan terus.
func StartPublishScheduler(db *gorm.DB) {
	go func() {
		intervalSec := 60
		if val := os.Getenv("PUBLISH_INTERVAL_SECONDS"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
				intervalSec = parsed
			}
		}

		for {
			runGuarded(db)
			time.Sleep(time.Duration(intervalSec) * time.Second)
		}
	}()
}

func runGuarded(db *gorm.DB) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[PUBLISHER PANIC] %v", r)
		}
	}()

	now := time.Now().UTC()
	report, err := RunCycle(db, now)
	if err != nil {
		log.Printf("[PUBLISHER ERROR] cycle %s gagal: %v", now.Format(time.RFC3339), err)
		return
	}

	if len(report.PromotedLessonIDs) > 0 || len(report.PromotedProgramIDs) > 0 {
		log.Printf("[PUBLISHER] %d lesson & %d program dipublish otomatis",
			len(report.PromotedLessonIDs), len(report.PromotedProgramIDs))
	}
	for _, issue := range report.Skipped {
		log.Printf("[PUBLISHER] lesson %s belum siap publish: %v", issue.LessonID, issue.Reasons)
	}
}
