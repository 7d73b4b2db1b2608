package jobs

import (
	"log"
	"time"

	"github.com/Sunilkumar09281/mutual-learn-space/database"
	"github.com/Sunilkumar09281/mutual-learn-space/models"
)

const stalePendingAge = 30 * 24 * time.Hour

// ExpireStalePendingRequests drops pending exchange requests nobody has acted
// on for a month. Accepted requests are never touched.
func ExpireStalePendingRequests() {
	log.Println("Running job: ExpireStalePendingRequests...")

	cutoff := time.Now().Add(-stalePendingAge)
	result := database.DB.
		Where("status = ? AND created_at < ?", models.RequestPending, cutoff).
		Delete(&models.ExchangeRequest{})

	if result.Error != nil {
		log.Printf("Error expiring stale pending requests: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("Expired %d stale pending requests", result.RowsAffected)
	}
}
