package services

import (
	"database/sql"
	"log"
	"time"

	"github.com/dementa/mjs/app/database"
)

// StartScheduler starts the background task scheduler
func StartScheduler(db *sql.DB) {
	go func() {
		log.Println("Scheduler started...")
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			n, err := database.DeleteExpiredSessions(db)
			if err != nil {
				log.Printf("Error cleaning up expired sessions: %v", err)
				continue
			}
			if n > 0 {
				log.Printf("Cleaned up %d expired sessions", n)
			}
		}
	}()
}
