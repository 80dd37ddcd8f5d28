package database

import (
	"database/sql"

	"github.com/dementa/mjs/app/models"
)

// GetAdmissionsStats returns the numbers for the admin dashboard.
func GetAdmissionsStats(db *sql.DB) (*models.AdmissionsStats, error) {
	stats := &models.AdmissionsStats{}

	query := `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE status = 'Pending'),
			COUNT(*) FILTER (WHERE status = 'Passed'),
			COUNT(*) FILTER (WHERE status = 'Failed'),
			COUNT(*) FILTER (WHERE admission_status = 'pending'),
			COUNT(*) FILTER (WHERE admission_status = 'ready'),
			COUNT(*) FILTER (WHERE admission_status = 'completed')
		FROM interviews`
	err := db.QueryRow(query).Scan(
		&stats.TotalInterviews,
		&stats.PendingInterviews, &stats.PassedInterviews, &stats.FailedInterviews,
		&stats.QueuePending, &stats.QueueReady, &stats.QueueCompleted,
	)
	if err != nil {
		return nil, err
	}

	if stats.TotalStudents, err = CountStudents(db); err != nil {
		return nil, err
	}
	if stats.TotalGuardians, err = CountGuardians(db); err != nil {
		return nil, err
	}

	stats.RecentInterviews, err = getRecentInterviews(db, 5)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func getRecentInterviews(db *sql.DB, limit int) ([]*models.Interview, error) {
	query := `SELECT ` + interviewColumns + ` FROM interviews ORDER BY created_at DESC LIMIT $1`
	rows, err := db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var interviews []*models.Interview
	for rows.Next() {
		iv, err := scanInterview(rows)
		if err != nil {
			return nil, err
		}
		interviews = append(interviews, iv)
	}
	return interviews, rows.Err()
}
