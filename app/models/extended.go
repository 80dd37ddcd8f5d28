package models

// AdmissionsStats aggregates the numbers shown on the admin dashboard.
type AdmissionsStats struct {
	TotalInterviews   int `json:"total_interviews"`
	PendingInterviews int `json:"pending_interviews"`
	PassedInterviews  int `json:"passed_interviews"`
	FailedInterviews  int `json:"failed_interviews"`
	QueuePending      int `json:"queue_pending"`
	QueueReady        int `json:"queue_ready"`
	QueueCompleted    int `json:"queue_completed"`
	TotalStudents     int `json:"total_students"`
	TotalGuardians    int `json:"total_guardians"`

	RecentInterviews []*Interview `json:"recent_interviews"`
}
