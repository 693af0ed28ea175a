package config

import (
	"biolink.GO/cron/jobs"
)

// Map of job names to job functions
type CronJob struct {
	Schedule string
	Job      func(...string)
}

var CronJobs = map[string]CronJob{
	"cacheprunejob": {Schedule: "@every 10m", Job: jobs.CachePruneJob},
	// Add more jobs here
}
