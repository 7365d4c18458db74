package config

import "context"

// CronJob pairs a schedule with the job to run.
type CronJob struct {
	Schedule string
	Job      func(ctx context.Context, args ...string) error
}

// CronJobs holds statically configured jobs. Jobs that need runtime dependencies
// (the session store) register through cron.Register instead.
var CronJobs = map[string]CronJob{}
