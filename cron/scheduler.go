package cron

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"

	"greenearth.GO/config"
)

// configJobs adapts config.CronJobs to registry jobs; registered jobs win on
// a name clash.
func configJobs() map[string]Job {
	out := make(map[string]Job, len(config.CronJobs))
	for name, cj := range config.CronJobs {
		out[name] = Job{Schedule: cj.Schedule, Run: cj.Job}
	}
	return out
}

func allJobs() map[string]Job {
	jobs := configJobs()
	for name, j := range Jobs() {
		jobs[name] = j
	}
	return jobs
}

// StartCron schedules config.CronJobs and every registered job, then starts
// the scheduler. A bad schedule aborts before anything runs.
func StartCron() (*cron.Cron, error) {
	c := cron.New(cron.WithLogger(cron.PrintfLogger(log.StandardLogger())))
	for name, j := range allJobs() {
		name, j := name, j
		_, err := c.AddFunc(j.Schedule, func() {
			if err := j.exec(context.Background()); err != nil {
				log.WithError(err).WithField("job", name).Error("Cron job failed")
			}
		})
		if err != nil {
			return nil, fmt.Errorf("register job %s: %w", name, err)
		}
		log.WithFields(log.Fields{"job": name, "schedule": j.Schedule}).Info("Cron job registered")
	}
	c.Start()
	return c, nil
}

// RunJob runs a single job by name once. ok is false for unknown names.
func RunJob(ctx context.Context, name string, args ...string) (ok bool, err error) {
	j, ok := allJobs()[name]
	if !ok {
		return false, nil
	}
	return true, j.exec(ctx, args...)
}
