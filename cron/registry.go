package cron

import (
	"context"
	"sort"
	"sync"
	"time"

	"greenearth.GO/core/registry"
)

// JobFunc is one run of a scheduled job. The context is cancelled after the
// job's timeout; a returned error is logged by the scheduler and surfaced by
// RunJob.
type JobFunc func(ctx context.Context, args ...string) error

// Job is a registered job.
type Job struct {
	Schedule string
	// Timeout bounds a single run; 0 means DefaultJobTimeout.
	Timeout time.Duration
	Run     JobFunc
}

// DefaultJobTimeout bounds jobs registered without their own timeout.
const DefaultJobTimeout = time.Minute

var mu sync.Mutex

// Register adds a job under a unique lowercase name. Jobs register from init();
// once the scheduler or RunJob has read the registry it is locked and Register
// panics.
func Register(name, schedule string, run JobFunc) {
	RegisterWithTimeout(name, schedule, 0, run)
}

// RegisterWithTimeout is Register with an explicit per-run timeout.
func RegisterWithTimeout(name, schedule string, timeout time.Duration, run JobFunc) {
	mu.Lock()
	defer mu.Unlock()
	if registry.GlobalRegistry.IsLocked(registry.KeyRegistryCron) {
		panic("cron/registry: locked (register only during init before StartCron)")
	}
	jobs := getJobs()
	if _, ok := jobs[name]; ok {
		panic("cron/registry: duplicate job " + name)
	}
	jobs[name] = Job{Schedule: schedule, Timeout: timeout, Run: run}
	registry.GlobalRegistry.SetGlobal(registry.KeyRegistryCron, jobs)
}

// Unregister removes a job and reopens the registry. Tests only.
func Unregister(name string) {
	mu.Lock()
	defer mu.Unlock()
	registry.GlobalRegistry.UnlockForTesting(registry.KeyRegistryCron)
	jobs := getJobs()
	delete(jobs, name)
	registry.GlobalRegistry.SetGlobal(registry.KeyRegistryCron, jobs)
}

func getJobs() map[string]Job {
	if v, ok := registry.GlobalRegistry.GetGlobal(registry.KeyRegistryCron); ok && v != nil {
		return v.(map[string]Job)
	}
	return make(map[string]Job)
}

// Jobs returns a copy of the registered jobs and locks the registry.
func Jobs() map[string]Job {
	out := make(map[string]Job)
	for k, v := range getJobs() {
		out[k] = v
	}
	if !registry.GlobalRegistry.IsLocked(registry.KeyRegistryCron) {
		registry.GlobalRegistry.Lock(registry.KeyRegistryCron)
	}
	return out
}

// Names lists every runnable job (registered and config.CronJobs), sorted.
func Names() []string {
	seen := map[string]bool{}
	for name := range Jobs() {
		seen[name] = true
	}
	for name := range configJobs() {
		seen[name] = true
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (j Job) timeout() time.Duration {
	if j.Timeout > 0 {
		return j.Timeout
	}
	return DefaultJobTimeout
}

// exec runs the job once under its timeout.
func (j Job) exec(parent context.Context, args ...string) error {
	ctx, cancel := context.WithTimeout(parent, j.timeout())
	defer cancel()
	return j.Run(ctx, args...)
}
