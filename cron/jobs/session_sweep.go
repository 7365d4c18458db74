package jobs

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"greenearth.GO/config"
	"greenearth.GO/cron"
	sessionRepo "greenearth.GO/model/repository/session"
)

const (
	SessionSweepJob      = "sessionsweep"
	SessionSweepSchedule = "@every 10m"
	sweepTimeout         = 30 * time.Second
)

func init() {
	cron.RegisterWithTimeout(SessionSweepJob, SessionSweepSchedule, sweepTimeout, func(ctx context.Context, _ ...string) error {
		repo, err := ConfiguredSessionRepository()
		if err != nil {
			return err
		}
		_, err = SweepSessions(ctx, repo)
		return err
	})
}

// ConfiguredSessionRepository opens the session store named in AppConfig.
func ConfiguredSessionRepository() (sessionRepo.SessionRepository, error) {
	if config.AppConfig == nil {
		if err := config.LoadAppConfig(); err != nil {
			return nil, err
		}
	}
	return sessionRepo.GetSessionRepository(config.AppConfig.Session.Store, config.AppConfig.Session.TTL)
}

// SweepSessions removes expired sessions from repo and returns how many went.
func SweepSessions(ctx context.Context, repo sessionRepo.SessionRepository) (int, error) {
	removed, err := repo.Sweep(ctx)
	if err != nil {
		return 0, fmt.Errorf("sweep sessions: %w", err)
	}
	log.WithField("removed", removed).Info("Session sweep finished")
	return removed, nil
}
