package scheduler

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler fires a job on a cron expression in a fixed timezone, independent
// of HTTP traffic.
type Scheduler struct {
	cron *cron.Cron
}

func New(spec, timezone string, job func() error) (*Scheduler, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}

	c := cron.New(cron.WithLocation(loc))
	_, err = c.AddFunc(spec, func() {
		slog.Info("scheduled trend analysis starting", "time", time.Now().In(loc).Format(time.RFC3339))
		if err := job(); err != nil {
			slog.Error("scheduled trend analysis failed", "error", err)
			return
		}
	})
	if err != nil {
		return nil, fmt.Errorf("invalid cron expression %q: %w", spec, err)
	}

	return &Scheduler{cron: c}, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

// Entries reports how many jobs are registered.
func (s *Scheduler) Entries() int {
	return len(s.cron.Entries())
}
