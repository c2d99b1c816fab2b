package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// FixedDelay blocks the caller for a constant delay measured from the moment
// Wait is called, so the next poll starts one period after the previous one
// finished. The wait cannot be cancelled.
type FixedDelay struct {
	schedule cron.ConstantDelaySchedule
	logger   *logrus.Entry
	now      func() time.Time
	sleep    func(time.Duration)
}

// NewFixedDelay builds a sleeper for period. cron.Every rounds the period
// down to whole seconds, with a one second minimum.
func NewFixedDelay(period time.Duration, logger *logrus.Entry) *FixedDelay {
	return &FixedDelay{
		schedule: cron.Every(period),
		logger:   logger,
		now:      time.Now,
		sleep:    time.Sleep,
	}
}

// Period returns the effective delay between two runs.
func (s *FixedDelay) Period() time.Duration {
	return s.schedule.Delay
}

// Wait sleeps for the whole period. Next would align the wake time to a
// whole second and cut up to a second off the delay, so it is not used here.
func (s *FixedDelay) Wait() {
	next := s.now().Add(s.schedule.Delay)
	s.logger.WithField("next_run", next.Format("2006-01-02 15:04:05")).Debug("Sleeping until next poll")
	s.sleep(s.schedule.Delay)
}
