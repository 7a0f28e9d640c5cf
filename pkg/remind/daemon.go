package remind

import (
	"context"
	"time"

	"go.uber.org/zap"

	"tableflip.dev/tick/pkg/model"
	"tableflip.dev/tick/pkg/notify"
)

// DefaultInterval polls finer than the one-minute trigger granularity so
// no trigger minute is skipped; it does not buy sub-minute precision.
const DefaultInterval = 10 * time.Second

// Source supplies the collections the scanner observes. It reads
// whatever the host last loaded into memory, which may be stale by
// design.
type Source func() ([]model.Task, []model.Habit)

// Scanner runs the periodic reminder sweep.
type Scanner struct {
	Interval time.Duration
	Source   Source
	Notifier notify.Notifier
	Log      *zap.Logger

	// now is swappable for tests.
	now func() time.Time

	lastFired string
}

// NewScanner builds a scanner with the default interval.
func NewScanner(source Source, notifier notify.Notifier, log *zap.Logger) *Scanner {
	return &Scanner{
		Interval: DefaultInterval,
		Source:   source,
		Notifier: notifier,
		Log:      log,
		now:      time.Now,
	}
}

// Tick performs one sweep. The whole tick is skipped when the current
// minute already produced a trigger, so polling faster than 60s never
// fires twice. Every triggered item gets a notification; the audible
// alert plays at most once per tick, after the scan completes.
func (s *Scanner) Tick(now time.Time) []Trigger {
	key := MinuteKey(now)
	if key == s.lastFired {
		return nil
	}

	tasks, habits := s.Source()
	triggers := Scan(now, tasks, habits)
	if len(triggers) == 0 {
		return nil
	}

	for _, tr := range triggers {
		s.Notifier.Notify(tr.Title, tr.Body)
	}
	s.Notifier.PlayAlert()
	s.lastFired = key

	if s.Log != nil {
		s.Log.Debug("remind: tick fired",
			zap.String("minute", key),
			zap.Int("triggers", len(triggers)))
	}
	return triggers
}

// Run polls until the context is cancelled.
func (s *Scanner) Run(ctx context.Context) error {
	if err := s.Notifier.RequestPermission(ctx); err != nil {
		return err
	}
	interval := s.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	if s.now == nil {
		s.now = time.Now
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.Tick(s.now())
	for {
		select {
		case <-ticker.C:
			s.Tick(s.now())
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
