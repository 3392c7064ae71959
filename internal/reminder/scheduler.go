package reminder

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"

	"hostelez/internal/errreport"
	"hostelez/internal/metrics"
)

// Scheduler runs jobs on their schedules, each on its own goroutine.
type Scheduler struct {
	clock  clockwork.Clock
	loc    *time.Location
	report *errreport.Reporter
	jobs   []Job
}

func NewScheduler(clock clockwork.Clock, loc *time.Location, report *errreport.Reporter, jobs ...Job) *Scheduler {
	return &Scheduler{clock: clock, loc: loc, report: report, jobs: jobs}
}

// Run blocks until ctx is done.
func (s *Scheduler) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, j := range s.jobs {
		wg.Add(1)
		go func(j Job) {
			defer wg.Done()
			s.loop(ctx, j)
		}(j)
	}
	log.Printf("scheduler: %d jobs started", len(s.jobs))
	wg.Wait()
	log.Println("scheduler: stopped")
}

func (s *Scheduler) loop(ctx context.Context, j Job) {
	for {
		now := s.clock.Now().In(s.loc)
		next := j.Schedule.Next(now)
		select {
		case <-ctx.Done():
			return
		case <-s.clock.After(next.Sub(now)):
			s.RunOnce(ctx, j, next)
		}
	}
}

// RunOnce runs j for the tick at now, recovering panics and recording the outcome.
func (s *Scheduler) RunOnce(ctx context.Context, j Job, now time.Time) {
	var err error
	func() {
		defer func() {
			if r := recover(); r != nil {
				err = errors.Errorf("panic: %v", r)
			}
		}()
		err = j.Run(ctx, now)
	}()
	if err != nil {
		metrics.ScanRuns.WithLabelValues(j.Name, "error").Inc()
		s.report.Error(errors.WithMessage(err, j.Name), map[string]interface{}{"job": j.Name, "tick": now.Format(time.RFC3339)})
		return
	}
	metrics.ScanRuns.WithLabelValues(j.Name, "ok").Inc()
}
