package reminder

import (
	"time"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
)

// Schedule yields the next run time strictly after now.
type Schedule = cron.Schedule

// Standard five-field expressions for the reminder jobs.
const (
	EveryMinute = "* * * * *"
	Hourly      = "0 * * * *"
	Midnight    = "0 0 * * *"
)

// Cron parses a standard cron expression whose fields are read in loc.
// A nil loc keeps the time zone of the instant passed to Next.
func Cron(expr string, loc *time.Location) (Schedule, error) {
	s, err := cron.ParseStandard(expr)
	if err != nil {
		return nil, errors.Wrapf(err, "cron expression %q", expr)
	}
	if spec, ok := s.(*cron.SpecSchedule); ok && loc != nil {
		spec.Location = loc
	}
	return s, nil
}

// MustCron is Cron for expressions known to be valid.
func MustCron(expr string, loc *time.Location) Schedule {
	s, err := Cron(expr, loc)
	if err != nil {
		panic(err)
	}
	return s
}
