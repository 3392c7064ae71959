package reminder

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/pkg/errors"

	"hostelez/internal/assignment"
	"hostelez/internal/core"
	"hostelez/internal/health"
	"hostelez/internal/laundry"
	"hostelez/internal/timetable"
)

// Job is a named periodic task.
type Job struct {
	Name     string
	Schedule Schedule
	Run      func(ctx context.Context, now time.Time) error
}

// ClassSource lists timetables with classes on a weekday.
type ClassSource interface {
	ClassesOn(ctx context.Context, day string) ([]timetable.Timetable, error)
}

type DoseSource interface {
	DosesDue(ctx context.Context, t time.Time) ([]health.Dose, error)
	MarkDoseReminded(ctx context.Context, d health.Dose) error
}

type LaundrySource interface {
	DueOn(ctx context.Context, t time.Time) ([]laundry.DueSlot, error)
	MarkReminded(ctx context.Context, laundryID, slotID string) error
}

type AssignmentSource interface {
	DueWithin(ctx context.Context, now time.Time, d time.Duration) ([]assignment.Assignment, error)
	MarkReminded(ctx context.Context, id string) error
}

type ChecklistResetter interface {
	ResetAll(ctx context.Context) (int, error)
}

// batch collects per-reminder failures so one bad record does not stop a scan.
type batch struct {
	total  int
	failed int
	first  error
}

func (b *batch) add(err error) {
	b.total++
	if err != nil {
		b.failed++
		if b.first == nil {
			b.first = err
		}
	}
}

func (b *batch) err() error {
	if b.failed == 0 {
		return nil
	}
	return errors.Wrapf(b.first, "%d of %d reminders failed", b.failed, b.total)
}

// ClassJob reminds residents of classes starting lead from now. Each run looks
// at exactly one minute, so each class occurrence is reminded once.
func ClassJob(src ClassSource, d Dispatcher, loc *time.Location, lead time.Duration) Job {
	return Job{
		Name:     "class-reminders",
		Schedule: MustCron(EveryMinute, loc),
		Run: func(ctx context.Context, now time.Time) error {
			at := now.In(loc).Add(lead).Truncate(time.Minute)
			day, clock := at.Weekday().String(), at.Format(core.ClockLayout)
			tts, err := src.ClassesOn(ctx, day)
			if err != nil {
				return err
			}
			var b batch
			for _, tt := range tts {
				for _, c := range timetable.OnDay(tt, day) {
					if c.StartTime != clock {
						continue
					}
					b.add(d.Dispatch(ctx, Reminder{
						Kind:   KindClass,
						UserID: tt.UserID,
						Title:  fmt.Sprintf("%s starts at %s", c.Subject, c.StartTime),
						Body:   classBody(c),
						DueAt:  at.UTC(),
						Key:    fmt.Sprintf("class:%s:%s:%s", tt.UserID, c.ID, at.Format(core.DayLayout)),
					}))
				}
			}
			return b.err()
		},
	}
}

func classBody(c timetable.Class) string {
	where := c.Room
	if c.Block != "" {
		where = c.Block + " " + where
	}
	if where == "" {
		return c.Type
	}
	return fmt.Sprintf("%s in %s", c.Type, where)
}

// MedicineJob reminds residents of doses scheduled this minute.
func MedicineJob(src DoseSource, d Dispatcher) Job {
	return Job{
		Name:     "medicine-reminders",
		Schedule: MustCron(EveryMinute, nil),
		Run: func(ctx context.Context, now time.Time) error {
			doses, err := src.DosesDue(ctx, now)
			if err != nil {
				return err
			}
			var b batch
			for _, dose := range doses {
				err := d.Dispatch(ctx, Reminder{
					Kind:   KindMedicine,
					UserID: dose.UserID,
					Title:  "Time for " + dose.Name,
					Body:   dose.Dosage,
					DueAt:  now.UTC().Truncate(time.Minute),
					Key:    fmt.Sprintf("medicine:%s:%s:%d", dose.RecordID, dose.MedicineID, dose.Index),
				})
				if err == nil {
					err = src.MarkDoseReminded(ctx, dose)
				}
				b.add(err)
			}
			return b.err()
		},
	}
}

// LaundryJob reminds rooms of tomorrow's booked slots.
func LaundryJob(src LaundrySource, d Dispatcher, loc *time.Location) Job {
	return Job{
		Name:     "laundry-reminders",
		Schedule: MustCron(Hourly, loc),
		Run: func(ctx context.Context, now time.Time) error {
			slots, err := src.DueOn(ctx, now.In(loc).AddDate(0, 0, 1))
			if err != nil {
				return err
			}
			var b batch
			for _, s := range slots {
				err := d.Dispatch(ctx, Reminder{
					Kind:   KindLaundry,
					UserID: s.Slot.BookedBy,
					Title:  "Laundry tomorrow at " + s.Slot.Time,
					Body:   fmt.Sprintf("Room %s, %s", s.RoomNumber, s.HostelName),
					DueAt:  s.Slot.Date,
					Key:    "laundry:" + s.Slot.ID,
				})
				if err == nil {
					err = src.MarkReminded(ctx, s.LaundryID, s.Slot.ID)
				}
				b.add(err)
			}
			return b.err()
		},
	}
}

// AssignmentJob reminds residents of open assignments due within a day.
func AssignmentJob(src AssignmentSource, d Dispatcher, loc *time.Location) Job {
	return Job{
		Name:     "assignment-reminders",
		Schedule: MustCron(Hourly, loc),
		Run: func(ctx context.Context, now time.Time) error {
			due, err := src.DueWithin(ctx, now, 24*time.Hour)
			if err != nil {
				return err
			}
			var b batch
			for _, a := range due {
				err := d.Dispatch(ctx, Reminder{
					Kind:   KindAssignment,
					UserID: a.UserID,
					Title:  fmt.Sprintf("%s due %s", a.Title, a.DueDate.In(loc).Format("Mon 15:04")),
					Body:   a.Subject,
					DueAt:  a.DueDate,
					Key:    fmt.Sprintf("assignment:%s:%d", a.ID, a.DueDate.Unix()),
				})
				if err == nil {
					err = src.MarkReminded(ctx, a.ID)
				}
				b.add(err)
			}
			return b.err()
		},
	}
}

// ChecklistResetJob unchecks every checklist at midnight.
func ChecklistResetJob(src ChecklistResetter, loc *time.Location) Job {
	return Job{
		Name:     "checklist-reset",
		Schedule: MustCron(Midnight, loc),
		Run: func(ctx context.Context, _ time.Time) error {
			n, err := src.ResetAll(ctx)
			if err != nil {
				return err
			}
			log.Printf("checklist reset: %d checklists", n)
			return nil
		},
	}
}
