package app

import (
	"time"

	"hostelez/internal/reminder"
)

// Jobs returns the periodic reminder and housekeeping jobs.
func (s *Services) Jobs(d reminder.Dispatcher, loc *time.Location, classLead time.Duration) []reminder.Job {
	return []reminder.Job{
		reminder.ClassJob(s.Timetables, d, loc, classLead),
		reminder.MedicineJob(s.Health, d),
		reminder.LaundryJob(s.Laundry, d, loc),
		reminder.AssignmentJob(s.Assignments, d, loc),
		reminder.ChecklistResetJob(s.Checklists, loc),
	}
}
