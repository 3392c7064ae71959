// Package app wires repositories and services for the binaries and tests.
package app

import (
	"time"

	"github.com/jonboulle/clockwork"
	"go.mongodb.org/mongo-driver/mongo"

	"hostelez/internal/assignment"
	"hostelez/internal/attendance"
	"hostelez/internal/auth"
	"hostelez/internal/checklist"
	"hostelez/internal/event"
	"hostelez/internal/food"
	"hostelez/internal/health"
	"hostelez/internal/laundry"
	"hostelez/internal/maintenance"
	"hostelez/internal/notice"
	"hostelez/internal/notify"
	"hostelez/internal/roommate"
	"hostelez/internal/timetable"
	"hostelez/internal/user"
)

// Repos is one repository per collection.
type Repos struct {
	Users       user.Repository
	Timetables  timetable.Repository
	Attendance  attendance.Repository
	Laundry     laundry.Repository
	Roommates   roommate.Repository
	Health      health.Repository
	Assignments assignment.Repository
	Notices     notice.Repository
	Checklists  checklist.Repository
	Food        food.Repository
	Events      event.Repository
	Maintenance maintenance.Repository
}

// MongoRepos returns repositories over db.
func MongoRepos(db *mongo.Database) Repos {
	return Repos{
		Users:       user.NewMongoRepository(db),
		Timetables:  timetable.NewMongoRepository(db),
		Attendance:  attendance.NewMongoRepository(db),
		Laundry:     laundry.NewMongoRepository(db),
		Roommates:   roommate.NewMongoRepository(db),
		Health:      health.NewMongoRepository(db),
		Assignments: assignment.NewMongoRepository(db),
		Notices:     notice.NewMongoRepository(db),
		Checklists:  checklist.NewMongoRepository(db),
		Food:        food.NewMongoRepository(db),
		Events:      event.NewMongoRepository(db),
		Maintenance: maintenance.NewMongoRepository(db),
	}
}

// MemoryRepos returns empty in-process repositories.
func MemoryRepos() Repos {
	return Repos{
		Users:       user.NewMemoryRepository(),
		Timetables:  timetable.NewMemoryRepository(),
		Attendance:  attendance.NewMemoryRepository(),
		Laundry:     laundry.NewMemoryRepository(),
		Roommates:   roommate.NewMemoryRepository(),
		Health:      health.NewMemoryRepository(),
		Assignments: assignment.NewMemoryRepository(),
		Notices:     notice.NewMemoryRepository(),
		Checklists:  checklist.NewMemoryRepository(),
		Food:        food.NewMemoryRepository(),
		Events:      event.NewMemoryRepository(),
		Maintenance: maintenance.NewMemoryRepository(),
	}
}

// Services is the application layer the HTTP handlers and jobs call.
type Services struct {
	Users         *user.Service
	Timetables    *timetable.Service
	Attendance    *attendance.Service
	Laundry       *laundry.Service
	Roommates     *roommate.Service
	Health        *health.Service
	Assignments   *assignment.Service
	Notices       *notice.Service
	Checklists    *checklist.Service
	Food          *food.Service
	Events        *event.Service
	Maintenance   *maintenance.Service
	Notifications *notify.Deliverer
}

// NewServices builds every service. Times of day and calendar days are
// interpreted in loc.
func NewServices(r Repos, inbox notify.Inbox, signer *auth.Signer, clock clockwork.Clock, loc *time.Location) *Services {
	checklists := checklist.NewService(r.Checklists, clock)
	users := user.NewService(r.Users, checklists, signer, clock)
	return &Services{
		Users:         users,
		Timetables:    timetable.NewService(r.Timetables, clock, loc),
		Attendance:    attendance.NewService(r.Attendance, clock),
		Laundry:       laundry.NewService(r.Laundry, users, clock, loc),
		Roommates:     roommate.NewService(r.Roommates, users, clock),
		Health:        health.NewService(r.Health, clock, loc),
		Assignments:   assignment.NewService(r.Assignments, clock),
		Notices:       notice.NewService(r.Notices, users, clock),
		Checklists:    checklists,
		Food:          food.NewService(r.Food),
		Events:        event.NewService(r.Events),
		Maintenance:   maintenance.NewService(r.Maintenance, users, clock),
		Notifications: notify.NewDeliverer(inbox, notify.LogPusher{}, clock),
	}
}
