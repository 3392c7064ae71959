package timetable

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"hostelez/internal/core"
)

// Service manages weekly timetables.
type Service struct {
	repo  Repository
	clock clockwork.Clock
	loc   *time.Location
}

func NewService(repo Repository, clock clockwork.Clock, loc *time.Location) *Service {
	return &Service{repo: repo, clock: clock, loc: loc}
}

// Save replaces the user's timetable. Times are stored as HH:MM.
func (s *Service) Save(ctx context.Context, userID string, in Input) (Timetable, error) {
	classes := make([]Class, 0, len(in.Classes))
	for _, c := range in.Classes {
		start, err := core.ParseClock(c.StartTime)
		if err != nil {
			return Timetable{}, core.Invalid("classes.startTime", err.Error())
		}
		end, err := core.ParseClock(c.EndTime)
		if err != nil {
			return Timetable{}, core.Invalid("classes.endTime", err.Error())
		}
		if end <= start {
			return Timetable{}, core.Invalid("classes.endTime", "class must end after it starts")
		}
		c.StartTime, c.EndTime = start, end
		if c.ID == "" {
			c.ID = uuid.NewString()
		}
		classes = append(classes, c)
	}
	return s.repo.Save(ctx, Timetable{
		UserID:    userID,
		Semester:  in.Semester,
		Classes:   classes,
		UpdatedAt: s.clock.Now().UTC(),
	})
}

func (s *Service) Get(ctx context.Context, userID string) (Timetable, error) {
	return s.repo.GetByUser(ctx, userID)
}

// Today returns the user's classes for the current weekday ordered by start time.
func (s *Service) Today(ctx context.Context, userID string) ([]Class, error) {
	tt, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		if core.IsNotFound(err) {
			return []Class{}, nil
		}
		return nil, err
	}
	return OnDay(tt, s.clock.Now().In(s.loc).Weekday().String()), nil
}

// OnDay returns tt's classes on day ordered by start time.
func OnDay(tt Timetable, day string) []Class {
	out := []Class{}
	for _, c := range tt.Classes {
		if c.Day == day {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].StartTime < out[j].StartTime })
	return out
}

// ClassesOn returns every timetable having a class on day.
func (s *Service) ClassesOn(ctx context.Context, day string) ([]Timetable, error) {
	return s.repo.ClassesOn(ctx, day)
}
