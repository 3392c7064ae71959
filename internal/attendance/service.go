package attendance

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"hostelez/internal/core"
)

// Service tracks per-subject attendance.
type Service struct {
	repo  Repository
	clock clockwork.Clock
}

// NewService creates a service backed by a repository.
func NewService(repo Repository, clock clockwork.Clock) *Service {
	return &Service{repo: repo, clock: clock}
}

// Create starts tracking a subject for the user.
func (s *Service) Create(ctx context.Context, userID string, na NewAttendance) (Attendance, error) {
	if na.AttendedClasses > na.TotalClasses {
		return Attendance{}, core.Invalid("attendedClasses", "attendedClasses cannot exceed totalClasses")
	}
	required := float64(DefaultRequiredPercentage)
	if na.RequiredPercentage != nil {
		required = *na.RequiredPercentage
	}
	if required <= 0 || required > 100 {
		return Attendance{}, core.Invalid("requiredPercentage", "requiredPercentage must be in (0, 100]")
	}
	att := Attendance{
		ID:                 uuid.NewString(),
		UserID:             userID,
		Subject:            na.Subject,
		SubjectCode:        na.SubjectCode,
		TotalClasses:       na.TotalClasses,
		AttendedClasses:    na.AttendedClasses,
		Records:            []Record{},
		RequiredPercentage: required,
		Semester:           na.Semester,
	}
	if err := s.repo.Insert(ctx, att); err != nil {
		return Attendance{}, err
	}
	return att, nil
}

// List returns the user's subjects with their standing.
func (s *Service) List(ctx context.Context, userID string) ([]WithStanding, error) {
	atts, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(atts, func(i, j int) bool { return atts[i].Subject < atts[j].Subject })
	out := make([]WithStanding, 0, len(atts))
	for _, a := range atts {
		out = append(out, WithStanding{
			Attendance: a,
			Standing:   ComputeStanding(a.TotalClasses, a.AttendedClasses, a.RequiredPercentage),
		})
	}
	return out, nil
}

// Mark appends a dated record. Every mark counts towards totalClasses, only
// Present counts as attended.
func (s *Service) Mark(ctx context.Context, userID, id string, m Mark) (WithStanding, error) {
	if !m.Status.Valid() {
		return WithStanding{}, core.Invalid("status", "status must be one of Present, Absent, Leave, Medical")
	}
	att, err := s.repo.Append(ctx, userID, id, Record{
		Date:        s.clock.Now().UTC(),
		Status:      m.Status,
		Reason:      m.Reason,
		Certificate: m.Certificate,
	})
	if err != nil {
		return WithStanding{}, err
	}
	return WithStanding{
		Attendance: att,
		Standing:   ComputeStanding(att.TotalClasses, att.AttendedClasses, att.RequiredPercentage),
	}, nil
}
