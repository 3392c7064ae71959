package notice

import (
	"context"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"hostelez/internal/core"
	"hostelez/internal/user"
)

// Profiles looks up the caller's hostel placement.
type Profiles interface {
	Get(ctx context.Context, id string) (user.User, error)
}

// Service publishes and lists hostel notices.
type Service struct {
	repo     Repository
	profiles Profiles
	clock    clockwork.Clock
}

func NewService(repo Repository, profiles Profiles, clock clockwork.Clock) *Service {
	return &Service{repo: repo, profiles: profiles, clock: clock}
}

// ListActive returns the active notices of the caller's hostel, newest first.
// Block targeted notices are only shown to residents of that block.
func (s *Service) ListActive(ctx context.Context, userID string) ([]Notice, error) {
	usr, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	hd := usr.HostelDetails
	if hd.HostelName == "" {
		return []Notice{}, nil
	}
	ns, err := s.repo.ActiveIn(ctx, hd.HostelName)
	if err != nil {
		return nil, err
	}
	out := make([]Notice, 0, len(ns))
	for _, n := range ns {
		if n.visibleTo(hd.Block) {
			out = append(out, n)
		}
	}
	return out, nil
}

func (s *Service) Publish(ctx context.Context, userID string, nn NewNotice) (Notice, error) {
	usr, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return Notice{}, err
	}
	n := Notice{
		ID:             uuid.NewString(),
		HostelName:     core.CleanString(nn.HostelName, false),
		Title:          core.CleanString(nn.Title, false),
		Description:    nn.Description,
		Type:           nn.Type,
		Time:           nn.Time,
		PostedBy:       core.CleanString(nn.PostedBy, false),
		PosterID:       userID,
		TargetAudience: nn.TargetAudience,
		Block:          nn.Block,
		IsActive:       true,
		CreatedAt:      s.clock.Now().UTC(),
	}
	if nn.Date != nil {
		d := nn.Date.UTC()
		n.Date = &d
	}
	if n.HostelName == "" {
		n.HostelName = usr.HostelDetails.HostelName
	}
	if n.HostelName == "" {
		return Notice{}, core.Invalid("hostelName", "hostelName is required when the profile has no hostel")
	}
	if n.PostedBy == "" {
		n.PostedBy = usr.Name
	}
	if n.TargetAudience == "" {
		n.TargetAudience = AudienceAll
	}
	if n.Time != "" {
		if n.Time, err = core.ParseClock(n.Time); err != nil {
			return Notice{}, core.Invalid("time", err.Error())
		}
	}
	if err := s.repo.Insert(ctx, n); err != nil {
		return Notice{}, err
	}
	return n, nil
}

// Deactivate hides one of the caller's own notices. Notices posted by
// someone else read as not found. Notices are never deleted.
func (s *Service) Deactivate(ctx context.Context, userID, id string) (Notice, error) {
	return s.repo.Deactivate(ctx, userID, id)
}
