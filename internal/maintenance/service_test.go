package maintenance

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostelez/internal/core"
	"hostelez/internal/user"
)

type residents map[string]user.User

func (r residents) Residence(_ context.Context, id string) (user.User, error) {
	u := r[id]
	if u.HostelDetails.RoomNumber == "" {
		return user.User{}, core.Invalid("hostelDetails.roomNumber", "profile has no room number")
	}
	return u, nil
}

func TestCreateAndList(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC))
	people := residents{"u1": {ID: "u1", HostelDetails: user.HostelDetails{HostelName: "Nilgiri", RoomNumber: "204"}}}
	svc := NewService(NewMemoryRepository(), people, clock)
	ctx := context.Background()

	first, err := svc.Create(ctx, "u1", NewTicket{IssueType: "Plumbing", Description: "Tap leaking"})
	require.NoError(t, err)
	assert.Equal(t, "204", first.RoomNumber)
	assert.Equal(t, Pending, first.Status)
	assert.Equal(t, "Medium", first.Urgency)

	clock.Advance(time.Hour)
	_, err = svc.Create(ctx, "u1", NewTicket{IssueType: "Internet", Description: "No wifi", Urgency: "High"})
	require.NoError(t, err)

	list, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "No wifi", list[0].Description)

	_, err = svc.Create(ctx, "u2", NewTicket{IssueType: "AC", Description: "Too hot"})
	var verr *core.ValidationError
	assert.ErrorAs(t, err, &verr)
}
