package health

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"hostelez/internal/core"
)

// Service keeps daily health logs and medicine schedules.
type Service struct {
	repo  Repository
	clock clockwork.Clock
	loc   *time.Location
}

func NewService(repo Repository, clock clockwork.Clock, loc *time.Location) *Service {
	return &Service{repo: repo, clock: clock, loc: loc}
}

func (s *Service) today() time.Time {
	return core.StartOfDay(s.clock.Now().In(s.loc))
}

func (s *Service) blank(userID string, day time.Time) Record {
	return Record{
		ID:        uuid.NewString(),
		UserID:    userID,
		Day:       day.Format(core.DayLayout),
		Date:      day.UTC(),
		WaterGoal: DefaultWaterGoal,
		StepsGoal: DefaultStepsGoal,
		Medicines: []Medicine{},
	}
}

// Create stores a record for the given day. A second record on the same day is rejected.
func (s *Service) Create(ctx context.Context, userID string, nr NewRecord) (Record, error) {
	day := s.today()
	if nr.Date != "" {
		d, err := time.ParseInLocation(core.DayLayout, nr.Date, s.loc)
		if err != nil {
			return Record{}, core.Invalid("date", "date must be YYYY-MM-DD")
		}
		day = d
	}
	p, err := normalize(nr.Patch, nil)
	if err != nil {
		return Record{}, err
	}
	rec := s.blank(userID, day)
	if p.Medicines == nil {
		if rec, err = s.fresh(ctx, userID, day); err != nil {
			return Record{}, err
		}
	}
	p.apply(&rec)
	if err := s.repo.Insert(ctx, rec); err != nil {
		if core.IsDuplicate(err) {
			return Record{}, core.Invalid("date", "a health record for this day already exists")
		}
		return Record{}, err
	}
	return rec, nil
}

// List returns the caller's history, newest day first.
func (s *Service) List(ctx context.Context, userID string) ([]Record, error) {
	return s.repo.ListByUser(ctx, userID)
}

// fresh builds an unsaved record for day whose medicines continue the user's
// latest earlier schedule.
func (s *Service) fresh(ctx context.Context, userID string, day time.Time) (Record, error) {
	rec := s.blank(userID, day)
	prev, err := s.repo.Latest(ctx, userID, rec.Day)
	switch {
	case core.IsNotFound(err):
	case err != nil:
		return Record{}, err
	default:
		rec.Medicines = carry(prev.Medicines)
	}
	return rec, nil
}

// carry copies a medicine schedule into a new day with nothing taken or reminded.
func carry(meds []Medicine) []Medicine {
	out := make([]Medicine, 0, len(meds))
	for _, m := range meds {
		out = append(out, Medicine{
			ID:           m.ID,
			Name:         m.Name,
			Dosage:       m.Dosage,
			Times:        append([]string(nil), m.Times...),
			Taken:        make([]bool, len(m.Times)),
			ReminderSent: make([]bool, len(m.Times)),
		})
	}
	return out
}

// Today returns today's record, creating it on first access with the
// medicines of the user's previous record.
func (s *Service) Today(ctx context.Context, userID string) (Record, error) {
	rec, err := s.fresh(ctx, userID, s.today())
	if err != nil {
		return Record{}, err
	}
	return s.repo.GetOrCreate(ctx, rec)
}

// Update patches one of the caller's records.
func (s *Service) Update(ctx context.Context, userID, id string, p Patch) (Record, error) {
	var prev []Medicine
	if p.Medicines != nil {
		cur, err := s.repo.Get(ctx, userID, id)
		if err != nil {
			return Record{}, err
		}
		prev = cur.Medicines
	}
	p, err := normalize(p, prev)
	if err != nil {
		return Record{}, err
	}
	return s.repo.Update(ctx, userID, id, p)
}

// DosesDue lists doses scheduled at t's minute that were not reminded yet.
// Users whose latest record predates t's day get that day's record created
// first, so schedules keep firing without the app being opened.
func (s *Service) DosesDue(ctx context.Context, t time.Time) ([]Dose, error) {
	t = t.In(s.loc)
	day := t.Format(core.DayLayout)
	recs, err := s.repo.ScheduledAt(ctx, day, t.Format(core.ClockLayout))
	if err != nil {
		return nil, err
	}
	for i, rec := range recs {
		if rec.Day == day {
			continue
		}
		next := s.blank(rec.UserID, core.StartOfDay(t))
		next.Medicines = carry(rec.Medicines)
		if recs[i], err = s.repo.GetOrCreate(ctx, next); err != nil {
			return nil, err
		}
	}
	return dosesAt(recs, t.Format(core.ClockLayout)), nil
}

func (s *Service) MarkDoseReminded(ctx context.Context, d Dose) error {
	return s.repo.MarkDoseReminded(ctx, d.RecordID, d.MedicineID, d.Index)
}

// normalize turns submitted medicines into stored ones: times become HH:MM and
// the taken/reminderSent flags get one entry per time. Flags of a time that
// prev already held for the same medicine id are kept.
func normalize(p Patch, prev []Medicine) (Patch, error) {
	if p.Medicines == nil {
		return p, nil
	}
	meds := make([]Medicine, 0, len(*p.Medicines))
	for _, in := range *p.Medicines {
		m := Medicine{
			ID:           in.ID,
			Name:         core.CleanString(in.Name, false),
			Dosage:       in.Dosage,
			Times:        make([]string, len(in.Times)),
			Taken:        make([]bool, len(in.Times)),
			ReminderSent: make([]bool, len(in.Times)),
		}
		if m.ID == "" {
			m.ID = uuid.NewString()
		}
		if m.Name == "" {
			return p, core.Invalid("medicines.name", "medicine name is required")
		}
		old := findMedicine(prev, m.ID)
		for i, t := range in.Times {
			hhmm, err := core.ParseClock(t)
			if err != nil {
				return p, core.Invalid("medicines.times", err.Error())
			}
			m.Times[i] = hhmm
			if j := timeIndex(old, hhmm); j >= 0 {
				m.Taken[i] = j < len(old.Taken) && old.Taken[j]
				m.ReminderSent[i] = j < len(old.ReminderSent) && old.ReminderSent[j]
			}
			if i < len(in.Taken) {
				m.Taken[i] = in.Taken[i]
			}
		}
		meds = append(meds, m)
	}
	p.medicines = meds
	return p, nil
}

func findMedicine(meds []Medicine, id string) *Medicine {
	for i := range meds {
		if meds[i].ID == id {
			return &meds[i]
		}
	}
	return nil
}

func timeIndex(m *Medicine, hhmm string) int {
	if m == nil {
		return -1
	}
	for i, t := range m.Times {
		if t == hhmm {
			return i
		}
	}
	return -1
}
