package user

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"

	"hostelez/internal/auth"
	"hostelez/internal/core"
)

var (
	ErrEmailExists = errors.New("a user with this email already exists")
	ErrUSNExists   = errors.New("a user with this usn already exists")
)

// ChecklistSeeder creates the checklist every new resident starts with.
type ChecklistSeeder interface {
	CreateDefault(ctx context.Context, userID string) error
}

// Service handles registration, login and profile updates.
type Service struct {
	repo       Repository
	checklists ChecklistSeeder
	signer     *auth.Signer
	clock      clockwork.Clock
}

func NewService(repo Repository, checklists ChecklistSeeder, signer *auth.Signer, clock clockwork.Clock) *Service {
	return &Service{repo: repo, checklists: checklists, signer: signer, clock: clock}
}

func (svc *Service) checkUniqueness(ctx context.Context, email, usn string) error {
	if _, err := svc.repo.GetByEmail(ctx, email); err == nil {
		return core.NewValidationError(ErrEmailExists, core.FieldError{Field: "email", Error: ErrEmailExists.Error()})
	} else if !core.IsNotFound(err) {
		return err
	}
	if _, err := svc.repo.GetByUSN(ctx, usn); err == nil {
		return core.NewValidationError(ErrUSNExists, core.FieldError{Field: "usn", Error: ErrUSNExists.Error()})
	} else if !core.IsNotFound(err) {
		return err
	}
	return nil
}

// Register creates the user and the default checklist. When the checklist
// cannot be created the user is removed again so no half-registered account remains.
func (svc *Service) Register(ctx context.Context, nu NewUser) (User, error) {
	email := core.CleanString(nu.Email, true)
	usn := core.CleanString(nu.USN, false)
	if err := svc.checkUniqueness(ctx, email, usn); err != nil {
		return User{}, err
	}

	hash, err := auth.HashPassword(nu.Password)
	if err != nil {
		return User{}, errors.Wrap(err, "hashing password")
	}
	usr := User{
		ID:            uuid.NewString(),
		Name:          core.CleanString(nu.Name, false),
		Email:         email,
		Password:      hash,
		USN:           usn,
		PhoneNumber:   nu.PhoneNumber,
		HostelDetails: nu.HostelDetails,
		CreatedAt:     svc.clock.Now().UTC(),
	}
	if err := svc.repo.Create(ctx, usr); err != nil {
		if core.IsDuplicate(err) {
			return User{}, core.Invalid("email", "email or usn already registered")
		}
		return User{}, err
	}

	if err := svc.checklists.CreateDefault(ctx, usr.ID); err != nil {
		if delErr := svc.repo.Delete(ctx, usr.ID); delErr != nil {
			log.Printf("register: rollback of user %s failed: %v", usr.ID, delErr)
		}
		return User{}, errors.Wrap(err, "creating default checklist")
	}
	return usr, nil
}

// Login checks credentials and issues a token.
func (svc *Service) Login(ctx context.Context, email, pwd string) (string, User, error) {
	usr, err := svc.repo.GetByEmail(ctx, core.CleanString(email, true))
	if err != nil {
		if core.IsNotFound(err) {
			return "", User{}, core.ErrInvalidCredentials
		}
		return "", User{}, err
	}
	if !auth.CheckPassword(usr.Password, pwd) {
		return "", User{}, core.ErrInvalidCredentials
	}
	token, _, err := svc.signer.Issue(usr.ID, usr.Email)
	if err != nil {
		return "", User{}, errors.Wrap(err, "issuing token")
	}
	return token, usr, nil
}

func (svc *Service) Get(ctx context.Context, id string) (User, error) {
	return svc.repo.GetByID(ctx, id)
}

func (svc *Service) Update(ctx context.Context, id string, pu ProfileUpdate) (User, error) {
	return svc.repo.Update(ctx, id, pu)
}

// Residence returns where the user lives, failing when no room is on file.
func (svc *Service) Residence(ctx context.Context, id string) (User, error) {
	usr, err := svc.repo.GetByID(ctx, id)
	if err != nil {
		return User{}, err
	}
	if usr.HostelDetails.RoomNumber == "" {
		return User{}, core.Invalid("hostelDetails.roomNumber", "profile has no room number")
	}
	return usr, nil
}
