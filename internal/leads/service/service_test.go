package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/headuck/gophonelite/internal/leads/repository"
	"github.com/headuck/gophonelite/internal/leads/transport"
)

type fakeLeadRepository struct {
	createFn func(ctx context.Context, params repository.CreateLeadParams) (repository.Lead, error)
	getFn    func(ctx context.Context, id uuid.UUID) (repository.Lead, error)
}

func (f *fakeLeadRepository) Create(ctx context.Context, params repository.CreateLeadParams) (repository.Lead, error) {
	return f.createFn(ctx, params)
}

func (f *fakeLeadRepository) GetByID(ctx context.Context, id uuid.UUID) (repository.Lead, error) {
	return f.getFn(ctx, id)
}

func TestCreate_RejectsInvalidPhoneWithoutTouchingRepository(t *testing.T) {
	// The shared classifier engine is wired at process startup and is never
	// initialized in a unit test, so phone.IsValid fails closed for every
	// input; this exercises that rejection path never reaching the repository.
	repo := &fakeLeadRepository{
		createFn: func(ctx context.Context, params repository.CreateLeadParams) (repository.Lead, error) {
			t.Fatal("repository.Create should not be called for an invalid phone number")
			return repository.Lead{}, nil
		},
	}
	svc := New(repo, nil)

	_, err := svc.Create(context.Background(), transport.CreateLeadRequest{
		ConsumerName:  "Jane Doe",
		ConsumerPhone: "+31612345678",
	})
	if !errors.Is(err, ErrInvalidPhone) {
		t.Fatalf("Create() error = %v, want ErrInvalidPhone", err)
	}
}

func TestGetByID_MapsNotFoundToDomainError(t *testing.T) {
	repo := &fakeLeadRepository{
		getFn: func(ctx context.Context, id uuid.UUID) (repository.Lead, error) {
			return repository.Lead{}, repository.ErrNotFound
		},
	}
	svc := New(repo, nil)

	_, err := svc.GetByID(context.Background(), uuid.New())
	if !errors.Is(err, ErrLeadNotFound) {
		t.Fatalf("GetByID() error = %v, want ErrLeadNotFound", err)
	}
}

func TestGetByID_ReturnsResponseOnSuccess(t *testing.T) {
	id := uuid.New()
	email := "jane@example.com"
	repo := &fakeLeadRepository{
		getFn: func(ctx context.Context, gotID uuid.UUID) (repository.Lead, error) {
			if gotID != id {
				t.Fatalf("GetByID called with %v, want %v", gotID, id)
			}
			return repository.Lead{
				ID:              id,
				ConsumerName:    "Jane Doe",
				ConsumerPhone:   "+31612345678",
				ConsumerEmail:   &email,
				PhoneNumberType: "MOBILE",
				PhoneRegion:     "NL",
			}, nil
		},
	}
	svc := New(repo, nil)

	resp, err := svc.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if resp.ID != id || resp.ConsumerEmail != email || resp.PhoneNumberType != "MOBILE" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestGetByID_PropagatesUnexpectedRepositoryErrors(t *testing.T) {
	repoErr := errors.New("connection reset")
	repo := &fakeLeadRepository{
		getFn: func(ctx context.Context, id uuid.UUID) (repository.Lead, error) {
			return repository.Lead{}, repoErr
		},
	}
	svc := New(repo, nil)

	_, err := svc.GetByID(context.Background(), uuid.New())
	if !errors.Is(err, repoErr) {
		t.Fatalf("GetByID() error = %v, want %v", err, repoErr)
	}
}
