package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vadimbarashkov/tinyapp/internal/entity"
)

type userRepository interface {
	Save(ctx context.Context, user *entity.User) (*entity.User, error)
	RetrieveByEmail(ctx context.Context, email string) (*entity.User, error)
	RetrieveByID(ctx context.Context, id string) (*entity.User, error)
}

type passwordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, digest string) bool
}

type UserUseCase struct {
	userRepo userRepository
	ids      idGenerator
	hasher   passwordHasher
	now      func() time.Time
}

func NewUserUseCase(userRepo userRepository, ids idGenerator, hasher passwordHasher, opts ...Option) *UserUseCase {
	o := newOptions(opts)

	return &UserUseCase{
		userRepo: userRepo,
		ids:      ids,
		hasher:   hasher,
		now:      o.now,
	}
}

func (uc *UserUseCase) Register(ctx context.Context, email, password string) (*entity.User, error) {
	const op = "usecase.UserUseCase.Register"

	if strings.TrimSpace(email) == "" || password == "" {
		return nil, fmt.Errorf("%s: email and password are required: %w", op, entity.ErrValidation)
	}

	_, err := uc.userRepo.RetrieveByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, fmt.Errorf("%s: %w", op, entity.ErrEmailExists)
	case !errors.Is(err, entity.ErrUserNotFound):
		return nil, fmt.Errorf("%s: failed to look up email: %w", op, err)
	}

	digest, err := uc.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for i := 0; i < maxRetries; i++ {
		id, err := uc.ids.Generate()
		if err != nil {
			return nil, fmt.Errorf("%s: failed to generate user id: %w", op, err)
		}

		user, err := uc.userRepo.Save(ctx, &entity.User{
			ID:           id,
			Email:        email,
			PasswordHash: digest,
			CreatedAt:    uc.now(),
		})
		if err != nil {
			if errors.Is(err, entity.ErrUserIDExists) {
				continue
			}

			return nil, fmt.Errorf("%s: failed to save user: %w", op, err)
		}

		return user, nil
	}

	return nil, fmt.Errorf("%s: %w", op, ErrMaxRetriesExceeded)
}

func (uc *UserUseCase) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	const op = "usecase.UserUseCase.Authenticate"

	if strings.TrimSpace(email) == "" || password == "" {
		return nil, fmt.Errorf("%s: email and password are required: %w", op, entity.ErrValidation)
	}

	user, err := uc.userRepo.RetrieveByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !uc.hasher.Verify(password, user.PasswordHash) {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrInvalidCredentials)
	}

	return user, nil
}

// GetUser returns the account behind an authenticated principal.
func (uc *UserUseCase) GetUser(ctx context.Context, principal entity.Principal) (*entity.User, error) {
	const op = "usecase.UserUseCase.GetUser"

	if !principal.IsAuthenticated() {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrUnauthenticated)
	}

	user, err := uc.userRepo.RetrieveByID(ctx, principal.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}
