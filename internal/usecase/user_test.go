package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/vadimbarashkov/tinyapp/internal/entity"
	"github.com/vadimbarashkov/tinyapp/mocks/usecase"
	"github.com/vadimbarashkov/tinyapp/pkg/identifier"
	"github.com/vadimbarashkov/tinyapp/pkg/password"
	"golang.org/x/crypto/bcrypt"
)

type UserUseCaseTestSuite struct {
	suite.Suite
	errUnknown   error
	now          time.Time
	hasher       *password.Hasher
	userRepoMock *usecase.MockUserRepository
	uc           *UserUseCase
}

func (suite *UserUseCaseTestSuite) SetupSuite() {
	suite.errUnknown = errors.New("unknown error")
	suite.now = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	suite.hasher = password.New(password.WithCost(bcrypt.MinCost))
}

func (suite *UserUseCaseTestSuite) SetupSubTest() {
	suite.userRepoMock = usecase.NewMockUserRepository(suite.T())
	suite.uc = NewUserUseCase(suite.userRepoMock, identifier.New(), suite.hasher, WithClock(func() time.Time {
		return suite.now
	}))
}

func (suite *UserUseCaseTestSuite) TearDownSubTest() {
	suite.userRepoMock.AssertExpectations(suite.T())
}

func (suite *UserUseCaseTestSuite) storedUser(email, plain string) *entity.User {
	digest, err := suite.hasher.Hash(plain)
	suite.Require().NoError(err)

	return &entity.User{
		ID:           "user01",
		Email:        email,
		PasswordHash: digest,
		CreatedAt:    suite.now,
	}
}

func (suite *UserUseCaseTestSuite) TestRegister() {
	suite.Run("blank email", func() {
		user, err := suite.uc.Register(context.Background(), " ", "secret")

		suite.ErrorIs(err, entity.ErrValidation)
		suite.Nil(user)
	})

	suite.Run("blank password", func() {
		user, err := suite.uc.Register(context.Background(), gofakeit.Email(), "")

		suite.ErrorIs(err, entity.ErrValidation)
		suite.Nil(user)
	})

	suite.Run("email exists", func() {
		email := gofakeit.Email()

		suite.userRepoMock.
			On("RetrieveByEmail", context.Background(), email).
			Once().
			Return(suite.storedUser(email, "secret"), nil)

		user, err := suite.uc.Register(context.Background(), email, "other")

		suite.ErrorIs(err, entity.ErrEmailExists)
		suite.Nil(user)
		suite.userRepoMock.AssertNotCalled(suite.T(), "Save", mock.Anything, mock.Anything)
	})

	suite.Run("lookup error", func() {
		email := gofakeit.Email()

		suite.userRepoMock.
			On("RetrieveByEmail", context.Background(), email).
			Once().
			Return(nil, suite.errUnknown)

		user, err := suite.uc.Register(context.Background(), email, "secret")

		suite.ErrorIs(err, suite.errUnknown)
		suite.Nil(user)
	})

	suite.Run("email taken concurrently", func() {
		email := gofakeit.Email()

		suite.userRepoMock.
			On("RetrieveByEmail", context.Background(), email).
			Once().
			Return(nil, entity.ErrUserNotFound)

		suite.userRepoMock.
			On("Save", context.Background(), mock.Anything).
			Once().
			Return(nil, entity.ErrEmailExists)

		user, err := suite.uc.Register(context.Background(), email, "secret")

		suite.ErrorIs(err, entity.ErrEmailExists)
		suite.Nil(user)
	})

	suite.Run("maximum retries error", func() {
		email := gofakeit.Email()

		suite.userRepoMock.
			On("RetrieveByEmail", context.Background(), email).
			Once().
			Return(nil, entity.ErrUserNotFound)

		suite.userRepoMock.
			On("Save", context.Background(), mock.Anything).
			Times(maxRetries).
			Return(nil, entity.ErrUserIDExists)

		user, err := suite.uc.Register(context.Background(), email, "secret")

		suite.ErrorIs(err, ErrMaxRetriesExceeded)
		suite.Nil(user)
	})

	suite.Run("success", func() {
		email := gofakeit.Email()

		suite.userRepoMock.
			On("RetrieveByEmail", context.Background(), email).
			Once().
			Return(nil, entity.ErrUserNotFound)

		suite.userRepoMock.
			On("Save", context.Background(), mock.MatchedBy(func(u *entity.User) bool {
				return len(u.ID) == identifier.Length &&
					u.Email == email &&
					u.PasswordHash != "secret" &&
					u.CreatedAt.Equal(suite.now)
			})).
			Once().
			Return(func(_ context.Context, u *entity.User) *entity.User { return u }, nil)

		user, err := suite.uc.Register(context.Background(), email, "secret")

		suite.NoError(err)
		suite.Equal(email, user.Email)
		suite.True(suite.hasher.Verify("secret", user.PasswordHash))
	})
}

func (suite *UserUseCaseTestSuite) TestAuthenticate() {
	suite.Run("blank credentials", func() {
		user, err := suite.uc.Authenticate(context.Background(), "", "")

		suite.ErrorIs(err, entity.ErrValidation)
		suite.Nil(user)
	})

	suite.Run("unknown email", func() {
		email := gofakeit.Email()

		suite.userRepoMock.
			On("RetrieveByEmail", context.Background(), email).
			Once().
			Return(nil, entity.ErrUserNotFound)

		user, err := suite.uc.Authenticate(context.Background(), email, "secret")

		suite.ErrorIs(err, entity.ErrUserNotFound)
		suite.Nil(user)
	})

	suite.Run("wrong password", func() {
		email := gofakeit.Email()

		suite.userRepoMock.
			On("RetrieveByEmail", context.Background(), email).
			Once().
			Return(suite.storedUser(email, "secret"), nil)

		user, err := suite.uc.Authenticate(context.Background(), email, "guess")

		suite.ErrorIs(err, entity.ErrInvalidCredentials)
		suite.Nil(user)
	})

	suite.Run("success", func() {
		email := gofakeit.Email()

		suite.userRepoMock.
			On("RetrieveByEmail", context.Background(), email).
			Once().
			Return(suite.storedUser(email, "secret"), nil)

		user, err := suite.uc.Authenticate(context.Background(), email, "secret")

		suite.NoError(err)
		suite.Equal("user01", user.ID)
	})
}

func (suite *UserUseCaseTestSuite) TestGetUser() {
	suite.Run("not logged in", func() {
		user, err := suite.uc.GetUser(context.Background(), entity.Principal{})

		suite.ErrorIs(err, entity.ErrUnauthenticated)
		suite.Nil(user)
	})

	suite.Run("anonymous visitor", func() {
		user, err := suite.uc.GetUser(context.Background(), entity.Principal{ID: "anon01", Anonymous: true})

		suite.ErrorIs(err, entity.ErrUnauthenticated)
		suite.Nil(user)
	})

	suite.Run("user not found", func() {
		suite.userRepoMock.
			On("RetrieveByID", context.Background(), "user01").
			Once().
			Return(nil, entity.ErrUserNotFound)

		user, err := suite.uc.GetUser(context.Background(), entity.Principal{ID: "user01"})

		suite.ErrorIs(err, entity.ErrUserNotFound)
		suite.Nil(user)
	})

	suite.Run("success", func() {
		email := gofakeit.Email()

		suite.userRepoMock.
			On("RetrieveByID", context.Background(), "user01").
			Once().
			Return(suite.storedUser(email, "secret"), nil)

		user, err := suite.uc.GetUser(context.Background(), entity.Principal{ID: "user01"})

		suite.NoError(err)
		suite.Equal(email, user.Email)
	})
}

func TestUserUseCase(t *testing.T) {
	suite.Run(t, new(UserUseCaseTestSuite))
}
