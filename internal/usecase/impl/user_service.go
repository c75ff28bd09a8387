// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"regexp"
	"unicode/utf8"

	deliverycontext "usuarios/internal/delivery/context"
	"usuarios/internal/domain/entity"
	domainerrors "usuarios/internal/domain/errors"
	"usuarios/internal/domain/repository"
	"usuarios/internal/domain/service"
	"usuarios/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const minPasswordLength = 6

// emailPattern is the permissive local@domain.tld shape used by the public
// API: anything without whitespace or extra '@', with a dotted domain.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates account registration. Validation short-circuits in a
// fixed order: presence, email shape, password length, then the duplicate
// check. The duplicate pre-check and the insert share one transaction, and
// the store's unique index remains the final word on duplicates.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, errors.WithStack(domainerrors.ErrMissingFields)
	}
	if !emailPattern.MatchString(input.Email) {
		return nil, errors.WithStack(domainerrors.ErrInvalidEmail)
	}
	if utf8.RuneCountInString(input.Password) < minPasswordLength {
		return nil, errors.WithStack(domainerrors.ErrPasswordTooShort)
	}

	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	var newUser *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		exists, err := userRepo.ExistsByEmail(ctx, input.Email)
		if err != nil {
			return errors.Wrap(err, "failed to check email existence")
		}
		if exists {
			return domainerrors.ErrEmailAlreadyRegistered.WrapMessage("registration failed")
		}

		hashedPassword, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return errors.Wrap(err, "failed to hash password during registration")
		}

		newUser = &entity.User{
			Name:         input.Name,
			Email:        input.Email,
			PasswordHash: hashedPassword,
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Registration completed", slog.Int64("userID", newUser.ID))

	return &usecase.RegisterOutput{ID: newUser.ID}, nil
}

// Login implements the authentication decision procedure. An unknown email
// and a wrong password both collapse into the same invalid-credentials
// outcome so the response does not reveal which credential was wrong.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if input.Email == "" || input.Password == "" {
		return nil, errors.WithStack(domainerrors.ErrMissingCredentials)
	}

	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	srv.log(ctx).Debug("Login succeeded", slog.Int64("userID", user.ID))

	return &usecase.LoginOutput{User: user}, nil
}

// List returns every account. The delivery layer serializes only id, name
// and email; the hash never appears in a response.
func (srv *userService) List(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// Get returns a single account by id.
func (srv *userService) Get(ctx context.Context, id int64) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("get failed")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}

// Update modifies name and email, and optionally replaces the credential.
// An absent (or empty) password preserves the stored hash.
func (srv *userService) Update(ctx context.Context, id int64, input *usecase.UpdateInput) error {
	if input.Name == "" || input.Email == "" {
		return errors.WithStack(domainerrors.ErrNameEmailRequired)
	}
	if !emailPattern.MatchString(input.Email) {
		return errors.WithStack(domainerrors.ErrInvalidEmail)
	}

	// An empty password string means "keep the current one", matching the
	// omitted-field case.
	password := input.Password
	if password != nil && *password == "" {
		password = nil
	}

	var passwordHash *string
	if password != nil {
		if utf8.RuneCountInString(*password) < minPasswordLength {
			return errors.WithStack(domainerrors.ErrPasswordTooShort)
		}

		hashed, err := srv.hasher.Hash(*password)
		if err != nil {
			return errors.Wrap(err, "failed to hash password during update")
		}
		passwordHash = &hashed
	}

	srv.log(ctx).Info("Updating user", slog.Int64("userID", id), slog.Bool("passwordChanged", passwordHash != nil))

	if err := srv.userRepo.Update(ctx, id, input.Name, input.Email, passwordHash); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("update failed")
		}

		return errors.Wrap(err, "failed to update user")
	}

	return nil
}

// Delete removes an account by id.
func (srv *userService) Delete(ctx context.Context, id int64) error {
	srv.log(ctx).Info("Deleting user", slog.Int64("userID", id))

	if err := srv.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("delete failed")
		}

		return errors.Wrap(err, "failed to delete user")
	}

	return nil
}
