package impl

import (
	"context"
	"testing"

	"usuarios/internal/domain/entity"
	domainerrors "usuarios/internal/domain/errors"
	"usuarios/internal/domain/repository"
	mockRepo "usuarios/internal/mocks/repository"
	mockSvc "usuarios/internal/mocks/service"
	"usuarios/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service   usecase.UserUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	hasher    *mockSvc.MockPasswordHasher
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	service := NewUserService(UserServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		Hasher:    hasher,
		Logger:    newDiscardLogger(),
	})

	return userServiceFixtures{
		service:   service,
		txManager: txManager,
		userRepo:  userRepo,
		hasher:    hasher,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Maria Silva",
		Email:    "maria@example.com",
		Password: "senha123",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				ExistsByEmail(ctx, input.Email).
				Return(false, nil)

			fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = 42
				}).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, int64(42), output.ID)
}

func TestUserService_Register_ValidationOrder(t *testing.T) {
	tests := []struct {
		name    string
		input   *usecase.RegisterInput
		wantErr error
	}{
		{
			name:    "missing name",
			input:   &usecase.RegisterInput{Name: "", Email: "a@b.com", Password: "senha123"},
			wantErr: domainerrors.ErrMissingFields,
		},
		{
			name:    "missing email",
			input:   &usecase.RegisterInput{Name: "Maria", Email: "", Password: "senha123"},
			wantErr: domainerrors.ErrMissingFields,
		},
		{
			name:    "missing password",
			input:   &usecase.RegisterInput{Name: "Maria", Email: "a@b.com", Password: ""},
			wantErr: domainerrors.ErrMissingFields,
		},
		{
			name:    "email without at sign",
			input:   &usecase.RegisterInput{Name: "Maria", Email: "not-an-email", Password: "senha123"},
			wantErr: domainerrors.ErrInvalidEmail,
		},
		{
			name:    "email without dotted domain",
			input:   &usecase.RegisterInput{Name: "Maria", Email: "maria@localhost", Password: "senha123"},
			wantErr: domainerrors.ErrInvalidEmail,
		},
		{
			name:    "email with whitespace",
			input:   &usecase.RegisterInput{Name: "Maria", Email: "ma ria@b.com", Password: "senha123"},
			wantErr: domainerrors.ErrInvalidEmail,
		},
		{
			name:    "password too short",
			input:   &usecase.RegisterInput{Name: "Maria", Email: "a@b.com", Password: "12345"},
			wantErr: domainerrors.ErrPasswordTooShort,
		},
		{
			// The presence check fires before the email one, so a request
			// that fails both reports the missing field.
			name:    "missing name with bad email",
			input:   &usecase.RegisterInput{Name: "", Email: "not-an-email", Password: "123"},
			wantErr: domainerrors.ErrMissingFields,
		},
		{
			// Likewise the email shape is checked before password length.
			name:    "bad email with short password",
			input:   &usecase.RegisterInput{Name: "Maria", Email: "bad", Password: "123"},
			wantErr: domainerrors.ErrInvalidEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestUserService(t)

			output, err := fx.service.Register(context.Background(), tt.input)

			assert.Nil(t, output)
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}

func TestUserService_Register_SixRunePasswordAccepted(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Maria Silva",
		Email:    "maria@example.com",
		Password: "123456",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().ExistsByEmail(ctx, input.Email).Return(false, nil)
			fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
			mockUserRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

			return fn(mockFactory)
		})

	_, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Maria Silva",
		Email:    "maria@example.com",
		Password: "senha123",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().ExistsByEmail(ctx, input.Email).Return(true, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Register(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyRegistered))
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	stored := &entity.User{
		ID:           7,
		Name:         "Maria Silva",
		Email:        "maria@example.com",
		PasswordHash: "hashed_password",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, stored.Email).Return(stored, nil)
	fx.hasher.EXPECT().Check("senha123", stored.PasswordHash).Return(true)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    stored.Email,
		Password: "senha123",
	})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, stored.ID, output.User.ID)
	assert.Equal(t, stored.Name, output.User.Name)
}

func TestUserService_Login_MissingCredentials(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.LoginInput
	}{
		{name: "missing email", input: &usecase.LoginInput{Email: "", Password: "senha123"}},
		{name: "missing password", input: &usecase.LoginInput{Email: "a@b.com", Password: ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestUserService(t)

			output, err := fx.service.Login(context.Background(), tt.input)

			assert.Nil(t, output)
			assert.True(t, errors.Is(err, domainerrors.ErrMissingCredentials))
		})
	}
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().
		FindByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "senha123",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	stored := &entity.User{
		ID:           7,
		Email:        "maria@example.com",
		PasswordHash: "hashed_password",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, stored.Email).Return(stored, nil)
	fx.hasher.EXPECT().Check("wrong-password", stored.PasswordHash).Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    stored.Email,
		Password: "wrong-password",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

// The unknown-email and wrong-password failures must be indistinguishable to
// a client, so both resolve to the exact same AppError value.
func TestUserService_Login_FailureModesShareOneMessage(t *testing.T) {
	ctx := context.Background()

	unknown := createTestUserService(t)
	unknown.userRepo.EXPECT().
		FindByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)
	_, errUnknown := unknown.service.Login(ctx, &usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "senha123",
	})

	wrong := createTestUserService(t)
	wrong.userRepo.EXPECT().
		FindByEmail(ctx, "maria@example.com").
		Return(&entity.User{ID: 7, Email: "maria@example.com", PasswordHash: "h"}, nil)
	wrong.hasher.EXPECT().Check("bad", "h").Return(false)
	_, errWrong := wrong.service.Login(ctx, &usecase.LoginInput{
		Email:    "maria@example.com",
		Password: "bad",
	})

	var appErrUnknown, appErrWrong domainerrors.AppError
	require.True(t, errors.As(errUnknown, &appErrUnknown))
	require.True(t, errors.As(errWrong, &appErrWrong))
	assert.Equal(t, appErrUnknown.Message(), appErrWrong.Message())
	assert.Equal(t, appErrUnknown.HTTPCode(), appErrWrong.HTTPCode())
}

func TestUserService_List_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	stored := []*entity.User{
		{ID: 1, Name: "Maria", Email: "maria@example.com", PasswordHash: "h1"},
		{ID: 2, Name: "João", Email: "joao@example.com", PasswordHash: "h2"},
	}

	fx.userRepo.EXPECT().FindAll(ctx).Return(stored, nil)

	users, err := fx.service.List(ctx)

	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, stored[0].ID, users[0].ID)
	assert.Equal(t, stored[1].Email, users[1].Email)
}

func TestUserService_Get_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	stored := &entity.User{ID: 7, Name: "Maria", Email: "maria@example.com"}

	fx.userRepo.EXPECT().FindByID(ctx, int64(7)).Return(stored, nil)

	user, err := fx.service.Get(ctx, 7)

	require.NoError(t, err)
	assert.Equal(t, stored, user)
}

func TestUserService_Get_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().FindByID(ctx, int64(99)).Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.Get(ctx, 99)

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserService_Update_WithoutPasswordKeepsCredential(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().
		Update(ctx, int64(7), "Maria Souza", "maria@example.com",
			mock.MatchedBy(func(hash *string) bool { return hash == nil })).
		Return(nil)

	err := fx.service.Update(ctx, 7, &usecase.UpdateInput{
		Name:  "Maria Souza",
		Email: "maria@example.com",
	})

	require.NoError(t, err)
}

func TestUserService_Update_EmptyPasswordKeepsCredential(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	empty := ""
	fx.userRepo.EXPECT().
		Update(ctx, int64(7), "Maria Souza", "maria@example.com",
			mock.MatchedBy(func(hash *string) bool { return hash == nil })).
		Return(nil)

	err := fx.service.Update(ctx, 7, &usecase.UpdateInput{
		Name:     "Maria Souza",
		Email:    "maria@example.com",
		Password: &empty,
	})

	require.NoError(t, err)
}

func TestUserService_Update_WithPasswordReplacesCredential(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	newPassword := "novasenha"

	fx.hasher.EXPECT().Hash(newPassword).Return("new_hash", nil)
	fx.userRepo.EXPECT().
		Update(ctx, int64(7), "Maria Souza", "maria@example.com",
			mock.MatchedBy(func(hash *string) bool { return hash != nil && *hash == "new_hash" })).
		Return(nil)

	err := fx.service.Update(ctx, 7, &usecase.UpdateInput{
		Name:     "Maria Souza",
		Email:    "maria@example.com",
		Password: &newPassword,
	})

	require.NoError(t, err)
}

func TestUserService_Update_Validation(t *testing.T) {
	short := "12345"

	tests := []struct {
		name    string
		input   *usecase.UpdateInput
		wantErr error
	}{
		{
			name:    "missing name",
			input:   &usecase.UpdateInput{Name: "", Email: "a@b.com"},
			wantErr: domainerrors.ErrNameEmailRequired,
		},
		{
			name:    "missing email",
			input:   &usecase.UpdateInput{Name: "Maria", Email: ""},
			wantErr: domainerrors.ErrNameEmailRequired,
		},
		{
			name:    "invalid email",
			input:   &usecase.UpdateInput{Name: "Maria", Email: "bad"},
			wantErr: domainerrors.ErrInvalidEmail,
		},
		{
			name:    "short password",
			input:   &usecase.UpdateInput{Name: "Maria", Email: "a@b.com", Password: &short},
			wantErr: domainerrors.ErrPasswordTooShort,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestUserService(t)

			err := fx.service.Update(context.Background(), 7, tt.input)

			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}

func TestUserService_Update_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().
		Update(ctx, int64(99), "Maria", "maria@example.com",
			mock.MatchedBy(func(hash *string) bool { return hash == nil })).
		Return(repository.ErrUserNotFound)

	err := fx.service.Update(ctx, 99, &usecase.UpdateInput{
		Name:  "Maria",
		Email: "maria@example.com",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserService_Delete_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().Delete(ctx, int64(7)).Return(nil)

	require.NoError(t, fx.service.Delete(ctx, 7))
}

func TestUserService_Delete_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().Delete(ctx, int64(99)).Return(repository.ErrUserNotFound)

	err := fx.service.Delete(ctx, 99)

	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
