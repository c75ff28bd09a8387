package impl

import (
	"context"
	"testing"

	domainerrors "usuarios/internal/domain/errors"
	"usuarios/internal/domain/repository"
	mockRepo "usuarios/internal/mocks/repository"
	"usuarios/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Infrastructure failures must surface as plain errors, never as the
// credential-related AppErrors a client could misread.

func TestUserService_Register_ExistsCheckFails(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	storageErr := errors.New("connection reset")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().ExistsByEmail(ctx, "maria@example.com").Return(false, storageErr)

			return fn(mockFactory)
		})

	output, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Name:     "Maria",
		Email:    "maria@example.com",
		Password: "senha123",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, storageErr))
	assert.False(t, errors.Is(err, domainerrors.ErrEmailAlreadyRegistered))
}

func TestUserService_Register_HashFails(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	hashErr := errors.New("cost out of range")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().ExistsByEmail(ctx, "maria@example.com").Return(false, nil)
			fx.hasher.EXPECT().Hash("senha123").Return("", hashErr)

			return fn(mockFactory)
		})

	output, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Name:     "Maria",
		Email:    "maria@example.com",
		Password: "senha123",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, hashErr))
}

func TestUserService_Login_StorageFailureIsNotInvalidCredentials(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	storageErr := errors.New("connection reset")

	fx.userRepo.EXPECT().FindByEmail(ctx, "maria@example.com").Return(nil, storageErr)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "maria@example.com",
		Password: "senha123",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, storageErr))
	assert.False(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_List_StorageFailure(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	storageErr := errors.New("connection reset")

	fx.userRepo.EXPECT().FindAll(ctx).Return(nil, storageErr)

	users, err := fx.service.List(ctx)

	assert.Nil(t, users)
	assert.True(t, errors.Is(err, storageErr))
}

func TestUserService_Delete_StorageFailure(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	storageErr := errors.New("connection reset")

	fx.userRepo.EXPECT().Delete(ctx, int64(7)).Return(storageErr)

	err := fx.service.Delete(ctx, 7)

	assert.True(t, errors.Is(err, storageErr))
	assert.False(t, errors.Is(err, repository.ErrUserNotFound))
}
