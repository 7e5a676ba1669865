package impl

import (
	"context"
	"testing"

	domainerrors "soapbox/internal/domain/errors"
	"soapbox/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserServiceForTest() (usecase.UserUsecase, *stubUserRepo) {
	users := newStubUserRepo()
	factory := &stubRepoFactory{users: users}
	service := NewUserService(
		&stubTxManager{factory: factory},
		users,
		stubHasher{},
		stubTokenService{},
		newDiscardLogger(),
	)

	return service, users
}

func TestUserService_Register_Success(t *testing.T) {
	service, users := newUserServiceForTest()

	output, err := service.Register(context.Background(), &usecase.RegisterUserInput{
		Email:    "a@x.com",
		Password: "pw123456",
	})

	require.NoError(t, err)
	assert.Equal(t, "a@x.com", output.Email)
	assert.NotZero(t, output.ID)
	assert.False(t, output.CreatedAt.IsZero())

	// The stored credential is the hash, never the plaintext.
	stored := users.users[output.ID]
	assert.Equal(t, "hashed:pw123456", stored.PasswordHash)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	service, _ := newUserServiceForTest()
	ctx := context.Background()

	_, err := service.Register(ctx, &usecase.RegisterUserInput{Email: "a@x.com", Password: "pw123456"})
	require.NoError(t, err)

	output, err := service.Register(ctx, &usecase.RegisterUserInput{Email: "a@x.com", Password: "other-password"})
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
	assert.Nil(t, output)
}

func TestUserService_Login_Success(t *testing.T) {
	service, _ := newUserServiceForTest()
	ctx := context.Background()

	registered, err := service.Register(ctx, &usecase.RegisterUserInput{Email: "a@x.com", Password: "pw123456"})
	require.NoError(t, err)

	output, err := service.Login(ctx, &usecase.LoginInput{Username: "a@x.com", Password: "pw123456"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", output.TokenType)

	// The token claim decodes back to the registered user's id.
	gotID, err := stubTokenService{}.Verify(output.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, gotID)
}

func TestUserService_Login_InvalidCredentials(t *testing.T) {
	service, _ := newUserServiceForTest()
	ctx := context.Background()

	_, err := service.Register(ctx, &usecase.RegisterUserInput{Email: "a@x.com", Password: "pw123456"})
	require.NoError(t, err)

	// Wrong password and unknown email fail with the same error.
	_, err = service.Login(ctx, &usecase.LoginInput{Username: "a@x.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	_, err = service.Login(ctx, &usecase.LoginInput{Username: "nobody@x.com", Password: "pw123456"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_GetUser(t *testing.T) {
	service, _ := newUserServiceForTest()
	ctx := context.Background()

	registered, err := service.Register(ctx, &usecase.RegisterUserInput{Email: "a@x.com", Password: "pw123456"})
	require.NoError(t, err)

	output, err := service.GetUser(ctx, registered.ID)
	require.NoError(t, err)
	assert.Equal(t, registered.Email, output.Email)

	_, err = service.GetUser(ctx, registered.ID+1)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
