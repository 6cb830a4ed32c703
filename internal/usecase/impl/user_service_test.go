package impl

import (
	"context"
	"testing"

	"wordvault/internal/domain/entity"
	domainerrors "wordvault/internal/domain/errors"
	"wordvault/internal/domain/repository"
	mockRepo "wordvault/internal/mocks/repository"
	mockSvc "wordvault/internal/mocks/service"
	"wordvault/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T) (usecase.UserUsecase, *mockRepo.MockUserRepository, *mockSvc.MockPasswordHasher, *mockSvc.MockTokenService) {
	t.Helper()

	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenSvc := mockSvc.NewMockTokenService(t)

	svc := NewUserService(UserServiceParams{
		TxManager:    &stubTxManager{userRepo: userRepo},
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenSvc,
		Logger:       testLogger(),
	})

	return svc, userRepo, hasher, tokenSvc
}

func TestUserService_Register_Success(t *testing.T) {
	svc, userRepo, hasher, _ := newUserService(t)
	ctx := context.Background()

	hasher.EXPECT().Hash("s3cret").Return("hashed-value", nil)
	userRepo.EXPECT().FindByLogin(ctx, "bob").Return(nil, repository.ErrUserNotFound)
	userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			// Name and login arrive normalized; the password never does.
			assert.Equal(t, "bob marley", user.Name)
			assert.Equal(t, "bob", user.Login)
			assert.Equal(t, "hashed-value", user.PasswordHash)
		}).
		Return(nil)

	err := svc.Register(ctx, &usecase.RegisterInput{
		Name:     " Bob Marley ",
		Login:    " Bob ",
		Password: "s3cret",
	})
	require.NoError(t, err)
}

func TestUserService_Register_MissingFields(t *testing.T) {
	svc, _, _, _ := newUserService(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		input *usecase.RegisterInput
	}{
		{name: "nil input", input: nil},
		{name: "empty name", input: &usecase.RegisterInput{Login: "bob", Password: "pw"}},
		{name: "blank login", input: &usecase.RegisterInput{Name: "bob", Login: "   ", Password: "pw"}},
		{name: "empty password", input: &usecase.RegisterInput{Name: "bob", Login: "bob"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Register(ctx, tt.input)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestUserService_Register_LoginTaken(t *testing.T) {
	svc, userRepo, hasher, _ := newUserService(t)
	ctx := context.Background()

	hasher.EXPECT().Hash("pw").Return("hashed", nil)
	// " Bob " collides with an existing "bob" after normalization.
	userRepo.EXPECT().FindByLogin(ctx, "bob").Return(&entity.User{ID: uuid.New(), Login: "bob"}, nil)

	err := svc.Register(ctx, &usecase.RegisterInput{Name: "bob", Login: " Bob ", Password: "pw"})
	assert.ErrorIs(t, err, domainerrors.ErrLoginAlreadyUsed)
}

func TestUserService_Register_HashFailure(t *testing.T) {
	svc, _, hasher, _ := newUserService(t)
	ctx := context.Background()

	hasher.EXPECT().Hash("pw").Return("", errors.New("bcrypt failure"))

	err := svc.Register(ctx, &usecase.RegisterInput{Name: "bob", Login: "bob", Password: "pw"})
	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestUserService_Login_Success(t *testing.T) {
	svc, userRepo, hasher, tokenSvc := newUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	user := &entity.User{ID: userID, Login: "bob", PasswordHash: "stored-hash"}
	userRepo.EXPECT().FindByLogin(ctx, "bob").Return(user, nil)
	hasher.EXPECT().Check("pw", "stored-hash").Return(true)
	tokenSvc.EXPECT().Generate(userID).Return("signed-token", nil)

	output, err := svc.Login(ctx, &usecase.LoginInput{Login: " BOB ", Password: "pw"})
	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "signed-token", output.Token)
	assert.Equal(t, userID, output.User.ID)
}

func TestUserService_Login_WrongPasswordAndUnknownLoginAreIndistinguishable(t *testing.T) {
	svc, userRepo, hasher, _ := newUserService(t)
	ctx := context.Background()

	userRepo.EXPECT().FindByLogin(ctx, "ghost").Return(nil, repository.ErrUserNotFound)

	_, unknownErr := svc.Login(ctx, &usecase.LoginInput{Login: "ghost", Password: "pw"})
	require.ErrorIs(t, unknownErr, domainerrors.ErrInvalidCredentials)

	user := &entity.User{ID: uuid.New(), Login: "bob", PasswordHash: "stored-hash"}
	userRepo.EXPECT().FindByLogin(ctx, "bob").Return(user, nil)
	hasher.EXPECT().Check("wrong", "stored-hash").Return(false)

	_, wrongErr := svc.Login(ctx, &usecase.LoginInput{Login: "bob", Password: "wrong"})
	require.ErrorIs(t, wrongErr, domainerrors.ErrInvalidCredentials)

	// Both failures surface the exact same user-facing message.
	var unknownApp, wrongApp domainerrors.AppError
	require.True(t, errors.As(unknownErr, &unknownApp))
	require.True(t, errors.As(wrongErr, &wrongApp))
	assert.Equal(t, unknownApp.Message(), wrongApp.Message())
	assert.Equal(t, unknownApp.ErrorCode(), wrongApp.ErrorCode())
}

func TestUserService_Login_MissingFields(t *testing.T) {
	svc, _, _, _ := newUserService(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, &usecase.LoginInput{Login: "", Password: "pw"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = svc.Login(ctx, &usecase.LoginInput{Login: "bob", Password: ""})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_Login_RepositoryFailure(t *testing.T) {
	svc, userRepo, _, _ := newUserService(t)
	ctx := context.Background()

	userRepo.EXPECT().FindByLogin(ctx, "bob").Return(nil, errors.New("db down"))

	output, err := svc.Login(ctx, &usecase.LoginInput{Login: "bob", Password: "pw"})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, output)
}
