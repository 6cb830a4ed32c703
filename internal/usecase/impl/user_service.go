// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "wordvault/internal/delivery/context"
	"wordvault/internal/domain/entity"
	domainerrors "wordvault/internal/domain/errors"
	"wordvault/internal/domain/repository"
	"wordvault/internal/domain/service"
	"wordvault/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the account registration process.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) error {
	if input == nil || entity.Normalize(input.Name) == "" || entity.Normalize(input.Login) == "" || input.Password == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("name, login and password are required")
	}

	name := entity.Normalize(input.Name)
	login := entity.Normalize(input.Login)

	srv.log(ctx).Info("Starting registration", slog.String("login", login))

	// Hash outside the transaction (bcrypt is CPU-bound).
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during registration")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		_, findErr := userRepo.FindByLogin(ctx, login)
		if findErr == nil {
			return domainerrors.ErrLoginAlreadyUsed.WrapMessage("login already registered")
		}
		if !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to check login availability")
		}

		newUser := &entity.User{
			Name:         name,
			Login:        login,
			PasswordHash: hashedPassword,
		}

		// The unique index on login backstops the check above if a concurrent
		// registration wins the race; the repository maps that violation to
		// the same conflict error.
		return userRepo.Create(ctx, newUser)
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("login", login), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Debug("Registration completed", slog.String("login", login))

	return nil
}

// Login orchestrates the login process and issues an identity token.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if input == nil || entity.Normalize(input.Login) == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("login and password are required")
	}

	login := entity.Normalize(input.Login)

	srv.log(ctx).Debug("Starting login", slog.String("login", login))

	user, err := srv.userRepo.FindByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Same error as a wrong password: no signal about which part failed.
			srv.log(ctx).Warn("Login failed", slog.String("login", login))

			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("unknown login")
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("login", login))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch")
	}

	token, err := srv.tokenService.Generate(user.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate token", slog.String("login", login), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate token")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		Token: token,
		User:  user,
	}, nil
}
