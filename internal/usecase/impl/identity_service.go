// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"unicode/utf8"

	deliverycontext "plantcare/internal/delivery/context"
	"plantcare/internal/domain/entity"
	domainerrors "plantcare/internal/domain/errors"
	"plantcare/internal/domain/repository"
	"plantcare/internal/domain/service"
	"plantcare/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	minUsernameLength = 3
	minPasswordLength = 6
	maxUsernameLength = 100
	maxEmailLength    = 255
	// bcrypt rejects longer inputs
	maxPasswordBytes = 72
)

var emailPattern = regexp.MustCompile(`.+@.+\..+`)

// identityService implements the IdentityUsecase interface.
type identityService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// IdentityServiceParams holds dependencies for IdentityService, injected by Fx.
type IdentityServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewIdentityService is the constructor for identityService.
func NewIdentityService(params IdentityServiceParams) usecase.IdentityUsecase {
	return &identityService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *identityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an account and signs a credential for it. Email uniqueness is
// checked before username uniqueness so a doubly-taken request reports the email.
func (srv *identityService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	username := strings.TrimSpace(input.Username)
	email := normalizeEmail(input.Email)

	if err := validateRegistration(username, email, input.Password); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	var registered *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		if err := ensureAvailable(ctx, userRepo.FindByEmail, email, domainerrors.ErrEmailTaken); err != nil {
			return err
		}
		if err := ensureAvailable(ctx, userRepo.FindByUsername, username, domainerrors.ErrUsernameTaken); err != nil {
			return err
		}

		hash, err := srv.hasher.Hash(input.Password)
		if err != nil {
			srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

			return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
		}

		user := &entity.User{
			ID:           uuid.New(),
			Username:     username,
			Email:        email,
			PasswordHash: hash,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			// a concurrent registration won the unique index
			if errors.Is(err, domainerrors.ErrEmailTaken) || errors.Is(err, domainerrors.ErrUsernameTaken) {
				return err
			}
			if errors.Is(err, repository.ErrUserConflict) {
				return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("user already exists"))
			}

			return errors.Wrap(err, "failed to create user during registration")
		}

		registered = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	token, err := srv.issue(ctx, registered.ID)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", registered.ID))

	return &usecase.AuthOutput{User: registered.Public(), Token: token}, nil
}

// Authenticate answers an unknown email and a wrong password identically.
func (srv *identityService) Authenticate(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Info("Login for unknown email", slog.String("email", email))

		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Info("Login with wrong password", slog.Any("userID", user.ID))

		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	token, err := srv.issue(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &usecase.AuthOutput{User: user.Public(), Token: token}, nil
}

// VerifyCredential resolves token to its user. Any failure is ErrUnauthorized.
func (srv *identityService) VerifyCredential(ctx context.Context, token string) (*entity.User, error) {
	claims, err := srv.tokenService.Verify(token)
	if err != nil {
		srv.log(ctx).Debug("Rejected bearer token", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUnauthorized, err.Error())
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "token subject no longer exists")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load token subject")
	}

	return user.Public(), nil
}

func (srv *identityService) issue(ctx context.Context, userID uuid.UUID) (string, error) {
	token, err := srv.tokenService.Issue(userID)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token", slog.Any("userID", userID), slog.Any("error", err))

		return "", errors.Wrap(err, "failed to issue token")
	}

	return token, nil
}

// ensureAvailable returns taken when find locates an existing user for value.
func ensureAvailable(
	ctx context.Context,
	find func(context.Context, string) (*entity.User, error),
	value string,
	taken *domainerrors.BaseError,
) error {
	_, err := find(ctx, value)
	if err == nil {
		return errors.WithStack(taken)
	}
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil
	}

	return errors.Wrap(err, "failed to check user uniqueness")
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateRegistration(username, email, password string) error {
	switch {
	case username == "":
		return domainerrors.ErrValidationFailed.WithDetails("username is required")
	case utf8.RuneCountInString(username) < minUsernameLength:
		return domainerrors.ErrValidationFailed.WithDetails("username must be at least 3 characters")
	case utf8.RuneCountInString(username) > maxUsernameLength:
		return domainerrors.ErrValidationFailed.WithDetails("username cannot exceed 100 characters")
	case email == "":
		return domainerrors.ErrValidationFailed.WithDetails("email is required")
	case utf8.RuneCountInString(email) > maxEmailLength:
		return domainerrors.ErrValidationFailed.WithDetails("email cannot exceed 255 characters")
	case !emailPattern.MatchString(email):
		return domainerrors.ErrValidationFailed.WithDetails("please provide a valid email")
	case password == "":
		return domainerrors.ErrValidationFailed.WithDetails("password is required")
	case utf8.RuneCountInString(password) < minPasswordLength:
		return domainerrors.ErrValidationFailed.WithDetails("password must be at least 6 characters")
	case len(password) > maxPasswordBytes:
		return domainerrors.ErrValidationFailed.WithDetails("password cannot exceed 72 bytes")
	}

	return nil
}
