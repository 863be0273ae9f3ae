package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"go.uber.org/fx"
)

// defaultAdminPassword is accepted until a password hash is configured or stored.
const defaultAdminPassword = "Ali123"

type adminService struct {
	credentials repository.AdminCredentialStore
	hasher      service.PasswordHasher
	tokens      service.TokenService
	logger      *slog.Logger

	defaultUsername string
	defaultHash     string
	defaultOnce     sync.Once
	defaultErr      error
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	Credentials repository.AdminCredentialStore
	Hasher      service.PasswordHasher
	Tokens      service.TokenService
	Config      *config.Config
	Logger      *slog.Logger
}

// NewAdminService creates the admin authentication service.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		credentials:     params.Credentials,
		hasher:          params.Hasher,
		tokens:          params.Tokens,
		logger:          params.Logger,
		defaultUsername: params.Config.Admin.Username,
		defaultHash:     params.Config.Admin.PasswordHash,
	}
}

// Login checks the stored credential, or the configured default when none
// was stored, and issues an admin token.
func (s *adminService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	credential, err := s.credential(ctx)
	if err != nil {
		return nil, err
	}

	username := strings.TrimSpace(input.Username)
	if username != credential.Username || !s.hasher.Check(input.Password, credential.PasswordHash) {
		loggerFor(ctx, s.logger).WarnContext(ctx, "Admin login rejected", slog.String("username", username))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(credential.Username, []string{constants.RoleAdmin})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token")
	}

	loggerFor(ctx, s.logger).InfoContext(ctx, "Admin logged in", slog.String("username", username))

	return &usecase.LoginOutput{
		AccessToken: token,
		ExpiresIn:   s.tokens.GetTokenDuration(),
		Username:    credential.Username,
	}, nil
}

func (s *adminService) credential(ctx context.Context) (*entity.AdminCredential, error) {
	credential, err := s.credentials.Load(ctx)
	if err == nil {
		return credential, nil
	}
	if !errors.Is(err, repository.ErrCredentialNotFound) {
		return nil, errors.Wrap(err, "failed to load admin credential")
	}

	s.defaultOnce.Do(func() {
		if s.defaultHash != "" {
			return
		}
		s.defaultHash, s.defaultErr = s.hasher.Hash(defaultAdminPassword)
	})
	if s.defaultErr != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(s.defaultErr.Error())
	}

	return &entity.AdminCredential{Username: s.defaultUsername, PasswordHash: s.defaultHash}, nil
}

// ChangeCredentials stores a new username and bcrypt password hash.
func (s *adminService) ChangeCredentials(ctx context.Context, input usecase.CredentialsInput) error {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		username = s.defaultUsername
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	if err := s.credentials.Save(ctx, &entity.AdminCredential{Username: username, PasswordHash: hash}); err != nil {
		return errors.Wrap(err, "failed to save admin credential")
	}

	loggerFor(ctx, s.logger).InfoContext(ctx, "Admin credentials changed", slog.String("username", username))

	return nil
}
