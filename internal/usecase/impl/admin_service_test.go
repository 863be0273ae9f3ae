package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/constants"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
	"storefront/internal/infra/auth"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminService_DefaultCredential(t *testing.T) {
	f := newStorefrontFixtures(t)
	ctx := context.Background()

	out, err := f.auth.Login(ctx, usecase.LoginInput{Username: "Ali", Password: "Ali123"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)
	assert.Equal(t, "Ali", out.Username)

	_, err = f.auth.Login(ctx, usecase.LoginInput{Username: "Ali", Password: "wrong"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))

	_, err = f.auth.Login(ctx, usecase.LoginInput{Username: "ali", Password: "Ali123"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAdminService_ConfiguredHash(t *testing.T) {
	hash, err := auth.NewBcryptHasherWithCost(4).Hash("s3cret!")
	require.NoError(t, err)
	cfg := testConfig()
	cfg.Admin.Username = "owner"
	cfg.Admin.PasswordHash = hash
	f := newStorefrontFixtures(t, withConfig(cfg))
	ctx := context.Background()

	_, err = f.auth.Login(ctx, usecase.LoginInput{Username: "owner", Password: "Ali123"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))

	out, err := f.auth.Login(ctx, usecase.LoginInput{Username: "owner", Password: "s3cret!"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)
}

func TestAdminService_ChangeCredentialsReplacesDefault(t *testing.T) {
	f := newStorefrontFixtures(t)
	ctx := context.Background()

	require.NoError(t, f.auth.ChangeCredentials(ctx, usecase.CredentialsInput{Username: "rana", Password: "new-pass"}))

	_, err := f.auth.Login(ctx, usecase.LoginInput{Username: "Ali", Password: "Ali123"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))

	out, err := f.auth.Login(ctx, usecase.LoginInput{Username: "rana", Password: "new-pass"})
	require.NoError(t, err)

	tokens, err := auth.NewJWTService(testConfig())
	require.NoError(t, err)
	claims, err := tokens.ValidateToken(out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "rana", claims.Username)
	assert.Equal(t, []string{constants.RoleAdmin}, claims.Roles)

	stored, err := f.creds.Load(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, "new-pass", stored.PasswordHash)
}
