package usecase

import (
	"context"
	"time"
)

// LoginInput carries the admin login form.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginOutput is the issued admin token.
type LoginOutput struct {
	AccessToken string        `json:"access_token"`
	ExpiresIn   time.Duration `json:"expires_in"`
	Username    string        `json:"username"`
}

// CredentialsInput replaces the admin login.
type CredentialsInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

// AdminUsecase authenticates the single admin account.
type AdminUsecase interface {
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
	ChangeCredentials(ctx context.Context, input CredentialsInput) error
}
