// Package usecase defines the application's business logic interfaces and
// their input/output contracts.
package usecase

import (
	"context"
	"time"
)

// RegisterUserInput carries the data needed to register a new account.
type RegisterUserInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginInput carries the login form fields. Username is the account email,
// matching the OAuth2 password-flow form convention.
type LoginInput struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// LoginOutput is the issued session token envelope.
type LoginOutput struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// UserOutput is the public view of a user. The password hash never leaves the
// application layer.
type UserOutput struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// UserUsecase defines the application operations around accounts and login.
type UserUsecase interface {
	// Register creates a new account from an email and plaintext password.
	Register(ctx context.Context, input *RegisterUserInput) (*UserOutput, error)

	// Login verifies the credentials and issues a bearer token. Unknown email
	// and wrong password fail identically.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// GetUser fetches a user's public view by id.
	GetUser(ctx context.Context, id int64) (*UserOutput, error)
}
