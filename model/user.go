package model

import "time"

// UserEntity represents the users table entity
type UserEntity struct {
	ID           uint64     `db:"id" json:"id"`
	Name         string     `db:"name" json:"name"`
	Email        string     `db:"email" json:"email"`
	Phone        string     `db:"phone" json:"phone"`
	PasswordHash string     `db:"password_hash" json:"-"`
	IsAdmin      bool       `db:"is_admin" json:"is_admin"`
	Provider     *string    `db:"provider" json:"-"`
	ProviderID   *string    `db:"provider_id" json:"-"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// UserFilter for querying users
type UserFilter struct {
	ID         uint64
	Email      string
	Phone      string
	Provider   string
	ProviderID string
}

// RegisterRequest for user registration
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest for user login (accepts email or phone)
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"` // email or phone
	Password   string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type RegisterResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthForm describes the login/register page for clients rendering it.
type AuthForm struct {
	Action    string   `json:"action"`
	Fields    []string `json:"fields"`
	Providers []string `json:"providers"`
}

type ProfileResponse struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

type UpdateProfileRequest struct {
	Name  string `json:"name" validate:"required,max=255"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required"`
}

type UpdatePasswordRequest struct {
	CurrentPassword      string `json:"current_password"`
	Password             string `json:"password" validate:"required,min=8"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
}

// ProviderIdentity is the account a third-party login provider vouches for.
type ProviderIdentity struct {
	Provider   string
	ProviderID string
	Name       string
	Email      string
}

type OAuthRedirectResponse struct {
	URL string `json:"url"`
}
