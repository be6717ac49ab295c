// Package types provides the view-model records shared across the hiredash client.
package types

import (
	"github.com/go-playground/validator/v10"
)

// LoginRequest represents a credential exchange request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest represents a new account registration request.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=1"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// ResetPasswordRequest starts the password-reset flow for an email address.
type ResetPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// NewPasswordRequest completes the password-reset flow.
type NewPasswordRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// Validate validates the LoginRequest using the validator.
func (r *LoginRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the RegisterRequest using the validator.
func (r *RegisterRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ResetPasswordRequest using the validator.
func (r *ResetPasswordRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the NewPasswordRequest using the validator.
func (r *NewPasswordRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
