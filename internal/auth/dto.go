package auth

import (
	errors "github.com/alorahq/hr-portal/internal"
)

// LoginDTO is the transport shape accepted by the login handler.
type LoginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (d LoginDTO) Validate() *errors.AppError {
	if d.Email == "" {
		return errors.NewValidationFieldError("email", "email is required", errors.ErrCodeValidationFailed)
	}
	if d.Password == "" {
		return errors.NewValidationFieldError("password", "password is required", errors.ErrCodeValidationFailed)
	}
	return nil
}

type RegisterDTO struct {
	Name     string `json:"name"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// EffectiveName prefers full_name, falling back to name, matching what
// older clients still send.
func (d RegisterDTO) EffectiveName() string {
	if d.FullName != "" {
		return d.FullName
	}
	return d.Name
}

func (d RegisterDTO) Validate() *errors.AppError {
	if d.EffectiveName() == "" {
		return errors.NewValidationFieldError("full_name", "full name is required", errors.ErrCodeValidationFailed)
	}
	if d.Email == "" {
		return errors.NewValidationFieldError("email", "email is required", errors.ErrCodeValidationFailed)
	}
	if d.Password == "" {
		return errors.NewValidationFieldError("password", "password is required", errors.ErrCodeValidationFailed)
	}
	return nil
}

// IdentityResponse is the identity summary returned by login and /auth/me.
type IdentityResponse struct {
	User *Identity `json:"user"`
}
