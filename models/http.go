package models

// RegisterRequest is the JSON body of POST /api/auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks the registration payload and returns field-level errors.
func (r RegisterRequest) Validate() ValidationErrors {
	var errs ValidationErrors
	errs = errs.checkEmail("email", r.Email)
	errs = errs.checkPassword("password", r.Password)
	return errs
}

// LoginRequest is the JSON body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks the login payload and returns field-level errors.
// Password rules are intentionally looser than at registration: an existing
// account is verified against whatever it was registered with.
func (r LoginRequest) Validate() ValidationErrors {
	var errs ValidationErrors
	errs = errs.checkEmail("email", r.Email)
	if r.Password == "" {
		errs = errs.add("password", "password is required")
	}
	return errs
}

// ChangePasswordRequest is the JSON body of POST /api/auth/password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// Validate checks the change-password payload and returns field-level errors.
func (r ChangePasswordRequest) Validate() ValidationErrors {
	var errs ValidationErrors
	if r.CurrentPassword == "" {
		errs = errs.add("current_password", "current password is required")
	}
	errs = errs.checkPassword("new_password", r.NewPassword)
	return errs
}

// AuthResponse is returned by register, login and profile endpoints.
type AuthResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// HealthResponse reports the liveness of the server and its dependencies.
type HealthResponse struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components,omitempty"`
}

// ErrorResponse is the uniform error envelope for every non-2xx response.
type ErrorResponse struct {
	Message string       `json:"message"`
	Details []FieldError `json:"details,omitempty"`
}
