package models

// SignUpRequest is the body of POST /users/signup.
type SignUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /users/login.
type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// ForgotPasswordRequest is the body of POST /users/forgot-password.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest is the body of POST /users/reset-password/{token}.
type ResetPasswordRequest struct {
	NewPassword string `json:"newPassword"`
}
