package services

import "github.com/lucy1234dev/server/internal/common"

// Request-level failures. Messages are shown to API callers as is.
var (
	ErrUserExists    = common.NewError(common.ErrorConflict, "User already exists.")
	ErrInvalidEmail  = common.NewError(common.ErrorInvalidInput, "Invalid email.")
	ErrWeakPassword  = common.NewError(common.ErrorInvalidInput, "Weak password.")
	ErrNoOTP         = common.NewError(common.ErrorNotFound, "No OTP found for this email.")
	ErrInvalidOTP    = common.NewError(common.ErrorInvalidInput, "Invalid OTP.")
	ErrOTPExpired    = common.NewError(common.ErrorInvalidInput, "OTP expired.")
	ErrNoSignup      = common.NewError(common.ErrorNotFound, "No signup found for this email.")
	ErrUserNotFound  = common.NewError(common.ErrorNotFound, "user not found.")
	ErrNotVerified   = common.NewError(common.ErrorForbidden, "Email not verified. Please verify OTP first.")
	ErrWrongPassword = common.NewError(common.ErrorForbidden, "incorrect password")
)
