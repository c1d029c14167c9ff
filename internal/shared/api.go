// Package shared holds the routes and JSON shapes spoken between the
// server's HTTP API and the CLI client.
package shared

// Account routes, relative to the accounts mount.
const (
	RouteHome          = "/"
	RouteSignup        = "/signup"
	RouteVerifyOTP     = "/verify-otp"
	RouteResendOTP     = "/resend-otp"
	RouteLogin         = "/login"
	RouteUsers         = "/users"
	RouteVerifiedUsers = "/verified-users"
)

// Product routes, relative to the products mount.
const (
	RouteProducts = "/products"
	RouteProduct  = "/product"
)

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type VerifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

type ResendOTPRequest struct {
	Email string `json:"email"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx reply. RemainingSeconds is
// only set on throttled replies.
type ErrorResponse struct {
	Detail           string `json:"detail"`
	RemainingSeconds int    `json:"remaining_seconds,omitempty"`
}
