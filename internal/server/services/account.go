// Package services contains the server's business logic. AccountService
// runs the signup, OTP verification and login lifecycle; ProductService
// keeps the product catalog.
package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/lucy1234dev/server/internal/common"
	"github.com/lucy1234dev/server/internal/cryptox"
	"github.com/lucy1234dev/server/internal/logging"
	"github.com/lucy1234dev/server/internal/mapx"
	"github.com/lucy1234dev/server/internal/server/config"
	"github.com/lucy1234dev/server/internal/server/models"
	"github.com/lucy1234dev/server/internal/server/notify"
	"github.com/lucy1234dev/server/internal/server/otp"
	"github.com/lucy1234dev/server/internal/server/store"
	"github.com/lucy1234dev/server/internal/server/validation"
)

// Document names. They double as file names of the file backend.
const (
	AccountsDocument = "users"
	OTPsDocument     = "otps"
	ProductsDocument = "products"
)

// Success messages of the account operations.
const (
	MsgSignedUp    = "User registered. OTP sent to console."
	MsgVerified    = "OTP verified successfully. User is now verified."
	MsgResent      = "OTP resent. Check console."
	MsgWelcomeHome = "🌼 Welcome to Flower Shop Signup API 🌼"
)

// LoginMessage is the greeting returned by a successful login.
func LoginMessage(name string) string {
	return fmt.Sprintf("Login successful. welcome %s!", name)
}

// AccountService tracks each email through unregistered, pending
// verification and verified. Account and OTP documents are updated one
// after the other, never under both locks at once.
type AccountService struct {
	accounts *store.Store[*models.Accounts]
	otps     *store.Store[*models.PendingOTPs]
	issuer   *otp.Issuer
	notifier notify.Notifier
	logger   logging.Logger
	cooldown time.Duration
	ttl      time.Duration
	now      func() time.Time
	hash     func(string) (string, error)
}

// NewAccountService keeps its documents on backend and sends codes through n.
func NewAccountService(backend store.Backend, n notify.Notifier, l logging.Logger, cfg *config.Config) *AccountService {
	s := &AccountService{
		accounts: store.New(AccountsDocument, backend, mapx.New[*models.Account], l),
		otps:     store.New(OTPsDocument, backend, mapx.New[*models.PendingOTP], l),
		notifier: n,
		logger:   l.With("module", "accounts"),
		cooldown: cfg.OTPResendCooldown,
		ttl:      cfg.OTPTTL,
		now:      time.Now,
		hash:     cryptox.HashPassword,
	}
	s.issuer = otp.NewIssuer(func() time.Time { return s.now() })
	return s
}

// Signup registers a new unverified account and sends it a code. A taken
// email is reported before any validation failure.
func (s *AccountService) Signup(ctx context.Context, name, email, password string) error {
	validEmail := validation.IsValidEmail(email)
	strong := validation.IsStrongPassword(password)

	var hash string
	if validEmail && strong {
		var err error
		if hash, err = s.hash(password); err != nil {
			return fmt.Errorf("%w: hash password: %w", common.ErrorInternal, err)
		}
	}

	err := s.accounts.Update(ctx, func(doc *models.Accounts) (*models.Accounts, error) {
		switch {
		case doc.Has(email):
			return nil, ErrUserExists
		case !validEmail:
			return nil, ErrInvalidEmail
		case !strong:
			return nil, ErrWeakPassword
		}

		doc.Set(email, &models.Account{
			ID:       uuid.NewString(),
			Name:     name,
			Email:    email,
			Password: hash,
		})
		return doc, nil
	})
	if err != nil {
		return err
	}

	s.logger.Info(ctx, "account registered", "email", email)

	pending, err := s.issuer.Issue()
	if err != nil {
		return fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}

	if err := s.otps.Update(ctx, func(doc *models.PendingOTPs) (*models.PendingOTPs, error) {
		doc.Set(email, pending)
		return doc, nil
	}); err != nil {
		s.logger.Error(ctx, "account registered without a pending code", "email", email, "error", err)
		return err
	}

	s.notify(ctx, email, pending.Code)
	return nil
}

// VerifyOTP consumes the pending code of email and marks the account
// verified. Verifying an already verified account with a fresh code is
// harmless.
func (s *AccountService) VerifyOTP(ctx context.Context, email, code string) error {
	err := s.otps.Update(ctx, func(doc *models.PendingOTPs) (*models.PendingOTPs, error) {
		pending, ok := doc.Get(email)
		if !ok {
			return nil, ErrNoOTP
		}
		if !otp.Equal(pending.Code, code) {
			return nil, ErrInvalidOTP
		}
		if s.ttl > 0 && s.now().Sub(pending.IssuedAt.Time) > s.ttl {
			return nil, ErrOTPExpired
		}
		doc.Delete(email)
		return doc, nil
	})
	if err != nil {
		return err
	}

	err = s.accounts.Update(ctx, func(doc *models.Accounts) (*models.Accounts, error) {
		if a, ok := doc.Get(email); ok {
			a.Verified = true
		}
		return doc, nil
	})
	if err != nil {
		return err
	}

	s.logger.Info(ctx, "account verified", "email", email)
	return nil
}

// ResendOTP replaces the pending code of email once the cooldown since the
// previous code has passed. Otherwise it fails with *common.ThrottledError.
func (s *AccountService) ResendOTP(ctx context.Context, email string) error {
	var code string

	err := s.otps.Update(ctx, func(doc *models.PendingOTPs) (*models.PendingOTPs, error) {
		pending, ok := doc.Get(email)
		if !ok {
			return nil, ErrNoSignup
		}

		if elapsed := s.now().Sub(pending.IssuedAt.Time); elapsed < s.cooldown {
			return nil, &common.ThrottledError{RemainingSeconds: remainingSeconds(s.cooldown, elapsed)}
		}

		fresh, err := s.issuer.Issue()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", common.ErrorInternal, err)
		}
		doc.Set(email, fresh)
		code = fresh.Code
		return doc, nil
	})
	if err != nil {
		return err
	}

	s.notify(ctx, email, code)
	return nil
}

// remainingSeconds rounds up and stays within [1, cooldown].
func remainingSeconds(cooldown, elapsed time.Duration) int {
	if elapsed < 0 {
		elapsed = 0
	}
	r := int(math.Ceil((cooldown - elapsed).Seconds()))
	if r < 1 {
		r = 1
	}
	return r
}

// Login checks the credentials of a verified account. Accounts written with
// a plaintext password are upgraded to a hash on their first good login.
func (s *AccountService) Login(ctx context.Context, email, password string) (*models.Account, error) {
	doc, err := s.accounts.Load(ctx)
	if err != nil {
		return nil, err
	}

	a, ok := doc.Get(email)
	if !ok {
		return nil, ErrUserNotFound
	}
	if !a.Verified {
		return nil, ErrNotVerified
	}

	match, err := cryptox.CheckPassword(a.Password, password)
	if errors.Is(err, cryptox.ErrMalformedHash) {
		match = subtle.ConstantTimeCompare([]byte(a.Password), []byte(password)) == 1
		if match {
			s.upgradePassword(ctx, email, password)
		}
	}
	if !match {
		return nil, ErrWrongPassword
	}

	s.logger.Info(ctx, "login", "email", email)
	out := *a
	return &out, nil
}

func (s *AccountService) upgradePassword(ctx context.Context, email, password string) {
	hash, err := s.hash(password)
	if err != nil {
		s.logger.Warn(ctx, "password upgrade failed", "email", email, "error", err)
		return
	}

	err = s.accounts.Update(ctx, func(doc *models.Accounts) (*models.Accounts, error) {
		if a, ok := doc.Get(email); ok {
			a.Password = hash
		}
		return doc, nil
	})
	if err != nil {
		s.logger.Warn(ctx, "password upgrade failed", "email", email, "error", err)
	}
}

// ListAccounts returns every account in registration order.
func (s *AccountService) ListAccounts(ctx context.Context) ([]models.AccountView, error) {
	return s.list(ctx, func(*models.Account) bool { return true })
}

// ListVerifiedAccounts returns verified accounts in registration order.
func (s *AccountService) ListVerifiedAccounts(ctx context.Context) ([]models.AccountView, error) {
	return s.list(ctx, func(a *models.Account) bool { return a.Verified })
}

func (s *AccountService) list(ctx context.Context, keep func(*models.Account) bool) ([]models.AccountView, error) {
	doc, err := s.accounts.Load(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]models.AccountView, 0, doc.Len())
	for _, a := range doc.Values() {
		if keep(a) {
			out = append(out, a.View())
		}
	}
	return out, nil
}

// notify never fails the caller; delivery problems are only logged.
func (s *AccountService) notify(ctx context.Context, email, code string) {
	if err := s.notifier.Notify(ctx, email, code); err != nil {
		s.logger.Warn(ctx, "otp delivery failed", "email", email, "error", err)
	}
}
