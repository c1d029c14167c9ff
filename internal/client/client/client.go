package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/lucy1234dev/server/internal/client/config"
	"github.com/lucy1234dev/server/internal/netx"
	"github.com/lucy1234dev/server/internal/server/models"
	"github.com/lucy1234dev/server/internal/shared"
)

type Client interface {
	Home(ctx context.Context) (string, error)
	Signup(ctx context.Context, name, email, password string) (string, error)
	VerifyOTP(ctx context.Context, email, otp string) (string, error)
	ResendOTP(ctx context.Context, email string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	Users(ctx context.Context) ([]models.AccountView, error)
	VerifiedUsers(ctx context.Context) ([]models.AccountView, error)
	Products(ctx context.Context) (models.Products, error)
	AddProduct(ctx context.Context, p models.ProductCreate) (*models.Product, error)
}

type HTTPClient struct {
	accountsURL string
	productsURL string
	http        *http.Client
}

func NewHTTPClient(cfg *config.Config) *HTTPClient {
	base := strings.TrimRight(cfg.ServerURL, "/")
	return &HTTPClient{
		accountsURL: base + cfg.AccountsMount,
		productsURL: base + cfg.ProductsMount,
		http:        &http.Client{Timeout: cfg.RequestTimeout},
	}
}

func (c *HTTPClient) do(ctx context.Context, method, url string, in, out any) error {
	err := netx.DoJSON(ctx, c.http, method, url, in, out)
	if err == nil {
		return nil
	}

	var se *netx.StatusError
	if errors.As(err, &se) {
		return toAPIError(se)
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return fmt.Errorf("%w: %w", ErrUnavailable, err)
}

func (c *HTTPClient) message(ctx context.Context, method, url string, in any) (string, error) {
	var out shared.MessageResponse
	if err := c.do(ctx, method, url, in, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

func (c *HTTPClient) Home(ctx context.Context) (string, error) {
	return c.message(ctx, http.MethodGet, c.accountsURL+shared.RouteHome, nil)
}

func (c *HTTPClient) Signup(ctx context.Context, name, email, password string) (string, error) {
	req := shared.SignupRequest{Name: name, Email: email, Password: password}
	return c.message(ctx, http.MethodPost, c.accountsURL+shared.RouteSignup, req)
}

func (c *HTTPClient) VerifyOTP(ctx context.Context, email, otp string) (string, error) {
	req := shared.VerifyOTPRequest{Email: email, OTP: otp}
	return c.message(ctx, http.MethodPost, c.accountsURL+shared.RouteVerifyOTP, req)
}

func (c *HTTPClient) ResendOTP(ctx context.Context, email string) (string, error) {
	req := shared.ResendOTPRequest{Email: email}
	return c.message(ctx, http.MethodPost, c.accountsURL+shared.RouteResendOTP, req)
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, error) {
	req := shared.LoginRequest{Email: email, Password: password}
	return c.message(ctx, http.MethodPost, c.accountsURL+shared.RouteLogin, req)
}

func (c *HTTPClient) Users(ctx context.Context) ([]models.AccountView, error) {
	var out []models.AccountView
	err := c.do(ctx, http.MethodGet, c.accountsURL+shared.RouteUsers, nil, &out)
	return out, err
}

func (c *HTTPClient) VerifiedUsers(ctx context.Context) ([]models.AccountView, error) {
	var out []models.AccountView
	err := c.do(ctx, http.MethodGet, c.accountsURL+shared.RouteVerifiedUsers, nil, &out)
	return out, err
}

func (c *HTTPClient) Products(ctx context.Context) (models.Products, error) {
	var out models.Products
	err := c.do(ctx, http.MethodGet, c.productsURL+shared.RouteProducts, nil, &out)
	return out, err
}

func (c *HTTPClient) AddProduct(ctx context.Context, p models.ProductCreate) (*models.Product, error) {
	var out models.Product
	if err := c.do(ctx, http.MethodPost, c.productsURL+shared.RouteProduct, p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
