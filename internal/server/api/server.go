// Package api serves the account and product HTTP APIs over fiber.
package api

import (
	"context"
	"net"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/lucy1234dev/server/internal/logging"
	"github.com/lucy1234dev/server/internal/server/config"
	"github.com/lucy1234dev/server/internal/server/models"
	"github.com/lucy1234dev/server/internal/shared"
)

const shutdownTimeout = 5 * time.Second

// AccountService is the account lifecycle used by the handlers.
type AccountService interface {
	Signup(ctx context.Context, name, email, password string) error
	VerifyOTP(ctx context.Context, email, code string) error
	ResendOTP(ctx context.Context, email string) error
	Login(ctx context.Context, email, password string) (*models.Account, error)
	ListAccounts(ctx context.Context) ([]models.AccountView, error)
	ListVerifiedAccounts(ctx context.Context) ([]models.AccountView, error)
}

type ProductService interface {
	List(ctx context.Context) (models.Products, error)
	Add(ctx context.Context, in models.ProductCreate) (*models.Product, error)
}

type HTTPServer struct {
	address string
	logger  logging.Logger
	app     *fiber.App
	limiter *IPRateLimiter
}

func NewHTTPServer(cfg *config.Config, l logging.Logger, accounts AccountService, products ProductService) *HTTPServer {
	logger := l.With("module", "http_server")

	app := fiber.New(fiber.Config{
		AppName:               "flowershop",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler(logger),
	})

	s := &HTTPServer{
		address: cfg.HTTPAddr,
		logger:  logger,
		app:     app,
		limiter: NewIPRateLimiter(cfg.RateLimitPerMinute, logger),
	}

	app.Use(requestLogger(logger))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET,POST,OPTIONS",
	}))
	app.Use(s.limiter.Handler())

	ah := &accountHandler{svc: accounts}
	acc := app.Group(cfg.AccountsMount)
	acc.Get(shared.RouteHome, ah.home)
	acc.Post(shared.RouteSignup, ah.signup)
	acc.Post(shared.RouteVerifyOTP, ah.verifyOTP)
	acc.Post(shared.RouteResendOTP, ah.resendOTP)
	acc.Post(shared.RouteLogin, ah.login)
	acc.Get(shared.RouteUsers, ah.listUsers)
	acc.Get(shared.RouteVerifiedUsers, ah.listVerifiedUsers)

	ph := &productHandler{svc: products}
	prod := app.Group(cfg.ProductsMount)
	prod.Get(shared.RouteProducts, ph.list)
	prod.Post(shared.RouteProduct, ph.add)

	return s
}

// App exposes the fiber application for in-process requests.
func (s *HTTPServer) App() *fiber.App { return s.app }

// Run serves until ctx is done, then drains in-flight requests.
func (s *HTTPServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())
		errCh <- s.app.Listener(listen)
	}()

	go s.limiter.Cleanup(ctx, time.Minute, 5*time.Minute)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info(ctx, "Stopping HTTP server...")
	if err := s.app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		return err
	}
	return <-errCh
}
