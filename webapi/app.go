// Package webapi exposes the HTTP surface: auth, accounts, transactions, and
// the category catalog, with bearer session tokens on the protected routes.
package webapi

import (
	"github.com/finflow/finflow/pkg/config"
	"github.com/finflow/finflow/pkg/service/account"
	"github.com/finflow/finflow/pkg/service/auth"
	"github.com/finflow/finflow/pkg/service/category"
	"github.com/finflow/finflow/pkg/service/transaction"
	"github.com/finflow/finflow/pkg/service/user"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// Services bundles the application services the routes depend on.
type Services struct {
	Auth        *auth.Service
	User        *user.Service
	Account     *account.Service
	Transaction *transaction.Service
	Category    *category.Service
}

// NewApp builds the fiber application with rate limiting, panic recovery,
// and all routes registered.
func NewApp(svcs Services, rl config.RateLimitConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Default to 500 if status code cannot be determined
			status := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
			return ErrorResponseJSON(c, status, "Internal Server Error", err.Error())
		},
	})

	app.Use(limiter.New(limiter.Config{
		Max:        rl.MaxRequests,
		Expiration: rl.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return ErrorResponseJSON(c, fiber.StatusTooManyRequests, "Too Many Requests", "Rate limit exceeded")
		},
	}))
	app.Use(recover.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("App is working! 🚀")
	})

	AuthRoutes(app, svcs.Auth)
	AccountRoutes(app, svcs.Account, svcs.Auth)
	TransactionRoutes(app, svcs.Transaction, svcs.Auth)
	CategoryRoutes(app, svcs.Category)

	return app
}
