package webapi

import (
	"github.com/finflow/finflow/pkg/domain"
	accountsvc "github.com/finflow/finflow/pkg/service/account"
	"github.com/finflow/finflow/pkg/service/auth"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// LinkAccountInput is the request body for linking an external account.
type LinkAccountInput struct {
	Provider string `json:"provider" validate:"required"`
	Type     string `json:"type" validate:"required,oneof=credit bank investment"`
	Name     string `json:"name" validate:"required"`
	LastFour string `json:"lastFour" validate:"omitempty,len=4,numeric"`
	Balance  string `json:"balance" validate:"required"`
}

// UpdateBalanceInput is the request body for a balance snapshot update.
type UpdateBalanceInput struct {
	Balance string `json:"balance" validate:"required"`
}

func AccountRoutes(app *fiber.App, accountSvc *accountsvc.Service, authSvc *auth.Service) {
	protected := SessionProtected(authSvc)
	app.Post("/accounts", protected, LinkAccount(accountSvc))
	app.Get("/accounts", protected, ListAccounts(accountSvc))
	app.Get("/accounts/:id", protected, GetAccount(accountSvc))
	app.Patch("/accounts/:id/balance", protected, UpdateAccountBalance(accountSvc))
	app.Delete("/accounts/:id", protected, UnlinkAccount(accountSvc))
}

// LinkAccount registers an external financial account for the current user.
func LinkAccount(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := BindAndValidate[LinkAccountInput](c)
		if err != nil {
			return nil // Error already written by helper
		}
		acc, err := accountSvc.Link(
			c.Context(),
			sessionUserID(c),
			input.Provider,
			domain.AccountType(input.Type),
			input.Name,
			input.LastFour,
			input.Balance,
		)
		if err != nil {
			return DomainErrorJSON(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(Response{
			Status:  fiber.StatusCreated,
			Message: "Account linked",
			Data:    acc,
		})
	}
}

// ListAccounts returns the current user's linked accounts.
func ListAccounts(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accs, err := accountSvc.List(c.Context(), sessionUserID(c))
		if err != nil {
			return DomainErrorJSON(c, err)
		}
		return c.JSON(Response{Status: fiber.StatusOK, Message: "Accounts found", Data: accs})
	}
}

// GetAccount returns one of the current user's accounts.
func GetAccount(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid account ID", err.Error())
		}
		acc, err := accountSvc.Get(c.Context(), sessionUserID(c), id)
		if err != nil {
			return DomainErrorJSON(c, err)
		}
		if acc == nil {
			return ErrorResponseJSON(c, fiber.StatusNotFound, "No account found with ID", nil)
		}
		return c.JSON(Response{Status: fiber.StatusOK, Message: "Account found", Data: acc})
	}
}

// UpdateAccountBalance replaces the account's balance snapshot.
func UpdateAccountBalance(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid account ID", err.Error())
		}
		input, err := BindAndValidate[UpdateBalanceInput](c)
		if err != nil {
			return nil // Error already written by helper
		}
		if err := accountSvc.UpdateBalance(c.Context(), sessionUserID(c), id, input.Balance); err != nil {
			return DomainErrorJSON(c, err)
		}
		return c.JSON(Response{Status: fiber.StatusOK, Message: "Balance updated"})
	}
}

// UnlinkAccount removes the account and, through the store's cascade, its
// transactions.
func UnlinkAccount(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid account ID", err.Error())
		}
		if err := accountSvc.Unlink(c.Context(), sessionUserID(c), id); err != nil {
			return DomainErrorJSON(c, err)
		}
		return c.JSON(Response{Status: fiber.StatusOK, Message: "Account unlinked"})
	}
}
