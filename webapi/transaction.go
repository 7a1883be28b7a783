package webapi

import (
	"time"

	"github.com/finflow/finflow/pkg/dto"
	"github.com/finflow/finflow/pkg/service/auth"
	txsvc "github.com/finflow/finflow/pkg/service/transaction"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CreateTransactionInput is the request body for recording a transaction.
type CreateTransactionInput struct {
	AccountID   *uuid.UUID `json:"accountId"`
	Amount      string     `json:"amount" validate:"required"`
	Description string     `json:"description" validate:"required"`
	Category    string     `json:"category" validate:"required"`
	Type        string     `json:"type" validate:"required"`
	Date        time.Time  `json:"date" validate:"required"`
	IsExternal  bool       `json:"isExternal"`
}

// UpdateTransactionInput carries optional transaction field updates.
type UpdateTransactionInput struct {
	Amount      *string    `json:"amount"`
	Description *string    `json:"description"`
	Category    *string    `json:"category"`
	Type        *string    `json:"type"`
	Date        *time.Time `json:"date"`
}

func TransactionRoutes(app *fiber.App, transactionSvc *txsvc.Service, authSvc *auth.Service) {
	protected := SessionProtected(authSvc)
	app.Post("/transactions", protected, CreateTransaction(transactionSvc))
	app.Get("/transactions", protected, ListTransactions(transactionSvc))
	app.Get("/transactions/:id", protected, GetTransaction(transactionSvc))
	app.Patch("/transactions/:id", protected, UpdateTransaction(transactionSvc))
	app.Delete("/transactions/:id", protected, DeleteTransaction(transactionSvc))
	app.Get("/accounts/:id/transactions", protected, ListAccountTransactions(transactionSvc))
}

// CreateTransaction records a financial event for the current user.
func CreateTransaction(transactionSvc *txsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := BindAndValidate[CreateTransactionInput](c)
		if err != nil {
			return nil // Error already written by helper
		}
		tx, err := transactionSvc.Create(c.Context(), sessionUserID(c), txsvc.CreateInput{
			AccountID:   input.AccountID,
			Amount:      input.Amount,
			Description: input.Description,
			Category:    input.Category,
			Type:        input.Type,
			Date:        input.Date,
			IsExternal:  input.IsExternal,
		})
		if err != nil {
			return DomainErrorJSON(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(Response{
			Status:  fiber.StatusCreated,
			Message: "Transaction recorded",
			Data:    tx,
		})
	}
}

// ListTransactions returns the current user's ledger, newest first.
func ListTransactions(transactionSvc *txsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		txs, err := transactionSvc.ListByUser(c.Context(), sessionUserID(c))
		if err != nil {
			return DomainErrorJSON(c, err)
		}
		return c.JSON(Response{Status: fiber.StatusOK, Message: "Transactions found", Data: txs})
	}
}

// GetTransaction returns one of the current user's transactions.
func GetTransaction(transactionSvc *txsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid transaction ID", err.Error())
		}
		tx, err := transactionSvc.Get(c.Context(), sessionUserID(c), id)
		if err != nil {
			return DomainErrorJSON(c, err)
		}
		if tx == nil {
			return ErrorResponseJSON(c, fiber.StatusNotFound, "No transaction found with ID", nil)
		}
		return c.JSON(Response{Status: fiber.StatusOK, Message: "Transaction found", Data: tx})
	}
}

// UpdateTransaction overwrites the provided fields of the transaction.
func UpdateTransaction(transactionSvc *txsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid transaction ID", err.Error())
		}
		input := new(UpdateTransactionInput)
		if err := c.BodyParser(input); err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
		}
		update := &dto.TransactionUpdate{
			Amount:      input.Amount,
			Description: input.Description,
			Category:    input.Category,
			Type:        input.Type,
			Date:        input.Date,
		}
		if err := transactionSvc.Update(c.Context(), sessionUserID(c), id, update); err != nil {
			return DomainErrorJSON(c, err)
		}
		return c.JSON(Response{Status: fiber.StatusOK, Message: "Transaction updated"})
	}
}

// DeleteTransaction removes the transaction.
func DeleteTransaction(transactionSvc *txsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid transaction ID", err.Error())
		}
		if err := transactionSvc.Delete(c.Context(), sessionUserID(c), id); err != nil {
			return DomainErrorJSON(c, err)
		}
		return c.JSON(Response{Status: fiber.StatusOK, Message: "Transaction deleted"})
	}
}

// ListAccountTransactions returns the ledger rows tied to one account.
func ListAccountTransactions(transactionSvc *txsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid account ID", err.Error())
		}
		txs, err := transactionSvc.ListByAccount(c.Context(), sessionUserID(c), id)
		if err != nil {
			return DomainErrorJSON(c, err)
		}
		return c.JSON(Response{Status: fiber.StatusOK, Message: "Transactions found", Data: txs})
	}
}
