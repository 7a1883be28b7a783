package webapi

import (
	"github.com/finflow/finflow/pkg/service/auth"
	"github.com/finflow/finflow/pkg/validation"
	"github.com/gofiber/fiber/v2"
)

func AuthRoutes(app *fiber.App, authSvc *auth.Service) {
	app.Post("/auth/register", Register(authSvc))
	app.Post("/auth/login", Login(authSvc))
	app.Post("/auth/logout", SessionProtected(authSvc), Logout(authSvc))
}

// Register creates a user from the registration form and signs nobody in;
// the client follows up with a login.
func Register(authSvc *auth.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input := new(validation.RegisterInput)
		if err := c.BodyParser(input); err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
		}
		u, err := authSvc.Register(c.Context(), *input)
		if err != nil {
			return DomainErrorJSON(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(Response{
			Status:  fiber.StatusCreated,
			Message: "User registered",
			Data:    fiber.Map{"id": u.ID, "name": u.Name, "email": u.Email},
		})
	}
}

// Login authenticates the credential and returns a session token.
func Login(authSvc *auth.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input := new(validation.SignInInput)
		if err := c.BodyParser(input); err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
		}
		session, err := authSvc.SignIn(c.Context(), *input)
		if err != nil {
			return DomainErrorJSON(c, err)
		}
		return c.JSON(Response{
			Status:  fiber.StatusOK,
			Message: "Success login",
			Data:    fiber.Map{"token": session.Token, "expires": session.Expires},
		})
	}
}

// Logout destroys the presented session.
func Logout(authSvc *auth.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token := header[len("Bearer "):]
		if err := authSvc.SignOut(c.Context(), token); err != nil {
			return DomainErrorJSON(c, err)
		}
		return c.JSON(Response{Status: fiber.StatusOK, Message: "Signed out"})
	}
}
