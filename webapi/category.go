package webapi

import (
	"github.com/finflow/finflow/pkg/domain"
	categorysvc "github.com/finflow/finflow/pkg/service/category"
	"github.com/gofiber/fiber/v2"
)

func CategoryRoutes(app *fiber.App, categorySvc *categorysvc.Service) {
	// the catalog is shared reference data, no session required
	app.Get("/categories", ListCategories(categorySvc))
}

// ListCategories returns the category catalog, optionally filtered by the
// type query parameter.
func ListCategories(categorySvc *categorysvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if typ := c.Query("type"); typ != "" {
			categoryType := domain.CategoryType(typ)
			if !categoryType.Valid() {
				return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid category type", typ)
			}
			categories, err := categorySvc.ListByType(c.Context(), categoryType)
			if err != nil {
				return DomainErrorJSON(c, err)
			}
			return c.JSON(Response{Status: fiber.StatusOK, Message: "Categories found", Data: categories})
		}
		categories, err := categorySvc.List(c.Context())
		if err != nil {
			return DomainErrorJSON(c, err)
		}
		return c.JSON(Response{Status: fiber.StatusOK, Message: "Categories found", Data: categories})
	}
}
