package httpapi

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/i474232898/weather-panel/internal/panel"
)

var validate = validator.New()

// RegisterRoutes wires the panel page and its JSON API into the Fiber app.
func RegisterRoutes(app *fiber.App, p *panel.Panel) {
	app.Get("/", func(c *fiber.Ctx) error {
		return renderPage(c, p.View())
	})

	// Form posts from the page. Both redirect back to it.
	app.Post("/search", func(c *fiber.Ctx) error {
		// Request values alias fasthttp's buffers; the panel keeps them.
		raw := utils.CopyString(c.FormValue("city"))
		p.UpdateCityInput(raw)

		form := searchForm{City: strings.TrimSpace(raw)}
		if err := validate.Struct(form); err == nil {
			p.SubmitSearch(c.UserContext())
		}
		return c.Redirect("/", fiber.StatusSeeOther)
	})

	app.Post("/toggle", func(c *fiber.Ctx) error {
		p.ToggleMode()
		return c.Redirect("/", fiber.StatusSeeOther)
	})

	v1 := app.Group("/api/v1/panel")

	v1.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(p.View())
	})

	// Search for a city exactly as given; a blank city leaves the panel as is.
	v1.Post("/search", func(c *fiber.Ctx) error {
		var req searchRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		if err := validate.Struct(searchForm{City: strings.TrimSpace(req.City)}); err == nil {
			p.Search(c.UserContext(), utils.CopyString(req.City))
		}
		return c.JSON(p.View())
	})

	v1.Post("/toggle", func(c *fiber.Ctx) error {
		p.ToggleMode()
		return c.JSON(p.View())
	})

	v1.Put("/input", func(c *fiber.Ctx) error {
		var req searchRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		p.UpdateCityInput(utils.CopyString(req.City))
		return c.JSON(p.View())
	})
}

// searchForm holds the trimmed city used to decide whether to search at all.
type searchForm struct {
	City string `validate:"required"`
}

type searchRequest struct {
	City string `json:"city" form:"city"`
}
