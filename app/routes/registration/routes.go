package registration

import (
	"github.com/gofiber/fiber/v2"
)

func SetupRegistrationRoutes(app *fiber.App) {
	api := app.Group("/admissions")

	api.Post("/register", RegisterStudentAPI)
	api.Get("/catalog", GetCatalogAPI)
}
