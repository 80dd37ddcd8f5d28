package guardians

import (
	"github.com/gofiber/fiber/v2"
)

func SetupGuardiansRoutes(app *fiber.App) {
	api := app.Group("/guardians")

	api.Post("/", CreateGuardianAPI)
	api.Get("/view/:guardianId", ViewGuardianAPI)
}
