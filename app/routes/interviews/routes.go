package interviews

import (
	"github.com/gofiber/fiber/v2"
)

// SetupInterviewsRoutes mounts the interview REST surface. These routes
// stay tokenless: the admission forms call them directly.
func SetupInterviewsRoutes(app *fiber.App) {
	api := app.Group("/interviews")

	api.Get("/", GetInterviewsAPI)
	api.Post("/", CreateInterviewAPI)
	api.Put("/", UpdateInterviewAPI)
	api.Get("/:id", GetInterviewAPI)
	api.Patch("/:id", PatchInterviewAPI)
	api.Patch("/:id/admission", AdvanceAdmissionAPI)
	api.Delete("/:id", DeleteInterviewAPI)
}
