package students

import (
	"github.com/gofiber/fiber/v2"
)

func SetupStudentsRoutes(app *fiber.App) {
	api := app.Group("/students")

	api.Get("/", GetStudentsAPI)
	api.Post("/", CreateStudentAPI)
	api.Get("/:registrationId", GetStudentAPI)
}
