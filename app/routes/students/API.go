package students

import (
	"database/sql"

	"github.com/dementa/mjs/app/admissions"
	"github.com/dementa/mjs/app/config"
	"github.com/dementa/mjs/app/database"
	"github.com/dementa/mjs/app/helpers"
	"github.com/dementa/mjs/app/models"

	"github.com/gofiber/fiber/v2"
)

func GetStudentsAPI(c *fiber.Ctx) error {
	list, err := database.GetStudents(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
	}

	return c.JSON(fiber.Map{
		"students": list,
		"count":    len(list),
	})
}

func GetStudentAPI(c *fiber.Ctx) error {
	s, err := database.GetStudentByRegistrationID(config.GetDB(), c.Params("registrationId"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch student"})
	}
	return c.JSON(fiber.Map{"data": s})
}

// CreateStudentAPI registers a student against existing guardian
// references. Guardian creation belongs to the registration flow, not
// here.
func CreateStudentAPI(c *fiber.Ctx) error {
	var dto models.CreateStudentDTO
	if err := c.BodyParser(&dto); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request", "message": "Invalid request"})
	}
	if err := helpers.ValidateStruct(&dto); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error(), "message": err.Error()})
	}
	if !admissions.ValidClass(dto.Section, dto.Class.Name) {
		return c.Status(400).JSON(fiber.Map{
			"error":   "Invalid class for section",
			"message": "Class " + dto.Class.Name + " is not offered in " + string(dto.Section),
		})
	}
	if !admissions.ValidStream(dto.Section, dto.Class.Stream) {
		return c.Status(400).JSON(fiber.Map{
			"error":   "Invalid stream for section",
			"message": "Stream " + dto.Class.Stream + " is not offered in " + string(dto.Section),
		})
	}

	// The guardian references must verify before a student can point at
	// them.
	if _, err := database.GetGuardianByID(config.GetDB(), dto.Guardian1ID); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid guardian", "message": "Invalid Guardian"})
	}
	if dto.Guardian2ID != "" {
		if _, err := database.GetGuardianByID(config.GetDB(), dto.Guardian2ID); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid guardian", "message": "Invalid Guardian"})
		}
	}

	s := &models.Student{
		RegistrationID: dto.RegistrationID,
		LIN:            dto.LIN,
		PaymentCode:    dto.PaymentCode,
		Name:           dto.Name,
		Class:          dto.Class,
		Gender:         dto.Gender,
		DateOfBirth:    dto.DateOfBirth,
		Religion:       dto.Religion,
		Section:        dto.Section,
		House:          dto.House,
		Club:           dto.Club,
		Residence:      dto.Residence,
		Guardian1ID:    dto.Guardian1ID,
		Photo:          dto.Photo,
	}
	if s.RegistrationID == "" {
		s.RegistrationID = admissions.NewIDGenerator().RegistrationID()
	}
	if dto.Guardian2ID != "" {
		s.Guardian2ID = &dto.Guardian2ID
	}

	if err := database.CreateStudent(config.GetDB(), s); err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error":   "Failed to create student",
			"message": "Failed to register student",
		})
	}
	return c.Status(201).JSON(s)
}
