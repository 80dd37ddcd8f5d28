package guardians

import (
	"database/sql"

	"github.com/dementa/mjs/app/admissions"
	"github.com/dementa/mjs/app/config"
	"github.com/dementa/mjs/app/database"
	"github.com/dementa/mjs/app/helpers"
	"github.com/dementa/mjs/app/models"

	"github.com/gofiber/fiber/v2"
)

func CreateGuardianAPI(c *fiber.Ctx) error {
	var dto models.CreateGuardianDTO
	if err := c.BodyParser(&dto); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request", "message": "Invalid request"})
	}
	if err := helpers.ValidateStruct(&dto); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error(), "message": err.Error()})
	}

	guardianID := dto.GuardianID
	if guardianID == "" {
		guardianID = admissions.NewIDGenerator().GuardianID()
	}

	g := &models.GuardianRecord{
		GuardianID:   guardianID,
		FullName:     dto.FullName,
		Contact:      dto.Contact,
		NIN:          dto.NIN,
		Relationship: dto.Relationship,
	}
	if dto.Email != "" {
		g.Email = &dto.Email
	}
	if dto.Photo != "" {
		g.Photo = &dto.Photo
	}

	if err := database.CreateGuardian(config.GetDB(), g); err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error":   "Failed to create guardian",
			"message": "Failed to register guardian",
		})
	}
	return c.Status(201).JSON(g)
}

// ViewGuardianAPI backs continuing-parent verification. A non-2xx here
// means "not found/invalid", which the form shows as Invalid Guardian.
func ViewGuardianAPI(c *fiber.Ctx) error {
	g, err := database.GetGuardianByID(config.GetDB(), c.Params("guardianId"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Guardian not found", "message": "Invalid Guardian"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch guardian"})
	}

	// The verification form reads the contact under "phone".
	return c.JSON(fiber.Map{"data": fiber.Map{
		"guardian_id":  g.GuardianID,
		"full_name":    g.FullName,
		"contact":      g.Contact,
		"phone":        g.Contact,
		"nin":          g.NIN,
		"email":        g.Email,
		"photo":        g.Photo,
		"relationship": g.Relationship,
		"created_at":   g.CreatedAt,
	}})
}
