package dashboard

import (
	"github.com/dementa/mjs/app/config"
	"github.com/dementa/mjs/app/database"

	"github.com/gofiber/fiber/v2"
)

func ShowDashboardPage(c *fiber.Ctx) error {
	stats, err := database.GetAdmissionsStats(config.GetDB())
	if err != nil {
		return c.Status(500).Render("error", fiber.Map{
			"Title":        "Server Error - MJS Admissions",
			"ErrorCode":    "500",
			"ErrorTitle":   "Internal Server Error",
			"ErrorMessage": "Failed to load admissions statistics.",
		})
	}

	return c.Render("dashboard", fiber.Map{
		"Title":       "Dashboard - MJS Admissions",
		"CurrentPage": "dashboard",
		"user":        c.Locals("user"),
		"Stats":       stats,
	})
}

func GetStatsAPI(c *fiber.Ctx) error {
	stats, err := database.GetAdmissionsStats(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error":   "Failed to fetch admissions statistics",
			"details": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    stats,
	})
}
