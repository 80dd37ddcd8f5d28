package main

import (
	"log"
	"strings"
	"time"

	"github.com/dementa/mjs/app/config"
	"github.com/dementa/mjs/app/database"
	"github.com/dementa/mjs/app/routes/auth"
	"github.com/dementa/mjs/app/routes/dashboard"
	"github.com/dementa/mjs/app/routes/guardians"
	"github.com/dementa/mjs/app/routes/interviews"
	"github.com/dementa/mjs/app/routes/registration"
	"github.com/dementa/mjs/app/routes/students"
	"github.com/dementa/mjs/app/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"
)

// isAPIRequest reports whether a path belongs to the JSON surface rather
// than the staff web pages.
func isAPIRequest(path string) bool {
	for _, prefix := range []string{"/api", "/auth", "/interviews", "/guardians", "/students", "/admissions"} {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// customErrorHandler handles HTTP errors for both the JSON surface and
// the web pages
func customErrorHandler(c *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError

	// Retrieve the custom status code if it's a *fiber.Error
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	if isAPIRequest(c.Path()) {
		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": err.Error(),
			"code":    code,
		})
	}

	switch code {
	case 404:
		return c.Status(404).Render("404", fiber.Map{
			"Title": "Page Not Found - MJS Admissions",
		})
	case 401:
		return c.Redirect("/auth/login")
	default:
		return c.Status(code).Render("error", fiber.Map{
			"Title":        "Error - MJS Admissions",
			"ErrorCode":    code,
			"ErrorTitle":   "An Error Occurred",
			"ErrorMessage": err.Error(),
		})
	}
}

func main() {
	// Set global time zone to East Africa Time
	loc, err := time.LoadLocation("Africa/Kampala")
	if err != nil {
		log.Printf("Warning: Failed to load Africa/Kampala location, falling back to UTC+3: %v", err)
		time.Local = time.FixedZone("EAT", 3*60*60)
	} else {
		time.Local = loc
	}
	log.Printf("Application time zone set to: %s", time.Local.String())

	// Initialize configuration and database
	config.Load()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Start background scheduler
	services.StartScheduler(config.GetDB())

	// Initialize template engine
	engine := html.New("./app/templates", ".html")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		Views:             engine,
		ViewsLayout:       "layouts/main",
		PassLocalsToViews: true,
		ErrorHandler:      customErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Routes
	auth.SetupAuthRoutes(app)
	interviews.SetupInterviewsRoutes(app)
	guardians.SetupGuardiansRoutes(app)
	students.SetupStudentsRoutes(app)
	registration.SetupRegistrationRoutes(app)
	dashboard.SetupDashboardRoutes(app)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/dashboard")
	})

	port := config.AppConfig.Port
	log.Printf("Starting MJS admissions server on port %s", port)
	log.Fatal(app.Listen(":" + port))
}
