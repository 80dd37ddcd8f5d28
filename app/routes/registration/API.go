package registration

import (
	"encoding/json"
	"errors"
	"mime/multipart"

	"github.com/dementa/mjs/app/admissions"
	"github.com/dementa/mjs/app/config"
	"github.com/dementa/mjs/app/database"
	"github.com/dementa/mjs/app/helpers"
	"github.com/dementa/mjs/app/models"
	"github.com/dementa/mjs/app/services"

	"github.com/gofiber/fiber/v2"
)

// RegistrationRequest is the "student" JSON part of a full-admission
// multipart submission. Photos travel as separate file parts named
// photo, guardian1_photo and guardian2_photo.
type RegistrationRequest struct {
	Name        models.StudentName  `json:"name" validate:"required"`
	Class       models.StudentClass `json:"class" validate:"required"`
	Gender      models.Gender       `json:"gender" validate:"required,oneof=Male Female Other"`
	DateOfBirth string              `json:"date_of_birth" validate:"required"`
	Religion    string              `json:"religion"`
	Section     models.Section      `json:"section" validate:"required"`
	House       string              `json:"house"`
	Club        string              `json:"club"`
	Residence   models.Residence    `json:"residence"`
	LIN         string              `json:"LIN"`
	PaymentCode string              `json:"payment_code"`

	ContinuingParent   bool                     `json:"continuing_parent"`
	ContinuingParentID string                   `json:"continuing_parent_id"`
	Guardian1          admissions.GuardianInput `json:"guardian1"`
	Guardian2          admissions.GuardianInput `json:"guardian2"`
}

// GetCatalogAPI exposes the class/subject/stream tables so forms can
// populate their dropdowns from one source of truth.
func GetCatalogAPI(c *fiber.Ctx) error {
	section := models.Section(c.Query("section"))
	return c.JSON(fiber.Map{
		"classes":  admissions.ClassesFor(section),
		"subjects": admissions.SubjectsFor(section),
		"streams":  admissions.StreamsFor(section),
	})
}

// RegisterStudentAPI runs the full admission submission: validate, upload
// photos, resolve guardians, create the student. The steps are strictly
// sequential; a failed photo upload aborts the submission before any
// guardian or student record exists.
func RegisterStudentAPI(c *fiber.Ctx) error {
	raw := c.FormValue("student")
	if raw == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Missing student data", "message": "Missing student data"})
	}

	var req RegistrationRequest
	if err := json.Unmarshal([]byte(raw), &req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid student data", "message": "Invalid student data"})
	}

	// Step 1: validate everything before any side effect.
	if err := validateRegistration(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error(), "message": err.Error()})
	}

	db := config.GetDB()
	resolver := admissions.NewResolver(&database.GuardianStore{DB: db}, admissions.NewIDGenerator())

	// Continuing-parent verification blocks the submission on failure; it
	// never falls back to creating a guardian for an unverified ID.
	if req.ContinuingParent {
		if _, err := resolver.ResolveContinuing(req.ContinuingParentID); err != nil {
			return c.Status(422).JSON(fiber.Map{"error": "Invalid Guardian", "message": "Invalid Guardian"})
		}
	}

	// Step 2: upload photos so the create payloads can embed their URLs.
	uploader := services.NewPhotoUploader(config.AppConfig.Cloudinary)
	studentPhoto, err := uploadIfPresent(c, uploader, "photo")
	if err != nil {
		return c.Status(502).JSON(fiber.Map{"error": err.Error(), "message": "Photo upload failed"})
	}
	guardian1Photo, err := uploadIfPresent(c, uploader, "guardian1_photo")
	if err != nil {
		return c.Status(502).JSON(fiber.Map{"error": err.Error(), "message": "Photo upload failed"})
	}
	guardian2Photo, err := uploadIfPresent(c, uploader, "guardian2_photo")
	if err != nil {
		return c.Status(502).JSON(fiber.Map{"error": err.Error(), "message": "Photo upload failed"})
	}

	// Step 3: resolve guardian 1.
	var guardian1ID string
	if req.ContinuingParent {
		guardian1ID = req.ContinuingParentID
	} else {
		in := req.Guardian1
		in.Photo = guardian1Photo
		guardian1ID, err = resolver.ResolveNew(admissions.PrimaryGuardian, in)
		if err != nil {
			return guardianError(c, err)
		}
	}

	// Step 4: resolve guardian 2 when provided.
	var guardian2ID *string
	if !req.Guardian2.Empty() {
		in := req.Guardian2
		in.Photo = guardian2Photo
		id, err := resolver.ResolveNew(admissions.SecondaryGuardian, in)
		if err != nil {
			return guardianError(c, err)
		}
		guardian2ID = &id
	}

	// Step 5: create the student.
	student := &models.Student{
		RegistrationID: admissions.NewIDGenerator().RegistrationID(),
		LIN:            req.LIN,
		PaymentCode:    req.PaymentCode,
		Name:           req.Name,
		Class:          req.Class,
		Gender:         req.Gender,
		DateOfBirth:    req.DateOfBirth,
		Religion:       req.Religion,
		Section:        req.Section,
		House:          req.House,
		Club:           req.Club,
		Residence:      req.Residence,
		Guardian1ID:    guardian1ID,
		Guardian2ID:    guardian2ID,
		Photo:          studentPhoto,
	}
	if err := database.CreateStudent(db, student); err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error":   "Failed to register student",
			"message": "Failed to register student",
		})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Student registered successfully",
		"data":    student,
	})
}

func validateRegistration(req *RegistrationRequest) error {
	if err := helpers.ValidateStruct(req); err != nil {
		return err
	}
	if !admissions.ValidClass(req.Section, req.Class.Name) {
		return errors.New("Class " + req.Class.Name + " is not offered in " + string(req.Section))
	}
	if !admissions.ValidStream(req.Section, req.Class.Stream) {
		return errors.New("Stream " + req.Class.Stream + " is not offered in " + string(req.Section))
	}
	if !req.ContinuingParent {
		if err := req.Guardian1.Validate(admissions.PrimaryGuardian); err != nil {
			return err
		}
	}
	// A partially filled second guardian is an error, never silently
	// dropped.
	if !req.Guardian2.Empty() {
		if err := req.Guardian2.Validate(admissions.SecondaryGuardian); err != nil {
			return err
		}
	}
	return nil
}

func guardianError(c *fiber.Ctx, err error) error {
	if errors.Is(err, admissions.ErrInvalidGuardian) {
		return c.Status(422).JSON(fiber.Map{"error": "Invalid Guardian", "message": "Invalid Guardian"})
	}
	return c.Status(500).JSON(fiber.Map{
		"error":   "Failed to register guardian",
		"message": "Failed to register guardian",
	})
}

func uploadIfPresent(c *fiber.Ctx, uploader *services.PhotoUploader, field string) (string, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		// No file part means no photo was attached.
		return "", nil
	}
	return uploadFile(uploader, fileHeader)
}

func uploadFile(uploader *services.PhotoUploader, fileHeader *multipart.FileHeader) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()
	return uploader.Upload(fileHeader.Filename, file)
}
