package interviews

import (
	"database/sql"

	"github.com/dementa/mjs/app/admissions"
	"github.com/dementa/mjs/app/config"
	"github.com/dementa/mjs/app/database"
	"github.com/dementa/mjs/app/helpers"
	"github.com/dementa/mjs/app/models"

	"github.com/gofiber/fiber/v2"
)

func GetInterviewsAPI(c *fiber.Ctx) error {
	admissionStatus := c.Query("admission_status")

	list, err := database.GetInterviews(config.GetDB(), admissionStatus)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch interviews"})
	}
	if list == nil {
		list = []*models.Interview{}
	}
	return c.JSON(list)
}

func GetInterviewAPI(c *fiber.Ctx) error {
	iv, err := database.GetInterviewByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Interview not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch interview"})
	}
	return c.JSON(fiber.Map{"data": iv})
}

// CreateInterviewAPI issues a new interview. The new-interview form grades
// with the binary rule unless the payload picks a strategy explicitly.
func CreateInterviewAPI(c *fiber.Ctx) error {
	var dto models.CreateInterviewDTO
	if err := c.BodyParser(&dto); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := helpers.ValidateStruct(&dto); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if err := admissions.ValidateCatalog(dto.Section, dto.Class, dto.Subject); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	iv := &models.Interview{
		FirstName:       dto.FirstName,
		LastName:        dto.LastName,
		OtherNames:      dto.OtherNames,
		PreviousSchool:  dto.PreviousSchool,
		Section:         dto.Section,
		Class:           dto.Class,
		Subject:         dto.Subject,
		Status:          models.InterviewPending,
		AdmissionStatus: models.AdmissionPending,
		IssuedBy:        dto.IssuedBy,
	}
	if dto.Feedback != "" {
		iv.Feedback = &dto.Feedback
	}
	if dto.Score != nil {
		strategy := admissions.ParseStrategy(dto.Grading, admissions.Binary)
		score := *dto.Score
		iv.Score = &score
		grade := admissions.GradeFor(strategy, score)
		if grade.Aggregate != "" {
			iv.Aggregate = &grade.Aggregate
		}
		iv.Status = admissions.StatusFor(strategy, iv.Score)
	}

	if err := database.CreateInterview(config.GetDB(), iv); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create interview"})
	}
	return c.Status(201).JSON(iv)
}

// UpdateInterviewAPI handles the whole-record PUT used by the
// update-interview form. The id travels in the body.
func UpdateInterviewAPI(c *fiber.Ctx) error {
	var dto models.UpdateInterviewDTO
	if err := c.BodyParser(&dto); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if dto.ID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Interview id is required"})
	}
	return updateInterview(c, dto.ID, &dto)
}

// PatchInterviewAPI handles partial updates with the id in the path and
// only changed fields in the body.
func PatchInterviewAPI(c *fiber.Ctx) error {
	var dto models.UpdateInterviewDTO
	if err := c.BodyParser(&dto); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	return updateInterview(c, c.Params("id"), &dto)
}

func updateInterview(c *fiber.Ctx, id string, dto *models.UpdateInterviewDTO) error {
	if err := helpers.ValidateStruct(dto); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	iv, err := database.GetInterviewByID(config.GetDB(), id)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Interview not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch interview"})
	}

	if err := applyUpdate(iv, dto); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := database.UpdateInterview(config.GetDB(), iv); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update interview"})
	}
	return c.JSON(iv)
}

// applyUpdate folds an update payload into the stored record. A section
// change clears class/subject choices the new section does not allow; a
// score write re-derives status under the update flow's banded rule and
// must arrive together with feedback.
func applyUpdate(iv *models.Interview, dto *models.UpdateInterviewDTO) error {
	if dto.FirstName != nil {
		iv.FirstName = *dto.FirstName
	}
	if dto.LastName != nil {
		iv.LastName = *dto.LastName
	}
	if dto.OtherNames != nil {
		iv.OtherNames = *dto.OtherNames
	}
	if dto.PreviousSchool != nil {
		iv.PreviousSchool = *dto.PreviousSchool
	}
	if dto.Section != nil {
		admissions.ChangeSection(iv, *dto.Section)
	}
	if dto.Class != nil {
		iv.Class = *dto.Class
	}
	if dto.Subject != nil {
		iv.Subject = *dto.Subject
	}
	if dto.IssuedBy != nil {
		iv.IssuedBy = *dto.IssuedBy
	}

	// A record may sit with cleared class/subject after a section change,
	// but anything present must belong to the section's catalog.
	if iv.Class != "" && !admissions.ValidClass(iv.Section, iv.Class) {
		return admissions.ValidateCatalog(iv.Section, iv.Class, iv.Subject)
	}
	if iv.Subject != "" && !admissions.ValidSubject(iv.Section, iv.Subject) {
		return admissions.ValidateCatalog(iv.Section, iv.Class, iv.Subject)
	}

	if dto.HasScoreUpdate() {
		if dto.Feedback == nil {
			return admissions.ErrFeedbackRequired
		}
		strategy := admissions.ParseStrategy(dto.Grading, admissions.Banded)
		return admissions.ApplyScore(iv, strategy, *dto.Score, *dto.Feedback)
	}
	if dto.Feedback != nil {
		iv.Feedback = dto.Feedback
	}
	return nil
}

// AdvanceAdmissionAPI moves a candidate one step through the admission
// queue, a staff decision independent of the interview outcome.
func AdvanceAdmissionAPI(c *fiber.Ctx) error {
	type AdvanceRequest struct {
		AdmissionStatus models.AdmissionStatus `json:"admissionStatus"`
	}

	var req AdvanceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	iv, err := database.GetInterviewByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Interview not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch interview"})
	}

	if err := admissions.AdvanceAdmission(iv, req.AdmissionStatus); err != nil {
		return c.Status(409).JSON(fiber.Map{"error": err.Error()})
	}

	if err := database.UpdateInterview(config.GetDB(), iv); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update interview"})
	}
	return c.JSON(iv)
}

func DeleteInterviewAPI(c *fiber.Ctx) error {
	if err := database.DeleteInterview(config.GetDB(), c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Interview not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete interview"})
	}
	return c.JSON(fiber.Map{"message": "Interview deleted successfully"})
}
