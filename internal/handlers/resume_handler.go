package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"resumatch/resume-analyzer/internal/models"
	"resumatch/resume-analyzer/internal/repositories"
)

type ResumeHandler struct {
	resumeRepo repositories.ResumeRepository
}

func NewResumeHandler(resumeRepo repositories.ResumeRepository) *ResumeHandler {
	return &ResumeHandler{
		resumeRepo: resumeRepo,
	}
}

// HandleSaveResume handles POST /resumes
func (h *ResumeHandler) HandleSaveResume(c *fiber.Ctx) error {
	var resume models.Resume

	if err := c.BodyParser(&resume); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if resume.FullName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "fullName is required",
		})
	}

	resume.ID = uuid.New()
	resume.CreatedAt = time.Now()
	resume.UpdatedAt = time.Now()

	if err := h.resumeRepo.Create(&resume); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save resume",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(resume)
}

// HandleGetResumes handles GET /resumes
func (h *ResumeHandler) HandleGetResumes(c *fiber.Ctx) error {
	userEmail := c.Query("user_email")
	if userEmail == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "user_email is required",
		})
	}

	resumes, err := h.resumeRepo.FindByUserEmail(userEmail)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list resumes",
		})
	}

	return c.JSON(resumes)
}
