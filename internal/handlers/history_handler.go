package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"resumatch/resume-analyzer/internal/repositories"
)

type HistoryHandler struct {
	analysisRepo repositories.AnalysisRepository
}

func NewHistoryHandler(analysisRepo repositories.AnalysisRepository) *HistoryHandler {
	return &HistoryHandler{
		analysisRepo: analysisRepo,
	}
}

// HandleGetHistory handles GET /history
func (h *HistoryHandler) HandleGetHistory(c *fiber.Ctx) error {
	analyses, err := h.analysisRepo.FindRecent(20)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list analysis history",
		})
	}

	return c.JSON(analyses)
}

// HandleGetHistoryByID handles GET /history/:id
func (h *HistoryHandler) HandleGetHistoryByID(c *fiber.Ctx) error {
	idParam := c.Params("id")
	analysisID, err := uuid.Parse(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid analysis ID format",
		})
	}

	analysis, err := h.analysisRepo.FindByID(analysisID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Analysis not found",
		})
	}

	return c.JSON(analysis)
}
