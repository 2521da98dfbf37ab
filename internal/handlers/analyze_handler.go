package handlers

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"resumatch/resume-analyzer/internal/models"
	"resumatch/resume-analyzer/internal/repositories"
	"resumatch/resume-analyzer/internal/services"
)

type AnalyzeHandler struct {
	analyzer     services.AnalyzerService
	extractor    services.TextExtractor
	analysisRepo repositories.AnalysisRepository
	notifier     services.Notifier
	maxFileSize  int64
}

func NewAnalyzeHandler(
	analyzer services.AnalyzerService,
	extractor services.TextExtractor,
	analysisRepo repositories.AnalysisRepository,
	notifier services.Notifier,
	maxFileSize int64,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer:     analyzer,
		extractor:    extractor,
		analysisRepo: analysisRepo,
		notifier:     notifier,
		maxFileSize:  maxFileSize,
	}
}

// HandleAnalyze handles POST /analyze. The resume file is required here;
// the other analysis endpoints also accept pre-extracted resume text.
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	jobDescription := c.FormValue("job_description")
	if jobDescription == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Please provide a job description",
		})
	}

	file, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Please upload a resume file",
		})
	}

	if file.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to read uploaded file",
		})
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to read uploaded file",
		})
	}

	resumeText, err := h.extractor.ExtractText(file.Filename, data)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Could not read resume: %v", err),
		})
	}

	result, fallback := h.analyzer.MatchAnalysis(c.UserContext(), resumeText, jobDescription)

	response := models.AnalyzeResponse{
		Success:    true,
		Fallback:   fallback,
		Data:       result,
		ResumeText: resumeText,
	}

	// History persistence is best effort; the analysis result stands on
	// its own even when the save fails.
	analysis := &models.Analysis{
		ID:              uuid.New(),
		JobTitle:        "Analyzed Job",
		MatchScore:      result.MatchScore,
		MissingKeywords: result.MissingKeywords,
		Summary:         result.ProfileSummary,
		Fallback:        fallback,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
	if err := h.analysisRepo.Create(analysis); err != nil {
		log.Printf("⚠️  Failed to save analysis history: %v\n", err)
	} else {
		response.HistoryID = analysis.ID.String()
	}

	if userEmail := c.FormValue("user_email"); userEmail != "" {
		h.notifier.EnqueueAnalysisEmail(userEmail, result)
	}

	return c.JSON(response)
}

// HandleCoverLetter handles POST /analyze/cover-letter.
func (h *AnalyzeHandler) HandleCoverLetter(c *fiber.Ctx) error {
	jobDescription := c.FormValue("job_description")
	if jobDescription == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Job description required",
		})
	}

	resumeText, errResp := h.resumeTextFromRequest(c)
	if errResp != nil {
		return errResp
	}

	coverLetter, fallback := h.analyzer.CoverLetter(c.UserContext(), resumeText, jobDescription)

	return c.JSON(models.CoverLetterResponse{
		Success:     true,
		Fallback:    fallback,
		CoverLetter: coverLetter,
	})
}

// HandleInterviewQuestions handles POST /analyze/interview-questions.
func (h *AnalyzeHandler) HandleInterviewQuestions(c *fiber.Ctx) error {
	jobDescription := c.FormValue("job_description")
	if jobDescription == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Job description required",
		})
	}

	resumeText, errResp := h.resumeTextFromRequest(c)
	if errResp != nil {
		return errResp
	}

	questions, fallback := h.analyzer.InterviewQuestions(c.UserContext(), resumeText, jobDescription)

	return c.JSON(models.QuestionsResponse{
		Success:   true,
		Fallback:  fallback,
		Questions: questions,
	})
}

// HandleInterviewFeedback handles POST /analyze/interview-feedback.
func (h *AnalyzeHandler) HandleInterviewFeedback(c *fiber.Ctx) error {
	var req models.FeedbackRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.Question == "" || req.Answer == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Question and answer are required",
		})
	}

	feedback, fallback := h.analyzer.InterviewFeedback(c.UserContext(), req.Question, req.Answer)

	return c.JSON(models.FeedbackResponse{
		Success:  true,
		Fallback: fallback,
		Feedback: feedback,
	})
}

// HandleOptimize handles POST /analyze/optimize. Unlike the other tasks,
// a failed optimization has no usable degraded result, so it is reported as
// an error instead of a fallback payload.
func (h *AnalyzeHandler) HandleOptimize(c *fiber.Ctx) error {
	jobDescription := c.FormValue("job_description")
	if jobDescription == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Job description required",
		})
	}

	resumeText, errResp := h.resumeTextFromRequest(c)
	if errResp != nil {
		return errResp
	}

	optimized, _ := h.analyzer.OptimizeResume(c.UserContext(), resumeText, jobDescription)
	if optimized == nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"success": false,
			"error":   "Could not optimize resume. Please try again later.",
		})
	}

	return c.JSON(models.OptimizeResponse{
		Success:       true,
		OptimizedData: optimized,
	})
}

// resumeTextFromRequest returns resume text from the resume_text form value
// or, failing that, extracts it from an uploaded resume file.
func (h *AnalyzeHandler) resumeTextFromRequest(c *fiber.Ctx) (string, *fiber.Error) {
	if resumeText := c.FormValue("resume_text"); resumeText != "" {
		return resumeText, nil
	}

	file, err := c.FormFile("resume")
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "Resume required (file or text)")
	}

	if file.Size > h.maxFileSize {
		return "", fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize))
	}

	src, err := file.Open()
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "Failed to read uploaded file")
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "Failed to read uploaded file")
	}

	resumeText, err := h.extractor.ExtractText(file.Filename, data)
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("Could not read resume: %v", err))
	}

	return resumeText, nil
}
