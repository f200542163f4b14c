package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uqpp/uqpp-api/internal/dto"
	"github.com/uqpp/uqpp-api/internal/models"
	appErrors "github.com/uqpp/uqpp-api/pkg/errors"
	"github.com/uqpp/uqpp-api/pkg/response"
)

type programCatalogue interface {
	Courses(ctx context.Context) ([]models.ProgramCourse, error)
}

type requirementsEvaluator interface {
	EvaluateSelection(ctx context.Context, codes []string) (*dto.RequirementsEvaluationResponse, error)
}

// ProgramHandler handles the program catalogue and requirements endpoints.
type ProgramHandler struct {
	program      programCatalogue
	requirements requirementsEvaluator
}

// NewProgramHandler constructs a program handler.
func NewProgramHandler(program programCatalogue, requirements requirementsEvaluator) *ProgramHandler {
	return &ProgramHandler{program: program, requirements: requirements}
}

// Courses godoc
// @Summary List the program's categorized courses
// @Tags Program
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 502 {object} response.Envelope
// @Router /program/courses [get]
func (h *ProgramHandler) Courses(c *gin.Context) {
	courses, err := h.program.Courses(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, courses)
}

// Evaluate godoc
// @Summary Check a course selection against the program requirements
// @Tags Program
// @Accept json
// @Produce json
// @Param payload body dto.EvaluateRequirementsRequest true "Selected course codes"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /program/requirements/evaluate [post]
func (h *ProgramHandler) Evaluate(c *gin.Context) {
	var req dto.EvaluateRequirementsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	evaluation, err := h.requirements.EvaluateSelection(c.Request.Context(), req.CourseCodes)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, evaluation)
}
