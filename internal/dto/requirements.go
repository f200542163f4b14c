package dto

import "github.com/uqpp/uqpp-api/internal/models"

// EvaluateRequirementsRequest is the inbound body for a requirements check.
type EvaluateRequirementsRequest struct {
	CourseCodes []string `json:"course_codes" binding:"required,min=1,dive,required"`
}

// RuleResult reports one program rule outcome.
type RuleResult struct {
	Rule      string `json:"rule"`
	Satisfied bool   `json:"satisfied"`
	Units     int    `json:"units"`
	Message   string `json:"message"`
}

// RequirementsEvaluation is the outcome of running every rule.
type RequirementsEvaluation struct {
	Satisfied   bool         `json:"satisfied"`
	Rules       []RuleResult `json:"rules"`
	Diagnostics []string     `json:"diagnostics,omitempty"`
}

// RequirementsEvaluationResponse pairs the evaluation with the program
// courses the selection matched.
type RequirementsEvaluationResponse struct {
	RequirementsEvaluation
	Courses []models.ProgramCourse `json:"courses"`
}
