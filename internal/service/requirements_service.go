package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/uqpp/uqpp-api/internal/dto"
	"github.com/uqpp/uqpp-api/internal/models"
)

type programCourseSelector interface {
	CoursesByCode(ctx context.Context, codes []string) ([]models.ProgramCourse, error)
}

// RequirementsService checks a course selection against the fixed MCompSc
// program rules. The rule set is not extensible; it exists for exactly one
// program structure.
type RequirementsService struct {
	program programCourseSelector
	logger  *zap.Logger
}

// NewRequirementsService constructs the requirements evaluator.
func NewRequirementsService(program programCourseSelector, logger *zap.Logger) *RequirementsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RequirementsService{program: program, logger: logger}
}

// requirementRule is one fixed program rule over the selected courses.
type requirementRule struct {
	name    string
	message string
	check   func(courses []models.ProgramCourse) (bool, int)
}

func unitsWhere(courses []models.ProgramCourse, pred func(models.ProgramCourse) bool) int {
	total := 0
	for _, course := range courses {
		if pred(course) {
			total += course.Units
		}
	}
	return total
}

func categoryUnits(courses []models.ProgramCourse, category models.CourseCategory) int {
	return unitsWhere(courses, func(c models.ProgramCourse) bool { return c.Category == category })
}

var requirementRules = []requirementRule{
	{
		name:    "total_units",
		message: "Complete 24 units",
		check: func(courses []models.ProgramCourse) (bool, int) {
			units := unitsWhere(courses, func(models.ProgramCourse) bool { return true })
			return units >= 24, units
		},
	},
	{
		name:    "level_6_units",
		message: "Selected courses must include at least 12 units at level 6 or higher.",
		check: func(courses []models.ProgramCourse) (bool, int) {
			units := unitsWhere(courses, func(c models.ProgramCourse) bool { return c.Level >= 6 })
			return units >= 12, units
		},
	},
	{
		name:    "level_7_units",
		message: "Selected courses must include at least 8 units at level 7.",
		check: func(courses []models.ProgramCourse) (bool, int) {
			units := unitsWhere(courses, func(c models.ProgramCourse) bool { return c.Level >= 7 })
			return units >= 8, units
		},
	},
	{
		name:    "flexible_core_units",
		message: "6 to 20 units from MCompSc Flexible Core Courses",
		check: func(courses []models.ProgramCourse) (bool, int) {
			units := categoryUnits(courses, models.CategoryFlexibleCore)
			return units >= 6 && units <= 20, units
		},
	},
	{
		name:    "research_units",
		message: "4 to 10 units from MCompSc Research Courses",
		check: func(courses []models.ProgramCourse) (bool, int) {
			units := categoryUnits(courses, models.CategoryResearch)
			return units >= 4 && units <= 10, units
		},
	},
	{
		name:    "undergraduate_elective_units",
		message: "0 to 6 units from MCompSc Advanced Undergraduate Elective Courses",
		check: func(courses []models.ProgramCourse) (bool, int) {
			units := categoryUnits(courses, models.CategoryUndergraduateElective)
			return units <= 6, units
		},
	},
	{
		name:    "postgraduate_elective_units",
		message: "0 to 8 units from MCompSc Postgraduate Elective Courses",
		check: func(courses []models.ProgramCourse) (bool, int) {
			units := categoryUnits(courses, models.CategoryPostgraduateElective)
			return units <= 8, units
		},
	},
}

// Evaluate runs every rule over the selection. Evaluation never
// short-circuits: every rule is checked and every failure reported.
func (s *RequirementsService) Evaluate(courses []models.ProgramCourse) dto.RequirementsEvaluation {
	evaluation := dto.RequirementsEvaluation{
		Satisfied: true,
		Rules:     make([]dto.RuleResult, 0, len(requirementRules)),
	}
	for _, rule := range requirementRules {
		ok, units := rule.check(courses)
		evaluation.Rules = append(evaluation.Rules, dto.RuleResult{
			Rule:      rule.name,
			Satisfied: ok,
			Units:     units,
			Message:   rule.message,
		})
		if !ok {
			evaluation.Satisfied = false
			evaluation.Diagnostics = append(evaluation.Diagnostics, rule.message)
		}
	}
	return evaluation
}

// EvaluateSelection resolves the requested codes against the program
// catalogue and evaluates the rules over the match. Category comes from the
// program crawl; the lookup pipeline never assigns it.
func (s *RequirementsService) EvaluateSelection(ctx context.Context, codes []string) (*dto.RequirementsEvaluationResponse, error) {
	selected, err := s.program.CoursesByCode(ctx, codes)
	if err != nil {
		return nil, err
	}

	evaluation := s.Evaluate(selected)
	s.logger.Info("requirements evaluated",
		zap.Int("requested", len(codes)),
		zap.Int("matched", len(selected)),
		zap.Bool("satisfied", evaluation.Satisfied))

	return &dto.RequirementsEvaluationResponse{
		RequirementsEvaluation: evaluation,
		Courses:                selected,
	}, nil
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
