package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uqpp/uqpp-api/internal/dto"
	"github.com/uqpp/uqpp-api/internal/models"
	appErrors "github.com/uqpp/uqpp-api/pkg/errors"
	"github.com/uqpp/uqpp-api/pkg/response"
)

type programCatalogueMock struct {
	courses []models.ProgramCourse
	err     error
}

func (m *programCatalogueMock) Courses(ctx context.Context) ([]models.ProgramCourse, error) {
	return m.courses, m.err
}

type requirementsEvaluatorMock struct {
	resp      *dto.RequirementsEvaluationResponse
	err       error
	lastCodes []string
}

func (m *requirementsEvaluatorMock) EvaluateSelection(ctx context.Context, codes []string) (*dto.RequirementsEvaluationResponse, error) {
	m.lastCodes = codes
	if m.err != nil {
		return nil, m.err
	}
	return m.resp, nil
}

func TestProgramHandlerCourses(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewProgramHandler(&programCatalogueMock{courses: []models.ProgramCourse{
		{Code: "CSSE6400", Category: models.CategoryFlexibleCore},
	}}, &requirementsEvaluatorMock{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/program/courses", nil)

	h.Courses(c)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestProgramHandlerCoursesUpstreamError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewProgramHandler(&programCatalogueMock{err: appErrors.ErrUpstream}, &requirementsEvaluatorMock{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/program/courses", nil)

	h.Courses(c)
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestProgramHandlerEvaluate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockEval := &requirementsEvaluatorMock{resp: &dto.RequirementsEvaluationResponse{
		RequirementsEvaluation: dto.RequirementsEvaluation{Satisfied: true},
	}}
	h := NewProgramHandler(&programCatalogueMock{}, mockEval)

	body := bytes.NewBufferString(`{"course_codes":["CSSE6400","COMP7500"]}`)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/program/requirements/evaluate", body)
	c.Request.Header.Set("Content-Type", "application/json")

	h.Evaluate(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"CSSE6400", "COMP7500"}, mockEval.lastCodes)

	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, true, data["satisfied"])
}

func TestProgramHandlerEvaluateRejectsEmptySelection(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewProgramHandler(&programCatalogueMock{}, &requirementsEvaluatorMock{})

	for _, payload := range []string{`{}`, `{"course_codes":[]}`, `{"course_codes":`} {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request, _ = http.NewRequest(http.MethodPost, "/program/requirements/evaluate", bytes.NewBufferString(payload))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Evaluate(c)
		assert.Equal(t, http.StatusBadRequest, w.Code, "payload=%s", payload)
	}
}
