package models

import "github.com/uqpp/uqpp-api/pkg/timeclock"

// Activity is a single recurring scheduled meeting pattern for an offering.
type Activity struct {
	Code      string           `json:"code"`
	Location  string           `json:"location"`
	StartTime timeclock.Clock  `json:"start_time"`
	EndTime   timeclock.Clock  `json:"end_time"`
	Duration  int              `json:"duration"` // minutes
	Type      ActivityType     `json:"type"`
	Day       Day              `json:"day"`
	Dates     []timeclock.Date `json:"dates"`
}

// Offering is one semester/campus/mode delivery instance of a course.
type Offering struct {
	Code           string         `json:"code"`
	Semester       int            `json:"semester"`
	Campus         string         `json:"campus"`
	AttendanceMode AttendanceMode `json:"attendance_mode"`
	Faculty        string         `json:"faculty,omitempty"`
	Activities     []Activity     `json:"activities"`
}

// Course is the top-level aggregate for one course code. A lookup constructs
// it from the detail page and then attaches the merged offerings exactly once.
type Course struct {
	Faculty           string         `json:"faculty"`
	School            string         `json:"school"`
	Code              string         `json:"code"`
	Name              string         `json:"name"`
	Level             string         `json:"level"`
	Units             int            `json:"units"`
	Duration          string         `json:"duration"`
	ContactHours      string         `json:"contact_hours"`
	Coordinator       string         `json:"coordinator"`
	CoordinatorEmail  string         `json:"coordinator_email"`
	AssessmentMethods string         `json:"assessment_methods"`
	Category          CourseCategory `json:"category,omitempty"`
	Offerings         []Offering     `json:"offerings"`
}

// ProgramCourse is one entry of a program's categorized course list as the
// requirements page renders it. Level is numeric here because the category
// rules compare levels arithmetically.
type ProgramCourse struct {
	Code     string         `json:"code"`
	Name     string         `json:"name"`
	Units    int            `json:"units"`
	Level    int            `json:"level"`
	Category CourseCategory `json:"category"`
}
