package models

import (
	"strings"

	appErrors "github.com/uqpp/uqpp-api/pkg/errors"
)

// Day is a calendar weekday as the timetable feed spells it.
type Day string

const (
	DayMon Day = "MON"
	DayTue Day = "TUE"
	DayWed Day = "WED"
	DayThu Day = "THU"
	DayFri Day = "FRI"
	DaySat Day = "SAT"
	DaySun Day = "SUN"
)

var days = map[string]Day{
	"MON": DayMon, "TUE": DayTue, "WED": DayWed, "THU": DayThu,
	"FRI": DayFri, "SAT": DaySat, "SUN": DaySun,
}

// ParseDay maps a feed day-of-week string, case-insensitively.
func ParseDay(raw string) (Day, error) {
	if d, ok := days[strings.ToUpper(raw)]; ok {
		return d, nil
	}
	return "", appErrors.Vocabularyf("unrecognized day of week: %q", raw)
}

// AttendanceMode is how an offering is delivered.
type AttendanceMode string

const (
	AttendanceInPerson AttendanceMode = "IN_PERSON"
	AttendanceExternal AttendanceMode = "EXTERNAL"
)

// ParseAttendanceMode maps the feed's two-letter delivery code. Anything
// outside IN/EX is an unrecoverable input error naming the course and code.
func ParseAttendanceMode(courseCode, raw string) (AttendanceMode, error) {
	switch raw {
	case "IN":
		return AttendanceInPerson, nil
	case "EX":
		return AttendanceExternal, nil
	default:
		return "", appErrors.Vocabularyf("invalid attendance mode for course %s: %q", courseCode, raw)
	}
}

// ActivityType classifies a scheduled meeting pattern.
type ActivityType string

const (
	ActivityLecture   ActivityType = "LECTURE"
	ActivityPractical ActivityType = "PRACTICAL"
	ActivityTutorial  ActivityType = "TUTORIAL"
	ActivityStudio    ActivityType = "STUDIO"
	ActivityDelayed   ActivityType = "DELAYED"
)

var activityTypes = map[string]ActivityType{
	"LECTURE":   ActivityLecture,
	"PRACTICAL": ActivityPractical,
	"TUTORIAL":  ActivityTutorial,
	"STUDIO":    ActivityStudio,
	"DELAYED":   ActivityDelayed,
}

// ParseActivityType maps a feed activity type string, case-insensitively.
func ParseActivityType(raw string) (ActivityType, error) {
	if t, ok := activityTypes[strings.ToUpper(raw)]; ok {
		return t, nil
	}
	return "", appErrors.Vocabularyf("unrecognized activity type: %q", raw)
}

// AssessmentMethod is a coarse classification of how a course is assessed.
// The detail page renders assessment methods as free text, so extraction keeps
// the raw strings; this vocabulary exists for callers that classify them.
type AssessmentMethod string

const (
	AssessmentAssignment  AssessmentMethod = "ASSIGNMENT"
	AssessmentProject     AssessmentMethod = "PROJECT"
	AssessmentExamination AssessmentMethod = "EXAMINATION"
)

// CourseCategory places a course within a program's requirement structure.
type CourseCategory string

const (
	CategoryFlexibleCore          CourseCategory = "FLEXIBLE_CORE"
	CategoryResearch              CourseCategory = "RESEARCH"
	CategoryUndergraduateElective CourseCategory = "UNDERGRADUATE_ELECTIVE"
	CategoryPostgraduateElective  CourseCategory = "POSTGRADUATE_ELECTIVE"
)

// Categories lists every program category in the order the requirements page
// renders its part-A blocks.
func Categories() []CourseCategory {
	return []CourseCategory{
		CategoryFlexibleCore,
		CategoryResearch,
		CategoryUndergraduateElective,
		CategoryPostgraduateElective,
	}
}
