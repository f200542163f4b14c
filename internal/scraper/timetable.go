package scraper

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	"github.com/uqpp/uqpp-api/internal/models"
	appErrors "github.com/uqpp/uqpp-api/pkg/errors"
	"github.com/uqpp/uqpp-api/pkg/timeclock"
)

// feedOffering mirrors one timetable feed entry.
type feedOffering struct {
	SubjectCode string                  `json:"subject_code"`
	Faculty     string                  `json:"faculty"`
	Activities  map[string]feedActivity `json:"activities"`
}

// feedActivity mirrors one nested activity record. Duration arrives as a
// string in some feed years and a number in others.
type feedActivity struct {
	ActivityCode   string      `json:"activity_code"`
	Location       string      `json:"location"`
	StartTime      string      `json:"start_time"`
	Duration       json.Number `json:"duration"`
	ActivityType   string      `json:"activity_type"`
	DayOfWeek      string      `json:"day_of_week"`
	ActivitiesDays []string    `json:"activitiesDays"`
}

// TimetableExtractor turns the timetable feed into offerings.
type TimetableExtractor struct{}

// NewTimetableExtractor constructs a timetable extractor.
func NewTimetableExtractor() *TimetableExtractor {
	return &TimetableExtractor{}
}

// Extract parses the feed for one course code. The parse is all-or-nothing:
// either every offering and activity converts, or the whole extraction fails.
// An empty or absent document yields an empty slice. Feed keys are opaque and
// unordered, so output is sorted by key for determinism.
func (e *TimetableExtractor) Extract(data []byte, courseCode string) ([]models.Offering, error) {
	if len(data) == 0 {
		return []models.Offering{}, nil
	}

	var feed map[string]feedOffering
	if err := json.Unmarshal(data, &feed); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrParse.Code, appErrors.ErrParse.Status, "decode timetable feed")
	}
	if len(feed) == 0 {
		return []models.Offering{}, nil
	}

	keys := make([]string, 0, len(feed))
	for key := range feed {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	offerings := make([]models.Offering, 0, len(keys))
	for _, key := range keys {
		offering, err := e.offering(key, feed[key], courseCode)
		if err != nil {
			return nil, err
		}
		offerings = append(offerings, *offering)
	}
	return offerings, nil
}

// offering converts one feed entry. The subject code encodes course code,
// semester marker, campus, and attendance code separated by underscores, e.g.
// "CSSE6400_S1_STLUC_IN". Entries without the subject_code field fall back to
// the entry key, which carries the same value.
func (e *TimetableExtractor) offering(key string, raw feedOffering, courseCode string) (*models.Offering, error) {
	subjectCode := raw.SubjectCode
	if subjectCode == "" {
		subjectCode = key
	}

	parts := strings.Split(subjectCode, "_")
	if len(parts) != 4 {
		return nil, appErrors.Parsef("timetable subject code %q for course %s is not a 4-part code", subjectCode, courseCode)
	}

	semesterMarker := parts[1]
	if len(semesterMarker) < 2 {
		return nil, appErrors.Parsef("timetable subject code %q has malformed semester marker %q", subjectCode, semesterMarker)
	}
	semester, err := strconv.Atoi(semesterMarker[1:2])
	if err != nil {
		return nil, appErrors.Parsef("timetable subject code %q has non-numeric semester marker %q", subjectCode, semesterMarker)
	}

	mode, err := models.ParseAttendanceMode(courseCode, parts[3])
	if err != nil {
		return nil, err
	}

	activityKeys := make([]string, 0, len(raw.Activities))
	for actKey := range raw.Activities {
		activityKeys = append(activityKeys, actKey)
	}
	sort.Strings(activityKeys)

	activities := make([]models.Activity, 0, len(activityKeys))
	for _, actKey := range activityKeys {
		activity, err := e.activity(actKey, raw.Activities[actKey])
		if err != nil {
			return nil, err
		}
		activities = append(activities, *activity)
	}

	return &models.Offering{
		Code:           subjectCode,
		Semester:       semester,
		Campus:         parts[2],
		AttendanceMode: mode,
		Faculty:        raw.Faculty,
		Activities:     activities,
	}, nil
}

func (e *TimetableExtractor) activity(key string, raw feedActivity) (*models.Activity, error) {
	start, err := timeclock.ParseClock(raw.StartTime)
	if err != nil {
		return nil, appErrors.Parsef("activity %s has invalid start time %q", key, raw.StartTime)
	}

	duration, err := strconv.Atoi(raw.Duration.String())
	if err != nil {
		return nil, appErrors.Parsef("activity %s has invalid duration %q", key, raw.Duration.String())
	}

	activityType, err := models.ParseActivityType(raw.ActivityType)
	if err != nil {
		return nil, err
	}
	day, err := models.ParseDay(raw.DayOfWeek)
	if err != nil {
		return nil, err
	}

	// Recurrence dates keep the order the feed supplied.
	dates := make([]timeclock.Date, 0, len(raw.ActivitiesDays))
	for _, rawDate := range raw.ActivitiesDays {
		date, err := timeclock.ParseFeedDate(rawDate)
		if err != nil {
			return nil, appErrors.Parsef("activity %s has invalid date %q", key, rawDate)
		}
		dates = append(dates, date)
	}

	code := raw.ActivityCode
	if code == "" {
		code = key
	}

	return &models.Activity{
		Code:      code,
		Location:  raw.Location,
		StartTime: start,
		EndTime:   start.Add(duration),
		Duration:  duration,
		Type:      activityType,
		Day:       day,
		Dates:     dates,
	}, nil
}
