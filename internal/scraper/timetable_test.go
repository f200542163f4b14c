package scraper

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uqpp/uqpp-api/internal/models"
	appErrors "github.com/uqpp/uqpp-api/pkg/errors"
	"github.com/uqpp/uqpp-api/pkg/timeclock"
)

const timetableFeed = `{
  "X_S1_STLUC_IN": {
    "subject_code": "X_S1_STLUC_IN",
    "faculty": "Engineering, Architecture and Information Technology",
    "activities": {
      "LEC1|01": {
        "activity_code": "LEC1",
        "location": "49-200",
        "start_time": "09:00",
        "duration": "60",
        "activity_type": "LECTURE",
        "day_of_week": "MON",
        "activitiesDays": ["04/03/2024"]
      }
    }
  }
}`

func TestTimetableExtractSingleOffering(t *testing.T) {
	offerings, err := NewTimetableExtractor().Extract([]byte(timetableFeed), "X")
	require.NoError(t, err)
	require.Len(t, offerings, 1)

	offering := offerings[0]
	assert.Equal(t, "X_S1_STLUC_IN", offering.Code)
	assert.Equal(t, 1, offering.Semester)
	assert.Equal(t, "STLUC", offering.Campus)
	assert.Equal(t, models.AttendanceInPerson, offering.AttendanceMode)
	require.Len(t, offering.Activities, 1)

	activity := offering.Activities[0]
	assert.Equal(t, "LEC1", activity.Code)
	assert.Equal(t, "49-200", activity.Location)
	assert.Equal(t, timeclock.Clock{Hour: 9, Minute: 0}, activity.StartTime)
	assert.Equal(t, timeclock.Clock{Hour: 10, Minute: 0}, activity.EndTime)
	assert.Equal(t, 60, activity.Duration)
	assert.Equal(t, models.ActivityLecture, activity.Type)
	assert.Equal(t, models.DayMon, activity.Day)
	assert.Equal(t, []timeclock.Date{{Year: 2024, Month: time.March, Day: 4}}, activity.Dates)
}

func TestTimetableExtractEmptyDocuments(t *testing.T) {
	for _, doc := range []string{"", "{}", "null"} {
		offerings, err := NewTimetableExtractor().Extract([]byte(doc), "X")
		require.NoError(t, err, "doc=%q", doc)
		assert.Empty(t, offerings)
		assert.NotNil(t, offerings)
	}
}

func TestTimetableExtractNumericDuration(t *testing.T) {
	feed := `{"X_S2_STLUC_EX":{"activities":{"T1":{
	  "activity_code":"T1","location":"online","start_time":"14:30","duration":90,
	  "activity_type":"tutorial","day_of_week":"fri","activitiesDays":[]}}}}`
	offerings, err := NewTimetableExtractor().Extract([]byte(feed), "X")
	require.NoError(t, err)
	require.Len(t, offerings, 1)
	assert.Equal(t, 2, offerings[0].Semester)
	assert.Equal(t, models.AttendanceExternal, offerings[0].AttendanceMode)
	activity := offerings[0].Activities[0]
	assert.Equal(t, 90, activity.Duration)
	assert.Equal(t, timeclock.Clock{Hour: 16, Minute: 0}, activity.EndTime)
	assert.Equal(t, models.ActivityTutorial, activity.Type)
	assert.Equal(t, models.DayFri, activity.Day)
}

func TestTimetableExtractInvalidAttendanceModeIsFatal(t *testing.T) {
	feed := `{"CSSE6400_S1_STLUC_XX":{"activities":{}}}`
	_, err := NewTimetableExtractor().Extract([]byte(feed), "CSSE6400")
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrVocabulary))
	assert.Contains(t, err.Error(), "CSSE6400")
	assert.Contains(t, err.Error(), "XX")
}

func TestTimetableExtractUnknownActivityTypeIsFatal(t *testing.T) {
	feed := `{"X_S1_STLUC_IN":{"activities":{"W1":{
	  "activity_code":"W1","start_time":"09:00","duration":"60",
	  "activity_type":"WORKSHOP","day_of_week":"MON","activitiesDays":[]}}}}`
	_, err := NewTimetableExtractor().Extract([]byte(feed), "X")
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrVocabulary))
	assert.Contains(t, err.Error(), "WORKSHOP")
}

func TestTimetableExtractMalformedKeyIsParseError(t *testing.T) {
	feed := `{"X_S1_STLUC":{"activities":{}}}`
	_, err := NewTimetableExtractor().Extract([]byte(feed), "X")
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrParse))
}

func TestTimetableExtractDeterministicOrder(t *testing.T) {
	feed := `{
	  "X_S2_STLUC_IN":{"activities":{}},
	  "X_S1_STLUC_IN":{"activities":{}}
	}`
	offerings, err := NewTimetableExtractor().Extract([]byte(feed), "X")
	require.NoError(t, err)
	require.Len(t, offerings, 2)
	assert.Equal(t, "X_S1_STLUC_IN", offerings[0].Code)
	assert.Equal(t, "X_S2_STLUC_IN", offerings[1].Code)
}

func TestTimetableExtractPreservesDateOrder(t *testing.T) {
	feed := `{"X_S1_STLUC_IN":{"activities":{"L1":{
	  "activity_code":"L1","start_time":"08:00","duration":"120",
	  "activity_type":"LECTURE","day_of_week":"WED",
	  "activitiesDays":["13/03/2024","06/03/2024","20/03/2024"]}}}}`
	offerings, err := NewTimetableExtractor().Extract([]byte(feed), "X")
	require.NoError(t, err)
	dates := offerings[0].Activities[0].Dates
	require.Len(t, dates, 3)
	assert.Equal(t, 13, dates[0].Day)
	assert.Equal(t, 6, dates[1].Day)
	assert.Equal(t, 20, dates[2].Day)
}
