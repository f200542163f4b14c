package timeclock

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	c, err := ParseClock("09:05")
	require.NoError(t, err)
	assert.Equal(t, Clock{Hour: 9, Minute: 5}, c)

	_, err = ParseClock("25:00")
	assert.Error(t, err)

	_, err = ParseClock("9am")
	assert.Error(t, err)
}

func TestClockAdd(t *testing.T) {
	start, err := ParseClock("09:00")
	require.NoError(t, err)
	assert.Equal(t, Clock{Hour: 10, Minute: 0}, start.Add(60))
	assert.Equal(t, start, start.Add(0))
}

func TestClockAddWrapsAtDayBoundary(t *testing.T) {
	late, err := ParseClock("23:30")
	require.NoError(t, err)
	assert.Equal(t, Clock{Hour: 0, Minute: 15}, late.Add(45))
}

func TestClockAddNeverRewindsWithinDay(t *testing.T) {
	// For any start + duration that stays under 24:00 the result must not be
	// earlier than the start.
	for _, startMin := range []int{0, 540, 1050, 1439} {
		start := Clock{Hour: startMin / 60, Minute: startMin % 60}
		for _, duration := range []int{0, 1, 90, 1439} {
			if startMin+duration >= 24*60 {
				continue
			}
			end := start.Add(duration)
			assert.False(t, end.Before(start), "start=%s duration=%d end=%s", start, duration, end)
		}
	}
}

func TestClockJSONRoundTrip(t *testing.T) {
	c := Clock{Hour: 8, Minute: 30}
	data, err := json.Marshal(c)
	require.NoError(t, err)
	assert.Equal(t, `"08:30"`, string(data))

	var back Clock
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, c, back)
}

func TestParseFeedDate(t *testing.T) {
	d, err := ParseFeedDate("04/03/2024")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2024, Month: time.March, Day: 4}, d)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-04"`, string(data))

	_, err = ParseFeedDate("2024-03-04")
	assert.Error(t, err)
}
