package time

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	var testCases = []struct {
		description string
		layout      string
		value       string
		expect      time.Time
		hasError    bool
	}{
		{
			description: "layout match",
			layout:      "2006-01-02 15:04:05",
			value:       "2021-03-04 05:06:07",
			expect:      time.Date(2021, 3, 4, 5, 6, 7, 0, time.UTC),
		},
		{
			description: "empty layout defaults to rfc3339",
			value:       "2021-03-04T05:06:07Z",
			expect:      time.Date(2021, 3, 4, 5, 6, 7, 0, time.UTC),
		},
		{
			description: "T separator adjusted",
			layout:      "2006-01-02 15:04:05",
			value:       "2021-03-04T05:06:07",
			expect:      time.Date(2021, 3, 4, 5, 6, 7, 0, time.UTC),
		},
		{
			description: "value shorter than layout",
			layout:      "2006-01-02 15:04:05",
			value:       "2021-03-04",
			expect:      time.Date(2021, 3, 4, 0, 0, 0, 0, time.UTC),
		},
		{
			description: "value longer than layout",
			layout:      "2006-01-02",
			value:       "2021-03-04 05:06:07",
			expect:      time.Date(2021, 3, 4, 0, 0, 0, 0, time.UTC),
		},
		{
			description: "garbage",
			layout:      "2006-01-02",
			value:       "not a date",
			hasError:    true,
		},
	}

	for _, testCase := range testCases {
		actual, err := Parse(testCase.layout, testCase.value)
		if testCase.hasError {
			assert.NotNil(t, err, testCase.description)
			continue
		}
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.True(t, testCase.expect.Equal(actual), testCase.description)
	}
}

func TestISOForms(t *testing.T) {
	ts := time.Date(2021, 3, 4, 5, 6, 7, 0, time.UTC)
	assert.EqualValues(t, "2021-03-04T05:06:07Z", ISODateTime(ts))
	assert.EqualValues(t, "2021-03-04", ISODate(ts))
	assert.EqualValues(t, "05:06:07", ISOClock(ts))
	assert.EqualValues(t, "04/03/2021", Format(ts, "02/01/2006"))
	assert.EqualValues(t, "2021-03-04T05:06:07Z", Format(ts, ""))
}

func TestProjections(t *testing.T) {
	ts := time.Date(2021, 3, 4, 5, 6, 7, 890, time.UTC)
	assert.EqualValues(t, time.Date(2021, 3, 4, 0, 0, 0, 0, time.UTC), DateOf(ts))
	clock := ClockOf(ts)
	assert.EqualValues(t, 5, clock.Hour())
	assert.EqualValues(t, 6, clock.Minute())
	assert.EqualValues(t, 7, clock.Second())
}

func TestEpoch(t *testing.T) {
	ts := time.Date(2021, 3, 4, 5, 6, 7, 500000000, time.UTC)
	assert.True(t, ts.Equal(FromEpoch(Epoch(ts))))
}
