package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCalculateStay(t *testing.T) {
	quote, err := CalculateStay(day(2024, 1, 10), day(2024, 1, 12), 100, fixedDay)
	require.NoError(t, err)
	assert.Equal(t, 2, quote.Nights)
	assert.Equal(t, 200, quote.Total)
	assert.Equal(t, 100, quote.NightlyPrice)
}

func TestCalculateStay_PartialDayRoundsUp(t *testing.T) {
	in := time.Date(2024, 2, 1, 15, 0, 0, 0, time.UTC)
	out := time.Date(2024, 2, 3, 11, 0, 0, 0, time.UTC)

	quote, err := CalculateStay(in, out, 90, fixedDay)
	require.NoError(t, err)
	assert.Equal(t, 2, quote.Nights)
	assert.Equal(t, 180, quote.Total)
}

func TestCalculateStay_CheckInTodayIsAllowed(t *testing.T) {
	quote, err := CalculateStay(day(2024, 1, 1), day(2024, 1, 2), 50, fixedDay)
	require.NoError(t, err)
	assert.Equal(t, 1, quote.Nights)
}

func TestCalculateStay_Rejections(t *testing.T) {
	cases := []struct {
		name     string
		in, out  time.Time
		wantCode string
	}{
		{"check-in in the past", day(2023, 12, 31), day(2024, 1, 3), DateErrCheckInPast},
		{"check-out equals check-in", day(2024, 1, 5), day(2024, 1, 5), DateErrCheckoutOrder},
		{"check-out before check-in", day(2024, 1, 5), day(2024, 1, 4), DateErrCheckoutOrder},
		{"longer than a year", day(2024, 1, 10), day(2025, 1, 10), DateErrStayTooLong},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := CalculateStay(tc.in, tc.out, 100, fixedDay)
			var de *DateError
			require.True(t, errors.As(err, &de))
			assert.Equal(t, tc.wantCode, de.Code)
		})
	}
}

func TestCalculateStay_LongestStay(t *testing.T) {
	quote, err := CalculateStay(day(2024, 1, 1), day(2024, 12, 31), 1000000, fixedDay)
	require.NoError(t, err)
	assert.Equal(t, MaxStayNights, quote.Nights)
	assert.Equal(t, MaxStayNights*1000000, quote.Total)
}

func TestCalculateStay_TotalOverflow(t *testing.T) {
	quote, err := CalculateStay(day(2024, 1, 10), day(2024, 1, 12), 1<<62, fixedDay)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "got %v", err)
	assert.Equal(t, "price", verr.Fields[0].Field)
	assert.Zero(t, quote.Total)
}

func TestCalculateStay_MissingDateGivesEmptyQuote(t *testing.T) {
	quote, err := CalculateStay(time.Time{}, day(2024, 1, 3), 100, fixedDay)
	require.NoError(t, err)
	assert.Zero(t, quote.Nights)
	assert.Zero(t, quote.Total)
}

func TestParseStayDate(t *testing.T) {
	d, err := ParseStayDate("2024-03-09")
	require.NoError(t, err)
	assert.Equal(t, day(2024, 3, 9), d)

	ts, err := ParseStayDate("2024-03-09T14:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, 14, ts.Hour())

	_, err = ParseStayDate("09/03/2024")
	var de *DateError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, DateErrInvalidFormat, de.Code)
}
