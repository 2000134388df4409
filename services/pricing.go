package services

import (
	"fmt"
	"math"
	"strings"
	"time"
)

const (
	DateErrCheckInPast   = "checkin-in-past"
	DateErrCheckoutOrder = "checkout-before-checkin"
	DateErrInvalidFormat = "invalid-date"
	DateErrStayTooLong   = "stay-too-long"
	dateLayout           = "2006-01-02"

	// MaxStayNights bounds a single booking.
	MaxStayNights = 365
)

// DateError rejects a stay's date range.
type DateError struct {
	Code string
}

func (e *DateError) Error() string {
	switch e.Code {
	case DateErrCheckInPast:
		return "check-in date cannot be in the past"
	case DateErrCheckoutOrder:
		return "check-out date must be after check-in date"
	case DateErrInvalidFormat:
		return "dates must be YYYY-MM-DD or RFC 3339"
	case DateErrStayTooLong:
		return fmt.Sprintf("a stay cannot exceed %d nights", MaxStayNights)
	}
	return "invalid dates: " + e.Code
}

// Field names the input the error is about.
func (e *DateError) Field() string {
	if e.Code == DateErrCheckoutOrder || e.Code == DateErrStayTooLong {
		return "checkOut"
	}
	return "checkIn"
}

// StayQuote is the price of a stay; zero until both dates are set.
type StayQuote struct {
	CheckIn      time.Time `json:"checkIn"`
	CheckOut     time.Time `json:"checkOut"`
	Nights       int       `json:"nights"`
	NightlyPrice int       `json:"nightlyPrice"`
	Total        int       `json:"total"`
}

// CalculateStay validates the range against today and prices it at
// ceil(days) nights times the nightly rate.
func CalculateStay(checkIn, checkOut time.Time, nightlyPrice int, today time.Time) (StayQuote, error) {
	quote := StayQuote{NightlyPrice: nightlyPrice}
	if checkIn.IsZero() || checkOut.IsZero() {
		return quote, nil
	}
	if dateOnly(checkIn).Before(dateOnly(today)) {
		return StayQuote{}, &DateError{Code: DateErrCheckInPast}
	}
	if !checkOut.After(checkIn) {
		return StayQuote{}, &DateError{Code: DateErrCheckoutOrder}
	}

	nights := int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
	if nights > MaxStayNights {
		return StayQuote{}, &DateError{Code: DateErrStayTooLong}
	}
	if nightlyPrice > 0 && nights > math.MaxInt/nightlyPrice {
		return StayQuote{}, invalidField("price", "max", "nightly price is too large to quote")
	}
	quote.CheckIn = checkIn
	quote.CheckOut = checkOut
	quote.Nights = nights
	quote.Total = nights * nightlyPrice
	return quote, nil
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseStayDate reads YYYY-MM-DD (as UTC midnight) or RFC 3339.
func ParseStayDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(dateLayout, raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Time{}, &DateError{Code: DateErrInvalidFormat}
}

func parseStayRange(checkIn, checkOut string) (time.Time, time.Time, error) {
	in, err := ParseStayDate(checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, invalidField("checkIn", "date", err.Error())
	}
	out, err := ParseStayDate(checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, invalidField("checkOut", "date", err.Error())
	}
	return in, out, nil
}
