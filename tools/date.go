package tools

import "time"

// Date layouts used across the admin screens: ISO on input, day-first on
// display. Timestamps (donations) carry minutes precision.
const (
	DateLayoutISO          = "2006-01-02"
	DateLayoutDisplay      = "02-01-2006"
	TimestampLayoutISO     = "2006-01-02T15:04"
	TimestampLayoutDisplay = "02-01-2006, 15:04"
)

// The store keeps dates as a day count from 0001-01-01 (that date = day 1),
// computed after shifting the calendar year back by 1999. The shift is a
// storage compaction inherited from the existing data set; both directions
// must apply it symmetrically or every stored date drifts.
const epochShiftYears = 1999

// EncodeDate converts a calendar date to its stored day-offset.
func EncodeDate(t time.Time) int32 {
	return int32(daysFromCE(t.Year()-epochShiftYears, int(t.Month()), t.Day()))
}

// DecodeDate converts a stored day-offset back to the calendar date.
func DecodeDate(stored int32) time.Time {
	y, m, d := civilOfDays(int(stored))
	return time.Date(y+epochShiftYears, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses an ISO-form date string.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayoutISO, s)
}

// FormatDate renders a date in the display layout.
func FormatDate(t time.Time) string {
	return t.Format(DateLayoutDisplay)
}

// ParseTimestamp parses a donation timestamp in its input layout.
func ParseTimestamp(s string) (time.Time, error) {
	return time.Parse(TimestampLayoutISO, s)
}

// FormatTimestamp renders a donation timestamp in the display layout.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayoutDisplay)
}

// ConvertLayout re-renders an already-formatted date string in another
// layout. The value must match the from layout exactly.
func ConvertLayout(value, from, to string) (string, error) {
	t, err := time.Parse(from, value)
	if err != nil {
		return "", err
	}
	return t.Format(to), nil
}

// daysFromCE counts days since 0001-01-01 with that date being day 1,
// for any (possibly non-positive) year. Civil-calendar arithmetic keeps the
// math exact without time.Duration range limits.
func daysFromCE(y, m, d int) int {
	if m <= 2 {
		y--
	}
	era := y
	if era < 0 {
		era -= 399
	}
	era /= 400
	yoe := y - era*400
	var doy int
	if m > 2 {
		doy = (153*(m-3)+2)/5 + d - 1
	} else {
		doy = (153*(m+9)+2)/5 + d - 1
	}
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	// era*146097+doe is days since 0000-03-01; rebase to 0001-01-01 = 1
	return era*146097 + doe - 305
}

// civilOfDays inverts daysFromCE.
func civilOfDays(n int) (y, m, d int) {
	z := n + 305 // days since 0000-03-01
	era := z
	if era < 0 {
		era -= 146096
	}
	era /= 146097
	doe := z - era*146097
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	y = yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	d = doy - (153*mp+2)/5 + 1
	if mp < 10 {
		m = mp + 3
	} else {
		m = mp - 9
	}
	if m <= 2 {
		y++
	}
	return y, m, d
}
