package tagvalue

import (
	"fmt"
	"strconv"
	"time"
)

const (
	TimestampLayout = "20060102-15:04:05"
	DateLayout      = "20060102"

	timestampMillisLayout = TimestampLayout + ".000"
	timestampMicrosLayout = TimestampLayout + ".000000"
	timestampNanosLayout  = TimestampLayout + ".000000000"
)

func ParseString(s string) (string, error) {
	return s, nil
}

func FormatString(v string) string {
	return v
}

func ParseChar(s string) (string, error) {
	if s == "" {
		return "", ErrInvalidChar
	}

	return s, nil
}

func FormatChar(v string) string {
	return v
}

func ParseBool(s string) (bool, error) {
	switch s {
	case "Y":
		return true, nil
	case "N":
		return false, nil
	}

	return false, ErrInvalidBoolean
}

func FormatBool(v bool) string {
	if v {
		return "Y"
	}

	return "N"
}

func ParseInt(s string) (int, error) {
	return strconv.Atoi(s)
}

func FormatInt(v int) string {
	return strconv.Itoa(v)
}

func ParseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

// FormatFloat writes the shortest decimal form that parses back to v, never
// using an exponent.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ParseTimestamp accepts a UTC timestamp with an optional fractional second
// of any precision.
func ParseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(TimestampLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("tagvalue: timestamp: %w", err)
	}

	return t, nil
}

// FormatTimestamp writes v in UTC with millisecond, microsecond or nanosecond
// precision, whichever is the shortest that keeps v intact.
func FormatTimestamp(v time.Time) string {
	v = v.UTC()

	switch ns := v.Nanosecond(); {
	case ns%int(time.Millisecond) == 0:
		return v.Format(timestampMillisLayout)
	case ns%int(time.Microsecond) == 0:
		return v.Format(timestampMicrosLayout)
	default:
		return v.Format(timestampNanosLayout)
	}
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("tagvalue: date: %w", err)
	}

	return t, nil
}

func FormatDate(v time.Time) string {
	return v.Format(DateLayout)
}
