package service

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"technova/internal/modules/burnout/domain"
	apperrors "technova/internal/platform/errors"
)

// RawRecord is an activity entry as it arrives from a decoded request.
// A nil field means the key was absent.
type RawRecord struct {
	Timestamp any
	Duration  any
	TimeOfDay any
}

var timestampLayouts = []string{
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02T15:04Z07:00",
	"2006-01-02 15:04Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseTimestamp reads an ISO-8601 timestamp. A Z suffix is read as +00:00 and
// times without an offset are taken as UTC.
func ParseTimestamp(value string) (time.Time, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(value), "Z", "+00:00")
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, normalized); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable timestamp %q: %w", value, apperrors.ErrInvalidArgument)
}

// Normalize converts raw records into activities. A missing timestamp becomes
// now, so such records sort after every dated one from the past.
func Normalize(records []RawRecord, now time.Time, deriveTimeOfDay bool) ([]domain.Activity, error) {
	out := make([]domain.Activity, 0, len(records))
	for i, record := range records {
		ts, err := timestampOf(record.Timestamp, now)
		if err != nil {
			return nil, fmt.Errorf("activity %d: %w", i, err)
		}
		minutes, err := minutesOf(record.Duration)
		if err != nil {
			return nil, fmt.Errorf("activity %d: %w", i, err)
		}
		tod := domain.TimeOfDayUnknown
		switch label := record.TimeOfDay.(type) {
		case string:
			tod = domain.ParseTimeOfDay(label)
		case nil:
			if deriveTimeOfDay {
				tod = domain.ClassifyHour(ts.Hour())
			}
		}
		out = append(out, domain.Activity{Timestamp: ts, DurationMinutes: minutes, TimeOfDay: tod})
	}
	return out, nil
}

func timestampOf(value any, now time.Time) (time.Time, error) {
	switch v := value.(type) {
	case nil:
		return now, nil
	case string:
		return ParseTimestamp(v)
	case time.Time:
		return v, nil
	case *time.Time:
		if v == nil {
			return now, nil
		}
		return *v, nil
	default:
		return time.Time{}, fmt.Errorf("timestamp has type %T: %w", value, apperrors.ErrInvalidArgument)
	}
}

func minutesOf(value any) (float64, error) {
	switch v := value.(type) {
	case nil:
		return 0, nil
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, fmt.Errorf("duration %q: %w", v.String(), apperrors.ErrInvalidArgument)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("duration has type %T: %w", value, apperrors.ErrInvalidArgument)
	}
}
