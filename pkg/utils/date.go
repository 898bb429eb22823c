package utils

import "time"

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// ParseDateTime aceita datetimes ISO-8601 com ou sem timezone, e também
// datas puras (YYYY-MM-DD). Valores sem timezone são interpretados em UTC.
func ParseDateTime(value string) (time.Time, error) {
	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02",
	}

	var lastErr error
	for _, layout := range layouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			if parsed.Location() == time.UTC {
				return parsed, nil
			}
			return parsed.UTC(), nil
		}
		lastErr = err
	}

	return time.Time{}, lastErr
}
