package services

import "time"

func ValidateEntryDate(date string) error {
	parsed, err := time.Parse(DateLayout, date)
	if err != nil || parsed.Format(DateLayout) != date {
		return newValidationError("date", "must be a calendar date in YYYY-MM-DD form")
	}
	return nil
}

func ValidateEntryValue(value float64) error {
	if value < 0 {
		return newValidationError("value", "must not be negative")
	}
	return nil
}
