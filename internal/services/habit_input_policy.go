package services

import (
	"regexp"
	"strings"
)

var reminderTimePattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

type HabitInput struct {
	UserID       uint
	Name         string
	Icon         string
	Color        string
	DailyTarget  float64
	Unit         string
	Reminder     bool
	ReminderTime string
}

// HabitUpdate carries the fields of a partial habit update; nil means the
// field keeps its stored value.
type HabitUpdate struct {
	Name         *string
	Icon         *string
	Color        *string
	DailyTarget  *float64
	Unit         *string
	Reminder     *bool
	ReminderTime *string
}

func ValidateHabitInput(input HabitInput) error {
	if input.UserID == 0 {
		return newValidationError("userId", "is required")
	}
	if strings.TrimSpace(input.Name) == "" {
		return newValidationError("name", "must not be empty")
	}
	if err := ValidateDailyTarget(input.DailyTarget); err != nil {
		return err
	}
	if input.Reminder {
		if err := validateReminderTime(input.ReminderTime); err != nil {
			return err
		}
	}
	return nil
}

func ValidateHabitUpdate(update HabitUpdate) error {
	if update.Name != nil && strings.TrimSpace(*update.Name) == "" {
		return newValidationError("name", "must not be empty")
	}
	if update.DailyTarget != nil {
		if err := ValidateDailyTarget(*update.DailyTarget); err != nil {
			return err
		}
	}
	if update.ReminderTime != nil && *update.ReminderTime != "" {
		if err := validateReminderTime(*update.ReminderTime); err != nil {
			return err
		}
	}
	return nil
}

// ValidateDailyTarget rejects non-positive targets. A zero target would make
// the scoring ratio divide by zero and a negative one would mark every entry
// complete, so neither is ever allowed into the store.
func ValidateDailyTarget(target float64) error {
	if target <= 0 {
		return newValidationError("dailyTarget", "must be greater than zero")
	}
	return nil
}

func validateReminderTime(reminderTime string) error {
	if !reminderTimePattern.MatchString(reminderTime) {
		return newValidationError("reminderTime", "must be in HH:MM form")
	}
	return nil
}
