package services

import (
	"time"

	"github.com/avolkova/stride/internal/models"
)

// RecentEntriesLimit caps the per-habit history endpoint.
const RecentEntriesLimit = 30

type ProgressEntryStore interface {
	FindByKey(userID uint, habitID uint, date string) (models.ProgressEntry, bool, error)
	ListByUserAndDate(userID uint, date string) ([]models.ProgressEntry, error)
	ListRecentByHabit(habitID uint, limit int) ([]models.ProgressEntry, error)
	ListByUserDateRange(userID uint, from string, to string) ([]models.ProgressEntry, error)
	Create(entry *models.ProgressEntry) error
	Save(entry *models.ProgressEntry) error
}

type ProgressHabitRepository interface {
	FindByID(habitID uint) (models.Habit, error)
}

// EntryWithHabit is a progress entry expanded with its habit's details for
// the per-date listing.
type EntryWithHabit struct {
	models.ProgressEntry
	Habit models.Habit `json:"habit"`
}

type ProgressService struct {
	entries      ProgressEntryStore
	habits       ProgressHabitRepository
	gamification *GamificationService
}

func NewProgressService(entries ProgressEntryStore, habits ProgressHabitRepository, gamification *GamificationService) *ProgressService {
	return &ProgressService{
		entries:      entries,
		habits:       habits,
		gamification: gamification,
	}
}

// Upsert records a value against a (user, habit, date) key. An existing entry
// is overwritten in place, so resubmitting a day never creates a duplicate.
// The points difference against the previous submission is then awarded to the
// user as a separate write with no transactional coupling; last write wins for
// concurrent submissions of the same key.
func (service *ProgressService) Upsert(userID uint, habitID uint, date string, value float64) (models.ProgressEntry, error) {
	if err := ValidateEntryDate(date); err != nil {
		return models.ProgressEntry{}, err
	}
	if err := ValidateEntryValue(value); err != nil {
		return models.ProgressEntry{}, err
	}

	habit, err := service.habits.FindByID(habitID)
	if err != nil {
		return models.ProgressEntry{}, ErrHabitNotFound
	}

	completed, points := EvaluateEntry(value, habit.DailyTarget)

	entry, found, err := service.entries.FindByKey(userID, habitID, date)
	if err != nil {
		return models.ProgressEntry{}, err
	}

	previousPoints := 0
	if found {
		previousPoints = entry.PointsEarned
		entry.Value = value
		entry.Completed = completed
		entry.PointsEarned = points
		if err := service.entries.Save(&entry); err != nil {
			return models.ProgressEntry{}, err
		}
	} else {
		entry = models.ProgressEntry{
			UserID:       userID,
			HabitID:      habitID,
			Date:         date,
			Value:        value,
			Completed:    completed,
			PointsEarned: points,
			CreatedAt:    time.Now().UTC(),
		}
		if err := service.entries.Create(&entry); err != nil {
			return models.ProgressEntry{}, err
		}
	}

	if delta := points - previousPoints; delta != 0 {
		if _, err := service.gamification.ApplyDelta(userID, delta); err != nil {
			return models.ProgressEntry{}, err
		}
	}

	return entry, nil
}

// EntriesForDate lists a user's entries on one calendar date with habit
// details expanded. Entries whose habit has vanished mid-cascade are skipped.
func (service *ProgressService) EntriesForDate(userID uint, date string) ([]EntryWithHabit, error) {
	if err := ValidateEntryDate(date); err != nil {
		return nil, err
	}

	entries, err := service.entries.ListByUserAndDate(userID, date)
	if err != nil {
		return nil, err
	}

	habitsByID := make(map[uint]models.Habit, len(entries))
	expanded := make([]EntryWithHabit, 0, len(entries))
	for _, entry := range entries {
		habit, cached := habitsByID[entry.HabitID]
		if !cached {
			habit, err = service.habits.FindByID(entry.HabitID)
			if err != nil {
				continue
			}
			habitsByID[entry.HabitID] = habit
		}
		expanded = append(expanded, EntryWithHabit{ProgressEntry: entry, Habit: habit})
	}
	return expanded, nil
}

// RecentForHabit returns the newest entries for a habit, most recent date
// first, capped at RecentEntriesLimit.
func (service *ProgressService) RecentForHabit(habitID uint) ([]models.ProgressEntry, error) {
	if _, err := service.habits.FindByID(habitID); err != nil {
		return nil, ErrHabitNotFound
	}
	return service.entries.ListRecentByHabit(habitID, RecentEntriesLimit)
}

// WeeklyStats aggregates the trailing seven-day window ending today, both
// bounds inclusive.
func (service *ProgressService) WeeklyStats(userID uint, today time.Time) (WeeklyStats, error) {
	from, to := WeekWindow(today)
	entries, err := service.entries.ListByUserDateRange(userID, from, to)
	if err != nil {
		return WeeklyStats{}, err
	}
	return BuildWeeklyStats(entries), nil
}
