package db

import (
	"github.com/avolkova/stride/internal/models"
	"gorm.io/gorm"
)

type ProgressRepository struct {
	database *gorm.DB
}

func NewProgressRepository(database *gorm.DB) *ProgressRepository {
	return &ProgressRepository{database: database}
}

// FindByKey fetches the single entry for a (user, habit, date) key. The second
// return value reports whether a row was found at all.
func (repo *ProgressRepository) FindByKey(userID uint, habitID uint, date string) (models.ProgressEntry, bool, error) {
	entry := models.ProgressEntry{}
	result := repo.database.
		Where("user_id = ? AND habit_id = ? AND date = ?", userID, habitID, date).
		Order("id DESC").
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.ProgressEntry{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.ProgressEntry{}, false, nil
	}
	return entry, true, nil
}

func (repo *ProgressRepository) ListByUserAndDate(userID uint, date string) ([]models.ProgressEntry, error) {
	entries := make([]models.ProgressEntry, 0)
	if err := repo.database.
		Where("user_id = ? AND date = ?", userID, date).
		Order("habit_id ASC, id ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *ProgressRepository) ListRecentByHabit(habitID uint, limit int) ([]models.ProgressEntry, error) {
	entries := make([]models.ProgressEntry, 0)
	if err := repo.database.
		Where("habit_id = ?", habitID).
		Order("date DESC, id DESC").
		Limit(limit).
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// ListByUserDateRange returns a user's entries with from <= date <= to. Dates
// are ISO-8601 strings, so string comparison matches date comparison.
func (repo *ProgressRepository) ListByUserDateRange(userID uint, from string, to string) ([]models.ProgressEntry, error) {
	entries := make([]models.ProgressEntry, 0)
	if err := repo.database.
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to).
		Order("date ASC, id ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *ProgressRepository) Create(entry *models.ProgressEntry) error {
	return repo.database.Create(entry).Error
}

func (repo *ProgressRepository) Save(entry *models.ProgressEntry) error {
	return repo.database.Save(entry).Error
}

// DeleteByHabit removes every entry recorded against a habit and reports how
// many rows were removed.
func (repo *ProgressRepository) DeleteByHabit(habitID uint) (int64, error) {
	result := repo.database.Where("habit_id = ?", habitID).Delete(&models.ProgressEntry{})
	return result.RowsAffected, result.Error
}
