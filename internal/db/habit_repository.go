package db

import (
	"github.com/avolkova/stride/internal/models"
	"gorm.io/gorm"
)

type HabitRepository struct {
	database *gorm.DB
}

func NewHabitRepository(database *gorm.DB) *HabitRepository {
	return &HabitRepository{database: database}
}

func (repo *HabitRepository) FindByID(habitID uint) (models.Habit, error) {
	var habit models.Habit
	if err := repo.database.First(&habit, habitID).Error; err != nil {
		return models.Habit{}, err
	}
	return habit, nil
}

func (repo *HabitRepository) ListByUser(userID uint) ([]models.Habit, error) {
	habits := make([]models.Habit, 0)
	if err := repo.database.Where("user_id = ?", userID).Order("created_at ASC, id ASC").Find(&habits).Error; err != nil {
		return nil, err
	}
	return habits, nil
}

func (repo *HabitRepository) Create(habit *models.Habit) error {
	return repo.database.Create(habit).Error
}

func (repo *HabitRepository) UpdateByID(habitID uint, updates map[string]any) error {
	return repo.database.Model(&models.Habit{}).Where("id = ?", habitID).Updates(updates).Error
}

func (repo *HabitRepository) DeleteByID(habitID uint) error {
	return repo.database.Delete(&models.Habit{}, habitID).Error
}
