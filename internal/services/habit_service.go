package services

import (
	"time"

	"github.com/avolkova/stride/internal/models"
)

type HabitStore interface {
	FindByID(habitID uint) (models.Habit, error)
	ListByUser(userID uint) ([]models.Habit, error)
	Create(habit *models.Habit) error
	UpdateByID(habitID uint, updates map[string]any) error
	DeleteByID(habitID uint) error
}

type HabitOwnerRepository interface {
	FindByID(userID uint) (models.User, error)
}

type HabitEntryRemover interface {
	DeleteByHabit(habitID uint) (int64, error)
}

type HabitService struct {
	habits  HabitStore
	users   HabitOwnerRepository
	entries HabitEntryRemover
}

func NewHabitService(habits HabitStore, users HabitOwnerRepository, entries HabitEntryRemover) *HabitService {
	return &HabitService{
		habits:  habits,
		users:   users,
		entries: entries,
	}
}

func (service *HabitService) Create(input HabitInput) (models.Habit, error) {
	if err := ValidateHabitInput(input); err != nil {
		return models.Habit{}, err
	}
	if _, err := service.users.FindByID(input.UserID); err != nil {
		return models.Habit{}, ErrUserNotFound
	}

	habit := models.Habit{
		UserID:       input.UserID,
		Name:         input.Name,
		Icon:         input.Icon,
		Color:        input.Color,
		DailyTarget:  input.DailyTarget,
		Unit:         input.Unit,
		Reminder:     input.Reminder,
		ReminderTime: input.ReminderTime,
		CreatedAt:    time.Now().UTC(),
	}
	if err := service.habits.Create(&habit); err != nil {
		return models.Habit{}, err
	}
	return habit, nil
}

func (service *HabitService) ListByUser(userID uint) ([]models.Habit, error) {
	return service.habits.ListByUser(userID)
}

func (service *HabitService) FindByID(habitID uint) (models.Habit, error) {
	habit, err := service.habits.FindByID(habitID)
	if err != nil {
		return models.Habit{}, ErrHabitNotFound
	}
	return habit, nil
}

// Update applies the provided fields only; omitted fields keep their stored
// values. A changed daily target is revalidated but already-stored entries are
// not rescored.
func (service *HabitService) Update(habitID uint, update HabitUpdate) (models.Habit, error) {
	if _, err := service.habits.FindByID(habitID); err != nil {
		return models.Habit{}, ErrHabitNotFound
	}
	if err := ValidateHabitUpdate(update); err != nil {
		return models.Habit{}, err
	}

	updates := map[string]any{}
	if update.Name != nil {
		updates["name"] = *update.Name
	}
	if update.Icon != nil {
		updates["icon"] = *update.Icon
	}
	if update.Color != nil {
		updates["color"] = *update.Color
	}
	if update.DailyTarget != nil {
		updates["daily_target"] = *update.DailyTarget
	}
	if update.Unit != nil {
		updates["unit"] = *update.Unit
	}
	if update.Reminder != nil {
		updates["reminder"] = *update.Reminder
	}
	if update.ReminderTime != nil {
		updates["reminder_time"] = *update.ReminderTime
	}

	if len(updates) > 0 {
		if err := service.habits.UpdateByID(habitID, updates); err != nil {
			return models.Habit{}, err
		}
	}
	return service.habits.FindByID(habitID)
}

// Delete removes the habit, then its progress entries, as two independent
// writes. When the cleanup fails after the habit row is gone, the returned
// CascadeDeleteError names the partial state instead of hiding it.
func (service *HabitService) Delete(habitID uint) (int64, error) {
	if _, err := service.habits.FindByID(habitID); err != nil {
		return 0, ErrHabitNotFound
	}

	if err := service.habits.DeleteByID(habitID); err != nil {
		return 0, err
	}

	removed, err := service.entries.DeleteByHabit(habitID)
	if err != nil {
		return 0, &CascadeDeleteError{HabitID: habitID, Cause: err}
	}
	return removed, nil
}
