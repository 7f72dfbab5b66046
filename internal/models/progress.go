package models

import "time"

// ProgressEntry records one day's value against a habit's daily target.
// Dates use the "YYYY-MM-DD" form, so lexicographic order is date order.
// Uniqueness per (user, habit, date) is enforced by lookup-before-write in the
// progress service, not by a database constraint; the index below only keeps
// those lookups cheap.
type ProgressEntry struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;index:idx_progress_user_habit_date" json:"userId"`
	HabitID      uint      `gorm:"not null;index:idx_progress_user_habit_date" json:"habitId"`
	Date         string    `gorm:"not null;index:idx_progress_user_habit_date" json:"date"`
	Value        float64   `gorm:"not null;default:0" json:"value"`
	Completed    bool      `gorm:"not null;default:false" json:"completed"`
	PointsEarned int       `gorm:"not null;default:0" json:"pointsEarned"`
	CreatedAt    time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
