package models

import "time"

type Habit struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;index" json:"userId"`
	Name         string    `gorm:"not null" json:"name"`
	Icon         string    `json:"icon"`
	Color        string    `json:"color"`
	DailyTarget  float64   `gorm:"not null" json:"dailyTarget"`
	Unit         string    `json:"unit"`
	Reminder     bool      `gorm:"not null;default:false" json:"reminder"`
	ReminderTime string    `json:"reminderTime"`
	CreatedAt    time.Time `gorm:"not null" json:"createdAt"`
}
