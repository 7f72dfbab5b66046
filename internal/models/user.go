package models

import "time"

const (
	BadgeCentenary = "Centenary"
	BadgeChampion  = "Champion"
	BadgeLegend    = "Legend"

	PointsPerLevel = 100
)

// BadgeThreshold pairs a cumulative points threshold with the badge it unlocks.
type BadgeThreshold struct {
	Points int
	Badge  string
}

// BadgeThresholds lists every unlockable badge in ascending threshold order.
// Awarding logic relies on this ordering.
func BadgeThresholds() []BadgeThreshold {
	return []BadgeThreshold{
		{Points: 100, Badge: BadgeCentenary},
		{Points: 500, Badge: BadgeChampion},
		{Points: 1000, Badge: BadgeLegend},
	}
}

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Points       int       `gorm:"not null;default:0" json:"points"`
	Level        int       `gorm:"not null;default:1" json:"level"`
	Badges       []string  `gorm:"serializer:json" json:"badges"`
	CreatedAt    time.Time `gorm:"not null" json:"createdAt"`
}

func (user *User) HasBadge(badge string) bool {
	for _, owned := range user.Badges {
		if owned == badge {
			return true
		}
	}
	return false
}
