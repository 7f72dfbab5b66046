package services

import (
	"github.com/avolkova/stride/internal/models"
)

// ApplyPointsDelta mutates a user's points, derived level and badge set.
// Points never drop below zero. Badges are checked against the post-delta
// total in ascending threshold order, so one large delta can unlock several
// at once; a badge once present is never removed.
func ApplyPointsDelta(user *models.User, delta int) {
	points := user.Points + delta
	if points < 0 {
		points = 0
	}

	user.Points = points
	user.Level = points/models.PointsPerLevel + 1

	for _, threshold := range models.BadgeThresholds() {
		if points >= threshold.Points && !user.HasBadge(threshold.Badge) {
			user.Badges = append(user.Badges, threshold.Badge)
		}
	}
}

type GamificationUserRepository interface {
	FindByID(userID uint) (models.User, error)
	Save(user *models.User) error
}

type GamificationService struct {
	users GamificationUserRepository
}

func NewGamificationService(users GamificationUserRepository) *GamificationService {
	return &GamificationService{users: users}
}

// ApplyDelta loads the user, applies the points delta and persists the result.
// The write is independent of any progress-entry write the caller performed;
// a crash in between leaves the two documents briefly inconsistent and no
// compensation is attempted.
func (service *GamificationService) ApplyDelta(userID uint, delta int) (models.User, error) {
	user, err := service.users.FindByID(userID)
	if err != nil {
		return models.User{}, ErrUserNotFound
	}

	ApplyPointsDelta(&user, delta)

	if err := service.users.Save(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}
