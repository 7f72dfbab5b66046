package api

import (
	"time"

	"github.com/avolkova/stride/internal/db"
	"github.com/avolkova/stride/internal/services"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const authTokenTTL = 72 * time.Hour

type Handler struct {
	database  *gorm.DB
	secretKey []byte
	logger    *zap.Logger

	repositories    *db.Repositories
	authService     *services.AuthService
	habitService    *services.HabitService
	progressService *services.ProgressService
	gamification    *services.GamificationService
}

func NewHandler(database *gorm.DB, secretKey string, logger *zap.Logger) *Handler {
	repositories := db.NewRepositories(database)
	gamification := services.NewGamificationService(repositories.Users)

	return &Handler{
		database:        database,
		secretKey:       []byte(secretKey),
		logger:          logger,
		repositories:    repositories,
		authService:     services.NewAuthService(repositories.Users),
		habitService:    services.NewHabitService(repositories.Habits, repositories.Users, repositories.Progress),
		progressService: services.NewProgressService(repositories.Progress, repositories.Habits, gamification),
		gamification:    gamification,
	}
}
