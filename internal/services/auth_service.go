package services

import (
	"time"

	"github.com/avolkova/stride/internal/models"
	"golang.org/x/crypto/bcrypt"
)

type AuthUserRepository interface {
	ExistsByNormalizedEmail(email string) (bool, error)
	FindByNormalizedEmail(email string) (models.User, error)
	FindByID(userID uint) (models.User, error)
	Create(user *models.User) error
}

type AuthService struct {
	users AuthUserRepository
}

func NewAuthService(users AuthUserRepository) *AuthService {
	return &AuthService{users: users}
}

// SignUp validates the input, enforces email uniqueness and stores a new user
// with a bcrypt credential. Plaintext passwords are never persisted.
func (service *AuthService) SignUp(name string, email string, password string) (models.User, error) {
	if err := ValidateSignupInput(name, email, password); err != nil {
		return models.User{}, err
	}

	normalizedEmail := NormalizeEmail(email)
	exists, err := service.users.ExistsByNormalizedEmail(normalizedEmail)
	if err != nil {
		return models.User{}, err
	}
	if exists {
		return models.User{}, ErrEmailTaken
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Name:         name,
		Email:        normalizedEmail,
		PasswordHash: string(passwordHash),
		Points:       0,
		Level:        1,
		Badges:       []string{},
		CreatedAt:    time.Now().UTC(),
	}
	if err := service.users.Create(&user); err != nil {
		return models.User{}, ErrEmailTaken
	}
	return user, nil
}

// LogIn resolves a user by normalized email and verifies the password against
// the stored hash. Lookup and comparison failures collapse into the same
// credential error.
func (service *AuthService) LogIn(email string, password string) (models.User, error) {
	user, err := service.users.FindByNormalizedEmail(NormalizeEmail(email))
	if err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	user, err := service.users.FindByID(userID)
	if err != nil {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}
