package service

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/caltrack/caltrack/internal/calc"
	"github.com/caltrack/caltrack/internal/models"
	"github.com/caltrack/caltrack/internal/types"
)

// RegisterInput carries everything needed to create a user profile.
// Bounds follow sane human ranges (height in cm, weight in kg).
type RegisterInput struct {
	Username      string  `validate:"required,min=3,max=50"`
	Password      string  `validate:"required,min=6"`
	Email         string  `validate:"required,email"`
	Age           int     `validate:"required,gte=1,lte=150"`
	Gender        string  `validate:"required,oneof=Male Female Other"`
	HeightCm      float64 `validate:"required,gte=30,lte=300"`
	WeightKg      float64 `validate:"required,gte=2,lte=500"`
	ActivityLevel string  `validate:"required,oneof=Sedentary Light Moderate Active 'Very Active'"`
	GoalType      string  `validate:"required,oneof=lose maintain gain"`
	GoalWeightKg  float64 `validate:"omitempty,gte=2,lte=500"`
}

// AuthService handles registration, login and session tokens.
type AuthService struct {
	db        *gorm.DB
	jwtSecret string
	validate  *validator.Validate
}

// Ensure AuthService implements IAuthService
var _ IAuthService = (*AuthService)(nil)

// NewAuthService creates a new AuthService instance
func NewAuthService(db *gorm.DB, jwtSecret string) *AuthService {
	return &AuthService{
		db:        db,
		jwtSecret: jwtSecret,
		validate:  validator.New(),
	}
}

// Register creates a user with a bcrypt-hashed password, derives the daily
// calorie goal from the profile, records the initial weight entry and
// returns a session token.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*models.User, string, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := checkPasswordStrength(input.Password); err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var existing models.User
	err := s.db.WithContext(ctx).
		Where("username = ? OR email = ?", input.Username, input.Email).
		First(&existing).Error
	if err == nil {
		return nil, "", ErrDuplicateUser
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", storageErr("register: lookup user", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", storageErr("register: hash password", err)
	}

	bmr := calc.BMR(input.WeightKg, input.HeightCm, input.Age, input.Gender)
	goal := calc.DailyCalorieGoal(calc.TDEE(bmr, input.ActivityLevel), input.GoalType)

	user := models.User{
		Username:         input.Username,
		Email:            input.Email,
		PasswordHash:     string(hashed),
		Age:              input.Age,
		Gender:           input.Gender,
		HeightCm:         input.HeightCm,
		WeightKg:         input.WeightKg,
		ActivityLevel:    input.ActivityLevel,
		GoalType:         input.GoalType,
		GoalWeightKg:     input.GoalWeightKg,
		DailyCalorieGoal: goal,
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, "", storageErr("register: create user", err)
	}

	// Initial weight entry so history starts at registration day.
	if bmi, err := calc.BMIFromCm(user.WeightKg, user.HeightCm); err == nil {
		entry := models.WeightEntry{
			UserID:       user.ID,
			WeightKg:     user.WeightKg,
			BMI:          bmi,
			RecordedDate: today(),
		}
		if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
			return nil, "", storageErr("register: create weight entry", err)
		}
	}

	token, err := s.GenerateToken(&types.TokenClaims{UserID: user.ID, Username: user.Username})
	if err != nil {
		return nil, "", storageErr("register: sign token", err)
	}
	return &user, token, nil
}

// Login verifies credentials and returns the user with a session token.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", storageErr("login: lookup user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.GenerateToken(&types.TokenClaims{UserID: user.ID, Username: user.Username})
	if err != nil {
		return nil, "", storageErr("login: sign token", err)
	}
	return &user, token, nil
}

// GetUserByID loads a user profile.
func (s *AuthService) GetUserByID(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, storageErr("get user", err)
	}
	return &user, nil
}

// GenerateToken signs a session token for the given claims.
func (s *AuthService) GenerateToken(claims *types.TokenClaims) (string, error) {
	mapClaims := jwt.MapClaims{
		"user_id":  claims.UserID.String(),
		"username": claims.Username,
		"exp":      time.Now().Add(time.Hour * 24).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, mapClaims)
	return token.SignedString([]byte(s.jwtSecret))
}

// ValidateToken parses a session token and restores the identity it carries.
func (s *AuthService) ValidateToken(tokenString string) (*types.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%w: invalid token", ErrInvalidCredentials)
	}

	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return nil, fmt.Errorf("%w: invalid token claims", ErrInvalidCredentials)
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
	}

	username, _ := claims["username"].(string)
	return &types.TokenClaims{UserID: userID, Username: username}, nil
}

// checkPasswordStrength requires at least one letter and one digit on top
// of the length bound enforced by the validator tag.
func checkPasswordStrength(password string) error {
	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return errors.New("password must contain at least one letter and one digit")
	}
	return nil
}

// today returns the current date truncated to midnight UTC, the canonical
// form for date-typed columns.
func today() time.Time {
	return DateOf(time.Now())
}

// DateOf truncates a timestamp to its date in UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
