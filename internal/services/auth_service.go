package services

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rsahoo0530/LifeSync-V2/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrResetTokenInvalid  = errors.New("reset token invalid")
)

const resetTokenTTL = 30 * time.Minute

type AuthUserRepository interface {
	FindByID(userID uint) (models.User, error)
	FindByNormalizedEmail(email string) (models.User, error)
	ExistsByNormalizedEmail(email string) (bool, error)
	Create(user *models.User) error
	UpdateByID(userID uint, updates map[string]any) error
	UpdatePasswordHash(userID uint, passwordHash string) error
}

type AuthService struct {
	users     AuthUserRepository
	secretKey []byte
}

func NewAuthService(users AuthUserRepository, secretKey []byte) *AuthService {
	return &AuthService{users: users, secretKey: secretKey}
}

// SignUp normalizes and validates the credentials, hashes the password
// and creates the account with a generated avatar.
func (service *AuthService) SignUp(name string, emailRaw string, passwordRaw string) (models.User, error) {
	email, password, err := NormalizeCredentialsInput(emailRaw, passwordRaw)
	if err != nil {
		return models.User{}, err
	}
	if err := ValidatePasswordStrength(password); err != nil {
		return models.User{}, err
	}

	taken, err := service.users.ExistsByNormalizedEmail(email)
	if err != nil {
		return models.User{}, err
	}
	if taken {
		return models.User{}, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Avatar:       avatarURL(email),
	}
	if err := service.users.Create(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// SignIn returns ErrInvalidCredentials for unknown email and wrong
// password alike, never revealing which one failed.
func (service *AuthService) SignIn(emailRaw string, passwordRaw string) (models.User, error) {
	email, password, err := NormalizeCredentialsInput(emailRaw, passwordRaw)
	if err != nil {
		return models.User{}, ErrInvalidCredentials
	}

	user, err := service.users.FindByNormalizedEmail(email)
	if err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	return service.users.FindByID(userID)
}

// UpdateProfile applies only the fields the caller set.
func (service *AuthService) UpdateProfile(userID uint, profile models.ProfileUpdates) (models.User, error) {
	updates := map[string]any{}
	if profile.Name != nil {
		updates["name"] = *profile.Name
	}
	if profile.Avatar != nil {
		updates["avatar"] = *profile.Avatar
	}
	if profile.Bio != nil {
		updates["bio"] = *profile.Bio
	}
	if profile.Gender != nil {
		updates["gender"] = *profile.Gender
	}
	if profile.DOB != nil {
		updates["dob"] = *profile.DOB
	}
	if len(updates) > 0 {
		if err := service.users.UpdateByID(userID, updates); err != nil {
			return models.User{}, err
		}
	}
	return service.users.FindByID(userID)
}

func (service *AuthService) ChangePassword(userID uint, currentPassword string, newPassword string) error {
	user, err := service.users.FindByID(userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)) != nil {
		return ErrInvalidCredentials
	}
	if err := ValidatePasswordStrength(newPassword); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return service.users.UpdatePasswordHash(userID, string(hash))
}

// IssueResetToken returns a short-lived signed token for the account, or
// ("", nil) when the email is unknown so callers can answer uniformly.
func (service *AuthService) IssueResetToken(emailRaw string, now time.Time) (string, error) {
	email := NormalizeAuthEmail(emailRaw)
	if email == "" {
		return "", nil
	}
	user, err := service.users.FindByNormalizedEmail(email)
	if err != nil {
		return "", nil
	}

	claims := jwt.MapClaims{
		"sub":     strconv.FormatUint(uint64(user.ID), 10),
		"purpose": "password_reset",
		"iat":     now.Unix(),
		"exp":     now.Add(resetTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(service.secretKey)
	if err != nil {
		return "", fmt.Errorf("sign reset token: %w", err)
	}
	return signed, nil
}

// ResetPassword verifies the token and sets the new password.
func (service *AuthService) ResetPassword(tokenString string, newPassword string) error {
	parsed, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return service.secretKey, nil
	})
	if err != nil || !parsed.Valid {
		return ErrResetTokenInvalid
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || claims["purpose"] != "password_reset" {
		return ErrResetTokenInvalid
	}
	subject, _ := claims["sub"].(string)
	userID, err := strconv.ParseUint(subject, 10, 64)
	if err != nil {
		return ErrResetTokenInvalid
	}

	if err := ValidatePasswordStrength(newPassword); err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return service.users.UpdatePasswordHash(uint(userID), string(hash))
}

func avatarURL(email string) string {
	return "https://api.dicebear.com/7.x/avataaars/svg?seed=" + url.QueryEscape(email)
}
