package services

import (
	"errors"
	"log"
	"strings"
	"time"

	"foodcourt/entity"
	"foodcourt/repository"
	"foodcourt/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const resetTokenTTL = time.Hour

// AuthService handles register/login and password resets.
type AuthService struct {
	userRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		userRepo:  repo,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

// Register creates a customer account; duplicate email is an error.
// Restaurant and admin accounts are seeded or promoted, never self-registered.
func (s *AuthService) Register(email, password, name, phone string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	count, err := s.userRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("hash password failed")
	}

	user := &entity.User{
		Email:       email,
		Password:    string(hashed),
		Name:        strings.TrimSpace(name),
		PhoneNumber: strings.TrimSpace(phone),
		Role:        entity.RoleCustomer,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login checks credentials and issues a JWT.
func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}

	return token, user, nil
}

func (s *AuthService) GetProfile(userID uint) (*entity.User, error) {
	return s.userRepo.FindByID(userID)
}

func (s *AuthService) UpdateProfile(userID uint, updates map[string]any) (*entity.User, error) {
	if err := s.userRepo.Update(userID, updates); err != nil {
		return nil, err
	}
	return s.userRepo.FindByID(userID)
}

// RequestPasswordReset issues a single-use token for the account. Delivery
// is out-of-band (email); in dev the token is logged. The token is returned
// so tests and the mail sender can use it; it is never sent to the client.
func (s *AuthService) RequestPasswordReset(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// No account, report nothing to the caller.
			return "", nil
		}
		return "", err
	}

	token := uuid.NewString()
	reset := &entity.PasswordReset{
		Token:     token,
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(resetTokenTTL),
	}
	if err := s.userRepo.CreateReset(reset); err != nil {
		return "", err
	}

	log.Printf("password reset token for %s: %s", email, token)
	return token, nil
}

// ResetPassword redeems a token and replaces the account password.
func (s *AuthService) ResetPassword(token, newPassword string) error {
	reset, err := s.userRepo.FindResetByToken(token)
	if err != nil {
		return errors.New("invalid reset token")
	}
	if reset.Used || time.Now().After(reset.ExpiresAt) {
		return errors.New("reset token expired or used")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return errors.New("hash password failed")
	}
	if err := s.userRepo.UpdatePassword(reset.UserID, string(hashed)); err != nil {
		return err
	}
	return s.userRepo.MarkResetUsed(reset.ID)
}
