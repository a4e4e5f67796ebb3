package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"busline/internal/domain"
	"busline/internal/logger"
	"busline/internal/repositories"
	"busline/internal/utils"
)

const minPasswordLen = 6

type AuthService struct {
	UserRepo  repositories.UserRepository
	JWTSecret []byte
	TokenTTL  time.Duration
	Log       *logger.Logger
}

type RegisterInput struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	DisplayName string `json:"displayName"`
	Phone       string `json:"phone"`
}

// Register creates a user with role 'user'. When first/last name are not
// given they are synthesized by splitting the display name, the same way
// a first sign-in through an external identity provider would fill a
// fresh profile.
func (s AuthService) Register(in RegisterInput) (domain.User, string, error) {
	email := strings.ToLower(utils.TrimOrEmpty(in.Email))
	if email == "" || !strings.Contains(email, "@") {
		return domain.User{}, "", domain.ValidationError{Field: "email", Msg: "valid email is required"}
	}
	if len(in.Password) < minPasswordLen {
		return domain.User{}, "", domain.ValidationError{Field: "password", Msg: fmt.Sprintf("password must be at least %d characters", minPasswordLen)}
	}

	first := utils.TrimOrEmpty(in.FirstName)
	last := utils.TrimOrEmpty(in.LastName)
	display := utils.NormalizeSpace(in.DisplayName)
	if first == "" && last == "" {
		first, last = domain.SplitDisplayName(display)
	}
	if display == "" {
		display = strings.TrimSpace(first + " " + last)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, "", domain.InternalError{Msg: "hash password", Err: err}
	}

	user := domain.User{
		Email:       email,
		FirstName:   first,
		LastName:    last,
		DisplayName: display,
		Phone:       utils.TrimOrEmpty(in.Phone),
	}
	if err := s.UserRepo.Create(&user, string(hash)); err != nil {
		return domain.User{}, "", err
	}

	token, err := s.issueToken(user)
	if err != nil {
		return domain.User{}, "", err
	}

	s.Log.Infof("auth", "user registered id=%d", user.ID)
	return user, token, nil
}

// Login verifies credentials and issues a bearer token. A missing user
// and a wrong password are indistinguishable to the caller.
func (s AuthService) Login(email, password string) (domain.User, string, error) {
	user, hash, err := s.UserRepo.GetByEmail(email)
	if err != nil {
		if domain.IsNotFound(err) {
			return domain.User{}, "", domain.ErrInvalidCredentials
		}
		return domain.User{}, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return domain.User{}, "", domain.ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return domain.User{}, "", err
	}
	return user, token, nil
}

func (s AuthService) Me(userID int64) (domain.User, error) {
	return s.UserRepo.GetByID(userID)
}

// UpdateProfile changes the mutable profile fields. Email and role are
// not reachable through this path by construction of ProfileUpdate.
func (s AuthService) UpdateProfile(userID int64, upd repositories.ProfileUpdate) (domain.User, error) {
	if err := s.UserRepo.UpdateProfile(userID, upd); err != nil {
		return domain.User{}, err
	}
	return s.UserRepo.GetByID(userID)
}

func (s AuthService) issueToken(user domain.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    string(user.Role),
		"exp":     time.Now().Add(s.TokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.JWTSecret)
	if err != nil {
		return "", domain.InternalError{Msg: "sign token", Err: err}
	}
	return signed, nil
}
