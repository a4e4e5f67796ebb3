package services

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"busline/internal/domain"
	"busline/internal/logger"
	"busline/internal/repositories"
)

func newAuthService(t *testing.T) (AuthService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	svc := AuthService{
		UserRepo:  repositories.UserRepository{DB: db},
		JWTSecret: []byte("test-secret"),
		TokenTTL:  time.Hour,
		Log:       logger.New(false),
	}
	return svc, mock, func() { db.Close() }
}

func TestRegister_SplitsDisplayName(t *testing.T) {
	svc, mock, done := newAuthService(t)
	defer done()

	mock.ExpectExec("INSERT INTO users").
		WithArgs("olena@example.com", sqlmock.AnyArg(), "Олена", "Коваль",
			"Олена Коваль", "", "", "user").
		WillReturnResult(sqlmock.NewResult(5, 1))

	user, token, err := svc.Register(RegisterInput{
		Email:       "Olena@Example.com",
		Password:    "secret123",
		DisplayName: "Олена Коваль",
	})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if user.FirstName != "Олена" || user.LastName != "Коваль" {
		t.Fatalf("display name not split, got %q %q", user.FirstName, user.LastName)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("new users must get role user, got %q", user.Role)
	}
	if token == "" {
		t.Fatalf("expected a signed token")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRegister_RejectsShortPassword(t *testing.T) {
	svc, _, done := newAuthService(t)
	defer done()

	_, _, err := svc.Register(RegisterInput{Email: "a@b.com", Password: "12345"})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, mock, done := newAuthService(t)
	defer done()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt error: %v", err)
	}
	now := time.Now().UTC()
	mock.ExpectQuery("FROM users").
		WithArgs("olena@example.com").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "email", "first_name", "last_name", "display_name", "phone",
			"photo_url", "role", "created_at", "updated_at", "password_hash",
		}).AddRow(5, "olena@example.com", "Олена", "Коваль", "Олена Коваль",
			"", "", "user", now, now, string(hash)))

	_, _, err = svc.Login("olena@example.com", "wrong-password")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}

func TestLogin_UnknownEmailIsInvalidCredentials(t *testing.T) {
	svc, mock, done := newAuthService(t)
	defer done()

	mock.ExpectQuery("FROM users").
		WithArgs("nobody@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, _, err := svc.Login("nobody@example.com", "whatever")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}

func TestIssuedTokenCarriesIdentity(t *testing.T) {
	svc, _, done := newAuthService(t)
	defer done()

	signed, err := svc.issueToken(domain.User{ID: 5, Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}

	parsed, err := jwt.Parse(signed, func(t *jwt.Token) (any, error) {
		return svc.JWTSecret, nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token does not parse: %v", err)
	}
	claims := parsed.Claims.(jwt.MapClaims)
	if int64(claims["user_id"].(float64)) != 5 {
		t.Fatalf("user_id claim wrong: %v", claims["user_id"])
	}
	if claims["role"] != "admin" {
		t.Fatalf("role claim wrong: %v", claims["role"])
	}
}
