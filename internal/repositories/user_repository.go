package repositories

import (
	"database/sql"
	"errors"
	"strings"

	"busline/internal/db"
	"busline/internal/domain"
)

const userColumns = `id, email, first_name, last_name, display_name, phone,
	photo_url, role, created_at, updated_at`

type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) GetByID(id int64) (domain.User, error) {
	row := r.DB.QueryRow(`SELECT `+userColumns+` FROM users WHERE id=?`, id)
	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, domain.ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, domain.InternalError{Msg: "get user", Err: err}
	}
	return u, nil
}

// GetByEmail also returns the bcrypt hash; it is the login lookup.
func (r UserRepository) GetByEmail(email string) (domain.User, string, error) {
	row := r.DB.QueryRow(`SELECT `+userColumns+`, password_hash FROM users
		WHERE email=?`, normalizeEmail(email))

	var (
		u    domain.User
		hash string
	)
	err := row.Scan(
		&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.DisplayName,
		&u.Phone, &u.PhotoURL, &u.Role, &u.CreatedAt, &u.UpdatedAt, &hash,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, "", domain.ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, "", domain.InternalError{Msg: "get user by email", Err: err}
	}
	return u, hash, nil
}

// Create inserts a new user with role 'user'. A duplicate email is a
// conflict, relying on the unique key rather than a racy pre-check.
func (r UserRepository) Create(u *domain.User, passwordHash string) error {
	res, err := r.DB.Exec(`INSERT INTO users
		(email, password_hash, first_name, last_name, display_name, phone, photo_url, role)
		VALUES (?,?,?,?,?,?,?,?)`,
		normalizeEmail(u.Email), passwordHash, u.FirstName, u.LastName,
		u.DisplayName, u.Phone, u.PhotoURL, string(domain.RoleUser))
	if err != nil {
		if db.IsDuplicateKey(err) {
			return domain.ErrEmailTaken
		}
		return domain.InternalError{Msg: "create user", Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.InternalError{Msg: "create user", Err: err}
	}
	u.ID = id
	u.Role = domain.RoleUser
	return nil
}

// ProfileUpdate carries the fields a user may change. Nil means "leave
// as is". Email and role deliberately have no field here.
type ProfileUpdate struct {
	FirstName   *string
	LastName    *string
	DisplayName *string
	Phone       *string
	PhotoURL    *string
}

func (r UserRepository) UpdateProfile(id int64, upd ProfileUpdate) error {
	sets := []string{}
	args := []any{}
	add := func(col string, v *string) {
		if v != nil {
			sets = append(sets, col+"=?")
			args = append(args, strings.TrimSpace(*v))
		}
	}
	add("first_name", upd.FirstName)
	add("last_name", upd.LastName)
	add("display_name", upd.DisplayName)
	add("phone", upd.Phone)
	add("photo_url", upd.PhotoURL)

	if len(sets) == 0 {
		return nil
	}
	args = append(args, id)

	res, err := r.DB.Exec(`UPDATE users SET `+strings.Join(sets, ", ")+` WHERE id=?`, args...)
	if err != nil {
		return domain.InternalError{Msg: "update profile", Err: err}
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		// Either the user is gone or the values did not change; only the
		// former is an error.
		var exists int
		if scanErr := r.DB.QueryRow(`SELECT 1 FROM users WHERE id=?`, id).Scan(&exists); scanErr != nil {
			if errors.Is(scanErr, sql.ErrNoRows) {
				return domain.ErrUserNotFound
			}
			return domain.InternalError{Msg: "check user", Err: scanErr}
		}
	}
	return nil
}

func scanUser(row rowScanner) (domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.DisplayName,
		&u.Phone, &u.PhotoURL, &u.Role, &u.CreatedAt, &u.UpdatedAt,
	)
	return u, err
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
