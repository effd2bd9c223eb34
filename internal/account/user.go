// Package account keeps registered users and the single active session in
// the local key-value area.
package account

import "errors"

// Storage keys inside the key-value area.
const (
	UsersKey   = "skillmatch_users"
	SessionKey = "skillmatch_session"
)

// Role is the kind of account.
type Role string

const (
	RoleSeeker   Role = "seeker"
	RoleEmployer Role = "employer"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleSeeker || r == RoleEmployer
}

// Label is the display name of the role.
func (r Role) Label() string {
	switch r {
	case RoleSeeker:
		return "Job Seeker"
	case RoleEmployer:
		return "Employer"
	default:
		return string(r)
	}
}

// User is a registered account. The session record is the same shape.
type User struct {
	ID       string `json:"id" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password"`
	Role     Role   `json:"role" validate:"required"`
}

var (
	// ErrDuplicateEmail is returned by Signup when the email is taken.
	ErrDuplicateEmail = errors.New("an account with this email already exists")

	// ErrInvalidCredentials is returned by Login for any mismatch.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrCorruptAccounts is returned when the stored users collection cannot
	// be decoded. The collection is left untouched.
	ErrCorruptAccounts = errors.New("stored accounts are unreadable")
)
