package domain

import "errors"

// UserType distinguishes ordinary users from administrators.
type UserType string

const (
	TypeUser  UserType = "user"
	TypeAdmin UserType = "admin"
)

// Valid reports whether t is one of the known privilege types.
func (t UserType) Valid() bool {
	return t == TypeUser || t == TypeAdmin
}

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrDuplicateEmail = errors.New("email already in use")
var ErrUserNotFound = errors.New("user not found")
var ErrForbidden = errors.New("access forbidden")
var ErrLastAdmin = errors.New("cannot remove the last administrator")
var ErrInvalidToken = errors.New("invalid or expired token")
var ErrStaleToken = errors.New("token privileges no longer match account")

// User models an account in the system. PassHash never leaves the
// service boundary: it is excluded from JSON and the transport layer
// maps users to dedicated response types without it.
type User struct {
	ID       int      `json:"id"`
	Email    string   `json:"email"`
	Name     string   `json:"name"`
	Type     UserType `json:"type"`
	PassHash string   `json:"-"`
}

// IsAdmin reports whether the user holds administrator privileges.
func (u *User) IsAdmin() bool {
	return u.Type == TypeAdmin
}
