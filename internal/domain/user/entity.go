package user

import "time"

// User is an administrator account. Employees never log in; the check-in
// portal is public and keyed by employee selection.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
