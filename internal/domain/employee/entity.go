package employee

import "time"

type Employee struct {
	ID        string
	Name      string
	Email     string
	AvatarURL *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
