package entity

import "time"

// Profile representa un usuario del panel con su rol (admin, manager, operator, viewer).
type Profile struct {
	ID           string
	Email        string
	FullName     string
	Role         string
	PasswordHash string // bcrypt
	AvatarURL    string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
