package models

import (
	"time"
)

// Roles a menu user can hold
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User owns OAuth clients; its role is copied into issued access tokens
type User struct {
	ID        uint   `gorm:"primaryKey"`
	Email     string `gorm:"uniqueIndex;not null"`
	Name      string
	Role      string `gorm:"default:'user'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
