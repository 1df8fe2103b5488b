package model

import (
	"time"
)

const (
	PlanFree = "free"
	PlanPaid = "paid"
)

type User struct {
	ID           string `gorm:"type:char(36);primaryKey"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex:idx_email"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	Plan         string `gorm:"type:varchar(16);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (User) TableName() string {
	return "users"
}

func (u *User) IsPaid() bool {
	return u != nil && u.Plan == PlanPaid
}
