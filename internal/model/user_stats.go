package model

import "time"

type UserStats struct {
	UserID        string     `gorm:"type:char(36);primaryKey"`
	LastEntryDate *time.Time `gorm:"type:date"`
	CurrentStreak int        `gorm:"not null;default:0"`
	LongestStreak int        `gorm:"not null;default:0"`
	UpdatedAt     time.Time
}

func (UserStats) TableName() string {
	return "user_stats"
}
