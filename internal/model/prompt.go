package model

import "time"

type DailyPrompt struct {
	ID     uint64 `gorm:"primaryKey"`
	Text   string `gorm:"type:text;not null"`
	Active bool   `gorm:"not null;default:true;index"`
}

func (DailyPrompt) TableName() string {
	return "daily_prompts"
}

// PromptLog 每个用户每天至多一行
type PromptLog struct {
	ID        uint64    `gorm:"primaryKey"`
	UserID    string    `gorm:"type:char(36);not null;uniqueIndex:idx_user_served_on,priority:1"`
	ServedOn  string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_user_served_on,priority:2"`
	PromptID  uint64    `gorm:"not null"`
	CreatedAt time.Time

	Prompt DailyPrompt `gorm:"foreignKey:PromptID;references:ID"`
}

func (PromptLog) TableName() string {
	return "user_prompt_log"
}
