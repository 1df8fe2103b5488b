package model

import "time"

// Reply AI 生成的反思，只追加不修改
type Reply struct {
	ID        string    `gorm:"type:char(36);primaryKey"`
	EntryID   string    `gorm:"type:char(36);not null;index:idx_replies_entry"`
	UserID    string    `gorm:"type:char(36);not null;index:idx_replies_user"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time
}

func (Reply) TableName() string {
	return "replies"
}
