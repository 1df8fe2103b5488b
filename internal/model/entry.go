package model

import (
	"time"
)

// Entry 日记条目，分类完成后仅允许用户修改正文
type Entry struct {
	ID             string   `gorm:"type:char(36);primaryKey"`
	UserID         string   `gorm:"type:char(36);not null;index:idx_entries_user_created,priority:1"`
	Content        string   `gorm:"type:text;not null"`
	SentimentLabel *string  `gorm:"type:varchar(8)"`
	SentimentScore *float64 `gorm:"type:double precision"`
	IsPaidFeature  bool     `gorm:"not null;default:false"`
	// 写入时由服务端赋值
	CreatedAt time.Time `gorm:"index:idx_entries_user_created,priority:2"`
	UpdatedAt time.Time

	Replies []Reply `gorm:"foreignKey:EntryID;references:ID"`
}

func (Entry) TableName() string {
	return "entries"
}
