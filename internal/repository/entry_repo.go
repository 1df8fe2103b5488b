package repository

import (
	"FutureMe/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// EntryRepo 所有查询都以 user_id 过滤，保证只能访问自己的日记
type EntryRepo interface {
	CreateEntry(ctx context.Context, entry *model.Entry) error
	CountByUser(ctx context.Context, userID string) (int64, error)
	GetEntry(ctx context.Context, id string, userID string) (*model.Entry, error)
	ListRecent(ctx context.Context, userID string, limit int) ([]*model.Entry, error)
	ListSince(ctx context.Context, userID string, since time.Time) ([]*model.Entry, error)
	ListBetween(ctx context.Context, userID string, from, to time.Time) ([]*model.Entry, error)
	ListAll(ctx context.Context, userID string) ([]*model.Entry, error)
	UpdateContent(ctx context.Context, id string, userID string, content string) (int64, error)
	DeleteEntry(ctx context.Context, id string, userID string) (int64, error)
}

type entryRepoImpl struct {
	db *gorm.DB
}

func NewEntryRepo(db *gorm.DB) EntryRepo {
	return &entryRepoImpl{db: db}
}

func (r *entryRepoImpl) CreateEntry(ctx context.Context, entry *model.Entry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *entryRepoImpl) CountByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Entry{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *entryRepoImpl) GetEntry(ctx context.Context, id string, userID string) (*model.Entry, error) {
	entry := &model.Entry{}
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return entry, nil
}

// ListRecent 最新的在前
func (r *entryRepoImpl) ListRecent(ctx context.Context, userID string, limit int) ([]*model.Entry, error) {
	entries := make([]*model.Entry, 0)
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// ListSince 时间正序，用于趋势
func (r *entryRepoImpl) ListSince(ctx context.Context, userID string, since time.Time) ([]*model.Entry, error) {
	entries := make([]*model.Entry, 0)
	err := r.db.WithContext(ctx).
		Select("id", "user_id", "sentiment_label", "sentiment_score", "created_at").
		Where("user_id = ? AND created_at >= ?", userID, since).
		Order("created_at ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// ListBetween 取 [from, to) 区间，时间正序
func (r *entryRepoImpl) ListBetween(ctx context.Context, userID string, from, to time.Time) ([]*model.Entry, error) {
	entries := make([]*model.Entry, 0)
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, from, to).
		Order("created_at ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *entryRepoImpl) ListAll(ctx context.Context, userID string) ([]*model.Entry, error) {
	entries := make([]*model.Entry, 0)
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// UpdateContent 只改正文，情感结果保持写入时的值
func (r *entryRepoImpl) UpdateContent(ctx context.Context, id string, userID string, content string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Entry{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("content", content)
	return result.RowsAffected, result.Error
}

// DeleteEntry 连同其下的 replies 一起删除
func (r *entryRepoImpl) DeleteEntry(ctx context.Context, id string, userID string) (int64, error) {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&model.Entry{})
		if result.Error != nil {
			return result.Error
		}
		affected = result.RowsAffected
		if affected == 0 {
			return nil
		}
		return tx.Where("entry_id = ? AND user_id = ?", id, userID).Delete(&model.Reply{}).Error
	})
	return affected, err
}
