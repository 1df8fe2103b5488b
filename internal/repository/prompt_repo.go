package repository

import (
	"FutureMe/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PromptRepo interface {
	GetLog(ctx context.Context, userID string, servedOn string) (*model.PromptLog, error)
	ListActive(ctx context.Context) ([]*model.DailyPrompt, error)
	CreateLogIfAbsent(ctx context.Context, log *model.PromptLog) error
	CreatePrompts(ctx context.Context, texts []string) error
}

type promptRepoImpl struct {
	db *gorm.DB
}

func NewPromptRepo(db *gorm.DB) PromptRepo {
	return &promptRepoImpl{db: db}
}

func (r *promptRepoImpl) GetLog(ctx context.Context, userID string, servedOn string) (*model.PromptLog, error) {
	log := &model.PromptLog{}
	err := r.db.WithContext(ctx).
		Preload("Prompt").
		Where("user_id = ? AND served_on = ?", userID, servedOn).
		First(log).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return log, nil
}

// ListActive 按 id 升序，保证同一题库下的选择稳定
func (r *promptRepoImpl) ListActive(ctx context.Context) ([]*model.DailyPrompt, error) {
	prompts := make([]*model.DailyPrompt, 0)
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("id ASC").
		Find(&prompts).Error
	if err != nil {
		return nil, err
	}
	return prompts, nil
}

// CreateLogIfAbsent 同一 user + 日期已有记录时不做任何修改
func (r *promptRepoImpl) CreateLogIfAbsent(ctx context.Context, log *model.PromptLog) error {
	return r.db.WithContext(ctx).
		Omit("Prompt").
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "served_on"}},
			DoNothing: true,
		}).
		Create(log).Error
}

// CreatePrompts 写入题库，用于初始化
func (r *promptRepoImpl) CreatePrompts(ctx context.Context, texts []string) error {
	if len(texts) == 0 {
		return nil
	}
	prompts := make([]*model.DailyPrompt, 0, len(texts))
	for _, text := range texts {
		prompts = append(prompts, &model.DailyPrompt{Text: text, Active: true})
	}
	return r.db.WithContext(ctx).Create(&prompts).Error
}
