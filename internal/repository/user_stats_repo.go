package repository

import (
	"FutureMe/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserStatsRepo interface {
	GetStats(ctx context.Context, userID string) (*model.UserStats, error)
	SaveStats(ctx context.Context, stats *model.UserStats) error
}

type userStatsRepoImpl struct {
	db *gorm.DB
}

func NewUserStatsRepo(db *gorm.DB) UserStatsRepo {
	return &userStatsRepoImpl{db: db}
}

func (r *userStatsRepoImpl) GetStats(ctx context.Context, userID string) (*model.UserStats, error) {
	stats := &model.UserStats{}
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(stats).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return stats, nil
}

// SaveStats 采用 Upsert 逻辑，user_id 已存在时覆盖连续天数
func (r *userStatsRepoImpl) SaveStats(ctx context.Context, stats *model.UserStats) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"last_entry_date",
			"current_streak",
			"longest_streak",
			"updated_at",
		}),
	}).Create(stats).Error
}
