package repository

import (
	"FutureMe/internal/model"
	"context"

	"gorm.io/gorm"
)

type ReplyRepo interface {
	CreateReply(ctx context.Context, reply *model.Reply) error
	ListByEntry(ctx context.Context, entryID string, userID string) ([]*model.Reply, error)
}

type replyRepoImpl struct {
	db *gorm.DB
}

func NewReplyRepo(db *gorm.DB) ReplyRepo {
	return &replyRepoImpl{db: db}
}

func (r *replyRepoImpl) CreateReply(ctx context.Context, reply *model.Reply) error {
	return r.db.WithContext(ctx).Create(reply).Error
}

func (r *replyRepoImpl) ListByEntry(ctx context.Context, entryID string, userID string) ([]*model.Reply, error) {
	replies := make([]*model.Reply, 0)
	err := r.db.WithContext(ctx).
		Where("entry_id = ? AND user_id = ?", entryID, userID).
		Order("created_at ASC").
		Find(&replies).Error
	if err != nil {
		return nil, err
	}
	return replies, nil
}
