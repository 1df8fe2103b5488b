package service

import (
	"FutureMe/internal/api/dto"
	"FutureMe/internal/model"
	"FutureMe/internal/repository"
	"context"
	"fmt"
	"strings"
)

type ReflectionService interface {
	Reflect(ctx context.Context, userID string, req *dto.ReflectDTO) (*dto.ReflectResultDTO, error)
}

type reflectionServiceImpl struct {
	entryRepo repository.EntryRepo
	replyRepo repository.ReplyRepo
	generator ReflectionGenerator
}

func NewReflectionService(entryRepo repository.EntryRepo, replyRepo repository.ReplyRepo, generator ReflectionGenerator) ReflectionService {
	return &reflectionServiceImpl{
		entryRepo: entryRepo,
		replyRepo: replyRepo,
		generator: generator,
	}
}

// Reflect 带 entry_id 时必须登录且日记属于本人，结果追加为一条回复
func (s *reflectionServiceImpl) Reflect(ctx context.Context, userID string, req *dto.ReflectDTO) (*dto.ReflectResultDTO, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, ErrContentRequired
	}

	if req.EntryID != "" {
		if userID == "" {
			return nil, ErrUnauthenticated
		}
		entry, err := s.entryRepo.GetEntry(ctx, req.EntryID, userID)
		if err != nil {
			return nil, err
		}
		if entry == nil {
			return nil, ErrEntryNotFound
		}
	}

	text, err := s.generator.Reflect(ctx, content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReflectionFailed, err)
	}

	if req.EntryID != "" {
		reply := &model.Reply{
			EntryID: req.EntryID,
			UserID:  userID,
			Content: text,
		}
		if err = s.replyRepo.CreateReply(ctx, reply); err != nil {
			return nil, err
		}
	}

	return &dto.ReflectResultDTO{Text: text}, nil
}
