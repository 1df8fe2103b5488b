package service

import (
	"FutureMe/internal/api/dto"
	"FutureMe/internal/pkg/consts"
	"FutureMe/internal/pkg/util"
	"FutureMe/internal/repository"
	"context"
	"fmt"
	"strings"
	"time"
)

// 送入模型的语料上限
const (
	letterSnippetRunes = 600
	letterCorpusRunes  = 12000
)

type LetterService interface {
	WriteLetter(ctx context.Context, userID string, month string) (*dto.ReflectionLetterDTO, error)
}

type letterServiceImpl struct {
	entryRepo repository.EntryRepo
	userRepo  repository.UserRepo
	writer    LetterWriter
}

func NewLetterService(entryRepo repository.EntryRepo, userRepo repository.UserRepo, writer LetterWriter) LetterService {
	return &letterServiceImpl{
		entryRepo: entryRepo,
		userRepo:  userRepo,
		writer:    writer,
	}
}

// WriteLetter 仅付费用户可用
func (s *letterServiceImpl) WriteLetter(ctx context.Context, userID string, month string) (*dto.ReflectionLetterDTO, error) {
	start, err := time.ParseInLocation(consts.MonthLayout, strings.TrimSpace(month), time.UTC)
	if err != nil {
		return nil, ErrMonthInvalid
	}
	month = start.Format(consts.MonthLayout)

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUnauthenticated
	}
	if !user.IsPaid() {
		return nil, ErrPaymentRequired
	}

	entries, err := s.entryRepo.ListBetween(ctx, userID, start, start.AddDate(0, 1, 0))
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrLetterNoEntries
	}

	var corpus strings.Builder
	for _, entry := range entries {
		line := fmt.Sprintf("%s: %s\n",
			entry.CreatedAt.UTC().Format(consts.DateLayout),
			util.TruncateRunes(strings.TrimSpace(entry.Content), letterSnippetRunes),
		)
		corpus.WriteString(line)
	}

	letter, err := s.writer.WriteLetter(ctx, month, util.TruncateRunes(corpus.String(), letterCorpusRunes))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLetterFailed, err)
	}
	letter.Month = month
	return letter, nil
}
