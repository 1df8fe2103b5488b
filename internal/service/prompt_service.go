package service

import (
	"FutureMe/internal/api/dto"
	"FutureMe/internal/model"
	"FutureMe/internal/pkg/consts"
	"FutureMe/internal/pkg/redis"
	"FutureMe/internal/pkg/util"
	"FutureMe/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/goccy/go-json"
)

type PromptService interface {
	Today(ctx context.Context, userID string) (*dto.PromptDTO, error)
}

type promptServiceImpl struct {
	promptRepo repository.PromptRepo
	now        func() time.Time
}

func NewPromptService(promptRepo repository.PromptRepo) PromptService {
	return &promptServiceImpl{
		promptRepo: promptRepo,
		now:        time.Now,
	}
}

// SelectPrompt 同一 user + 日期永远落在同一下标
func SelectPrompt(userID string, day string, n int) int {
	if n <= 0 {
		return 0
	}
	return int(util.HashString(userID+":"+day) % uint32(n))
}

// Today 当天首次请求时选择题目并记录，之后都返回记录中的题目
func (s *promptServiceImpl) Today(ctx context.Context, userID string) (*dto.PromptDTO, error) {
	now := s.now().UTC()
	today := now.Format(consts.DateLayout)
	key := consts.PromptTodayKey + userID + ":" + today

	if cached, err := redis.GetValue(ctx, key); err != nil {
		log.WarnContext(ctx, "Prompt cache read failed", "err", err)
	} else if cached != "" {
		prompt := &dto.PromptDTO{}
		if err = json.Unmarshal([]byte(cached), prompt); err == nil {
			return prompt, nil
		}
	}

	served, err := s.promptRepo.GetLog(ctx, userID, today)
	if err != nil {
		return nil, err
	}

	if served == nil {
		prompts, err := s.promptRepo.ListActive(ctx)
		if err != nil {
			return nil, err
		}
		if len(prompts) == 0 {
			return &dto.PromptDTO{Text: consts.PromptLibraryEmpty}, nil
		}

		chosen := prompts[SelectPrompt(userID, today, len(prompts))]
		err = s.promptRepo.CreateLogIfAbsent(ctx, &model.PromptLog{
			UserID:   userID,
			ServedOn: today,
			PromptID: chosen.ID,
		})
		if err != nil {
			return nil, err
		}

		// 并发的首次请求以落库的那一行为准
		served, err = s.promptRepo.GetLog(ctx, userID, today)
		if err != nil {
			return nil, err
		}
		if served == nil {
			served = &model.PromptLog{PromptID: chosen.ID, Prompt: *chosen}
		}
	}

	prompt := &dto.PromptDTO{ID: served.Prompt.ID, Text: served.Prompt.Text}
	if b, err := json.Marshal(prompt); err == nil {
		if err = redis.SetWithExpiration(ctx, key, string(b), redis.UntilNextUTCMidnight(now)); err != nil {
			log.WarnContext(ctx, "Prompt cache write failed", "err", err)
		}
	}
	return prompt, nil
}
