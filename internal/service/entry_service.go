package service

import (
	"FutureMe/internal/api/config"
	"FutureMe/internal/api/dto"
	"FutureMe/internal/model"
	"FutureMe/internal/pkg/consts"
	"FutureMe/internal/pkg/util"
	"FutureMe/internal/repository"
	"context"
	"fmt"
	log "log/slog"
	"strings"
	"time"
)

type EntryService interface {
	CreateEntry(ctx context.Context, userID string, content string) (*dto.CreateEntryResultDTO, error)
	ListEntries(ctx context.Context, userID string, limit int) (*dto.EntryListDTO, error)
	UpdateEntry(ctx context.Context, userID string, entryID string, content string) error
	DeleteEntry(ctx context.Context, userID string, entryID string) error
	ListReplies(ctx context.Context, userID string, entryID string) (*dto.ReplyListDTO, error)
	ExportEntries(ctx context.Context, userID string) (*dto.ExportDTO, error)
	GetStats(ctx context.Context, userID string) (*dto.StatsDTO, error)
}

type EntryServiceImpl struct {
	entryRepo  repository.EntryRepo
	replyRepo  repository.ReplyRepo
	statsRepo  repository.UserStatsRepo
	userRepo   repository.UserRepo
	classifier SentimentClassifier
	cfg        config.JournalConfig
	now        func() time.Time
}

func NewEntryService(
	entryRepo repository.EntryRepo,
	replyRepo repository.ReplyRepo,
	statsRepo repository.UserStatsRepo,
	userRepo repository.UserRepo,
	classifier SentimentClassifier,
	cfg config.JournalConfig,
) EntryService {
	return &EntryServiceImpl{
		entryRepo:  entryRepo,
		replyRepo:  replyRepo,
		statsRepo:  statsRepo,
		userRepo:   userRepo,
		classifier: classifier,
		cfg:        cfg,
		now:        time.Now,
	}
}

// CreateEntry 校验、计数、分类、落库、更新连续天数，分类失败不影响写入
func (s *EntryServiceImpl) CreateEntry(ctx context.Context, userID string, content string) (*dto.CreateEntryResultDTO, error) {
	content = strings.TrimSpace(content)
	if util.RuneLen(content) < s.cfg.MinContentLength {
		return nil, &ContentTooShortError{Min: s.cfg.MinContentLength}
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUnauthenticated
	}

	count, err := s.entryRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	hitPaywall := !user.IsPaid() && HitPaywall(count, s.cfg.FreeTierLimit)

	sentiment := classifyOrNeutral(ctx, s.classifier, content)

	now := s.now().UTC()
	entry := &model.Entry{
		UserID:         userID,
		Content:        content,
		SentimentLabel: &sentiment.Label,
		SentimentScore: &sentiment.Score,
		IsPaidFeature:  hitPaywall,
		CreatedAt:      now,
	}
	if err = s.entryRepo.CreateEntry(ctx, entry); err != nil {
		return nil, err
	}

	if err = s.bumpStreak(ctx, userID, now); err != nil {
		log.ErrorContext(ctx, "Entry saved but stats update failed", "entry_id", entry.ID, "err", err)
		return nil, err
	}

	InvalidateTrend(ctx, userID)

	return &dto.CreateEntryResultDTO{
		Ok:          true,
		ID:          entry.ID,
		Sentiment:   toSentimentDTO(sentiment),
		PaywallHint: hitPaywall,
	}, nil
}

func (s *EntryServiceImpl) bumpStreak(ctx context.Context, userID string, now time.Time) error {
	prior, err := s.statsRepo.GetStats(ctx, userID)
	if err != nil {
		return fmt.Errorf("load stats: %w", err)
	}

	var (
		last    *time.Time
		current int
		longest int
	)
	if prior != nil {
		last, current, longest = prior.LastEntryDate, prior.CurrentStreak, prior.LongestStreak
	}

	update := NextStreak(last, current, longest, now)
	if update.Backdated {
		log.WarnContext(ctx, "Last entry date is after today, streak left unchanged",
			"last_entry_date", last.UTC().Format(consts.DateLayout),
			"today", now.Format(consts.DateLayout),
		)
	}

	stats := &model.UserStats{
		UserID:        userID,
		LastEntryDate: &update.LastEntryDate,
		CurrentStreak: update.Current,
		LongestStreak: update.Longest,
		UpdatedAt:     now,
	}
	if err = s.statsRepo.SaveStats(ctx, stats); err != nil {
		return fmt.Errorf("save stats: %w", err)
	}
	return nil
}

func (s *EntryServiceImpl) ListEntries(ctx context.Context, userID string, limit int) (*dto.EntryListDTO, error) {
	limit = util.ClampInt(limit, s.cfg.ListDefaultLimit, 1, s.cfg.ListMaxLimit)
	entries, err := s.entryRepo.ListRecent(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	entryDTOs, err := toEntryDTOs(entries)
	if err != nil {
		return nil, err
	}
	return &dto.EntryListDTO{Entries: entryDTOs}, nil
}

// UpdateEntry 只修改正文，保留写入时的情感结果
func (s *EntryServiceImpl) UpdateEntry(ctx context.Context, userID string, entryID string, content string) error {
	content = strings.TrimSpace(content)
	if util.RuneLen(content) < s.cfg.MinContentLength {
		return &ContentTooShortError{Min: s.cfg.MinContentLength}
	}
	affected, err := s.entryRepo.UpdateContent(ctx, entryID, userID, content)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrEntryNotFound
	}
	return nil
}

// DeleteEntry 连续天数不回溯
func (s *EntryServiceImpl) DeleteEntry(ctx context.Context, userID string, entryID string) error {
	affected, err := s.entryRepo.DeleteEntry(ctx, entryID, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrEntryNotFound
	}
	InvalidateTrend(ctx, userID)
	return nil
}

func (s *EntryServiceImpl) ListReplies(ctx context.Context, userID string, entryID string) (*dto.ReplyListDTO, error) {
	entry, err := s.entryRepo.GetEntry(ctx, entryID, userID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, ErrEntryNotFound
	}
	replies, err := s.replyRepo.ListByEntry(ctx, entryID, userID)
	if err != nil {
		return nil, err
	}
	replyDTOs, err := toReplyDTOs(replies)
	if err != nil {
		return nil, err
	}
	return &dto.ReplyListDTO{Replies: replyDTOs}, nil
}

// ExportEntries 免费用户超出额度后写入的条目不导出，只返回数量
func (s *EntryServiceImpl) ExportEntries(ctx context.Context, userID string) (*dto.ExportDTO, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUnauthenticated
	}

	entries, err := s.entryRepo.ListAll(ctx, userID)
	if err != nil {
		return nil, err
	}

	visible := make([]*model.Entry, 0, len(entries))
	withheld := 0
	for _, entry := range entries {
		if entry.IsPaidFeature && !user.IsPaid() {
			withheld++
			continue
		}
		visible = append(visible, entry)
	}

	entryDTOs, err := toEntryDTOs(visible)
	if err != nil {
		return nil, err
	}
	return &dto.ExportDTO{Entries: entryDTOs, Withheld: withheld}, nil
}

func (s *EntryServiceImpl) GetStats(ctx context.Context, userID string) (*dto.StatsDTO, error) {
	stats, err := s.statsRepo.GetStats(ctx, userID)
	if err != nil {
		return nil, err
	}
	if stats == nil {
		return &dto.StatsDTO{}, nil
	}
	statsDTO := &dto.StatsDTO{
		CurrentStreak: stats.CurrentStreak,
		LongestStreak: stats.LongestStreak,
	}
	if stats.LastEntryDate != nil {
		day := stats.LastEntryDate.UTC().Format(consts.DateLayout)
		statsDTO.LastEntryDate = &day
	}
	return statsDTO, nil
}
