package service

import (
	"FutureMe/internal/api/config"
	"FutureMe/internal/api/dto"
	"FutureMe/internal/model"
	"FutureMe/internal/pkg/consts"
	"FutureMe/internal/pkg/redis"
	"FutureMe/internal/pkg/util"
	"FutureMe/internal/repository"
	"context"
	"fmt"
	log "log/slog"
	"time"

	"github.com/goccy/go-json"
)

// 默认 sparkline 画布
const (
	DefaultSparkWidth   = 120
	DefaultSparkHeight  = 32
	DefaultSparkPadding = 2
	maxSparkDimension   = 4096
)

type TrendService interface {
	GetTrend(ctx context.Context, userID string, query *dto.TrendQuery) (*dto.TrendDTO, error)
}

type trendServiceImpl struct {
	entryRepo repository.EntryRepo
	cfg       config.JournalConfig
	now       func() time.Time
}

func NewTrendService(entryRepo repository.EntryRepo, cfg config.JournalConfig) TrendService {
	return &trendServiceImpl{
		entryRepo: entryRepo,
		cfg:       cfg,
		now:       time.Now,
	}
}

// GetTrend 窗口为含今天在内的最近 days 个 UTC 日，未登录返回空结果
func (s *trendServiceImpl) GetTrend(ctx context.Context, userID string, query *dto.TrendQuery) (*dto.TrendDTO, error) {
	if userID == "" {
		return &dto.TrendDTO{Points: []*dto.TrendPointDTO{}}, nil
	}

	days := util.ClampInt(query.Days, s.cfg.TrendDefaultDays, 1, s.cfg.TrendMaxDays)
	width := dimension(query.Width, DefaultSparkWidth)
	height := dimension(query.Height, DefaultSparkHeight)
	padding := query.Padding
	if padding == 0 {
		padding = DefaultSparkPadding
	}
	if padding*2 >= width || padding*2 >= height {
		return nil, ErrParamInvalid
	}

	now := s.now().UTC()
	today := utcDay(now)
	key := consts.SentimentTrendKey + userID
	field := fmt.Sprintf("%s|%d|%g|%g|%g", today.Format(consts.DateLayout), days, width, height, padding)

	if cached, err := redis.HGet(ctx, key, field); err != nil {
		log.WarnContext(ctx, "Trend cache read failed", "err", err)
	} else if cached != "" {
		trend := &dto.TrendDTO{}
		if err = json.Unmarshal([]byte(cached), trend); err == nil {
			return trend, nil
		}
	}

	entries, err := s.entryRepo.ListSince(ctx, userID, today.AddDate(0, 0, -(days-1)))
	if err != nil {
		return nil, err
	}

	points := make([]*dto.TrendPointDTO, 0, len(entries))
	values := make([]float64, 0, len(entries))
	for _, entry := range entries {
		score := model.NeutralScore
		if entry.SentimentScore != nil {
			score = *entry.SentimentScore
		}
		points = append(points, &dto.TrendPointDTO{
			X: entry.CreatedAt.UTC().Format(time.RFC3339),
			Y: score,
		})
		values = append(values, score)
	}

	spark := util.ProjectSparkline(values, width, height, padding)
	trend := &dto.TrendDTO{Points: points, Path: spark.Path}

	if b, err := json.Marshal(trend); err == nil {
		if err = redis.HSetWithExpiration(ctx, key, field, string(b), redis.UntilNextUTCMidnight(now)); err != nil {
			log.WarnContext(ctx, "Trend cache write failed", "err", err)
		}
	}
	return trend, nil
}

// InvalidateTrend 用户日记变化后清除趋势缓存
func InvalidateTrend(ctx context.Context, userID string) {
	if err := redis.DeleteKey(ctx, consts.SentimentTrendKey+userID); err != nil {
		log.WarnContext(ctx, "Trend cache invalidation failed", "err", err)
	}
}

func dimension(v, def float64) float64 {
	if v <= 0 {
		return def
	}
	if v > maxSparkDimension {
		return maxSparkDimension
	}
	return v
}
