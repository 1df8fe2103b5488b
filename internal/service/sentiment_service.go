package service

import (
	"FutureMe/internal/api/dto"
	"FutureMe/internal/model"
	"context"
	log "log/slog"
	"strings"
)

type SentimentService interface {
	Classify(ctx context.Context, content string) *dto.SentimentDTO
}

type sentimentServiceImpl struct {
	classifier SentimentClassifier
}

func NewSentimentService(classifier SentimentClassifier) SentimentService {
	return &sentimentServiceImpl{classifier: classifier}
}

// Classify 任何失败都降级为中性结果
func (s *sentimentServiceImpl) Classify(ctx context.Context, content string) *dto.SentimentDTO {
	return toSentimentDTO(classifyOrNeutral(ctx, s.classifier, content))
}

func classifyOrNeutral(ctx context.Context, classifier SentimentClassifier, content string) *model.Sentiment {
	if strings.TrimSpace(content) == "" || classifier == nil {
		return model.NeutralSentiment()
	}
	sentiment, err := classifier.ClassifySentiment(ctx, content)
	if err != nil {
		log.WarnContext(ctx, "Sentiment classification failed, falling back to neutral", "err", err)
		return model.NeutralSentiment()
	}
	if !sentiment.Valid() {
		log.WarnContext(ctx, "Sentiment classification returned invalid result", "err", ErrClassifierMalformed)
		return model.NeutralSentiment()
	}
	return sentiment
}

func toSentimentDTO(s *model.Sentiment) *dto.SentimentDTO {
	return &dto.SentimentDTO{Label: s.Label, Score: s.Score}
}
