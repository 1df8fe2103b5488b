package service

import (
	"FutureMe/internal/api/dto"
	"FutureMe/internal/model"
	"context"
)

// SentimentClassifier 情感分类，返回的结果必须满足 Valid()
type SentimentClassifier interface {
	ClassifySentiment(ctx context.Context, content string) (*model.Sentiment, error)
}

// ReflectionGenerator 为日记生成简短反思
type ReflectionGenerator interface {
	Reflect(ctx context.Context, content string) (string, error)
}

// LetterWriter 生成月度反思信
type LetterWriter interface {
	WriteLetter(ctx context.Context, month string, corpus string) (*dto.ReflectionLetterDTO, error)
}
