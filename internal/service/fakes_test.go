package service

import (
	"FutureMe/internal/api/dto"
	"FutureMe/internal/model"
	"FutureMe/internal/repository"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeClassifier struct {
	result *model.Sentiment
	err    error
	calls  int
}

func (f *fakeClassifier) ClassifySentiment(context.Context, string) (*model.Sentiment, error) {
	f.calls++
	return f.result, f.err
}

type fakeGenerator struct {
	text string
	err  error
}

func (f *fakeGenerator) Reflect(context.Context, string) (string, error) {
	return f.text, f.err
}

type fakeWriter struct {
	corpus string
	err    error
}

func (f *fakeWriter) WriteLetter(_ context.Context, month string, corpus string) (*dto.ReflectionLetterDTO, error) {
	f.corpus = corpus
	if f.err != nil {
		return nil, f.err
	}
	return &dto.ReflectionLetterDTO{
		Month:         month,
		Themes:        []string{"rest", "work"},
		Wins:          []string{"walked", "wrote"},
		NextWeekFocus: []string{"sleep", "read", "call mom"},
		Summary:       "steady",
	}, nil
}

var errUpstream = errors.New("upstream unavailable")

// clock 可手动推进的时钟
type clock struct {
	t time.Time
}

func (c *clock) Now() time.Time { return c.t }

func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

func createUser(t *testing.T, db *gorm.DB, plan string) *model.User {
	t.Helper()
	user := &model.User{Email: plan + "-" + t.Name() + "@example.com", PasswordHash: "x", Plan: plan}
	require.NoError(t, repository.NewUserRepo(db).CreateUser(context.Background(), user))
	return user
}
