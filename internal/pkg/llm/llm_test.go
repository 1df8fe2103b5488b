package llm

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

type stubModel struct {
	answer   string
	err      error
	messages []llms.MessageContent
	options  llms.CallOptions
}

func (s *stubModel) GenerateContent(_ context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	s.messages = messages
	for _, opt := range options {
		opt(&s.options)
	}
	if s.err != nil {
		return nil, s.err
	}
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: s.answer}}}, nil
}

func (s *stubModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, s, prompt, options...)
}

func (s *stubModel) userText() string {
	last := s.messages[len(s.messages)-1]
	return last.Parts[0].(llms.TextContent).Text
}

func TestClassifySentiment(t *testing.T) {
	stub := &stubModel{answer: "```json\n{\"label\":\"pos\",\"score\":0.82}\n```"}
	c := NewClient(stub, "test-model", 0)

	s, err := c.ClassifySentiment(context.Background(), "Had a great run this morning.")
	require.NoError(t, err)
	assert.Equal(t, "pos", s.Label)
	assert.InDelta(t, 0.82, s.Score, 1e-9)
	assert.Equal(t, 0.0, stub.options.Temperature)
	assert.Equal(t, "test-model", stub.options.Model)
	assert.Equal(t, llms.ChatMessageTypeSystem, stub.messages[0].Role)
}

func TestClassifySentiment_TruncatesInput(t *testing.T) {
	stub := &stubModel{answer: `{"label":"neu","score":0.5}`}
	c := NewClient(stub, "", 0)

	_, err := c.ClassifySentiment(context.Background(), strings.Repeat("日", MaxSentimentInput+50))
	require.NoError(t, err)
	assert.Equal(t, MaxSentimentInput, len([]rune(stub.userText())))
}

func TestClassifySentiment_Invalid(t *testing.T) {
	cases := map[string]string{
		"not json":     "I think it is positive",
		"bad label":    `{"label":"happy","score":0.9}`,
		"out of range": `{"label":"pos","score":1.7}`,
	}
	for name, answer := range cases {
		t.Run(name, func(t *testing.T) {
			c := NewClient(&stubModel{answer: answer}, "", 0)
			s, err := c.ClassifySentiment(context.Background(), "some journal text")
			assert.Error(t, err)
			assert.Nil(t, s)
		})
	}
}

func TestParseSentiment_LongLabels(t *testing.T) {
	s, err := parseSentiment(`{"label":"Negative","score":0.1}`)
	require.NoError(t, err)
	assert.Equal(t, "neg", s.Label)
}

func TestClassifySentiment_UpstreamError(t *testing.T) {
	c := NewClient(&stubModel{err: errors.New("boom")}, "", 0)
	_, err := c.ClassifySentiment(context.Background(), "some journal text")
	assert.EqualError(t, err, "boom")
}

func TestReflect(t *testing.T) {
	stub := &stubModel{answer: "  You showed up for yourself today. Try a short walk tomorrow.  "}
	c := NewClient(stub, "", 0)

	text, err := c.Reflect(context.Background(), "Felt tired but finished the report.")
	require.NoError(t, err)
	assert.Equal(t, "You showed up for yourself today. Try a short walk tomorrow.", text)
	assert.Equal(t, 140, stub.options.MaxTokens)
	assert.InDelta(t, 0.7, stub.options.Temperature, 1e-9)
	assert.Contains(t, stub.userText(), "Felt tired but finished the report.")
	assert.Len(t, stub.messages, 1)
}

func TestWriteLetter(t *testing.T) {
	stub := &stubModel{answer: `{"themes":["work","sleep"],"wins":["ran twice","shipped"],"next_week_focus":["rest","walk","read"],"summary":"steady month"}`}
	c := NewClient(stub, "", 0)

	letter, err := c.WriteLetter(context.Background(), "2025-10", "2025-10-01: ok day")
	require.NoError(t, err)
	assert.Equal(t, "2025-10", letter.Month)
	assert.Equal(t, []string{"work", "sleep"}, letter.Themes)
	assert.Len(t, letter.NextWeekFocus, 3)
	assert.Contains(t, stub.userText(), "2025-10-01: ok day")
}

func TestWriteLetter_Malformed(t *testing.T) {
	c := NewClient(&stubModel{answer: "sorry"}, "", 0)
	_, err := c.WriteLetter(context.Background(), "2025-10", "x")
	assert.Error(t, err)
}

func TestSchemas(t *testing.T) {
	assert.Contains(t, sentimentSchema, `"neu"`)
	assert.Contains(t, letterSchema, `"next_week_focus"`)
}
