package wire

import (
	"FutureMe/internal/api/config"
	"FutureMe/internal/api/dto"
	"FutureMe/internal/model"
	"FutureMe/internal/testutil"
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeAssistant struct {
	reflectErr error
}

func (f *fakeAssistant) ClassifySentiment(context.Context, string) (*model.Sentiment, error) {
	return &model.Sentiment{Label: model.SentimentPositive, Score: 0.7}, nil
}

func (f *fakeAssistant) Reflect(context.Context, string) (string, error) {
	if f.reflectErr != nil {
		return "", f.reflectErr
	}
	return "Nice work showing up.", nil
}

func (f *fakeAssistant) WriteLetter(_ context.Context, month string, _ string) (*dto.ReflectionLetterDTO, error) {
	return &dto.ReflectionLetterDTO{
		Month:         month,
		Themes:        []string{"a", "b"},
		Wins:          []string{"c", "d"},
		NextWeekFocus: []string{"e", "f", "g"},
		Summary:       "ok",
	}, nil
}

type testApp struct {
	t      *testing.T
	db     *gorm.DB
	router http.Handler
}

func newTestApp(t *testing.T, assistant Assistant) *testApp {
	gin.SetMode(gin.TestMode)
	db := testutil.NewTestDB(t)
	cfg := &config.Config{
		Journal: config.JournalConfig{
			MinContentLength: 10,
			FreeTierLimit:    7,
			TrendDefaultDays: 30,
			TrendMaxDays:     365,
			ListDefaultLimit: 20,
			ListMaxLimit:     100,
			SeedPrompts:      []string{"What are you grateful for?", "What would make tomorrow easier?"},
		},
	}
	app, err := BuildApplication(db, cfg, assistant)
	require.NoError(t, err)
	return &testApp{t: t, db: db, router: app.Router}
}

func (a *testApp) call(method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testApp) register(email string) string {
	w := a.call(http.MethodPost, "/api/auth/register", "", map[string]string{"email": email, "password": "password123"})
	require.Equal(a.t, http.StatusOK, w.Code, w.Body.String())
	var token dto.TokenDTO
	require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), &token))
	return token.Token
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestJournalFlow(t *testing.T) {
	app := newTestApp(t, &fakeAssistant{})
	token := app.register("writer@example.com")

	w := app.call(http.MethodGet, "/api/ping", "", nil)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())

	w = app.call(http.MethodPost, "/api/entries", token, map[string]string{"content": "too short"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Write at least 10 characters."}`, w.Body.String())

	w = app.call(http.MethodPost, "/api/entries", token, map[string]string{"content": "Today was calm and productive."})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	created := decode[dto.CreateEntryResultDTO](t, w)
	assert.True(t, created.Ok)
	assert.False(t, created.PaywallHint)
	assert.Equal(t, "pos", created.Sentiment.Label)

	w = app.call(http.MethodGet, "/api/stats", token, nil)
	stats := decode[dto.StatsDTO](t, w)
	assert.Equal(t, 1, stats.CurrentStreak)

	w = app.call(http.MethodGet, "/api/entries?limit=5", token, nil)
	list := decode[dto.EntryListDTO](t, w)
	require.Len(t, list.Entries, 1)
	assert.Equal(t, created.ID, list.Entries[0].ID)

	w = app.call(http.MethodGet, "/api/entries?limit=abc", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = app.call(http.MethodGet, "/api/prompts/today", token, nil)
	prompt := decode[dto.PromptDTO](t, w)
	assert.NotZero(t, prompt.ID)
	assert.Contains(t, []string{"What are you grateful for?", "What would make tomorrow easier?"}, prompt.Text)

	w = app.call(http.MethodGet, "/api/sentiment/trend?days=7", token, nil)
	trend := decode[dto.TrendDTO](t, w)
	require.Len(t, trend.Points, 1)
	assert.Equal(t, 0.7, trend.Points[0].Y)
	assert.NotEmpty(t, trend.Path)

	w = app.call(http.MethodGet, "/api/sentiment/trend", "", nil)
	assert.JSONEq(t, `{"points":[],"path":""}`, w.Body.String())

	w = app.call(http.MethodPost, "/api/reflect", token, map[string]string{"content": "Today was calm.", "entry_id": created.ID})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"text":"Nice work showing up."}`, w.Body.String())

	w = app.call(http.MethodGet, "/api/entries/"+created.ID+"/replies", token, nil)
	replies := decode[dto.ReplyListDTO](t, w)
	require.Len(t, replies.Replies, 1)
	assert.Equal(t, "Nice work showing up.", replies.Replies[0].Content)

	w = app.call(http.MethodPut, "/api/entries/"+created.ID, token, map[string]string{"content": "Today was calm, then busy."})
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())

	w = app.call(http.MethodGet, "/api/export/entries", token, nil)
	assert.Equal(t, "soft", w.Header().Get("x-paywall"))
	export := decode[dto.ExportDTO](t, w)
	assert.Len(t, export.Entries, 1)

	w = app.call(http.MethodPost, "/api/reflection-letter", token, map[string]string{"month": "2025-10"})
	assert.Equal(t, http.StatusPaymentRequired, w.Code)
	assert.JSONEq(t, `{"paywall":true,"reason":"Reflection Letters are paid."}`, w.Body.String())

	w = app.call(http.MethodDelete, "/api/entries/"+created.ID, token, nil)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())

	w = app.call(http.MethodPost, "/api/auth/logout", token, nil)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
}

func TestPaywallHintOnSeventhEntry(t *testing.T) {
	app := newTestApp(t, &fakeAssistant{})
	token := app.register("free@example.com")

	for i := 1; i <= 7; i++ {
		w := app.call(http.MethodPost, "/api/entries", token, map[string]string{"content": "A perfectly ordinary day."})
		require.Equal(t, http.StatusOK, w.Code)
		res := decode[dto.CreateEntryResultDTO](t, w)
		assert.Equal(t, i == 7, res.PaywallHint, "entry %d", i)
	}

	w := app.call(http.MethodGet, "/api/export/entries", token, nil)
	export := decode[dto.ExportDTO](t, w)
	assert.Len(t, export.Entries, 6)
	assert.Equal(t, 1, export.Withheld)
}

func TestPaidLetter(t *testing.T) {
	app := newTestApp(t, &fakeAssistant{})
	token := app.register("paid@example.com")
	require.NoError(t, app.db.Model(&model.User{}).Where("email = ?", "paid@example.com").Update("plan", model.PlanPaid).Error)

	w := app.call(http.MethodPost, "/api/reflection-letter", token, map[string]string{"month": "Oct"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = app.call(http.MethodPost, "/api/reflection-letter", token, map[string]string{"month": "1999-01"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAuthAndFailures(t *testing.T) {
	app := newTestApp(t, &fakeAssistant{reflectErr: errors.New("provider down at 10.1.2.3")})
	token := app.register("auth@example.com")

	w := app.call(http.MethodPost, "/api/entries", "", map[string]string{"content": "Nobody is logged in."})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = app.call(http.MethodGet, "/api/prompts/today", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = app.call(http.MethodPost, "/api/reflect", "", map[string]string{"content": "Reflect on this.", "entry_id": "some-id"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = app.call(http.MethodPost, "/api/reflect", token, map[string]string{"content": ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Missing content"}`, w.Body.String())

	w = app.call(http.MethodPost, "/api/reflect", token, map[string]string{"content": "Reflect on this."})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "10.1.2.3")

	w = app.call(http.MethodPost, "/api/sentiment", "", map[string]string{"content": "I am fine."})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"label":"pos","score":0.7}`, w.Body.String())

	w = app.call(http.MethodPost, "/api/auth/login", "", map[string]string{"email": "auth@example.com", "password": "wrong-password"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = app.call(http.MethodPost, "/api/auth/register", "", map[string]string{"email": "not-an-email", "password": "password123"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = app.call(http.MethodGet, "/api/entries/missing/replies", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
