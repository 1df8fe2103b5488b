package response

import (
	"FutureMe/internal/pkg/util"
	"FutureMe/internal/service"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func run(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	Error(c, err)
	return w
}

func TestError_MapsSentinels(t *testing.T) {
	w := run(service.ErrContentTooShort)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"content is too short"}`, w.Body.String())

	w = run(fmt.Errorf("load entry: %w", service.ErrEntryNotFound))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = run(service.ErrUnauthenticated)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestError_PaymentRequired(t *testing.T) {
	w := run(service.ErrPaymentRequired)
	assert.Equal(t, http.StatusPaymentRequired, w.Code)
	assert.JSONEq(t, `{"paywall":true,"reason":"Reflection Letters are paid."}`, w.Body.String())
}

func TestError_UnknownIsGeneric(t *testing.T) {
	w := run(errors.New("pq: connection refused to 10.0.0.3"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "10.0.0.3")
}

func TestError_FieldValidation(t *testing.T) {
	w := run(&util.ValidationError{Field: "Email", Tag: "email"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"field [Email] failed on rule [email]"}`, w.Body.String())
}

func TestError_ContentTooShortUsesMinimum(t *testing.T) {
	w := run(&service.ContentTooShortError{Min: 25})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Write at least 25 characters."}`, w.Body.String())

	w = run(fmt.Errorf("update entry: %w", &service.ContentTooShortError{Min: 10}))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Write at least 10 characters."}`, w.Body.String())
}
