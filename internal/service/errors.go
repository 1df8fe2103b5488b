package service

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrParamInvalid        = errors.New("invalid request parameters")
	ErrContentRequired     = errors.New("Missing content")
	ErrContentTooShort     = errors.New("content is too short")
	ErrMonthInvalid        = errors.New("month must be formatted as YYYY-MM")
	ErrUnauthenticated     = errors.New("unauthenticated")
	ErrUserExist           = errors.New("email is already registered")
	ErrPasswordIncorrect   = errors.New("email or password is incorrect")
	ErrUserNotFound        = errors.New("user not found")
	ErrEntryNotFound       = errors.New("entry not found")
	ErrLetterNoEntries     = errors.New("no entries for this month")
	ErrPaymentRequired     = errors.New("Reflection Letters are paid.")
	ErrReflectionFailed    = errors.New("AI error")
	ErrLetterFailed        = errors.New("AI error")
	ErrClassifierMalformed = errors.New("classifier returned an invalid result")
	UnExpectedError        = errors.New("internal server error")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:      http.StatusBadRequest,
	ErrContentRequired:   http.StatusBadRequest,
	ErrContentTooShort:   http.StatusBadRequest,
	ErrMonthInvalid:      http.StatusBadRequest,
	ErrUnauthenticated:   http.StatusUnauthorized,
	ErrUserExist:         http.StatusBadRequest,
	ErrPasswordIncorrect: http.StatusUnauthorized,
	ErrUserNotFound:      http.StatusNotFound,
	ErrEntryNotFound:     http.StatusNotFound,
	ErrLetterNoEntries:   http.StatusNotFound,
	ErrPaymentRequired:   http.StatusPaymentRequired,
	ErrReflectionFailed:  http.StatusInternalServerError,
	ErrLetterFailed:      http.StatusInternalServerError,
	UnExpectedError:      http.StatusInternalServerError,
}

// ContentTooShortError 正文长度不足，提示使用配置的最小长度
type ContentTooShortError struct {
	Min int
}

func (e *ContentTooShortError) Error() string {
	return fmt.Sprintf("Write at least %d characters.", e.Min)
}

func (e *ContentTooShortError) Is(target error) bool {
	return target == ErrContentTooShort
}

// StatusOf 解析错误对应的 HTTP 状态码，未登记的错误返回 false
func StatusOf(err error) (int, error, bool) {
	for target, code := range ErrorMap {
		if errors.Is(err, target) {
			return code, target, true
		}
	}
	return http.StatusInternalServerError, UnExpectedError, false
}
