package response

import (
	"FutureMe/internal/api/dto"
	"FutureMe/internal/pkg/util"
	"FutureMe/internal/service"
	"encoding/json"
	"errors"
	"io"
	log "log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Success 成功返回，直接输出业务数据
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Fail 失败返回封装
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, dto.ErrorResponse{Error: message})
}

// Paywall 付费功能拦截
func Paywall(c *gin.Context, reason string) {
	c.JSON(http.StatusPaymentRequired, dto.PaywallResponse{Paywall: true, Reason: reason})
}

// Error 处理错误，未登记的错误只在服务端记录细节
func Error(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		Fail(c, http.StatusBadRequest, service.ErrParamInvalid.Error())
		return
	}

	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		Fail(c, http.StatusBadRequest, service.ErrParamInvalid.Error())
		return
	}

	var fieldErr *util.ValidationError
	if errors.As(err, &fieldErr) {
		Fail(c, http.StatusBadRequest, fieldErr.Error())
		return
	}

	var shortErr *service.ContentTooShortError
	if errors.As(err, &shortErr) {
		Fail(c, http.StatusBadRequest, shortErr.Error())
		return
	}

	var unmarshalTypeError *json.UnmarshalTypeError
	var syntaxError *json.SyntaxError
	if errors.As(err, &unmarshalTypeError) || errors.As(err, &syntaxError) ||
		errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		Fail(c, http.StatusBadRequest, "malformed JSON body")
		return
	}

	if errors.Is(err, service.ErrPaymentRequired) {
		Paywall(c, service.ErrPaymentRequired.Error())
		return
	}

	status, target, ok := service.StatusOf(err)
	if !ok || status >= http.StatusInternalServerError {
		log.ErrorContext(c.Request.Context(), "Request failed", "path", c.FullPath(), "err", err)
	}
	Fail(c, status, target.Error())
}
