package handler

import (
	"FutureMe/internal/api/dto"
	"FutureMe/internal/pkg/consts"
	"FutureMe/internal/pkg/response"
	"FutureMe/internal/pkg/util"
	"FutureMe/internal/service"

	"github.com/gin-gonic/gin"
)

type SentimentHandler struct {
	sentimentSvc service.SentimentService
	trendSvc     service.TrendService
}

func NewSentimentHandler(sentimentSvc service.SentimentService, trendSvc service.TrendService) *SentimentHandler {
	return &SentimentHandler{
		sentimentSvc: sentimentSvc,
		trendSvc:     trendSvc,
	}
}

// Classify 总是返回 200，请求体异常时按空内容处理
func (s *SentimentHandler) Classify(c *gin.Context) {
	var req dto.SentimentRequestDTO
	_ = c.ShouldBindJSON(&req)
	response.Success(c, s.sentimentSvc.Classify(c.Request.Context(), req.Content))
}

func (s *SentimentHandler) Trend(c *gin.Context) {
	var query dto.TrendQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&query); err != nil {
		response.Error(c, err)
		return
	}
	trend, err := s.trendSvc.GetTrend(c.Request.Context(), c.GetString(consts.ContextUserID), &query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, trend)
}
