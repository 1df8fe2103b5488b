package handler

import (
	"FutureMe/internal/api/dto"
	"FutureMe/internal/pkg/consts"
	"FutureMe/internal/pkg/response"
	"FutureMe/internal/pkg/util"
	"FutureMe/internal/service"

	"github.com/gin-gonic/gin"
)

type EntryHandler struct {
	entrySvc service.EntryService
}

func NewEntryHandler(entrySvc service.EntryService) *EntryHandler {
	return &EntryHandler{entrySvc: entrySvc}
}

func (s *EntryHandler) CreateEntry(c *gin.Context) {
	var req dto.EntryContentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}
	result, err := s.entrySvc.CreateEntry(c.Request.Context(), c.GetString(consts.ContextUserID), req.Content)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *EntryHandler) ListEntries(c *gin.Context) {
	var query dto.EntryListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, err)
		return
	}
	list, err := s.entrySvc.ListEntries(c.Request.Context(), c.GetString(consts.ContextUserID), query.Limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

func (s *EntryHandler) UpdateEntry(c *gin.Context) {
	var req dto.EntryContentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}
	err := s.entrySvc.UpdateEntry(c.Request.Context(), c.GetString(consts.ContextUserID), c.Param("id"), req.Content)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.OkResponse{Ok: true})
}

func (s *EntryHandler) DeleteEntry(c *gin.Context) {
	err := s.entrySvc.DeleteEntry(c.Request.Context(), c.GetString(consts.ContextUserID), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.OkResponse{Ok: true})
}

func (s *EntryHandler) ListReplies(c *gin.Context) {
	replies, err := s.entrySvc.ListReplies(c.Request.Context(), c.GetString(consts.ContextUserID), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, replies)
}

func (s *EntryHandler) ExportEntries(c *gin.Context) {
	export, err := s.entrySvc.ExportEntries(c.Request.Context(), c.GetString(consts.ContextUserID))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, export)
}

func (s *EntryHandler) GetStats(c *gin.Context) {
	stats, err := s.entrySvc.GetStats(c.Request.Context(), c.GetString(consts.ContextUserID))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, stats)
}
