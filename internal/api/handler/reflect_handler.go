package handler

import (
	"FutureMe/internal/api/dto"
	"FutureMe/internal/pkg/consts"
	"FutureMe/internal/pkg/response"
	"FutureMe/internal/pkg/util"
	"FutureMe/internal/service"

	"github.com/gin-gonic/gin"
)

type ReflectHandler struct {
	reflectionSvc service.ReflectionService
	letterSvc     service.LetterService
}

func NewReflectHandler(reflectionSvc service.ReflectionService, letterSvc service.LetterService) *ReflectHandler {
	return &ReflectHandler{
		reflectionSvc: reflectionSvc,
		letterSvc:     letterSvc,
	}
}

func (s *ReflectHandler) Reflect(c *gin.Context) {
	var req dto.ReflectDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}
	result, err := s.reflectionSvc.Reflect(c.Request.Context(), c.GetString(consts.ContextUserID), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *ReflectHandler) ReflectionLetter(c *gin.Context) {
	var req dto.ReflectionLetterRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	letter, err := s.letterSvc.WriteLetter(c.Request.Context(), c.GetString(consts.ContextUserID), req.Month)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, letter)
}
