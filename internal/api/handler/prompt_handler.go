package handler

import (
	"FutureMe/internal/pkg/consts"
	"FutureMe/internal/pkg/response"
	"FutureMe/internal/service"

	"github.com/gin-gonic/gin"
)

type PromptHandler struct {
	promptSvc service.PromptService
}

func NewPromptHandler(promptSvc service.PromptService) *PromptHandler {
	return &PromptHandler{promptSvc: promptSvc}
}

func (s *PromptHandler) Today(c *gin.Context) {
	prompt, err := s.promptSvc.Today(c.Request.Context(), c.GetString(consts.ContextUserID))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, prompt)
}
