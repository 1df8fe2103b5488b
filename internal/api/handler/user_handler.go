package handler

import (
	"FutureMe/internal/api/dto"
	"FutureMe/internal/api/middleware"
	"FutureMe/internal/pkg/response"
	"FutureMe/internal/pkg/util"
	"FutureMe/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userSvc service.UserService
}

func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

func (s *UserHandler) Register(c *gin.Context) {
	var credential dto.CredentialDTO
	if err := c.ShouldBindJSON(&credential); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&credential); err != nil {
		response.Error(c, err)
		return
	}
	token, err := s.userSvc.Register(c.Request.Context(), &credential)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, token)
}

func (s *UserHandler) Login(c *gin.Context) {
	var credential dto.CredentialDTO
	if err := c.ShouldBindJSON(&credential); err != nil {
		response.Error(c, err)
		return
	}
	token, err := s.userSvc.Login(c.Request.Context(), &credential)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, token)
}

func (s *UserHandler) Logout(c *gin.Context) {
	token, _ := middleware.BearerToken(c)
	if err := s.userSvc.Logout(c.Request.Context(), token); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.OkResponse{Ok: true})
}
