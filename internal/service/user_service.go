package service

import (
	"FutureMe/internal/api/dto"
	"FutureMe/internal/model"
	"FutureMe/internal/pkg/consts"
	"FutureMe/internal/pkg/redis"
	"FutureMe/internal/pkg/security"
	"FutureMe/internal/repository"
	"context"
	"errors"
	"strings"
)

type UserService interface {
	Register(ctx context.Context, dto *dto.CredentialDTO) (*dto.TokenDTO, error)
	Login(ctx context.Context, dto *dto.CredentialDTO) (*dto.TokenDTO, error)
	Logout(ctx context.Context, token string) error
}

type UserServiceImpl struct {
	userRepo repository.UserRepo
}

func NewUserService(userRepo repository.UserRepo) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) Register(ctx context.Context, credential *dto.CredentialDTO) (*dto.TokenDTO, error) {
	email := normalizeEmail(credential.Email)
	findUser, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if findUser != nil {
		return nil, ErrUserExist
	}

	passwordHash, err := security.HashPassword(credential.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:        email,
		PasswordHash: passwordHash,
		Plan:         model.PlanFree,
	}
	if err = s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	return issueToken(user.ID)
}

func (s *UserServiceImpl) Login(ctx context.Context, credential *dto.CredentialDTO) (*dto.TokenDTO, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, normalizeEmail(credential.Email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrPasswordIncorrect
	}
	if err = security.CheckPasswordHash(credential.Password, user.PasswordHash); err != nil {
		if errors.Is(err, security.ErrInvalidCredentials) {
			return nil, ErrPasswordIncorrect
		}
		return nil, err
	}
	return issueToken(user.ID)
}

// Logout 签名写入黑名单直到 Token 自然过期
func (s *UserServiceImpl) Logout(ctx context.Context, token string) error {
	claims, err := security.ValidateToken(token)
	if err != nil {
		return ErrUnauthenticated
	}
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return ErrUnauthenticated
	}
	ttl := security.RemainingTTL(claims)
	if ttl == 0 {
		return nil
	}
	return redis.SetWithExpiration(ctx, consts.TokenBlacklistKey+signature, 1, ttl)
}

func issueToken(userID string) (*dto.TokenDTO, error) {
	token, err := security.GenerateToken(userID)
	if err != nil {
		return nil, err
	}
	return &dto.TokenDTO{Token: token}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
