package dto

// CredentialDTO 注册 / 登录
type CredentialDTO struct {
	Email    string `json:"email" binding:"required" validate:"email,max=255"`
	Password string `json:"password" binding:"required" validate:"min=8,max=72"`
}

type TokenDTO struct {
	Token string `json:"token"`
}
