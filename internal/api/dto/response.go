package dto

// ErrorResponse 失败响应体
type ErrorResponse struct {
	Error string `json:"error"`
}

// PaywallResponse 付费墙拦截响应体
type PaywallResponse struct {
	Paywall bool   `json:"paywall"`
	Reason  string `json:"reason"`
}

// OkResponse 无业务数据的成功响应
type OkResponse struct {
	Ok bool `json:"ok"`
}
