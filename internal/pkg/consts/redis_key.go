package consts

const (
	PromptTodayKey    = "prompt:today:"    // + userID:date
	SentimentTrendKey = "sentiment:trend:" // + userID，hash field 为查询参数
	TokenBlacklistKey = "token:blacklist:" // + token 签名
)
