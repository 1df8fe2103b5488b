package consts

const (
	// DateLayout 日历日格式
	DateLayout = "2006-01-02"
	// MonthLayout 月份格式
	MonthLayout = "2006-01"
)

const (
	// PromptLibraryEmpty 题库为空时的占位文案
	PromptLibraryEmpty = "Prompt library empty."
	// PaywallHeader 软付费墙响应头
	PaywallHeader = "x-paywall"
	PaywallSoft   = "soft"
)

const (
	// ContextUserID gin.Context 中当前用户的 key
	ContextUserID = "user_id"
)
