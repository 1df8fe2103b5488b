package dto

// PromptDTO 今日提示，ID 为 0 表示题库为空
type PromptDTO struct {
	ID   uint64 `json:"id,omitempty"`
	Text string `json:"text"`
}
