package dto

// ReflectDTO POST /reflect 请求，EntryID 非空时结果作为回复保存
type ReflectDTO struct {
	Content string `json:"content" validate:"max=20000"`
	EntryID string `json:"entry_id"`
}

type ReflectResultDTO struct {
	Text string `json:"text"`
}

type ReplyDTO struct {
	ID        string `json:"id"`
	EntryID   string `json:"entry_id"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

type ReplyListDTO struct {
	Replies []*ReplyDTO `json:"replies"`
}
