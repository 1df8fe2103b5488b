package dto

// EntryContentDTO 新建 / 编辑日记
type EntryContentDTO struct {
	Content string `json:"content" validate:"max=20000"`
}

// EntryListQuery GET /entries 查询参数
type EntryListQuery struct {
	Limit int `form:"limit" validate:"min=0,max=1000"`
}

// EntryDTO 日记列表项
type EntryDTO struct {
	ID             string   `json:"id"`
	CreatedAt      string   `json:"created_at"`
	Content        string   `json:"content"`
	SentimentLabel *string  `json:"sentiment_label,omitempty"`
	SentimentScore *float64 `json:"sentiment_score"`
	IsPaidFeature  bool     `json:"is_paid_feature"`
}

type EntryListDTO struct {
	Entries []*EntryDTO `json:"entries"`
}

// SentimentDTO 情感分类结果
type SentimentDTO struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// CreateEntryResultDTO POST /entries 响应
type CreateEntryResultDTO struct {
	Ok          bool          `json:"ok"`
	ID          string        `json:"id"`
	Sentiment   *SentimentDTO `json:"sentiment"`
	PaywallHint bool          `json:"paywall_hint"`
}

// ExportDTO 导出结果，免费用户超出额度的条目被扣留
type ExportDTO struct {
	Entries  []*EntryDTO `json:"entries"`
	Withheld int         `json:"withheld"`
}
