package dto

// SentimentRequestDTO POST /sentiment 请求
type SentimentRequestDTO struct {
	Content string `json:"content"`
}

// TrendQuery GET /sentiment/trend 查询参数
type TrendQuery struct {
	Days    int     `form:"days" validate:"min=0"`
	Width   float64 `form:"width" validate:"min=0"`
	Height  float64 `form:"height" validate:"min=0"`
	Padding float64 `form:"padding" validate:"min=0"`
}

// TrendPointDTO x 为 RFC3339 时间戳，y 为情感分
type TrendPointDTO struct {
	X string  `json:"x"`
	Y float64 `json:"y"`
}

type TrendDTO struct {
	Points []*TrendPointDTO `json:"points"`
	Path   string           `json:"path"`
}
