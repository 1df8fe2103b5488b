package model

const (
	SentimentNegative = "neg"
	SentimentNeutral  = "neu"
	SentimentPositive = "pos"

	NeutralScore = 0.5
)

// Sentiment 情感分类结果，Score 取值 [0,1]，0.5 为中性
type Sentiment struct {
	Label string  `json:"label" jsonschema:"enum=neg,enum=neu,enum=pos"`
	Score float64 `json:"score" jsonschema:"minimum=0,maximum=1"`
}

func NeutralSentiment() *Sentiment {
	return &Sentiment{Label: SentimentNeutral, Score: NeutralScore}
}

func (s *Sentiment) Valid() bool {
	if s == nil {
		return false
	}
	switch s.Label {
	case SentimentNegative, SentimentNeutral, SentimentPositive:
	default:
		return false
	}
	return s.Score >= 0 && s.Score <= 1
}
