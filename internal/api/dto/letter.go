package dto

// ReflectionLetterRequestDTO month 形如 2025-10
type ReflectionLetterRequestDTO struct {
	Month string `json:"month"`
}

// ReflectionLetterDTO 月度反思信
type ReflectionLetterDTO struct {
	Month         string   `json:"month"`
	Themes        []string `json:"themes" jsonschema:"minItems=2,maxItems=6"`
	Wins          []string `json:"wins" jsonschema:"minItems=2,maxItems=6"`
	NextWeekFocus []string `json:"next_week_focus" jsonschema:"minItems=3,maxItems=5"`
	Summary       string   `json:"summary"`
}
