package dto

type StatsDTO struct {
	CurrentStreak int     `json:"current_streak"`
	LongestStreak int     `json:"longest_streak"`
	LastEntryDate *string `json:"last_entry_date"`
}
