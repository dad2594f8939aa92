package model

// WeeklyStats は直近7日間の集計です
type WeeklyStats struct {
	TotalSessions int `json:"total_sessions"`
	TotalWords    int `json:"total_words"`
	TotalMinutes  int `json:"total_minutes"`
}

// StatsResponse は統計APIのレスポンスDTO
type StatsResponse struct {
	TotalWords       int            `json:"total_words"`
	MasteredWords    int            `json:"mastered_words"`
	Streak           int            `json:"streak"`
	WeeklyStats      WeeklyStats    `json:"weekly_stats"`
	MasteryBreakdown []MasteryCount `json:"mastery_breakdown"`
}
