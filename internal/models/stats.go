package model

type PlatformStats struct {
	TotalUsers         int `json:"totalUsers"`
	TotalScores        int `json:"totalScores"`
	TotalPointsAwarded int `json:"totalPointsAwarded"`
	TodayActiveUsers   int `json:"todayActiveUsers"`
}

type UserStats struct {
	TotalGames        int      `json:"totalGames"`
	TotalPointsEarned int      `json:"totalPointsEarned"`
	CompletedTasks    int      `json:"completedTasks"`
	BestF1Reaction    *float64 `json:"bestF1Reaction,omitempty"`
	BestSchulteGrid   *float64 `json:"bestSchulteGrid,omitempty"`
}
