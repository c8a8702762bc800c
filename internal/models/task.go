package model

import (
	"time"
)

// DailyTask est un défi du jour, généré une fois par date puis jamais modifié
type DailyTask struct {
	ID           int64   `json:"id"`
	TaskDate     string  `json:"taskDate"` // format 2006-01-02 (UTC)
	GameType     string  `json:"gameType"`
	TargetScore  float64 `json:"targetScore"`
	PointsReward int     `json:"pointsReward"`
	Description  string  `json:"description"`
	Completed    bool    `json:"completed"`
}

// TaskCompletionResult est le résultat d'une tentative de complétion.
// AlreadyCompleted est un signal normal, pas une erreur.
type TaskCompletionResult struct {
	AlreadyCompleted bool `json:"alreadyCompleted"`
	PointsReward     int  `json:"pointsReward"`
}

type TaskHistoryRow struct {
	DailyTask
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}
