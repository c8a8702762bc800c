package model

import (
	"time"
)

// ScoreRecord est une partie jouée. Immuable après insertion : les points
// sont figés au moment du calcul, le tag de saison n'est jamais recalculé.
type ScoreRecord struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"userId"`
	Username     string    `json:"username,omitempty"`
	GameType     string    `json:"gameType"`
	Score        float64   `json:"score"`
	PointsEarned int       `json:"pointsEarned"`
	PlayedAt     time.Time `json:"playedAt"`
	SeasonID     *int64    `json:"seasonId,omitempty"`
}

type SubmitScoreRequest struct {
	GameType string  `json:"gameType"`
	Score    float64 `json:"score"`
}

type SubmitScoreResponse struct {
	PointsEarned int     `json:"pointsEarned"`
	TaskReward   int     `json:"taskReward"`
	TotalPoints  int     `json:"totalPoints"`
	SeasonID     *int64  `json:"seasonId,omitempty"`
	TasksDone    []int64 `json:"tasksCompleted,omitempty"`
}
