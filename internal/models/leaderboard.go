package model

import (
	"time"
)

// LeaderboardEntry est une ligne du classement par jeu : la meilleure
// partie de chaque utilisateur, jamais deux lignes pour le même joueur
type LeaderboardEntry struct {
	Rank         int       `json:"rank"`
	UserID       int64     `json:"userId"`
	Username     string    `json:"username"`
	Score        float64   `json:"score"`
	PointsEarned int       `json:"pointsEarned"`
	PlayedAt     time.Time `json:"playedAt"`
}

// TotalPointsRow est une ligne d'un classement agrégé (total, du jour, saison)
type TotalPointsRow struct {
	Rank        int    `json:"rank"`
	UserID      int64  `json:"userId"`
	Username    string `json:"username"`
	TotalPoints int    `json:"totalPoints"`
}
