package model

import (
	"time"
)

type Season struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

// SeasonPatch énumère les champs optionnels d'une mise à jour partielle
type SeasonPatch struct {
	Name        *string    `json:"name,omitempty"`
	Description *string    `json:"description,omitempty"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	IsActive    *bool      `json:"isActive,omitempty"`
}

func (p SeasonPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.StartDate == nil &&
		p.EndDate == nil && p.IsActive == nil
}

type SeasonStats struct {
	TotalScores        int `json:"totalScores"`
	TotalPointsAwarded int `json:"totalPointsAwarded"`
	ActiveUsers        int `json:"activeUsers"`
}
