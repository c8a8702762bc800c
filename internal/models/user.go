package model

import (
	"time"
)

type User struct {
	ID        int64      `json:"id"`
	Username  string     `json:"username"`
	Points    int        `json:"points"`
	IsAdmin   bool       `json:"isAdmin"`
	CreatedAt time.Time  `json:"createdAt"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}

// UserPatch énumère les champs optionnels d'une mise à jour partielle.
// Seuls les champs non-nil sont appliqués, toujours via paramètres liés.
type UserPatch struct {
	Username     *string `json:"username,omitempty"`
	Points       *int    `json:"points,omitempty"`
	IsAdmin      *bool   `json:"isAdmin,omitempty"`
	PasswordHash *string `json:"-"`
}

// IsEmpty retourne true si aucun champ n'est renseigné
func (p UserPatch) IsEmpty() bool {
	return p.Username == nil && p.Points == nil && p.IsAdmin == nil && p.PasswordHash == nil
}

type Session struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}
