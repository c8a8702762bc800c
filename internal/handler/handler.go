package handler

import (
	"net/http"
	"time"

	"github.com/MassBabyGeek/FocusPlay-backend/internal/cache"
	"github.com/MassBabyGeek/FocusPlay-backend/internal/store"
	"github.com/MassBabyGeek/FocusPlay-backend/internal/utils"
	"github.com/MassBabyGeek/FocusPlay-backend/internal/ws"
)

// Handler porte les dépendances des routes : store, cache et hub sont
// passés explicitement, pas de connexion globale. Cache et Hub sont
// optionnels (nil = désactivé).
type Handler struct {
	Store store.Store
	Cache *cache.Leaderboard
	Hub   *ws.Hub

	// Now est remplaçable dans les tests
	Now func() time.Time
}

func New(st store.Store) *Handler {
	return &Handler{
		Store: st,
		Now:   time.Now,
	}
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.Message(w, "ok")
}

// Root documente sommairement l'API
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	utils.Success(w, map[string]interface{}{
		"name": "FocusPlay API",
		"endpoints": []string{
			"POST /api/register",
			"POST /api/login",
			"POST /api/logout",
			"GET  /api/me",
			"POST /api/games/score",
			"GET  /api/games/scores/{gameType}",
			"GET  /api/leaderboard/{gameType}",
			"GET  /api/leaderboard/total",
			"GET  /api/leaderboard/today",
			"GET  /api/tasks/today",
			"GET  /api/tasks/history",
			"POST /api/tasks/{id}/complete",
			"GET  /api/seasons",
			"GET  /api/seasons/active",
			"GET  /api/seasons/{id}/leaderboard/{gameType}",
			"GET  /api/stats/user",
			"GET  /ws",
		},
	})
}
