package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/MassBabyGeek/FocusPlay-backend/internal/game"
	"github.com/MassBabyGeek/FocusPlay-backend/internal/utils"
)

// GameLeaderboard retourne le classement d'un jeu : meilleure partie par
// joueur, ordonnée selon le sens du jeu. Le calcul se fait en mémoire pour
// que les égalités soient tranchées de façon déterministe quel que soit le
// moteur de stockage. Un paramètre ?season=ID restreint à une saison.
func (h *Handler) GameLeaderboard(w http.ResponseWriter, r *http.Request) {
	gameType := mux.Vars(r)["gameType"]
	def, err := game.Resolve(gameType)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Jeu inconnu : "+gameType)
		return
	}

	limit := utils.QueryInt(r, "limit", 20)

	var seasonID *int64
	if raw := r.URL.Query().Get("season"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			utils.Error(w, http.StatusBadRequest, "Paramètre season invalide")
			return
		}
		seasonID = &id
	}

	records, err := h.Store.ScoresByGame(r.Context(), def.ID, seasonID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Erreur lors de la récupération du classement", err)
		return
	}

	utils.Success(w, game.Rank(records, def.Direction, limit))
}

// TotalLeaderboard retourne le cumul de points tous jeux confondus.
// Le cache Redis sert en priorité ; SQL prend le relais s'il est vide
// ou indisponible.
func (h *Handler) TotalLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit := utils.QueryInt(r, "limit", 50)

	if h.Cache != nil {
		rows, err := h.Cache.Top(limit)
		if err != nil {
			utils.LogError("cache leaderboard: %v", err)
		} else if rows != nil {
			utils.Success(w, rows)
			return
		}
	}

	rows, err := h.Store.TotalLeaderboard(r.Context(), limit)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Erreur lors de la récupération du classement", err)
		return
	}
	utils.Success(w, rows)
}

// TodayLeaderboard retourne le cumul de points gagnés pendant le jour UTC
// courant
func (h *Handler) TodayLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit := utils.QueryInt(r, "limit", 20)

	rows, err := h.Store.TodayLeaderboard(r.Context(), h.Now(), limit)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Erreur lors de la récupération du classement", err)
		return
	}
	utils.Success(w, rows)
}
