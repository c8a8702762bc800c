package handler

import (
	"net/http"

	"github.com/MassBabyGeek/FocusPlay-backend/internal/middleware"
	"github.com/MassBabyGeek/FocusPlay-backend/internal/utils"
)

// GetUserStats retourne les agrégats personnels de l'utilisateur connecté :
// total de points, parties jouées, meilleurs scores par jeu, tâches validées
func (h *Handler) GetUserStats(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "Non authentifié", err)
		return
	}

	stats, err := h.Store.UserStats(r.Context(), user.ID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Erreur lors de la récupération des statistiques", err)
		return
	}
	utils.Success(w, stats)
}
