package handler

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MassBabyGeek/FocusPlay-backend/internal/game"
	"github.com/MassBabyGeek/FocusPlay-backend/internal/store"
	"github.com/MassBabyGeek/FocusPlay-backend/internal/utils"
)

// ListSeasons retourne toutes les saisons, de la plus récente à la plus
// ancienne
func (h *Handler) ListSeasons(w http.ResponseWriter, r *http.Request) {
	seasons, err := h.Store.ListSeasons(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Erreur lors de la récupération des saisons", err)
		return
	}
	utils.Success(w, seasons)
}

// ActiveSeason retourne la saison active couvrant l'instant courant, ou
// data absent si aucune ne l'est. Le choix en cas de chevauchement est
// déterministe : saison créée le plus récemment d'abord.
func (h *Handler) ActiveSeason(w http.ResponseWriter, r *http.Request) {
	seasons, err := h.Store.ListSeasons(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Erreur lors de la récupération des saisons", err)
		return
	}
	utils.Success(w, game.ActiveSeason(h.Now(), seasons))
}

// GetSeason retourne une saison par identifiant
func (h *Handler) GetSeason(w http.ResponseWriter, r *http.Request) {
	id, err := utils.PathID(mux.Vars(r), "id")
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Identifiant de saison invalide", err)
		return
	}

	season, err := h.Store.SeasonByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.Error(w, http.StatusNotFound, "Saison introuvable")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "Erreur lors de la récupération de la saison", err)
		return
	}
	utils.Success(w, season)
}

// SeasonGameLeaderboard retourne le classement d'un jeu restreint aux
// parties jouées pendant la saison
func (h *Handler) SeasonGameLeaderboard(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	seasonID, err := utils.PathID(vars, "id")
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Identifiant de saison invalide", err)
		return
	}

	def, err := game.Resolve(vars["gameType"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Jeu inconnu : "+vars["gameType"])
		return
	}

	if _, err := h.Store.SeasonByID(r.Context(), seasonID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.Error(w, http.StatusNotFound, "Saison introuvable")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "Erreur lors de la récupération de la saison", err)
		return
	}

	limit := utils.QueryInt(r, "limit", 20)
	records, err := h.Store.ScoresByGame(r.Context(), def.ID, &seasonID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Erreur lors de la récupération du classement", err)
		return
	}

	utils.Success(w, game.Rank(records, def.Direction, limit))
}

// SeasonTotalLeaderboard retourne le cumul de points gagnés pendant la
// saison, tous jeux confondus
func (h *Handler) SeasonTotalLeaderboard(w http.ResponseWriter, r *http.Request) {
	seasonID, err := utils.PathID(mux.Vars(r), "id")
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Identifiant de saison invalide", err)
		return
	}

	limit := utils.QueryInt(r, "limit", 50)
	rows, err := h.Store.SeasonTotalLeaderboard(r.Context(), seasonID, limit)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Erreur lors de la récupération du classement", err)
		return
	}
	utils.Success(w, rows)
}

// GetSeasonStats retourne les agrégats d'une saison
func (h *Handler) GetSeasonStats(w http.ResponseWriter, r *http.Request) {
	seasonID, err := utils.PathID(mux.Vars(r), "id")
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Identifiant de saison invalide", err)
		return
	}

	if _, err := h.Store.SeasonByID(r.Context(), seasonID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.Error(w, http.StatusNotFound, "Saison introuvable")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "Erreur lors de la récupération de la saison", err)
		return
	}

	stats, err := h.Store.SeasonStats(r.Context(), seasonID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Erreur lors de la récupération des statistiques", err)
		return
	}
	utils.Success(w, stats)
}
