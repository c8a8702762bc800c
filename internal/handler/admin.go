package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/crypto/bcrypt"

	model "github.com/MassBabyGeek/FocusPlay-backend/internal/models"
	"github.com/MassBabyGeek/FocusPlay-backend/internal/store"
	"github.com/MassBabyGeek/FocusPlay-backend/internal/utils"
)

// ListUsers retourne tous les comptes (admin)
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Store.ListUsers(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Erreur lors de la récupération des utilisateurs", err)
		return
	}
	utils.Success(w, users)
}

// GetUser retourne un compte par identifiant (admin)
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := utils.PathID(mux.Vars(r), "id")
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Identifiant invalide", err)
		return
	}

	user, err := h.Store.UserByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.Error(w, http.StatusNotFound, "Utilisateur introuvable")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "Erreur lors de la récupération de l'utilisateur", err)
		return
	}
	utils.Success(w, user)
}

type adminUserUpdateRequest struct {
	Username *string `json:"username"`
	Points   *int    `json:"points"`
	IsAdmin  *bool   `json:"isAdmin"`
	Password *string `json:"password"`
}

// UpdateUser applique une mise à jour partielle d'un compte (admin).
// Seuls les champs présents dans le corps sont modifiés.
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := utils.PathID(mux.Vars(r), "id")
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Identifiant invalide", err)
		return
	}

	var req adminUserUpdateRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Corps de requête invalide", err)
		return
	}

	patch := model.UserPatch{
		Username: req.Username,
		Points:   req.Points,
		IsAdmin:  req.IsAdmin,
	}
	if req.Password != nil {
		if len(*req.Password) < 6 {
			utils.Error(w, http.StatusBadRequest, "Le mot de passe doit faire au moins 6 caractères")
			return
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "Erreur lors de la mise à jour", err)
			return
		}
		hashStr := string(hash)
		patch.PasswordHash = &hashStr
	}
	if patch.IsEmpty() {
		utils.Error(w, http.StatusBadRequest, "Aucun champ à mettre à jour")
		return
	}

	if err := h.Store.UpdateUser(r.Context(), id, patch); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			utils.Error(w, http.StatusNotFound, "Utilisateur introuvable")
		case errors.Is(err, store.ErrDuplicate):
			utils.Error(w, http.StatusConflict, "Nom d'utilisateur déjà pris")
		default:
			utils.Error(w, http.StatusInternalServerError, "Erreur lors de la mise à jour", err)
		}
		return
	}

	user, err := h.Store.UserByID(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Erreur lors de la mise à jour", err)
		return
	}
	utils.Success(w, user)
}

// DeleteUser supprime un compte et ses données associées (admin)
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := utils.PathID(mux.Vars(r), "id")
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Identifiant invalide", err)
		return
	}

	if err := h.Store.DeleteUser(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.Error(w, http.StatusNotFound, "Utilisateur introuvable")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "Erreur lors de la suppression", err)
		return
	}
	utils.Message(w, "Utilisateur supprimé")
}

// ListScores retourne toutes les parties enregistrées (admin)
func (h *Handler) ListScores(w http.ResponseWriter, r *http.Request) {
	scores, err := h.Store.AllScores(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Erreur lors de la récupération des scores", err)
		return
	}
	utils.Success(w, scores)
}

// DeleteScore supprime une partie (admin)
func (h *Handler) DeleteScore(w http.ResponseWriter, r *http.Request) {
	id, err := utils.PathID(mux.Vars(r), "id")
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Identifiant invalide", err)
		return
	}

	if err := h.Store.DeleteScore(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.Error(w, http.StatusNotFound, "Score introuvable")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "Erreur lors de la suppression", err)
		return
	}
	utils.Message(w, "Score supprimé")
}

// ListTasks retourne toutes les tâches générées, toutes dates confondues
// (admin)
func (h *Handler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.Store.ListTasks(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Erreur lors de la récupération des tâches", err)
		return
	}
	utils.Success(w, tasks)
}

// DeleteTask supprime une tâche et ses validations (admin)
func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := utils.PathID(mux.Vars(r), "id")
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Identifiant invalide", err)
		return
	}

	if err := h.Store.DeleteTask(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.Error(w, http.StatusNotFound, "Tâche introuvable")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "Erreur lors de la suppression", err)
		return
	}
	utils.Message(w, "Tâche supprimée")
}

type seasonRequest struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	IsActive    *bool     `json:"isActive"`
}

// CreateSeason crée une saison (admin). La fenêtre doit être cohérente :
// début strictement avant fin.
func (h *Handler) CreateSeason(w http.ResponseWriter, r *http.Request) {
	var req seasonRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Corps de requête invalide", err)
		return
	}
	if req.Name == "" {
		utils.Error(w, http.StatusBadRequest, "Le nom de la saison est requis")
		return
	}
	if !req.StartDate.Before(req.EndDate) {
		utils.Error(w, http.StatusBadRequest, "La date de début doit précéder la date de fin")
		return
	}

	season := &model.Season{
		Name:        req.Name,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		IsActive:    req.IsActive == nil || *req.IsActive,
	}
	id, err := h.Store.CreateSeason(r.Context(), season)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Erreur lors de la création de la saison", err)
		return
	}

	created, err := h.Store.SeasonByID(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Erreur lors de la création de la saison", err)
		return
	}
	utils.JSON(w, http.StatusCreated, utils.APIResponse{Success: true, Data: created})
}

// UpdateSeason applique une mise à jour partielle d'une saison (admin)
func (h *Handler) UpdateSeason(w http.ResponseWriter, r *http.Request) {
	id, err := utils.PathID(mux.Vars(r), "id")
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Identifiant invalide", err)
		return
	}

	var patch model.SeasonPatch
	if err := utils.DecodeJSON(r, &patch); err != nil {
		utils.Error(w, http.StatusBadRequest, "Corps de requête invalide", err)
		return
	}
	if patch.IsEmpty() {
		utils.Error(w, http.StatusBadRequest, "Aucun champ à mettre à jour")
		return
	}
	if patch.StartDate != nil && patch.EndDate != nil && !patch.StartDate.Before(*patch.EndDate) {
		utils.Error(w, http.StatusBadRequest, "La date de début doit précéder la date de fin")
		return
	}

	if err := h.Store.UpdateSeason(r.Context(), id, patch); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.Error(w, http.StatusNotFound, "Saison introuvable")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "Erreur lors de la mise à jour", err)
		return
	}

	season, err := h.Store.SeasonByID(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Erreur lors de la mise à jour", err)
		return
	}
	utils.Success(w, season)
}

// DeleteSeason supprime une saison ; les parties déjà jouées gardent leur
// étiquette de saison côté historique mais la clé est détachée (admin)
func (h *Handler) DeleteSeason(w http.ResponseWriter, r *http.Request) {
	id, err := utils.PathID(mux.Vars(r), "id")
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Identifiant invalide", err)
		return
	}

	if err := h.Store.DeleteSeason(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.Error(w, http.StatusNotFound, "Saison introuvable")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "Erreur lors de la suppression", err)
		return
	}
	utils.Message(w, "Saison supprimée")
}

// GetPlatformStats retourne les agrégats globaux de la plateforme (admin)
func (h *Handler) GetPlatformStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Store.PlatformStats(r.Context(), h.Now())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Erreur lors de la récupération des statistiques", err)
		return
	}
	utils.Success(w, stats)
}
