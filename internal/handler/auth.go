package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/MassBabyGeek/FocusPlay-backend/internal/middleware"
	model "github.com/MassBabyGeek/FocusPlay-backend/internal/models"
	"github.com/MassBabyGeek/FocusPlay-backend/internal/store"
	"github.com/MassBabyGeek/FocusPlay-backend/internal/utils"
)

const sessionDuration = 24 * time.Hour

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authResponse struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

// Register crée un compte puis ouvre directement une session
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Corps de requête invalide", err)
		return
	}

	if len(req.Username) < 3 || len(req.Username) > 30 {
		utils.Error(w, http.StatusBadRequest, "Le nom d'utilisateur doit faire entre 3 et 30 caractères")
		return
	}
	if len(req.Password) < 6 {
		utils.Error(w, http.StatusBadRequest, "Le mot de passe doit faire au moins 6 caractères")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Erreur lors de la création du compte", err)
		return
	}

	userID, err := h.Store.CreateUser(r.Context(), req.Username, string(hash), false)
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			utils.Error(w, http.StatusConflict, "Nom d'utilisateur déjà pris")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "Erreur lors de la création du compte", err)
		return
	}

	user, err := h.Store.UserByID(r.Context(), userID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Erreur lors de la création du compte", err)
		return
	}

	token, err := h.openSession(r, userID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Erreur lors de la création de la session", err)
		return
	}

	utils.JSON(w, http.StatusCreated, utils.APIResponse{
		Success: true,
		Data:    authResponse{User: user, Token: token},
	})
}

// Login vérifie les identifiants et retourne un jeton de session
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Corps de requête invalide", err)
		return
	}

	user, hash, err := h.Store.UserByUsername(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.Error(w, http.StatusUnauthorized, "Identifiants incorrects")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "Erreur lors de la connexion", err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)); err != nil {
		utils.Error(w, http.StatusUnauthorized, "Identifiants incorrects")
		return
	}

	if err := h.Store.TouchLastLogin(r.Context(), user.ID); err != nil {
		utils.LogError("touch last login: %v", err)
	}

	token, err := h.openSession(r, user.ID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Erreur lors de la création de la session", err)
		return
	}

	utils.Success(w, authResponse{User: user, Token: token})
}

// Logout révoque la session courante
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	token, err := middleware.GetTokenFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "Non authentifié", err)
		return
	}

	if err := h.Store.RevokeSession(r.Context(), token); err != nil && !errors.Is(err, store.ErrNotFound) {
		utils.Error(w, http.StatusInternalServerError, "Erreur lors de la déconnexion", err)
		return
	}

	utils.Message(w, "Déconnexion réussie")
}

// Me retourne le profil à jour de l'utilisateur connecté
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "Non authentifié", err)
		return
	}

	fresh, err := h.Store.UserByID(r.Context(), user.ID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Erreur lors de la récupération du profil", err)
		return
	}

	utils.Success(w, fresh)
}

func (h *Handler) openSession(r *http.Request, userID int64) (string, error) {
	token := uuid.New().String()
	expiresAt := h.Now().Add(sessionDuration)
	if err := h.Store.CreateSession(r.Context(), userID, token, expiresAt); err != nil {
		return "", err
	}
	return token, nil
}
