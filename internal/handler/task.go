package handler

import (
	"errors"
	"math/rand"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MassBabyGeek/FocusPlay-backend/internal/game"
	"github.com/MassBabyGeek/FocusPlay-backend/internal/middleware"
	"github.com/MassBabyGeek/FocusPlay-backend/internal/store"
	"github.com/MassBabyGeek/FocusPlay-backend/internal/utils"
)

// TodayTasks retourne les tâches du jour, en les générant au premier appel
// de la journée. La génération est arbitrée par le store : un seul appel
// insère, les autres relisent ce qui existe déjà.
func (h *Handler) TodayTasks(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "Non authentifié", err)
		return
	}

	now := h.Now()
	today := game.TaskDate(now)

	rng := rand.New(rand.NewSource(now.UnixNano()))
	picked := game.PickDailyTasks(rng, today)
	if _, err := h.Store.CreateTasksForDate(r.Context(), today, picked); err != nil {
		utils.Error(w, http.StatusInternalServerError, "Erreur lors de la génération des tâches", err)
		return
	}

	tasks, err := h.Store.TasksForDate(r.Context(), today)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Erreur lors de la récupération des tâches", err)
		return
	}

	completed, err := h.Store.CompletedTaskIDs(r.Context(), user.ID, today)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Erreur lors de la récupération des tâches", err)
		return
	}
	for i := range tasks {
		tasks[i].Completed = completed[tasks[i].ID]
	}

	utils.Success(w, tasks)
}

// CompleteTask valide une tâche à la demande du client. Refaire la même
// requête est sans effet : le résultat signale simplement que la tâche
// était déjà validée, sans double crédit.
func (h *Handler) CompleteTask(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "Non authentifié", err)
		return
	}

	taskID, err := utils.PathID(mux.Vars(r), "id")
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Identifiant de tâche invalide", err)
		return
	}

	res, err := h.Store.CompleteTask(r.Context(), user.ID, taskID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.Error(w, http.StatusNotFound, "Tâche introuvable")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "Erreur lors de la validation de la tâche", err)
		return
	}

	if !res.AlreadyCompleted {
		if err := h.Store.AddPoints(r.Context(), user.ID, res.PointsReward); err != nil {
			utils.Error(w, http.StatusInternalServerError, "Erreur lors du crédit des points", err)
			return
		}
		if h.Cache != nil {
			if err := h.Cache.AddPoints(user.ID, user.Username, res.PointsReward); err != nil {
				utils.LogError("cache leaderboard: %v", err)
			}
		}
	}

	utils.Success(w, res)
}

// TaskHistory liste les dernières tâches validées par l'utilisateur
func (h *Handler) TaskHistory(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "Non authentifié", err)
		return
	}

	limit := utils.QueryInt(r, "limit", 10)
	rows, err := h.Store.TaskHistory(r.Context(), user.ID, limit)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Erreur lors de la récupération de l'historique", err)
		return
	}

	utils.Success(w, rows)
}
