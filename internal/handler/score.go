package handler

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/MassBabyGeek/FocusPlay-backend/internal/game"
	"github.com/MassBabyGeek/FocusPlay-backend/internal/middleware"
	model "github.com/MassBabyGeek/FocusPlay-backend/internal/models"
	"github.com/MassBabyGeek/FocusPlay-backend/internal/utils"
)

// SubmitScore est le pipeline central : validation, calcul des points,
// rattachement à la saison courante, persistance, crédit du compte puis
// évaluation des tâches du jour. Tout échec de stockage avant l'insertion
// interrompt la soumission, aucun point n'est crédité sans partie persistée.
func (h *Handler) SubmitScore(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "Non authentifié", err)
		return
	}

	var req model.SubmitScoreRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Corps de requête invalide", err)
		return
	}

	def, err := game.Resolve(req.GameType)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Jeu inconnu : "+req.GameType)
		return
	}
	if err := game.ValidateScore(req.Score); err != nil {
		utils.Error(w, http.StatusBadRequest, "Score invalide")
		return
	}

	points, err := game.PointsFor(def.ID, req.Score)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Jeu inconnu : "+req.GameType)
		return
	}

	now := h.Now()

	seasons, err := h.Store.ListSeasons(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Erreur lors de la soumission du score", err)
		return
	}
	var seasonID *int64
	if s := game.ActiveSeason(now, seasons); s != nil {
		seasonID = &s.ID
	}

	rec := &model.ScoreRecord{
		UserID:       user.ID,
		GameType:     def.ID,
		Score:        req.Score,
		PointsEarned: points,
		PlayedAt:     now.UTC(),
		SeasonID:     seasonID,
	}
	if err := h.Store.InsertScore(r.Context(), rec); err != nil {
		utils.Error(w, http.StatusInternalServerError, "Erreur lors de la soumission du score", err)
		return
	}

	if err := h.Store.AddPoints(r.Context(), user.ID, points); err != nil {
		utils.Error(w, http.StatusInternalServerError, "Erreur lors du crédit des points", err)
		return
	}

	taskReward, tasksDone := h.settleDailyTasks(r, user.ID, def.ID, req.Score, now)

	if h.Cache != nil {
		if err := h.Cache.AddPoints(user.ID, user.Username, points+taskReward); err != nil {
			utils.LogError("cache leaderboard: %v", err)
		}
	}
	if h.Hub != nil {
		h.Hub.Broadcast("leaderboard_update", map[string]interface{}{
			"gameType": def.ID,
			"userId":   user.ID,
		})
	}

	total := user.Points + points + taskReward
	if fresh, err := h.Store.UserByID(r.Context(), user.ID); err == nil {
		total = fresh.Points
	}

	utils.Success(w, model.SubmitScoreResponse{
		PointsEarned: points,
		TaskReward:   taskReward,
		TotalPoints:  total,
		SeasonID:     seasonID,
		TasksDone:    tasksDone,
	})
}

// settleDailyTasks valide les tâches du jour atteintes par cette partie.
// L'écriture conditionnelle du store garantit qu'une tâche déjà validée
// ne rapporte jamais deux fois, même sous soumissions concurrentes. Les
// erreurs ici ne remettent pas en cause la partie déjà persistée : elles
// sont loggées et la soumission continue.
func (h *Handler) settleDailyTasks(r *http.Request, userID int64, gameType string, score float64, now time.Time) (int, []int64) {
	today := game.TaskDate(now)

	tasks, err := h.Store.TasksForDate(r.Context(), today)
	if err != nil {
		utils.LogError("daily tasks lookup: %v", err)
		return 0, nil
	}
	completed, err := h.Store.CompletedTaskIDs(r.Context(), userID, today)
	if err != nil {
		utils.LogError("completed tasks lookup: %v", err)
		return 0, nil
	}

	eligible, err := game.EligibleTasks(gameType, score, today, tasks, completed)
	if err != nil {
		utils.LogError("task eligibility: %v", err)
		return 0, nil
	}

	reward := 0
	var done []int64
	for _, t := range eligible {
		res, err := h.Store.CompleteTask(r.Context(), userID, t.ID)
		if err != nil {
			utils.LogError("complete task %d: %v", t.ID, err)
			continue
		}
		if res.AlreadyCompleted {
			continue
		}
		if err := h.Store.AddPoints(r.Context(), userID, res.PointsReward); err != nil {
			utils.LogError("credit task reward %d: %v", t.ID, err)
			continue
		}
		reward += res.PointsReward
		done = append(done, t.ID)
	}
	return reward, done
}

// GetUserHistory liste les parties de l'utilisateur pour un jeu donné,
// de la plus récente à la plus ancienne
func (h *Handler) GetUserHistory(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "Non authentifié", err)
		return
	}

	gameType := mux.Vars(r)["gameType"]
	def, err := game.Resolve(gameType)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Jeu inconnu : "+gameType)
		return
	}

	limit := utils.QueryInt(r, "limit", 20)
	records, err := h.Store.UserHistory(r.Context(), user.ID, def.ID, limit)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Erreur lors de la récupération de l'historique", err)
		return
	}

	utils.Success(w, records)
}
