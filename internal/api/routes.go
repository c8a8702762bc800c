package api

import (
	"net/http"

	"github.com/fatih/color"
	"github.com/gorilla/mux"

	"github.com/MassBabyGeek/FocusPlay-backend/internal/handler"
	"github.com/MassBabyGeek/FocusPlay-backend/internal/middleware"
	"github.com/MassBabyGeek/FocusPlay-backend/internal/store"
	"github.com/MassBabyGeek/FocusPlay-backend/internal/utils"
)

// SetupRouter assemble les routes publiques, authentifiées et admin.
// Les sous-routeurs partagent le préfixe /api : mux les essaie dans
// l'ordre d'enregistrement, une requête non reconnue par l'un passe au
// suivant.
func SetupRouter(h *handler.Handler, st store.Store) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.Logger)

	// Root - documentation sommaire
	r.HandleFunc("/", h.Root).Methods(http.MethodGet)
	r.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet)

	// Routes publiques
	public := r.PathPrefix("/api").Subrouter()
	public.HandleFunc("/register", h.Register).Methods(http.MethodPost)
	public.HandleFunc("/login", h.Login).Methods(http.MethodPost)

	// Classements (lecture libre) — "total" et "today" avant {gameType}
	public.HandleFunc("/leaderboard/total", h.TotalLeaderboard).Methods(http.MethodGet)
	public.HandleFunc("/leaderboard/today", h.TodayLeaderboard).Methods(http.MethodGet)
	public.HandleFunc("/leaderboard/{gameType}", h.GameLeaderboard).Methods(http.MethodGet)

	// Saisons (lecture libre)
	public.HandleFunc("/seasons", h.ListSeasons).Methods(http.MethodGet)
	public.HandleFunc("/seasons/active", h.ActiveSeason).Methods(http.MethodGet)
	public.HandleFunc("/seasons/{id}", h.GetSeason).Methods(http.MethodGet)
	public.HandleFunc("/seasons/{id}/leaderboard/total", h.SeasonTotalLeaderboard).Methods(http.MethodGet)
	public.HandleFunc("/seasons/{id}/leaderboard/{gameType}", h.SeasonGameLeaderboard).Methods(http.MethodGet)
	public.HandleFunc("/seasons/{id}/stats", h.GetSeasonStats).Methods(http.MethodGet)

	// Routes authentifiées
	authenticated := r.PathPrefix("/api").Subrouter()
	authenticated.Use(middleware.Auth(st))
	authenticated.HandleFunc("/logout", h.Logout).Methods(http.MethodPost)
	authenticated.HandleFunc("/me", h.Me).Methods(http.MethodGet)
	authenticated.HandleFunc("/games/score", h.SubmitScore).Methods(http.MethodPost)
	authenticated.HandleFunc("/games/scores/{gameType}", h.GetUserHistory).Methods(http.MethodGet)
	authenticated.HandleFunc("/tasks/today", h.TodayTasks).Methods(http.MethodGet)
	authenticated.HandleFunc("/tasks/history", h.TaskHistory).Methods(http.MethodGet)
	authenticated.HandleFunc("/tasks/{id}/complete", h.CompleteTask).Methods(http.MethodPost)
	authenticated.HandleFunc("/stats/user", h.GetUserStats).Methods(http.MethodGet)

	// Routes admin
	admin := r.PathPrefix("/api/admin").Subrouter()
	admin.Use(middleware.Auth(st))
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/users", h.ListUsers).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}", h.GetUser).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}", h.UpdateUser).Methods(http.MethodPut, http.MethodPatch)
	admin.HandleFunc("/users/{id}", h.DeleteUser).Methods(http.MethodDelete)
	admin.HandleFunc("/scores", h.ListScores).Methods(http.MethodGet)
	admin.HandleFunc("/scores/{id}", h.DeleteScore).Methods(http.MethodDelete)
	admin.HandleFunc("/tasks", h.ListTasks).Methods(http.MethodGet)
	admin.HandleFunc("/tasks/{id}", h.DeleteTask).Methods(http.MethodDelete)
	admin.HandleFunc("/seasons", h.CreateSeason).Methods(http.MethodPost)
	admin.HandleFunc("/seasons/{id}", h.UpdateSeason).Methods(http.MethodPut, http.MethodPatch)
	admin.HandleFunc("/seasons/{id}", h.DeleteSeason).Methods(http.MethodDelete)
	admin.HandleFunc("/stats", h.GetPlatformStats).Methods(http.MethodGet)

	// Diffusion temps réel des classements
	if h.Hub != nil {
		r.HandleFunc("/ws", h.Hub.ServeWS)
	}

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.LogError("404 Not Found: %s %s", r.Method, r.URL.Path)
		color.Yellow("[404] %s %s (route non trouvée)", r.Method, r.URL.Path)
		http.Error(w, "Route not found", http.StatusNotFound)
	})

	return r
}
