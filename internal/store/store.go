// Package store abstrait la persistance de la plateforme : insertion,
// requêtes et agrégats. Deux implémentations interchangeables, choisies par
// configuration : SQLite embarqué et PostgreSQL réseau.
package store

import (
	"context"
	"errors"
	"time"

	model "github.com/MassBabyGeek/FocusPlay-backend/internal/models"
)

// ErrNotFound : aucune ligne ne correspond
var ErrNotFound = errors.New("record not found")

// ErrDuplicate : violation d'unicité (ex : nom d'utilisateur déjà pris)
var ErrDuplicate = errors.New("duplicate record")

type Store interface {
	// Utilisateurs
	CreateUser(ctx context.Context, username, passwordHash string, isAdmin bool) (int64, error)
	UserByUsername(ctx context.Context, username string) (*model.User, string, error)
	UserByID(ctx context.Context, id int64) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateUser(ctx context.Context, id int64, patch model.UserPatch) error
	DeleteUser(ctx context.Context, id int64) error
	AddPoints(ctx context.Context, userID int64, delta int) error
	TouchLastLogin(ctx context.Context, userID int64) error

	// Sessions
	CreateSession(ctx context.Context, userID int64, token string, expiresAt time.Time) error
	UserByToken(ctx context.Context, token string) (*model.User, error)
	RevokeSession(ctx context.Context, token string) error

	// Parties
	InsertScore(ctx context.Context, rec *model.ScoreRecord) error
	ScoresByGame(ctx context.Context, gameType string, seasonID *int64) ([]model.ScoreRecord, error)
	UserHistory(ctx context.Context, userID int64, gameType string, limit int) ([]model.ScoreRecord, error)
	AllScores(ctx context.Context) ([]model.ScoreRecord, error)
	DeleteScore(ctx context.Context, scoreID int64) error

	// Classements agrégés (sommes de points, monotones croissantes)
	TotalLeaderboard(ctx context.Context, limit int) ([]model.TotalPointsRow, error)
	TodayLeaderboard(ctx context.Context, day time.Time, limit int) ([]model.TotalPointsRow, error)
	SeasonTotalLeaderboard(ctx context.Context, seasonID int64, limit int) ([]model.TotalPointsRow, error)

	// Tâches quotidiennes
	TasksForDate(ctx context.Context, date string) ([]model.DailyTask, error)
	// CreateTasksForDate est un "check-or-create" atomique par date : seul
	// le premier appel du jour insère, les suivants retournent false.
	CreateTasksForDate(ctx context.Context, date string, tasks []model.DailyTask) (bool, error)
	// CompleteTask est l'arbitre unique de l'idempotence : écriture
	// conditionnelle, AlreadyCompleted=true si la ligne était déjà posée.
	CompleteTask(ctx context.Context, userID, taskID int64) (*model.TaskCompletionResult, error)
	CompletedTaskIDs(ctx context.Context, userID int64, date string) (map[int64]bool, error)
	TaskHistory(ctx context.Context, userID int64, limit int) ([]model.TaskHistoryRow, error)
	ListTasks(ctx context.Context) ([]model.DailyTask, error)
	DeleteTask(ctx context.Context, taskID int64) error

	// Saisons
	CreateSeason(ctx context.Context, s *model.Season) (int64, error)
	ListSeasons(ctx context.Context) ([]model.Season, error)
	SeasonByID(ctx context.Context, id int64) (*model.Season, error)
	UpdateSeason(ctx context.Context, id int64, patch model.SeasonPatch) error
	DeleteSeason(ctx context.Context, id int64) error
	SeasonStats(ctx context.Context, seasonID int64) (*model.SeasonStats, error)

	// Statistiques
	PlatformStats(ctx context.Context, day time.Time) (*model.PlatformStats, error)
	UserStats(ctx context.Context, userID int64) (*model.UserStats, error)

	Close()
}

// DayBounds retourne les bornes [début, fin) du jour UTC contenant t.
// Utilisé par les deux implémentations pour les filtres "aujourd'hui",
// afin que SQLite et PostgreSQL découpent la journée au même endroit.
func DayBounds(t time.Time) (time.Time, time.Time) {
	u := t.UTC()
	start := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.Add(24 * time.Hour)
}
