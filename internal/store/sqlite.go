package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	model "github.com/MassBabyGeek/FocusPlay-backend/internal/models"
	"github.com/MassBabyGeek/FocusPlay-backend/internal/scanner"
	"github.com/MassBabyGeek/FocusPlay-backend/internal/utils"
	"github.com/mattn/go-sqlite3"
)

// SQLiteStore est l'implémentation embarquée, fichier unique (ou :memory:)
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite ouvre (et initialise si besoin) la base SQLite
func OpenSQLite(path string) (*SQLiteStore, error) {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	db, err := sql.Open("sqlite3", path+sep+"_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("could not open sqlite database: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.createTables(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

func (s *SQLiteStore) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT UNIQUE NOT NULL,
		password TEXT NOT NULL,
		points INTEGER NOT NULL DEFAULT 0,
		is_admin INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		last_login DATETIME
	);

	CREATE TABLE IF NOT EXISTS sessions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		token TEXT UNIQUE NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		expires_at DATETIME NOT NULL,
		FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS seasons (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		description TEXT,
		start_date DATETIME NOT NULL,
		end_date DATETIME NOT NULL,
		is_active INTEGER NOT NULL DEFAULT 1,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS game_scores (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		game_type TEXT NOT NULL,
		score REAL NOT NULL,
		points_earned INTEGER NOT NULL DEFAULT 0,
		played_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		season_id INTEGER,
		FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE,
		FOREIGN KEY (season_id) REFERENCES seasons(id) ON DELETE SET NULL
	);

	CREATE TABLE IF NOT EXISTS daily_tasks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		task_date TEXT NOT NULL,
		game_type TEXT NOT NULL,
		target_score REAL NOT NULL,
		points_reward INTEGER NOT NULL,
		description TEXT
	);

	CREATE TABLE IF NOT EXISTS task_days (
		task_date TEXT PRIMARY KEY
	);

	CREATE TABLE IF NOT EXISTS user_tasks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		task_id INTEGER NOT NULL,
		completed INTEGER NOT NULL DEFAULT 0,
		completed_at DATETIME,
		UNIQUE(user_id, task_id),
		FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE,
		FOREIGN KEY (task_id) REFERENCES daily_tasks(id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_game_scores_user ON game_scores(user_id);
	CREATE INDEX IF NOT EXISTS idx_game_scores_type ON game_scores(game_type);
	CREATE INDEX IF NOT EXISTS idx_game_scores_season ON game_scores(season_id);
	CREATE INDEX IF NOT EXISTS idx_seasons_dates ON seasons(start_date, end_date);
	CREATE INDEX IF NOT EXISTS idx_user_tasks_user ON user_tasks(user_id);
	CREATE INDEX IF NOT EXISTS idx_daily_tasks_date ON daily_tasks(task_date);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("could not create tables: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() {
	s.db.Close()
}

// mapSQLiteErr traduit les erreurs du driver vers les sentinelles du store
func mapSQLiteErr(err error) error {
	if err == nil {
		return nil
	}
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if sqliteErr, ok := err.(sqlite3.Error); ok && sqliteErr.Code == sqlite3.ErrConstraint {
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	}
	return err
}

// ==================== Utilisateurs ====================

func (s *SQLiteStore) CreateUser(ctx context.Context, username, passwordHash string, isAdmin bool) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO users (username, password, is_admin) VALUES (?, ?, ?)`,
		username, passwordHash, isAdmin)
	if err != nil {
		return 0, mapSQLiteErr(err)
	}
	return res.LastInsertId()
}

func (s *SQLiteStore) UserByUsername(ctx context.Context, username string) (*model.User, string, error) {
	var user model.User
	var hash string
	var lastLogin sql.NullTime

	err := s.db.QueryRowContext(ctx,
		`SELECT id, username, points, is_admin, created_at, last_login, password
		 FROM users WHERE username = ?`, username).
		Scan(&user.ID, &user.Username, &user.Points, &user.IsAdmin,
			&user.CreatedAt, &lastLogin, &hash)
	if err != nil {
		return nil, "", mapSQLiteErr(err)
	}
	if lastLogin.Valid {
		user.LastLogin = &lastLogin.Time
	}

	return &user, hash, nil
}

func (s *SQLiteStore) UserByID(ctx context.Context, id int64) (*model.User, error) {
	user, err := scanner.ScanUser(s.db.QueryRowContext(ctx,
		`SELECT id, username, points, is_admin, created_at, last_login
		 FROM users WHERE id = ?`, id))
	if err != nil {
		return nil, mapSQLiteErr(err)
	}
	return user, nil
}

func (s *SQLiteStore) ListUsers(ctx context.Context) ([]model.User, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, username, points, is_admin, created_at, last_login
		 FROM users ORDER BY points DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		user, err := scanner.ScanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}

func (s *SQLiteStore) UpdateUser(ctx context.Context, id int64, patch model.UserPatch) error {
	if patch.IsEmpty() {
		return nil
	}

	// Colonnes fixes, valeurs toujours liées
	var sets []string
	var args []interface{}

	if patch.Username != nil {
		sets = append(sets, "username = ?")
		args = append(args, *patch.Username)
	}
	if patch.Points != nil {
		sets = append(sets, "points = ?")
		args = append(args, *patch.Points)
	}
	if patch.IsAdmin != nil {
		sets = append(sets, "is_admin = ?")
		args = append(args, *patch.IsAdmin)
	}
	if patch.PasswordHash != nil {
		sets = append(sets, "password = ?")
		args = append(args, *patch.PasswordHash)
	}

	args = append(args, id)
	res, err := s.db.ExecContext(ctx,
		"UPDATE users SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return mapSQLiteErr(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLiteStore) DeleteUser(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLiteStore) AddPoints(ctx context.Context, userID int64, delta int) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE users SET points = points + ? WHERE id = ?`, delta, userID)
	return err
}

func (s *SQLiteStore) TouchLastLogin(ctx context.Context, userID int64) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE users SET last_login = CURRENT_TIMESTAMP WHERE id = ?`, userID)
	return err
}

// ==================== Sessions ====================

func (s *SQLiteStore) CreateSession(ctx context.Context, userID int64, token string, expiresAt time.Time) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions (user_id, token, expires_at) VALUES (?, ?, ?)`,
		userID, token, expiresAt.UTC())
	return mapSQLiteErr(err)
}

func (s *SQLiteStore) UserByToken(ctx context.Context, token string) (*model.User, error) {
	user, err := scanner.ScanUser(s.db.QueryRowContext(ctx,
		`SELECT u.id, u.username, u.points, u.is_admin, u.created_at, u.last_login
		 FROM users u
		 JOIN sessions se ON u.id = se.user_id
		 WHERE se.token = ? AND se.expires_at > ?`, token, time.Now().UTC()))
	if err != nil {
		return nil, mapSQLiteErr(err)
	}
	return user, nil
}

func (s *SQLiteStore) RevokeSession(ctx context.Context, token string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE token = ?`, token)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// ==================== Parties ====================

func (s *SQLiteStore) InsertScore(ctx context.Context, rec *model.ScoreRecord) error {
	var seasonID sql.NullInt64
	if rec.SeasonID != nil {
		seasonID = sql.NullInt64{Int64: *rec.SeasonID, Valid: true}
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO game_scores (user_id, game_type, score, points_earned, played_at, season_id)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.UserID, rec.GameType, rec.Score, rec.PointsEarned, rec.PlayedAt.UTC(), seasonID)
	if err != nil {
		return mapSQLiteErr(err)
	}
	rec.ID, _ = res.LastInsertId()
	return nil
}

func (s *SQLiteStore) ScoresByGame(ctx context.Context, gameType string, seasonID *int64) ([]model.ScoreRecord, error) {
	query := `SELECT s.id, s.user_id, u.username, s.game_type, s.score, s.points_earned, s.played_at, s.season_id
		 FROM game_scores s
		 JOIN users u ON s.user_id = u.id
		 WHERE s.game_type = ?`
	args := []interface{}{gameType}

	if seasonID != nil {
		query += ` AND s.season_id = ?`
		args = append(args, *seasonID)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectScores(rows)
}

func (s *SQLiteStore) UserHistory(ctx context.Context, userID int64, gameType string, limit int) ([]model.ScoreRecord, error) {
	query := `SELECT s.id, s.user_id, u.username, s.game_type, s.score, s.points_earned, s.played_at, s.season_id
		 FROM game_scores s
		 JOIN users u ON s.user_id = u.id
		 WHERE s.user_id = ?`
	args := []interface{}{userID}

	if gameType != "" {
		query += ` AND s.game_type = ?`
		args = append(args, gameType)
	}

	query += ` ORDER BY s.played_at DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectScores(rows)
}

func (s *SQLiteStore) AllScores(ctx context.Context) ([]model.ScoreRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT s.id, s.user_id, u.username, s.game_type, s.score, s.points_earned, s.played_at, s.season_id
		 FROM game_scores s
		 JOIN users u ON s.user_id = u.id
		 ORDER BY s.played_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectScores(rows)
}

func (s *SQLiteStore) DeleteScore(ctx context.Context, scoreID int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM game_scores WHERE id = ?`, scoreID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func collectScores(rows *sql.Rows) ([]model.ScoreRecord, error) {
	var records []model.ScoreRecord
	for rows.Next() {
		rec, err := scanner.ScanScoreRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	return records, rows.Err()
}

// ==================== Classements agrégés ====================

func (s *SQLiteStore) TotalLeaderboard(ctx context.Context, limit int) ([]model.TotalPointsRow, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, username, points FROM users ORDER BY points DESC, id ASC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectTotals(rows)
}

func (s *SQLiteStore) TodayLeaderboard(ctx context.Context, day time.Time, limit int) ([]model.TotalPointsRow, error) {
	start, end := DayBounds(day)
	rows, err := s.db.QueryContext(ctx,
		`SELECT u.id, u.username, SUM(s.points_earned) as total_points
		 FROM game_scores s
		 JOIN users u ON s.user_id = u.id
		 WHERE s.played_at >= ? AND s.played_at < ?
		 GROUP BY u.id
		 ORDER BY total_points DESC, u.id ASC
		 LIMIT ?`, start, end, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectTotals(rows)
}

func (s *SQLiteStore) SeasonTotalLeaderboard(ctx context.Context, seasonID int64, limit int) ([]model.TotalPointsRow, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT u.id, u.username, SUM(s.points_earned) as total_points
		 FROM game_scores s
		 JOIN users u ON s.user_id = u.id
		 WHERE s.season_id = ?
		 GROUP BY u.id
		 ORDER BY total_points DESC, u.id ASC
		 LIMIT ?`, seasonID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectTotals(rows)
}

func collectTotals(rows *sql.Rows) ([]model.TotalPointsRow, error) {
	var result []model.TotalPointsRow
	for rows.Next() {
		var row model.TotalPointsRow
		if err := rows.Scan(&row.UserID, &row.Username, &row.TotalPoints); err != nil {
			return nil, err
		}
		row.Rank = len(result) + 1
		result = append(result, row)
	}
	return result, rows.Err()
}

// ==================== Tâches quotidiennes ====================

func (s *SQLiteStore) TasksForDate(ctx context.Context, date string) ([]model.DailyTask, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, task_date, game_type, target_score, points_reward, description
		 FROM daily_tasks WHERE task_date = ? ORDER BY id`, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []model.DailyTask
	for rows.Next() {
		task, err := scanner.ScanDailyTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)
	}
	return tasks, rows.Err()
}

func (s *SQLiteStore) CreateTasksForDate(ctx context.Context, date string, tasks []model.DailyTask) (bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	// Le marqueur task_days arbitre la course "premier appel du jour" :
	// un seul INSERT prend effet, les autres ne font rien
	res, err := tx.ExecContext(ctx,
		`INSERT OR IGNORE INTO task_days (task_date) VALUES (?)`, date)
	if err != nil {
		return false, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return false, nil
	}

	for _, task := range tasks {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO daily_tasks (task_date, game_type, target_score, points_reward, description)
			 VALUES (?, ?, ?, ?, ?)`,
			date, task.GameType, task.TargetScore, task.PointsReward, task.Description); err != nil {
			return false, err
		}
	}

	return true, tx.Commit()
}

func (s *SQLiteStore) CompleteTask(ctx context.Context, userID, taskID int64) (*model.TaskCompletionResult, error) {
	var reward int
	err := s.db.QueryRowContext(ctx,
		`SELECT points_reward FROM daily_tasks WHERE id = ?`, taskID).Scan(&reward)
	if err != nil {
		return nil, mapSQLiteErr(err)
	}

	// Écriture conditionnelle : 0 ligne modifiée = déjà complétée
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO user_tasks (user_id, task_id, completed, completed_at)
		 VALUES (?, ?, 1, CURRENT_TIMESTAMP)
		 ON CONFLICT(user_id, task_id)
		 DO UPDATE SET completed = 1, completed_at = CURRENT_TIMESTAMP
		 WHERE user_tasks.completed = 0`,
		userID, taskID)
	if err != nil {
		return nil, mapSQLiteErr(err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return &model.TaskCompletionResult{AlreadyCompleted: true}, nil
	}
	return &model.TaskCompletionResult{PointsReward: reward}, nil
}

func (s *SQLiteStore) CompletedTaskIDs(ctx context.Context, userID int64, date string) (map[int64]bool, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT ut.task_id
		 FROM user_tasks ut
		 JOIN daily_tasks t ON ut.task_id = t.id
		 WHERE ut.user_id = ? AND ut.completed = 1 AND t.task_date = ?`,
		userID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	completed := make(map[int64]bool)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		completed[id] = true
	}
	return completed, rows.Err()
}

func (s *SQLiteStore) TaskHistory(ctx context.Context, userID int64, limit int) ([]model.TaskHistoryRow, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT t.id, t.task_date, t.game_type, t.target_score, t.points_reward, t.description,
		        ut.completed, ut.completed_at
		 FROM daily_tasks t
		 JOIN user_tasks ut ON t.id = ut.task_id
		 WHERE ut.user_id = ?
		 ORDER BY ut.completed_at DESC
		 LIMIT ?`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []model.TaskHistoryRow
	for rows.Next() {
		row, err := scanner.ScanTaskHistoryRow(rows)
		if err != nil {
			return nil, err
		}
		history = append(history, *row)
	}
	return history, rows.Err()
}

func (s *SQLiteStore) ListTasks(ctx context.Context) ([]model.DailyTask, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, task_date, game_type, target_score, points_reward, description
		 FROM daily_tasks ORDER BY task_date DESC, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []model.DailyTask
	for rows.Next() {
		task, err := scanner.ScanDailyTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)
	}
	return tasks, rows.Err()
}

func (s *SQLiteStore) DeleteTask(ctx context.Context, taskID int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM daily_tasks WHERE id = ?`, taskID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// ==================== Saisons ====================

func (s *SQLiteStore) CreateSeason(ctx context.Context, season *model.Season) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO seasons (name, description, start_date, end_date, is_active)
		 VALUES (?, ?, ?, ?, ?)`,
		season.Name, season.Description, season.StartDate.UTC(), season.EndDate.UTC(), season.IsActive)
	if err != nil {
		return 0, mapSQLiteErr(err)
	}
	return res.LastInsertId()
}

func (s *SQLiteStore) ListSeasons(ctx context.Context) ([]model.Season, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, description, start_date, end_date, is_active, created_at
		 FROM seasons ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var seasons []model.Season
	for rows.Next() {
		season, err := scanner.ScanSeason(rows)
		if err != nil {
			return nil, err
		}
		seasons = append(seasons, *season)
	}
	return seasons, rows.Err()
}

func (s *SQLiteStore) SeasonByID(ctx context.Context, id int64) (*model.Season, error) {
	season, err := scanner.ScanSeason(s.db.QueryRowContext(ctx,
		`SELECT id, name, description, start_date, end_date, is_active, created_at
		 FROM seasons WHERE id = ?`, id))
	if err != nil {
		return nil, mapSQLiteErr(err)
	}
	return season, nil
}

func (s *SQLiteStore) UpdateSeason(ctx context.Context, id int64, patch model.SeasonPatch) error {
	if patch.IsEmpty() {
		return nil
	}

	var sets []string
	var args []interface{}

	if patch.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *patch.Name)
	}
	if patch.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *patch.Description)
	}
	if patch.StartDate != nil {
		sets = append(sets, "start_date = ?")
		args = append(args, patch.StartDate.UTC())
	}
	if patch.EndDate != nil {
		sets = append(sets, "end_date = ?")
		args = append(args, patch.EndDate.UTC())
	}
	if patch.IsActive != nil {
		sets = append(sets, "is_active = ?")
		args = append(args, *patch.IsActive)
	}

	args = append(args, id)
	res, err := s.db.ExecContext(ctx,
		"UPDATE seasons SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLiteStore) DeleteSeason(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM seasons WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLiteStore) SeasonStats(ctx context.Context, seasonID int64) (*model.SeasonStats, error) {
	var stats model.SeasonStats
	var totalPoints sql.NullInt64

	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), SUM(points_earned), COUNT(DISTINCT user_id)
		 FROM game_scores WHERE season_id = ?`, seasonID).
		Scan(&stats.TotalScores, &totalPoints, &stats.ActiveUsers)
	if err != nil {
		return nil, err
	}
	if totalPoints.Valid {
		stats.TotalPointsAwarded = int(totalPoints.Int64)
	}
	return &stats, nil
}

// ==================== Statistiques ====================

func (s *SQLiteStore) PlatformStats(ctx context.Context, day time.Time) (*model.PlatformStats, error) {
	var stats model.PlatformStats
	var totalPoints sql.NullInt64
	start, end := DayBounds(day)

	err := s.db.QueryRowContext(ctx,
		`SELECT (SELECT COUNT(*) FROM users),
		        (SELECT COUNT(*) FROM game_scores),
		        (SELECT SUM(points) FROM users),
		        (SELECT COUNT(DISTINCT user_id) FROM game_scores WHERE played_at >= ? AND played_at < ?)`,
		start, end).
		Scan(&stats.TotalUsers, &stats.TotalScores, &totalPoints, &stats.TodayActiveUsers)
	if err != nil {
		return nil, err
	}
	if totalPoints.Valid {
		stats.TotalPointsAwarded = int(totalPoints.Int64)
	}
	return &stats, nil
}

func (s *SQLiteStore) UserStats(ctx context.Context, userID int64) (*model.UserStats, error) {
	var stats model.UserStats
	var totalPoints sql.NullInt64
	var bestF1, bestSchulte sql.NullFloat64

	err := s.db.QueryRowContext(ctx,
		`SELECT (SELECT COUNT(*) FROM game_scores WHERE user_id = ?1),
		        (SELECT SUM(points_earned) FROM game_scores WHERE user_id = ?1),
		        (SELECT COUNT(*) FROM user_tasks WHERE user_id = ?1 AND completed = 1),
		        (SELECT MIN(score) FROM game_scores WHERE user_id = ?1 AND game_type = 'f1_reaction'),
		        (SELECT MIN(score) FROM game_scores WHERE user_id = ?1 AND game_type = 'schulte_grid_5')`,
		userID).
		Scan(&stats.TotalGames, &totalPoints, &stats.CompletedTasks, &bestF1, &bestSchulte)
	if err != nil {
		return nil, err
	}
	if totalPoints.Valid {
		stats.TotalPointsEarned = int(totalPoints.Int64)
	}
	stats.BestF1Reaction = utils.NullFloat64ToPointer(bestF1)
	stats.BestSchulteGrid = utils.NullFloat64ToPointer(bestSchulte)
	return &stats, nil
}
