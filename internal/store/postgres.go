package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	model "github.com/MassBabyGeek/FocusPlay-backend/internal/models"
	"github.com/MassBabyGeek/FocusPlay-backend/internal/scanner"
	"github.com/MassBabyGeek/FocusPlay-backend/internal/utils"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore est l'implémentation réseau, adossée à un pool pgx
type PostgresStore struct {
	pool *pgxpool.Pool
}

// OpenPostgres se connecte au serveur et initialise le schéma
func OpenPostgres(ctx context.Context, dsn string) (*PostgresStore, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pool, err := pgxpool.New(connectCtx, dsn)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}
	if err := pool.Ping(connectCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	s := &PostgresStore{pool: pool}
	if err := s.createTables(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return s, nil
}

func (s *PostgresStore) createTables(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		username TEXT UNIQUE NOT NULL,
		password TEXT NOT NULL,
		points INTEGER NOT NULL DEFAULT 0,
		is_admin BOOLEAN NOT NULL DEFAULT false,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		last_login TIMESTAMPTZ
	);

	CREATE TABLE IF NOT EXISTS sessions (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		token TEXT UNIQUE NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		expires_at TIMESTAMPTZ NOT NULL
	);

	CREATE TABLE IF NOT EXISTS seasons (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT,
		start_date TIMESTAMPTZ NOT NULL,
		end_date TIMESTAMPTZ NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS game_scores (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		game_type TEXT NOT NULL,
		score DOUBLE PRECISION NOT NULL,
		points_earned INTEGER NOT NULL DEFAULT 0,
		played_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		season_id BIGINT REFERENCES seasons(id) ON DELETE SET NULL
	);

	CREATE TABLE IF NOT EXISTS daily_tasks (
		id BIGSERIAL PRIMARY KEY,
		task_date TEXT NOT NULL,
		game_type TEXT NOT NULL,
		target_score DOUBLE PRECISION NOT NULL,
		points_reward INTEGER NOT NULL,
		description TEXT
	);

	CREATE TABLE IF NOT EXISTS task_days (
		task_date TEXT PRIMARY KEY
	);

	CREATE TABLE IF NOT EXISTS user_tasks (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		task_id BIGINT NOT NULL REFERENCES daily_tasks(id) ON DELETE CASCADE,
		completed BOOLEAN NOT NULL DEFAULT false,
		completed_at TIMESTAMPTZ,
		UNIQUE(user_id, task_id)
	);

	CREATE INDEX IF NOT EXISTS idx_game_scores_user ON game_scores(user_id);
	CREATE INDEX IF NOT EXISTS idx_game_scores_type ON game_scores(game_type);
	CREATE INDEX IF NOT EXISTS idx_game_scores_season ON game_scores(season_id);
	CREATE INDEX IF NOT EXISTS idx_seasons_dates ON seasons(start_date, end_date);
	CREATE INDEX IF NOT EXISTS idx_user_tasks_user ON user_tasks(user_id);
	CREATE INDEX IF NOT EXISTS idx_daily_tasks_date ON daily_tasks(task_date);
	`

	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("could not create tables: %w", err)
	}
	return nil
}

func (s *PostgresStore) Close() {
	s.pool.Close()
}

// mapPgErr traduit les erreurs pgx vers les sentinelles du store
func mapPgErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	}
	return err
}

// ==================== Utilisateurs ====================

func (s *PostgresStore) CreateUser(ctx context.Context, username, passwordHash string, isAdmin bool) (int64, error) {
	var id int64
	err := s.pool.QueryRow(ctx,
		`INSERT INTO users (username, password, is_admin) VALUES ($1, $2, $3) RETURNING id`,
		username, passwordHash, isAdmin).Scan(&id)
	if err != nil {
		return 0, mapPgErr(err)
	}
	return id, nil
}

func (s *PostgresStore) UserByUsername(ctx context.Context, username string) (*model.User, string, error) {
	var user model.User
	var hash string
	var lastLogin sql.NullTime

	err := s.pool.QueryRow(ctx,
		`SELECT id, username, points, is_admin, created_at, last_login, password
		 FROM users WHERE username = $1`, username).
		Scan(&user.ID, &user.Username, &user.Points, &user.IsAdmin,
			&user.CreatedAt, &lastLogin, &hash)
	if err != nil {
		return nil, "", mapPgErr(err)
	}
	user.LastLogin = utils.NullTimeToPointer(lastLogin)

	return &user, hash, nil
}

func (s *PostgresStore) UserByID(ctx context.Context, id int64) (*model.User, error) {
	user, err := scanner.ScanUser(s.pool.QueryRow(ctx,
		`SELECT id, username, points, is_admin, created_at, last_login
		 FROM users WHERE id = $1`, id))
	if err != nil {
		return nil, mapPgErr(err)
	}
	return user, nil
}

func (s *PostgresStore) ListUsers(ctx context.Context) ([]model.User, error) {
	rows, err := s.pool.Query(ctx,
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

func (s *PostgresStore) UpdateUser(ctx context.Context, id int64, patch model.UserPatch) error {
	if patch.IsEmpty() {
		return nil
	}

	// Colonnes fixes, valeurs toujours liées
	var sets []string
	var args []interface{}

	add := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Username != nil {
		add("username", *patch.Username)
	}
	if patch.Points != nil {
		add("points", *patch.Points)
	}
	if patch.IsAdmin != nil {
		add("is_admin", *patch.IsAdmin)
	}
	if patch.PasswordHash != nil {
		add("password", *patch.PasswordHash)
	}

	args = append(args, id)
	tag, err := s.pool.Exec(ctx,
		fmt.Sprintf("UPDATE users SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args)),
		args...)
	if err != nil {
		return mapPgErr(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) DeleteUser(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) AddPoints(ctx context.Context, userID int64, delta int) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE users SET points = points + $1 WHERE id = $2`, delta, userID)
	return err
}

func (s *PostgresStore) TouchLastLogin(ctx context.Context, userID int64) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE users SET last_login = NOW() WHERE id = $1`, userID)
	return err
}

// ==================== Sessions ====================

func (s *PostgresStore) CreateSession(ctx context.Context, userID int64, token string, expiresAt time.Time) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO sessions (user_id, token, expires_at) VALUES ($1, $2, $3)`,
		userID, token, expiresAt.UTC())
	return mapPgErr(err)
}

func (s *PostgresStore) UserByToken(ctx context.Context, token string) (*model.User, error) {
	user, err := scanner.ScanUser(s.pool.QueryRow(ctx,
		`SELECT u.id, u.username, u.points, u.is_admin, u.created_at, u.last_login
		 FROM users u
		 JOIN sessions se ON u.id = se.user_id
		 WHERE se.token = $1 AND se.expires_at > NOW()`, token))
	if err != nil {
		return nil, mapPgErr(err)
	}
	return user, nil
}

func (s *PostgresStore) RevokeSession(ctx context.Context, token string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM sessions WHERE token = $1`, token)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ==================== Parties ====================

func (s *PostgresStore) InsertScore(ctx context.Context, rec *model.ScoreRecord) error {
	err := s.pool.QueryRow(ctx,
		`INSERT INTO game_scores (user_id, game_type, score, points_earned, played_at, season_id)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		rec.UserID, rec.GameType, rec.Score, rec.PointsEarned, rec.PlayedAt.UTC(), rec.SeasonID).
		Scan(&rec.ID)
	return mapPgErr(err)
}

func (s *PostgresStore) ScoresByGame(ctx context.Context, gameType string, seasonID *int64) ([]model.ScoreRecord, error) {
	query := `SELECT s.id, s.user_id, u.username, s.game_type, s.score, s.points_earned, s.played_at, s.season_id
		 FROM game_scores s
		 JOIN users u ON s.user_id = u.id
		 WHERE s.game_type = $1`
	args := []interface{}{gameType}

	if seasonID != nil {
		query += ` AND s.season_id = $2`
		args = append(args, *seasonID)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPgScores(rows)
}

func (s *PostgresStore) UserHistory(ctx context.Context, userID int64, gameType string, limit int) ([]model.ScoreRecord, error) {
	query := `SELECT s.id, s.user_id, u.username, s.game_type, s.score, s.points_earned, s.played_at, s.season_id
		 FROM game_scores s
		 JOIN users u ON s.user_id = u.id
		 WHERE s.user_id = $1`
	args := []interface{}{userID}

	if gameType != "" {
		args = append(args, gameType)
		query += fmt.Sprintf(` AND s.game_type = $%d`, len(args))
	}

	args = append(args, limit)
	query += fmt.Sprintf(` ORDER BY s.played_at DESC LIMIT $%d`, len(args))

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPgScores(rows)
}

func (s *PostgresStore) AllScores(ctx context.Context) ([]model.ScoreRecord, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT s.id, s.user_id, u.username, s.game_type, s.score, s.points_earned, s.played_at, s.season_id
		 FROM game_scores s
		 JOIN users u ON s.user_id = u.id
		 ORDER BY s.played_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPgScores(rows)
}

func (s *PostgresStore) DeleteScore(ctx context.Context, scoreID int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM game_scores WHERE id = $1`, scoreID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func collectPgScores(rows pgx.Rows) ([]model.ScoreRecord, error) {
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

func (s *PostgresStore) TotalLeaderboard(ctx context.Context, limit int) ([]model.TotalPointsRow, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, username, points FROM users ORDER BY points DESC, id ASC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPgTotals(rows)
}

func (s *PostgresStore) TodayLeaderboard(ctx context.Context, day time.Time, limit int) ([]model.TotalPointsRow, error) {
	start, end := DayBounds(day)
	rows, err := s.pool.Query(ctx,
		`SELECT u.id, u.username, SUM(s.points_earned) as total_points
		 FROM game_scores s
		 JOIN users u ON s.user_id = u.id
		 WHERE s.played_at >= $1 AND s.played_at < $2
		 GROUP BY u.id
		 ORDER BY total_points DESC, u.id ASC
		 LIMIT $3`, start, end, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPgTotals(rows)
}

func (s *PostgresStore) SeasonTotalLeaderboard(ctx context.Context, seasonID int64, limit int) ([]model.TotalPointsRow, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT u.id, u.username, SUM(s.points_earned) as total_points
		 FROM game_scores s
		 JOIN users u ON s.user_id = u.id
		 WHERE s.season_id = $1
		 GROUP BY u.id
		 ORDER BY total_points DESC, u.id ASC
		 LIMIT $2`, seasonID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPgTotals(rows)
}

func collectPgTotals(rows pgx.Rows) ([]model.TotalPointsRow, error) {
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

func (s *PostgresStore) TasksForDate(ctx context.Context, date string) ([]model.DailyTask, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, task_date, game_type, target_score, points_reward, description
		 FROM daily_tasks WHERE task_date = $1 ORDER BY id`, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPgTasks(rows)
}

func (s *PostgresStore) CreateTasksForDate(ctx context.Context, date string, tasks []model.DailyTask) (bool, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer tx.Rollback(ctx)

	// Le marqueur task_days arbitre la course "premier appel du jour"
	tag, err := tx.Exec(ctx,
		`INSERT INTO task_days (task_date) VALUES ($1) ON CONFLICT DO NOTHING`, date)
	if err != nil {
		return false, err
	}
	if tag.RowsAffected() == 0 {
		return false, nil
	}

	for _, task := range tasks {
		if _, err := tx.Exec(ctx,
			`INSERT INTO daily_tasks (task_date, game_type, target_score, points_reward, description)
			 VALUES ($1, $2, $3, $4, $5)`,
			date, task.GameType, task.TargetScore, task.PointsReward, task.Description); err != nil {
			return false, err
		}
	}

	return true, tx.Commit(ctx)
}

func (s *PostgresStore) CompleteTask(ctx context.Context, userID, taskID int64) (*model.TaskCompletionResult, error) {
	var reward int
	err := s.pool.QueryRow(ctx,
		`SELECT points_reward FROM daily_tasks WHERE id = $1`, taskID).Scan(&reward)
	if err != nil {
		return nil, mapPgErr(err)
	}

	// Écriture conditionnelle : 0 ligne modifiée = déjà complétée
	tag, err := s.pool.Exec(ctx,
		`INSERT INTO user_tasks (user_id, task_id, completed, completed_at)
		 VALUES ($1, $2, true, NOW())
		 ON CONFLICT (user_id, task_id)
		 DO UPDATE SET completed = true, completed_at = NOW()
		 WHERE user_tasks.completed = false`,
		userID, taskID)
	if err != nil {
		return nil, mapPgErr(err)
	}

	if tag.RowsAffected() == 0 {
		return &model.TaskCompletionResult{AlreadyCompleted: true}, nil
	}
	return &model.TaskCompletionResult{PointsReward: reward}, nil
}

func (s *PostgresStore) CompletedTaskIDs(ctx context.Context, userID int64, date string) (map[int64]bool, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT ut.task_id
		 FROM user_tasks ut
		 JOIN daily_tasks t ON ut.task_id = t.id
		 WHERE ut.user_id = $1 AND ut.completed = true AND t.task_date = $2`,
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

func (s *PostgresStore) TaskHistory(ctx context.Context, userID int64, limit int) ([]model.TaskHistoryRow, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT t.id, t.task_date, t.game_type, t.target_score, t.points_reward, t.description,
		        ut.completed, ut.completed_at
		 FROM daily_tasks t
		 JOIN user_tasks ut ON t.id = ut.task_id
		 WHERE ut.user_id = $1
		 ORDER BY ut.completed_at DESC
		 LIMIT $2`, userID, limit)
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

func (s *PostgresStore) ListTasks(ctx context.Context) ([]model.DailyTask, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, task_date, game_type, target_score, points_reward, description
		 FROM daily_tasks ORDER BY task_date DESC, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPgTasks(rows)
}

func (s *PostgresStore) DeleteTask(ctx context.Context, taskID int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM daily_tasks WHERE id = $1`, taskID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func collectPgTasks(rows pgx.Rows) ([]model.DailyTask, error) {
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

// ==================== Saisons ====================

func (s *PostgresStore) CreateSeason(ctx context.Context, season *model.Season) (int64, error) {
	var id int64
	err := s.pool.QueryRow(ctx,
		`INSERT INTO seasons (name, description, start_date, end_date, is_active)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		season.Name, season.Description, season.StartDate.UTC(), season.EndDate.UTC(), season.IsActive).
		Scan(&id)
	if err != nil {
		return 0, mapPgErr(err)
	}
	return id, nil
}

func (s *PostgresStore) ListSeasons(ctx context.Context) ([]model.Season, error) {
	rows, err := s.pool.Query(ctx,
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

func (s *PostgresStore) SeasonByID(ctx context.Context, id int64) (*model.Season, error) {
	season, err := scanner.ScanSeason(s.pool.QueryRow(ctx,
		`SELECT id, name, description, start_date, end_date, is_active, created_at
		 FROM seasons WHERE id = $1`, id))
	if err != nil {
		return nil, mapPgErr(err)
	}
	return season, nil
}

func (s *PostgresStore) UpdateSeason(ctx context.Context, id int64, patch model.SeasonPatch) error {
	if patch.IsEmpty() {
		return nil
	}

	var sets []string
	var args []interface{}

	add := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.StartDate != nil {
		add("start_date", patch.StartDate.UTC())
	}
	if patch.EndDate != nil {
		add("end_date", patch.EndDate.UTC())
	}
	if patch.IsActive != nil {
		add("is_active", *patch.IsActive)
	}

	args = append(args, id)
	tag, err := s.pool.Exec(ctx,
		fmt.Sprintf("UPDATE seasons SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args)),
		args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) DeleteSeason(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM seasons WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) SeasonStats(ctx context.Context, seasonID int64) (*model.SeasonStats, error) {
	var stats model.SeasonStats
	var totalPoints sql.NullInt64

	err := s.pool.QueryRow(ctx,
		`SELECT COUNT(*), SUM(points_earned), COUNT(DISTINCT user_id)
		 FROM game_scores WHERE season_id = $1`, seasonID).
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

func (s *PostgresStore) PlatformStats(ctx context.Context, day time.Time) (*model.PlatformStats, error) {
	var stats model.PlatformStats
	var totalPoints sql.NullInt64
	start, end := DayBounds(day)

	err := s.pool.QueryRow(ctx,
		`SELECT (SELECT COUNT(*) FROM users),
		        (SELECT COUNT(*) FROM game_scores),
		        (SELECT SUM(points) FROM users),
		        (SELECT COUNT(DISTINCT user_id) FROM game_scores WHERE played_at >= $1 AND played_at < $2)`,
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

func (s *PostgresStore) UserStats(ctx context.Context, userID int64) (*model.UserStats, error) {
	var stats model.UserStats
	var totalPoints sql.NullInt64
	var bestF1, bestSchulte sql.NullFloat64

	err := s.pool.QueryRow(ctx,
		`SELECT (SELECT COUNT(*) FROM game_scores WHERE user_id = $1),
		        (SELECT SUM(points_earned) FROM game_scores WHERE user_id = $1),
		        (SELECT COUNT(*) FROM user_tasks WHERE user_id = $1 AND completed = true),
		        (SELECT MIN(score) FROM game_scores WHERE user_id = $1 AND game_type = 'f1_reaction'),
		        (SELECT MIN(score) FROM game_scores WHERE user_id = $1 AND game_type = 'schulte_grid_5')`,
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
