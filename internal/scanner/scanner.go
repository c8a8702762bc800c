package scanner

import (
	"database/sql"

	model "github.com/MassBabyGeek/FocusPlay-backend/internal/models"
	"github.com/MassBabyGeek/FocusPlay-backend/internal/utils"
)

// Row couvre sql.Row, sql.Rows et pgx.Row
type Row interface {
	Scan(dest ...interface{}) error
}

// ScanUser scanne une ligne SQL vers un User
// Utilise les types sql.Null* et les convertit automatiquement
func ScanUser(row Row) (*model.User, error) {
	var user model.User
	var lastLogin sql.NullTime

	err := row.Scan(&user.ID, &user.Username, &user.Points, &user.IsAdmin,
		&user.CreatedAt, &lastLogin)
	if err != nil {
		return nil, err
	}

	user.LastLogin = utils.NullTimeToPointer(lastLogin)

	return &user, nil
}

// ScanScoreRecord scanne une ligne SQL vers un ScoreRecord (avec username)
func ScanScoreRecord(row Row) (*model.ScoreRecord, error) {
	var rec model.ScoreRecord
	var seasonID sql.NullInt64

	err := row.Scan(&rec.ID, &rec.UserID, &rec.Username, &rec.GameType,
		&rec.Score, &rec.PointsEarned, &rec.PlayedAt, &seasonID)
	if err != nil {
		return nil, err
	}

	rec.SeasonID = utils.NullInt64ToPointer(seasonID)

	return &rec, nil
}

// ScanSeason scanne une ligne SQL vers une Season
func ScanSeason(row Row) (*model.Season, error) {
	var s model.Season
	var description sql.NullString

	err := row.Scan(&s.ID, &s.Name, &description, &s.StartDate, &s.EndDate,
		&s.IsActive, &s.CreatedAt)
	if err != nil {
		return nil, err
	}

	s.Description = utils.NullStringToString(description)

	return &s, nil
}

// ScanDailyTask scanne une ligne SQL vers une DailyTask
func ScanDailyTask(row Row) (*model.DailyTask, error) {
	var t model.DailyTask
	var description sql.NullString

	err := row.Scan(&t.ID, &t.TaskDate, &t.GameType, &t.TargetScore,
		&t.PointsReward, &description)
	if err != nil {
		return nil, err
	}

	t.Description = utils.NullStringToString(description)

	return &t, nil
}

// ScanTaskHistoryRow scanne une ligne SQL vers un TaskHistoryRow
func ScanTaskHistoryRow(row Row) (*model.TaskHistoryRow, error) {
	var h model.TaskHistoryRow
	var description sql.NullString
	var completedAt sql.NullTime

	err := row.Scan(&h.ID, &h.TaskDate, &h.GameType, &h.TargetScore,
		&h.PointsReward, &description, &h.Completed, &completedAt)
	if err != nil {
		return nil, err
	}

	h.Description = utils.NullStringToString(description)
	h.CompletedAt = utils.NullTimeToPointer(completedAt)

	return &h, nil
}
