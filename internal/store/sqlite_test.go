package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MassBabyGeek/FocusPlay-backend/internal/game"
	model "github.com/MassBabyGeek/FocusPlay-backend/internal/models"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

func createTestUser(t *testing.T, s *SQLiteStore, username string) int64 {
	t.Helper()
	id, err := s.CreateUser(context.Background(), username, "hash", false)
	require.NoError(t, err)
	return id
}

func TestCreateUserDuplicate(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.CreateUser(ctx, "alice", "hash", false)
	require.NoError(t, err)

	_, err = s.CreateUser(ctx, "alice", "hash2", false)
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestUserLookup(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id := createTestUser(t, s, "bob")

	user, hash, err := s.UserByUsername(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, "hash", hash)
	assert.Zero(t, user.Points)
	assert.False(t, user.IsAdmin)

	_, _, err = s.UserByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.UserByID(ctx, 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddPoints(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id := createTestUser(t, s, "alice")
	require.NoError(t, s.AddPoints(ctx, id, 100))
	require.NoError(t, s.AddPoints(ctx, id, 80))

	user, err := s.UserByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 180, user.Points)
}

func TestUpdateUserPatch(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id := createTestUser(t, s, "alice")

	newName := "alicia"
	isAdmin := true
	err := s.UpdateUser(ctx, id, model.UserPatch{Username: &newName, IsAdmin: &isAdmin})
	require.NoError(t, err)

	user, err := s.UserByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "alicia", user.Username)
	assert.True(t, user.IsAdmin)

	// collision de nom
	createTestUser(t, s, "bob")
	taken := "bob"
	err = s.UpdateUser(ctx, id, model.UserPatch{Username: &taken})
	assert.ErrorIs(t, err, ErrDuplicate)

	err = s.UpdateUser(ctx, 9999, model.UserPatch{Username: &newName})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessions(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id := createTestUser(t, s, "alice")
	require.NoError(t, s.CreateSession(ctx, id, "tok-1", time.Now().Add(time.Hour)))

	user, err := s.UserByToken(ctx, "tok-1")
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)

	// session expirée refusée
	require.NoError(t, s.CreateSession(ctx, id, "tok-old", time.Now().Add(-time.Hour)))
	_, err = s.UserByToken(ctx, "tok-old")
	assert.ErrorIs(t, err, ErrNotFound)

	// révocation
	require.NoError(t, s.RevokeSession(ctx, "tok-1"))
	_, err = s.UserByToken(ctx, "tok-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInsertAndQueryScores(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	alice := createTestUser(t, s, "alice")
	bob := createTestUser(t, s, "bob")

	now := time.Now().UTC().Truncate(time.Second)
	for i, rec := range []*model.ScoreRecord{
		{UserID: alice, GameType: game.Snake, Score: 320, PointsEarned: 80, PlayedAt: now},
		{UserID: alice, GameType: game.Snake, Score: 150, PointsEarned: 40, PlayedAt: now.Add(time.Minute)},
		{UserID: bob, GameType: game.Snake, Score: 510, PointsEarned: 100, PlayedAt: now.Add(2 * time.Minute)},
		{UserID: bob, GameType: game.F1Reaction, Score: 0.21, PointsEarned: 80, PlayedAt: now.Add(3 * time.Minute)},
	} {
		require.NoError(t, s.InsertScore(ctx, rec), "record %d", i)
		assert.Positive(t, rec.ID)
	}

	snake, err := s.ScoresByGame(ctx, game.Snake, nil)
	require.NoError(t, err)
	assert.Len(t, snake, 3)
	for _, rec := range snake {
		assert.NotEmpty(t, rec.Username)
		assert.Equal(t, game.Snake, rec.GameType)
	}

	history, err := s.UserHistory(ctx, alice, game.Snake, 10)
	require.NoError(t, err)
	require.Len(t, history, 2)
	// du plus récent au plus ancien
	assert.Equal(t, float64(150), history[0].Score)
}

func TestScoresBySeason(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	alice := createTestUser(t, s, "alice")
	seasonID, err := s.CreateSeason(ctx, &model.Season{
		Name:      "saison 1",
		StartDate: time.Now().Add(-24 * time.Hour),
		EndDate:   time.Now().Add(24 * time.Hour),
		IsActive:  true,
	})
	require.NoError(t, err)

	now := time.Now().UTC()
	require.NoError(t, s.InsertScore(ctx, &model.ScoreRecord{
		UserID: alice, GameType: game.Snake, Score: 100, PointsEarned: 40, PlayedAt: now, SeasonID: &seasonID,
	}))
	require.NoError(t, s.InsertScore(ctx, &model.ScoreRecord{
		UserID: alice, GameType: game.Snake, Score: 200, PointsEarned: 60, PlayedAt: now,
	}))

	all, err := s.ScoresByGame(ctx, game.Snake, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	inSeason, err := s.ScoresByGame(ctx, game.Snake, &seasonID)
	require.NoError(t, err)
	require.Len(t, inSeason, 1)
	require.NotNil(t, inSeason[0].SeasonID)
	assert.Equal(t, seasonID, *inSeason[0].SeasonID)
}

func TestTotalAndTodayLeaderboards(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	alice := createTestUser(t, s, "alice")
	bob := createTestUser(t, s, "bob")

	now := time.Now().UTC()
	yesterday := now.Add(-24 * time.Hour)

	require.NoError(t, s.InsertScore(ctx, &model.ScoreRecord{UserID: alice, GameType: game.Snake, Score: 100, PointsEarned: 40, PlayedAt: yesterday}))
	require.NoError(t, s.AddPoints(ctx, alice, 40))
	require.NoError(t, s.InsertScore(ctx, &model.ScoreRecord{UserID: alice, GameType: game.Snake, Score: 600, PointsEarned: 100, PlayedAt: now}))
	require.NoError(t, s.AddPoints(ctx, alice, 100))
	require.NoError(t, s.InsertScore(ctx, &model.ScoreRecord{UserID: bob, GameType: game.Snake, Score: 250, PointsEarned: 60, PlayedAt: now}))
	require.NoError(t, s.AddPoints(ctx, bob, 60))

	total, err := s.TotalLeaderboard(ctx, 10)
	require.NoError(t, err)
	require.Len(t, total, 2)
	assert.Equal(t, "alice", total[0].Username)
	assert.Equal(t, 140, total[0].TotalPoints)
	assert.Equal(t, 1, total[0].Rank)
	assert.Equal(t, 2, total[1].Rank)

	today, err := s.TodayLeaderboard(ctx, now, 10)
	require.NoError(t, err)
	require.Len(t, today, 2)
	// la partie d'hier ne compte pas
	assert.Equal(t, 100, today[0].TotalPoints)
}

func TestCreateTasksForDateOnlyOnce(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	tasks := []model.DailyTask{
		{TaskDate: "2026-08-30", GameType: game.Snake, TargetScore: 200, PointsReward: 80, Description: "snake"},
		{TaskDate: "2026-08-30", GameType: game.F1Reaction, TargetScore: 0.25, PointsReward: 80, Description: "f1"},
	}

	created, err := s.CreateTasksForDate(ctx, "2026-08-30", tasks)
	require.NoError(t, err)
	assert.True(t, created)

	// deuxième appel du jour : aucune insertion
	created, err = s.CreateTasksForDate(ctx, "2026-08-30", tasks)
	require.NoError(t, err)
	assert.False(t, created)

	stored, err := s.TasksForDate(ctx, "2026-08-30")
	require.NoError(t, err)
	assert.Len(t, stored, 2)

	// une autre date reste générable
	created, err = s.CreateTasksForDate(ctx, "2026-08-31", tasks)
	require.NoError(t, err)
	assert.True(t, created)
}

func TestCompleteTaskIdempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	alice := createTestUser(t, s, "alice")
	created, err := s.CreateTasksForDate(ctx, "2026-08-30", []model.DailyTask{
		{TaskDate: "2026-08-30", GameType: game.Snake, TargetScore: 200, PointsReward: 80},
	})
	require.NoError(t, err)
	require.True(t, created)

	tasks, err := s.TasksForDate(ctx, "2026-08-30")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	taskID := tasks[0].ID

	res, err := s.CompleteTask(ctx, alice, taskID)
	require.NoError(t, err)
	assert.False(t, res.AlreadyCompleted)
	assert.Equal(t, 80, res.PointsReward)

	// rejouer la complétion : signal normal, pas de double récompense
	res, err = s.CompleteTask(ctx, alice, taskID)
	require.NoError(t, err)
	assert.True(t, res.AlreadyCompleted)
	assert.Zero(t, res.PointsReward)

	completed, err := s.CompletedTaskIDs(ctx, alice, "2026-08-30")
	require.NoError(t, err)
	assert.True(t, completed[taskID])

	// tâche inexistante
	_, err = s.CompleteTask(ctx, alice, 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSeasonCRUD(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	start := time.Now().UTC().Truncate(time.Second)
	end := start.AddDate(0, 3, 0)

	id, err := s.CreateSeason(ctx, &model.Season{Name: "printemps", StartDate: start, EndDate: end, IsActive: true})
	require.NoError(t, err)

	season, err := s.SeasonByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "printemps", season.Name)
	assert.True(t, season.IsActive)

	inactive := false
	require.NoError(t, s.UpdateSeason(ctx, id, model.SeasonPatch{IsActive: &inactive}))
	season, err = s.SeasonByID(ctx, id)
	require.NoError(t, err)
	assert.False(t, season.IsActive)

	require.NoError(t, s.DeleteSeason(ctx, id))
	_, err = s.SeasonByID(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.DeleteSeason(ctx, id), ErrNotFound)
}

// Supprimer une saison détache ses parties sans les effacer
func TestDeleteSeasonDetachesScores(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	alice := createTestUser(t, s, "alice")
	id, err := s.CreateSeason(ctx, &model.Season{
		Name: "s", StartDate: time.Now(), EndDate: time.Now().Add(time.Hour), IsActive: true,
	})
	require.NoError(t, err)

	require.NoError(t, s.InsertScore(ctx, &model.ScoreRecord{
		UserID: alice, GameType: game.Snake, Score: 100, PointsEarned: 40, PlayedAt: time.Now().UTC(), SeasonID: &id,
	}))

	require.NoError(t, s.DeleteSeason(ctx, id))

	scores, err := s.ScoresByGame(ctx, game.Snake, nil)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Nil(t, scores[0].SeasonID)
}

func TestUserStats(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	alice := createTestUser(t, s, "alice")
	now := time.Now().UTC()

	require.NoError(t, s.InsertScore(ctx, &model.ScoreRecord{UserID: alice, GameType: game.F1Reaction, Score: 0.23, PointsEarned: 60, PlayedAt: now}))
	require.NoError(t, s.InsertScore(ctx, &model.ScoreRecord{UserID: alice, GameType: game.F1Reaction, Score: 0.198, PointsEarned: 100, PlayedAt: now}))
	require.NoError(t, s.InsertScore(ctx, &model.ScoreRecord{UserID: alice, GameType: game.Snake, Score: 320, PointsEarned: 80, PlayedAt: now}))

	stats, err := s.UserStats(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalGames)
	assert.Equal(t, 240, stats.TotalPointsEarned)
	require.NotNil(t, stats.BestF1Reaction)
	assert.Equal(t, 0.198, *stats.BestF1Reaction)
}

func TestDayBounds(t *testing.T) {
	paris := time.FixedZone("CEST", 2*3600)
	at := time.Date(2026, 8, 31, 1, 30, 0, 0, paris) // 2026-08-30 23:30 UTC

	start, end := DayBounds(at)
	assert.Equal(t, time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), end)
}
