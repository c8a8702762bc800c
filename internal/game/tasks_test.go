package game

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "github.com/MassBabyGeek/FocusPlay-backend/internal/models"
)

func TestPickDailyTasks(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	tasks := PickDailyTasks(rng, "2026-08-30")

	require.Len(t, tasks, DailyTaskCount)
	for _, task := range tasks {
		assert.Equal(t, "2026-08-30", task.TaskDate)
		assert.NotEmpty(t, task.GameType)
		assert.Positive(t, task.PointsReward)
	}

	// tirage sans remise : pas deux fois le même modèle
	seen := map[string]bool{}
	for _, task := range tasks {
		key := task.Description
		assert.False(t, seen[key], "modèle tiré deux fois : %s", key)
		seen[key] = true
	}
}

func TestSatisfies(t *testing.T) {
	// jeux de temps : la cible est un plafond
	assert.True(t, Satisfies(LowerBetter, 0.250, 0.240))
	assert.True(t, Satisfies(LowerBetter, 0.250, 0.250))
	assert.False(t, Satisfies(LowerBetter, 0.250, 0.251))

	// jeux de score : la cible est un plancher
	assert.True(t, Satisfies(HigherBetter, 300, 320))
	assert.True(t, Satisfies(HigherBetter, 300, 300))
	assert.False(t, Satisfies(HigherBetter, 300, 299))
}

func TestEligibleTasks(t *testing.T) {
	today := "2026-08-30"
	tasks := []model.DailyTask{
		{ID: 1, TaskDate: today, GameType: Snake, TargetScore: 200, PointsReward: 80},
		{ID: 2, TaskDate: today, GameType: Snake, TargetScore: 300, PointsReward: 120},
		{ID: 3, TaskDate: today, GameType: F1Reaction, TargetScore: 0.250, PointsReward: 80},
		{ID: 4, TaskDate: "2026-08-29", GameType: Snake, TargetScore: 100, PointsReward: 60},
	}

	t.Run("cible atteinte, autre jeu et autre jour exclus", func(t *testing.T) {
		eligible, err := EligibleTasks(Snake, 250, today, tasks, nil)
		require.NoError(t, err)
		require.Len(t, eligible, 1)
		assert.Equal(t, int64(1), eligible[0].ID)
	})

	t.Run("un score peut satisfaire plusieurs tâches", func(t *testing.T) {
		eligible, err := EligibleTasks(Snake, 340, today, tasks, nil)
		require.NoError(t, err)
		assert.Len(t, eligible, 2)
	})

	t.Run("les tâches déjà complétées sont filtrées", func(t *testing.T) {
		completed := map[int64]bool{1: true}
		eligible, err := EligibleTasks(Snake, 340, today, tasks, completed)
		require.NoError(t, err)
		require.Len(t, eligible, 1)
		assert.Equal(t, int64(2), eligible[0].ID)
	})

	t.Run("cible non atteinte", func(t *testing.T) {
		eligible, err := EligibleTasks(Snake, 150, today, tasks, nil)
		require.NoError(t, err)
		assert.Empty(t, eligible)
	})

	t.Run("jeu inconnu rejeté", func(t *testing.T) {
		_, err := EligibleTasks("pacman", 100, today, tasks, nil)
		assert.ErrorIs(t, err, ErrUnknownGame)
	})
}

func TestTaskDate(t *testing.T) {
	// 23h05 heure de Paris en été = 21h05 UTC, même jour
	paris := time.FixedZone("CEST", 2*3600)
	at := time.Date(2026, 8, 30, 23, 5, 0, 0, paris)
	assert.Equal(t, "2026-08-30", TaskDate(at))

	// 01h30 heure de Paris = 23h30 UTC la veille : le jour UTC fait foi
	at = time.Date(2026, 8, 31, 1, 30, 0, 0, paris)
	assert.Equal(t, "2026-08-30", TaskDate(at))
}
