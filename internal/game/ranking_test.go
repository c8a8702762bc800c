package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "github.com/MassBabyGeek/FocusPlay-backend/internal/models"
)

func rec(userID int64, username string, score float64, playedAt time.Time) model.ScoreRecord {
	return model.ScoreRecord{
		UserID:   userID,
		Username: username,
		Score:    score,
		PlayedAt: playedAt,
	}
}

func TestRankLowerBetter(t *testing.T) {
	base := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	records := []model.ScoreRecord{
		rec(1, "alice", 0.240, base),
		rec(2, "bob", 0.210, base.Add(time.Minute)),
		rec(1, "alice", 0.198, base.Add(2*time.Minute)), // meilleure partie d'alice
		rec(3, "carol", 0.305, base.Add(3*time.Minute)),
	}

	entries := Rank(records, LowerBetter, 10)
	require.Len(t, entries, 3)

	assert.Equal(t, int64(1), entries[0].UserID)
	assert.Equal(t, 0.198, entries[0].Score)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, int64(2), entries[1].UserID)
	assert.Equal(t, 2, entries[1].Rank)
	assert.Equal(t, int64(3), entries[2].UserID)
	assert.Equal(t, 3, entries[2].Rank)
}

func TestRankHigherBetter(t *testing.T) {
	base := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	records := []model.ScoreRecord{
		rec(1, "alice", 320, base),
		rec(2, "bob", 540, base),
		rec(2, "bob", 120, base.Add(time.Minute)),
		rec(3, "carol", 320, base.Add(time.Minute)),
	}

	entries := Rank(records, HigherBetter, 10)
	require.Len(t, entries, 3)

	assert.Equal(t, int64(2), entries[0].UserID)
	// égalité alice/carol à 320 : la partie la plus ancienne passe devant
	assert.Equal(t, int64(1), entries[1].UserID)
	assert.Equal(t, int64(3), entries[2].UserID)
}

// Une seule entrée par joueur, quelle que soit la quantité de parties
func TestRankDedupesPerUser(t *testing.T) {
	base := time.Now().UTC()
	var records []model.ScoreRecord
	for i := 0; i < 50; i++ {
		records = append(records, rec(7, "solo", float64(i), base.Add(time.Duration(i)*time.Second)))
	}

	entries := Rank(records, HigherBetter, 10)
	require.Len(t, entries, 1)
	assert.Equal(t, float64(49), entries[0].Score)
}

// À score et instant égaux, l'id utilisateur le plus petit passe devant.
// Le résultat ne dépend pas de l'ordre d'arrivée des enregistrements.
func TestRankDeterministicTieBreak(t *testing.T) {
	at := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	forward := []model.ScoreRecord{
		rec(5, "eve", 200, at),
		rec(2, "bob", 200, at),
		rec(9, "ivan", 200, at),
	}
	backward := []model.ScoreRecord{forward[2], forward[1], forward[0]}

	a := Rank(forward, HigherBetter, 10)
	b := Rank(backward, HigherBetter, 10)
	require.Len(t, a, 3)
	assert.Equal(t, a, b)
	assert.Equal(t, int64(2), a[0].UserID)
	assert.Equal(t, int64(5), a[1].UserID)
	assert.Equal(t, int64(9), a[2].UserID)
}

// Même score soumis deux fois par le même joueur : la partie la plus
// ancienne est conservée
func TestRankKeepsEarliestEqualBest(t *testing.T) {
	early := time.Date(2026, 8, 30, 8, 0, 0, 0, time.UTC)
	late := early.Add(time.Hour)

	records := []model.ScoreRecord{
		rec(1, "alice", 0.205, late),
		rec(1, "alice", 0.205, early),
	}

	entries := Rank(records, LowerBetter, 10)
	require.Len(t, entries, 1)
	assert.Equal(t, early, entries[0].PlayedAt)
}

func TestRankLimit(t *testing.T) {
	base := time.Now().UTC()
	var records []model.ScoreRecord
	for i := int64(1); i <= 25; i++ {
		records = append(records, rec(i, "", float64(i), base))
	}

	entries := Rank(records, HigherBetter, 10)
	require.Len(t, entries, 10)
	assert.Equal(t, float64(25), entries[0].Score)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, 10, entries[9].Rank)
}

func TestRankEmpty(t *testing.T) {
	assert.Nil(t, Rank(nil, HigherBetter, 10))
	assert.Nil(t, Rank([]model.ScoreRecord{}, LowerBetter, 10))
}
