package cache

import (
	"testing"

	"github.com/alicebob/miniredis"
	"github.com/go-redis/redis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLeaderboard(t *testing.T) *Leaderboard {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewLeaderboardWithClient(client)
}

func TestLeaderboardEmpty(t *testing.T) {
	lb := newTestLeaderboard(t)

	rows, err := lb.Top(10)
	require.NoError(t, err)
	assert.Nil(t, rows, "cache vide : le caller doit retomber sur le SQL")
}

func TestLeaderboardAddPointsAndTop(t *testing.T) {
	lb := newTestLeaderboard(t)

	require.NoError(t, lb.AddPoints(1, "alice", 100))
	require.NoError(t, lb.AddPoints(2, "bob", 60))
	require.NoError(t, lb.AddPoints(1, "alice", 40))

	rows, err := lb.Top(10)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, int64(1), rows[0].UserID)
	assert.Equal(t, "alice", rows[0].Username)
	assert.Equal(t, 140, rows[0].TotalPoints)
	assert.Equal(t, 1, rows[0].Rank)

	assert.Equal(t, int64(2), rows[1].UserID)
	assert.Equal(t, 60, rows[1].TotalPoints)
	assert.Equal(t, 2, rows[1].Rank)
}

func TestLeaderboardTopLimit(t *testing.T) {
	lb := newTestLeaderboard(t)

	for i := int64(1); i <= 5; i++ {
		require.NoError(t, lb.AddPoints(i, "user", int(i)*10))
	}

	rows, err := lb.Top(3)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, int64(5), rows[0].UserID)
	assert.Equal(t, 50, rows[0].TotalPoints)
}

func TestLeaderboardUsernameFollowsRename(t *testing.T) {
	lb := newTestLeaderboard(t)

	require.NoError(t, lb.AddPoints(1, "alice", 100))
	require.NoError(t, lb.AddPoints(1, "alicia", 20))

	rows, err := lb.Top(10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "alicia", rows[0].Username)
	assert.Equal(t, 120, rows[0].TotalPoints)
}
