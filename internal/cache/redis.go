// Package cache maintient un miroir Redis du classement total (ZSet),
// alimenté en write-through à chaque attribution de points. Optionnel : le
// store SQL reste la source de vérité, le cache n'est qu'un raccourci de
// lecture.
package cache

import (
	"fmt"
	"strconv"

	model "github.com/MassBabyGeek/FocusPlay-backend/internal/models"
	"github.com/go-redis/redis"
)

const (
	leaderboardKey = "leaderboard:total"
	usernamesKey   = "leaderboard:usernames"
)

type Leaderboard struct {
	client *redis.Client
}

// NewLeaderboard se connecte à Redis et vérifie la liaison
func NewLeaderboard(addr string) (*Leaderboard, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	if err := client.Ping().Err(); err != nil {
		return nil, fmt.Errorf("could not ping redis: %w", err)
	}
	return &Leaderboard{client: client}, nil
}

// NewLeaderboardWithClient enveloppe un client existant (tests)
func NewLeaderboardWithClient(client *redis.Client) *Leaderboard {
	return &Leaderboard{client: client}
}

// AddPoints incrémente le total d'un utilisateur dans le ZSet.
// Le membre est l'id utilisateur ; le nom est mis à jour à part.
func (l *Leaderboard) AddPoints(userID int64, username string, points int) error {
	member := strconv.FormatInt(userID, 10)

	pipe := l.client.TxPipeline()
	pipe.ZIncrBy(leaderboardKey, float64(points), member)
	pipe.HSet(usernamesKey, member, username)
	_, err := pipe.Exec()
	return err
}

// Top retourne les limit premiers du classement total, rangs croissants.
// Retourne nil si le cache est vide (le caller retombe alors sur le SQL).
func (l *Leaderboard) Top(limit int) ([]model.TotalPointsRow, error) {
	scores, err := l.client.ZRevRangeWithScores(leaderboardKey, 0, int64(limit)-1).Result()
	if err != nil {
		return nil, err
	}
	if len(scores) == 0 {
		return nil, nil
	}

	rows := make([]model.TotalPointsRow, 0, len(scores))
	for rank, member := range scores {
		id, err := strconv.ParseInt(member.Member.(string), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("corrupt leaderboard member %v: %w", member.Member, err)
		}

		username, err := l.client.HGet(usernamesKey, member.Member.(string)).Result()
		if err != nil && err != redis.Nil {
			return nil, err
		}

		rows = append(rows, model.TotalPointsRow{
			Rank:        rank + 1,
			UserID:      id,
			Username:    username,
			TotalPoints: int(member.Score),
		})
	}
	return rows, nil
}
