package game

import (
	"cmp"
	"slices"

	model "github.com/MassBabyGeek/FocusPlay-backend/internal/models"
)

// Rank construit le classement d'un jeu à partir des parties persistées :
// une seule ligne par utilisateur (sa meilleure partie), triée dans le sens
// de comparaison du jeu, tronquée à limit.
//
// Départage déterministe, indépendant de l'ordre de stockage :
//   - deux meilleures parties d'un même joueur à score égal : la plus
//     ancienne est conservée
//   - deux joueurs à score égal : la soumission la plus ancienne passe
//     devant, puis l'id utilisateur le plus petit
func Rank(records []model.ScoreRecord, dir Direction, limit int) []model.LeaderboardEntry {
	if len(records) == 0 {
		return nil
	}

	// Meilleure partie par utilisateur
	best := make(map[int64]model.ScoreRecord)
	for _, rec := range records {
		cur, ok := best[rec.UserID]
		if !ok {
			best[rec.UserID] = rec
			continue
		}
		if Better(dir, rec.Score, cur.Score) {
			best[rec.UserID] = rec
			continue
		}
		if rec.Score == cur.Score && rec.PlayedAt.Before(cur.PlayedAt) {
			best[rec.UserID] = rec
		}
	}

	extrema := make([]model.ScoreRecord, 0, len(best))
	for _, rec := range best {
		extrema = append(extrema, rec)
	}

	slices.SortFunc(extrema, func(a, b model.ScoreRecord) int {
		if a.Score != b.Score {
			if Better(dir, a.Score, b.Score) {
				return -1
			}
			return 1
		}
		if c := a.PlayedAt.Compare(b.PlayedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.UserID, b.UserID)
	})

	if limit > 0 && len(extrema) > limit {
		extrema = extrema[:limit]
	}

	entries := make([]model.LeaderboardEntry, len(extrema))
	for i, rec := range extrema {
		entries[i] = model.LeaderboardEntry{
			Rank:         i + 1,
			UserID:       rec.UserID,
			Username:     rec.Username,
			Score:        rec.Score,
			PointsEarned: rec.PointsEarned,
			PlayedAt:     rec.PlayedAt,
		}
	}
	return entries
}
