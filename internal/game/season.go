package game

import (
	"time"

	model "github.com/MassBabyGeek/FocusPlay-backend/internal/models"
)

// ActiveSeason sélectionne la saison courante à l'instant now parmi les
// saisons actives dont la fenêtre couvre now. En cas de chevauchement, la
// saison créée le plus récemment gagne ; à created_at égal, l'id le plus
// grand. Retourne nil si aucune saison ne correspond.
//
// Le tag de saison est posé à l'insertion de la partie et n'est jamais
// recalculé, même si les bornes changent ensuite.
func ActiveSeason(now time.Time, seasons []model.Season) *model.Season {
	var current *model.Season
	for i := range seasons {
		s := &seasons[i]
		if !s.IsActive {
			continue
		}
		if now.Before(s.StartDate) || now.After(s.EndDate) {
			continue
		}
		if current == nil {
			current = s
			continue
		}
		if s.CreatedAt.After(current.CreatedAt) {
			current = s
			continue
		}
		if s.CreatedAt.Equal(current.CreatedAt) && s.ID > current.ID {
			current = s
		}
	}
	return current
}
