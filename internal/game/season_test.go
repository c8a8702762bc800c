package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "github.com/MassBabyGeek/FocusPlay-backend/internal/models"
)

func season(id int64, name string, start, end, createdAt time.Time, active bool) model.Season {
	return model.Season{
		ID:        id,
		Name:      name,
		StartDate: start,
		EndDate:   end,
		IsActive:  active,
		CreatedAt: createdAt,
	}
}

func TestActiveSeason(t *testing.T) {
	now := time.Date(2026, 8, 30, 15, 0, 0, 0, time.UTC)
	jan := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	dec := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)

	t.Run("aucune saison", func(t *testing.T) {
		assert.Nil(t, ActiveSeason(now, nil))
	})

	t.Run("fenêtre couvrante", func(t *testing.T) {
		seasons := []model.Season{
			season(1, "été", jan, dec, jan, true),
		}
		got := ActiveSeason(now, seasons)
		require.NotNil(t, got)
		assert.Equal(t, int64(1), got.ID)
	})

	t.Run("saison inactive ignorée", func(t *testing.T) {
		seasons := []model.Season{
			season(1, "été", jan, dec, jan, false),
		}
		assert.Nil(t, ActiveSeason(now, seasons))
	})

	t.Run("fenêtre passée ignorée", func(t *testing.T) {
		seasons := []model.Season{
			season(1, "hiver", jan, jan.AddDate(0, 2, 0), jan, true),
		}
		assert.Nil(t, ActiveSeason(now, seasons))
	})

	t.Run("chevauchement : la plus récemment créée gagne", func(t *testing.T) {
		seasons := []model.Season{
			season(1, "annuelle", jan, dec, jan, true),
			season(2, "spéciale août", jan.AddDate(0, 7, 0), dec, jan.AddDate(0, 7, 0), true),
		}
		got := ActiveSeason(now, seasons)
		require.NotNil(t, got)
		assert.Equal(t, int64(2), got.ID)

		// indépendant de l'ordre de la liste
		got = ActiveSeason(now, []model.Season{seasons[1], seasons[0]})
		require.NotNil(t, got)
		assert.Equal(t, int64(2), got.ID)
	})

	t.Run("created_at égal : id le plus grand gagne", func(t *testing.T) {
		seasons := []model.Season{
			season(3, "a", jan, dec, jan, true),
			season(7, "b", jan, dec, jan, true),
		}
		got := ActiveSeason(now, seasons)
		require.NotNil(t, got)
		assert.Equal(t, int64(7), got.ID)
	})

	t.Run("bornes incluses", func(t *testing.T) {
		seasons := []model.Season{
			season(1, "pile", now, now.AddDate(0, 1, 0), jan, true),
		}
		assert.NotNil(t, ActiveSeason(now, seasons))

		seasons = []model.Season{
			season(1, "fin", jan, now, jan, true),
		}
		assert.NotNil(t, ActiveSeason(now, seasons))
	})
}
