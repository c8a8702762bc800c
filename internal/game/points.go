package game

import (
	"fmt"
	"math"
)

// ValidateScore vérifie que le score brut est dans le domaine du jeu.
// Un temps ou un score négatif, NaN ou infini est rejeté avant toute
// persistance.
func ValidateScore(score float64) error {
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return fmt.Errorf("%w: not a finite number", ErrInvalidScore)
	}
	if score < 0 {
		return fmt.Errorf("%w: negative value %v", ErrInvalidScore, score)
	}
	return nil
}

// PointsFor calcule les points gagnés pour un score brut : 100, 80, 60, 40
// ou 20 (plancher). Comparaison stricte < pour les jeux de temps, >= pour
// les jeux de score. Les paliers sont évalués du plus exigeant au moins
// exigeant, le premier qui matche gagne.
func PointsFor(gameType string, score float64) (int, error) {
	def, err := Resolve(gameType)
	if err != nil {
		return 0, err
	}
	if err := ValidateScore(score); err != nil {
		return 0, err
	}

	for _, tier := range def.Tiers {
		if def.Direction == LowerBetter && score < tier.Boundary {
			return tier.Points, nil
		}
		if def.Direction == HigherBetter && score >= tier.Boundary {
			return tier.Points, nil
		}
	}
	return FloorPoints, nil
}

// Better retourne true si a est strictement meilleur que b selon le sens
// de comparaison du jeu
func Better(dir Direction, a, b float64) bool {
	if dir == LowerBetter {
		return a < b
	}
	return a > b
}
