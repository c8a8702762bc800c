package game

import (
	"fmt"
)

// Direction indique le sens de comparaison des scores bruts d'un jeu
type Direction int

const (
	// LowerBetter : jeux de temps (réaction, grilles de Schulte)
	LowerBetter Direction = iota
	// HigherBetter : jeux de score (snake, casse-briques)
	HigherBetter
)

func (d Direction) String() string {
	if d == LowerBetter {
		return "lower_better"
	}
	return "higher_better"
}

// Tier associe une borne de score à un nombre de points.
// Les bornes sont évaluées dans l'ordre, la première qui matche gagne.
type Tier struct {
	Boundary float64
	Points   int
}

// Definition décrit un jeu du catalogue : sens de comparaison et paliers.
// Immuable, défini au démarrage.
type Definition struct {
	ID        string
	Direction Direction
	Tiers     []Tier
}

// Identifiants de jeux. SchulteGrid est l'alias historique de la grille 5x5.
const (
	F1Reaction   = "f1_reaction"
	SchulteGrid  = "schulte_grid"
	SchulteGrid3 = "schulte_grid_3"
	SchulteGrid4 = "schulte_grid_4"
	SchulteGrid5 = "schulte_grid_5"
	Snake        = "snake"
	Breakout     = "breakout"
)

// FloorPoints est le plancher : toute soumission valide rapporte au moins 20
const FloorPoints = 20

var catalog = map[string]*Definition{
	F1Reaction: {
		ID:        F1Reaction,
		Direction: LowerBetter,
		Tiers:     []Tier{{0.200, 100}, {0.230, 80}, {0.250, 60}, {0.300, 40}},
	},
	SchulteGrid3: {
		ID:        SchulteGrid3,
		Direction: LowerBetter,
		Tiers:     []Tier{{12, 100}, {18, 80}, {24, 60}, {30, 40}},
	},
	SchulteGrid4: {
		ID:        SchulteGrid4,
		Direction: LowerBetter,
		Tiers:     []Tier{{16, 100}, {24, 80}, {32, 60}, {40, 40}},
	},
	SchulteGrid5: {
		ID:        SchulteGrid5,
		Direction: LowerBetter,
		Tiers:     []Tier{{20, 100}, {30, 80}, {40, 60}, {50, 40}},
	},
	Snake: {
		ID:        Snake,
		Direction: HigherBetter,
		Tiers:     []Tier{{500, 100}, {300, 80}, {200, 60}, {100, 40}},
	},
	Breakout: {
		ID:        Breakout,
		Direction: HigherBetter,
		Tiers:     []Tier{{2000, 100}, {1500, 80}, {1000, 60}, {500, 40}},
	},
}

func init() {
	// schulte_grid (sans suffixe) pointe sur la définition 5x5
	catalog[SchulteGrid] = catalog[SchulteGrid5]
}

// Resolve retourne la définition d'un jeu, ou ErrUnknownGame.
// Les identifiants inconnus sont rejetés, jamais remplacés par un défaut.
func Resolve(gameType string) (*Definition, error) {
	def, ok := catalog[gameType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGame, gameType)
	}
	return def, nil
}

// GameTypes liste les identifiants canoniques du catalogue (alias exclu)
func GameTypes() []string {
	return []string{F1Reaction, SchulteGrid3, SchulteGrid4, SchulteGrid5, Snake, Breakout}
}
