package game

import (
	"errors"
)

var (
	// ErrUnknownGame : identifiant de jeu absent du catalogue.
	// La soumission est rejetée, aucun point n'est attribué.
	ErrUnknownGame = errors.New("unknown game type")

	// ErrInvalidScore : score hors domaine (négatif, NaN, infini)
	ErrInvalidScore = errors.New("invalid score")
)
