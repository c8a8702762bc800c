package game

import (
	"math/rand"
	"time"

	model "github.com/MassBabyGeek/FocusPlay-backend/internal/models"
)

// DailyTaskCount : nombre de tâches générées chaque jour
const DailyTaskCount = 3

// TaskTemplate est un modèle de tâche quotidienne
type TaskTemplate struct {
	GameType    string
	Target      float64
	Reward      int
	Description string
}

// TaskTemplates est le pool fixe de modèles. La génération quotidienne en
// tire 3 distincts au hasard, sans remise.
var TaskTemplates = []TaskTemplate{
	{F1Reaction, 0.250, 80, "Réflexes F1 : temps de réaction < 0.250s"},
	{F1Reaction, 0.220, 120, "Réflexes F1 pro : temps de réaction < 0.220s"},
	{SchulteGrid3, 18, 80, "Grille de Schulte 3x3 : terminer en < 18s"},
	{SchulteGrid4, 24, 100, "Grille de Schulte 4x4 : terminer en < 24s"},
	{SchulteGrid5, 30, 120, "Grille de Schulte 5x5 : terminer en < 30s"},
	{Snake, 100, 60, "Snake débutant : score ≥ 100"},
	{Snake, 200, 80, "Snake confirmé : score ≥ 200"},
	{Snake, 300, 120, "Snake expert : score ≥ 300"},
	{Breakout, 500, 60, "Casse-briques débutant : score ≥ 500"},
	{Breakout, 1000, 100, "Casse-briques confirmé : score ≥ 1000"},
	{Breakout, 1500, 150, "Casse-briques expert : score ≥ 1500"},
}

// TaskDate formate une date au format stocké en base (jour UTC)
func TaskDate(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// PickDailyTasks tire au hasard les tâches du jour dans le pool, sans
// remise. Le tirage n'est pas persistant : c'est CreateTasksForDate côté
// stockage qui garantit l'unicité par jour.
func PickDailyTasks(rng *rand.Rand, date string) []model.DailyTask {
	perm := rng.Perm(len(TaskTemplates))

	n := DailyTaskCount
	if n > len(TaskTemplates) {
		n = len(TaskTemplates)
	}

	tasks := make([]model.DailyTask, 0, n)
	for _, idx := range perm[:n] {
		tpl := TaskTemplates[idx]
		tasks = append(tasks, model.DailyTask{
			TaskDate:     date,
			GameType:     tpl.GameType,
			TargetScore:  tpl.Target,
			PointsReward: tpl.Reward,
			Description:  tpl.Description,
		})
	}
	return tasks
}

// Satisfies vérifie qu'un score brut atteint la cible d'une tâche, dans le
// même sens de comparaison que le calcul de points : cible >= score pour
// les jeux de temps, score >= cible pour les jeux de score
func Satisfies(dir Direction, target, score float64) bool {
	if dir == LowerBetter {
		return target >= score
	}
	return score >= target
}

// EligibleTasks retourne les tâches du jour nouvellement satisfaites par
// une soumission : même jeu, date du jour, cible atteinte, et pas encore
// complétées par l'utilisateur. La complétion effective reste arbitrée par
// l'écriture conditionnelle du stockage, pas par la map completed.
func EligibleTasks(gameType string, score float64, today string, tasks []model.DailyTask, completed map[int64]bool) ([]model.DailyTask, error) {
	def, err := Resolve(gameType)
	if err != nil {
		return nil, err
	}

	var eligible []model.DailyTask
	for _, task := range tasks {
		if task.GameType != def.ID && task.GameType != gameType {
			continue
		}
		if task.TaskDate != today {
			continue
		}
		if completed[task.ID] {
			continue
		}
		if !Satisfies(def.Direction, task.TargetScore, score) {
			continue
		}
		eligible = append(eligible, task)
	}
	return eligible, nil
}
