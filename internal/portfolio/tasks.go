package portfolio

import (
	"math"

	"solana-dashboard-go/internal/models"
)

// ComputeTaskStats fills in the recursive progress statistics of the task
// tree: per-project and overall completion counts and percentages.
func ComputeTaskStats(tree models.TaskTree) models.TaskTree {
	stats := models.TaskStatistics{
		Projects: make([]models.ProjectStats, 0, len(tree.Projects)),
	}
	for _, project := range tree.Projects {
		total, completed := countTasks(project.Tasks)
		ps := models.ProjectStats{
			ID:             project.ID,
			Name:           project.Name,
			TotalTasks:     total,
			CompletedTasks: completed,
		}
		if total > 0 {
			ps.ProgressPct = roundPct(float64(completed) / float64(total) * 100)
		}
		stats.Projects = append(stats.Projects, ps)
		stats.TotalTasks += total
		stats.CompletedTasks += completed
	}
	if stats.TotalTasks > 0 {
		stats.OverallProgress = roundPct(float64(stats.CompletedTasks) / float64(stats.TotalTasks) * 100)
	}
	tree.Statistics = &stats
	return tree
}

// countTasks counts tasks and completed tasks through all subtask levels.
func countTasks(tasks []models.Task) (total, completed int) {
	for _, task := range tasks {
		total++
		if task.Status == "completed" {
			completed++
		}
		subTotal, subCompleted := countTasks(task.Subtasks)
		total += subTotal
		completed += subCompleted
	}
	return total, completed
}

func roundPct(v float64) float64 {
	return math.Round(v*10) / 10
}
