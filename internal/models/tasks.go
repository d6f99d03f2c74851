package models

// Task is one node of the bot project's task tree. Subtasks nest
// arbitrarily deep.
type Task struct {
	Title    string `json:"title,omitempty"`
	Status   string `json:"status,omitempty"`
	Subtasks []Task `json:"subtasks,omitempty"`
}

// Project groups tasks under one named project.
type Project struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Tasks []Task `json:"tasks,omitempty"`
}

// ProjectStats is the recursive completion rollup for one project.
type ProjectStats struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	TotalTasks     int     `json:"total_tasks"`
	CompletedTasks int     `json:"completed_tasks"`
	ProgressPct    float64 `json:"progress_percentage"`
}

// TaskStatistics summarizes progress across all projects.
type TaskStatistics struct {
	TotalTasks      int            `json:"total_tasks"`
	CompletedTasks  int            `json:"completed_tasks"`
	OverallProgress float64        `json:"overall_progress"`
	Projects        []ProjectStats `json:"projects"`
}

// TaskTree is the tasks.json document.
type TaskTree struct {
	Members    map[string]any  `json:"members,omitempty"`
	Projects   []Project       `json:"projects"`
	Statistics *TaskStatistics `json:"statistics,omitempty"`
}
