package dto

type CategorySummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	ColorCode string `json:"color_code"`
	IconEmoji string `json:"icon_emoji"`
}

type BoardStatistics struct {
	TotalTasks     int `json:"total_tasks"`
	UrgentTasks    int `json:"urgent_tasks"`
	HighPriority   int `json:"high_priority"`
	CompletedTasks int `json:"completed_tasks"`
}

// BoardTask is the reduced task rendering used inside column partitions.
type BoardTask struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	CategoryID    *string `json:"category_id"`
	CategoryName  *string `json:"category_name"`
	CategoryColor *string `json:"category_color"`
	ClientName    *string `json:"client_name"`
	Priority      string  `json:"priority"`
	Status        string  `json:"status"`
	DueDate       *string `json:"due_date"`
	Version       uint    `json:"version"`
}

type BoardColumn struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Slug      string      `json:"slug"`
	ColorCode string      `json:"color_code"`
	TaskCount int         `json:"task_count"`
	Tasks     []BoardTask `json:"tasks"`
}

type BoardResponse struct {
	Columns    []BoardColumn     `json:"columns"`
	Categories []CategorySummary `json:"categories"`
	Statistics BoardStatistics   `json:"statistics"`
}
