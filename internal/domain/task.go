package domain

import "time"

// Task represents a unit of work within a project.
type Task struct {
	ID          int64      `json:"id" db:"id"`
	ProjectID   int64      `json:"project_id" db:"project_id"`
	Title       string     `json:"title" db:"title"`
	Description *string    `json:"description,omitempty" db:"description"`
	Status      TaskStatus `json:"status" db:"status"`
	Priority    Priority   `json:"priority" db:"priority"`
	AssigneeID  *int64     `json:"assignee_id,omitempty" db:"assignee_id"`
	DueDate     *time.Time `json:"due_date,omitempty" db:"due_date"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

// TaskDetail is the read projection of a task enriched with the project
// name and assignee username from joined queries.
type TaskDetail struct {
	Task
	ProjectName  *string `json:"project_name,omitempty" db:"project_name"`
	AssigneeName *string `json:"assignee_name,omitempty" db:"assignee_name"`
}

// TaskSearchCriteria narrows a task listing. Nil fields are unconstrained;
// present fields combine with logical AND.
type TaskSearchCriteria struct {
	ProjectID *int64
	Status    *TaskStatus
	Priority  *Priority
	Keyword   *string
}
