package domain

import "time"

// Tag represents a label that can be attached to tasks.
type Tag struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Color     string    `json:"color" db:"color"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// TaskTag is the task-tag association. Identity is the (TaskID, TagID) pair.
type TaskTag struct {
	TaskID    int64     `json:"task_id" db:"task_id"`
	TagID     int64     `json:"tag_id" db:"tag_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
