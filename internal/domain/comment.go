package domain

import "time"

// Comment represents a remark left on a task.
type Comment struct {
	ID        int64     `json:"id" db:"id"`
	TaskID    int64     `json:"task_id" db:"task_id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// CommentDetail is the read projection of a comment enriched with the
// author's username and display name.
type CommentDetail struct {
	Comment
	Username *string `json:"username,omitempty" db:"username"`
	UserName *string `json:"user_name,omitempty" db:"user_name"`
}
