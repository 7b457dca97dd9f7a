package domain

import "time"

// ProjectMember represents a user's membership in a project.
type ProjectMember struct {
	ID        int64       `json:"id" db:"id"`
	ProjectID int64       `json:"project_id" db:"project_id"`
	UserID    int64       `json:"user_id" db:"user_id"`
	Role      ProjectRole `json:"role" db:"role"`
	JoinedAt  time.Time   `json:"joined_at" db:"joined_at"`
}

// ProjectMemberDetail is the read projection of a membership enriched with
// the member's username and display name.
type ProjectMemberDetail struct {
	ProjectMember
	Username *string `json:"username,omitempty" db:"username"`
	UserName *string `json:"user_name,omitempty" db:"user_name"`
}
