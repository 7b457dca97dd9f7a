package domain

import "time"

// Project represents a project that groups tasks.
type Project struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description,omitempty" db:"description"`
	OwnerID     int64     `json:"owner_id" db:"owner_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// ProjectDetail is the read projection of a project enriched with the
// owner's username. Produced only by joined queries, never written back.
type ProjectDetail struct {
	Project
	OwnerName *string `json:"owner_name,omitempty" db:"owner_name"`
}
