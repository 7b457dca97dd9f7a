package domain

import "fmt"

// TaskStatus represents the lifecycle state of a task. Values are stored
// under their symbolic name.
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "TODO"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusDone       TaskStatus = "DONE"
)

var taskStatusLabels = map[TaskStatus]string{
	TaskStatusTodo:       "To Do",
	TaskStatusInProgress: "In Progress",
	TaskStatusDone:       "Done",
}

// ParseTaskStatus converts a symbolic name into a TaskStatus.
// Unknown names fail with a ValidationError.
func ParseTaskStatus(s string) (TaskStatus, error) {
	status := TaskStatus(s)
	if _, ok := taskStatusLabels[status]; !ok {
		return "", &ValidationError{
			Field:   "status",
			Message: fmt.Sprintf("unknown status %q", s),
		}
	}
	return status, nil
}

// DisplayName returns the human-readable label for the status.
func (s TaskStatus) DisplayName() string {
	return taskStatusLabels[s]
}

// Rank returns the fixed board ordering of the status: active work sorts
// ahead of finished work (TODO=1, IN_PROGRESS=2, DONE=3).
func (s TaskStatus) Rank() int {
	switch s {
	case TaskStatusTodo:
		return 1
	case TaskStatusInProgress:
		return 2
	case TaskStatusDone:
		return 3
	default:
		return 0
	}
}

// Priority represents how urgent a task is.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

type priorityMeta struct {
	label string
	color string
}

var priorityMetas = map[Priority]priorityMeta{
	PriorityLow:    {label: "Low", color: "#6c757d"},
	PriorityMedium: {label: "Medium", color: "#ffc107"},
	PriorityHigh:   {label: "High", color: "#dc3545"},
}

// ParsePriority converts a symbolic name into a Priority.
// Unknown names fail with a ValidationError.
func ParsePriority(s string) (Priority, error) {
	priority := Priority(s)
	if _, ok := priorityMetas[priority]; !ok {
		return "", &ValidationError{
			Field:   "priority",
			Message: fmt.Sprintf("unknown priority %q", s),
		}
	}
	return priority, nil
}

// DisplayName returns the human-readable label for the priority.
func (p Priority) DisplayName() string {
	return priorityMetas[p].label
}

// Color returns the badge color associated with the priority.
func (p Priority) Color() string {
	return priorityMetas[p].color
}

// ProjectRole represents a user's role within a project.
type ProjectRole string

const (
	ProjectRoleOwner  ProjectRole = "OWNER"
	ProjectRoleMember ProjectRole = "MEMBER"
)

var projectRoleLabels = map[ProjectRole]string{
	ProjectRoleOwner:  "Owner",
	ProjectRoleMember: "Member",
}

// ParseProjectRole converts a symbolic name into a ProjectRole.
// Unknown names fail with a ValidationError.
func ParseProjectRole(s string) (ProjectRole, error) {
	role := ProjectRole(s)
	if _, ok := projectRoleLabels[role]; !ok {
		return "", &ValidationError{
			Field:   "role",
			Message: fmt.Sprintf("unknown role %q", s),
		}
	}
	return role, nil
}

// DisplayName returns the human-readable label for the role.
func (r ProjectRole) DisplayName() string {
	return projectRoleLabels[r]
}
