package service

import (
	"context"
	"time"

	"github.com/sumire/taskboard/internal/domain"
)

type fakeTaskStore struct {
	tasks      map[int64]domain.Task
	nextID     int64
	inserted   []domain.Task
	updated    []domain.Task
	statusSets map[int64]domain.TaskStatus
	deleted    []int64
	searched   []domain.TaskSearchCriteria
}

func newFakeTaskStore() *fakeTaskStore {
	return &fakeTaskStore{
		tasks:      map[int64]domain.Task{},
		statusSets: map[int64]domain.TaskStatus{},
		nextID:     1,
	}
}

func (f *fakeTaskStore) add(task domain.Task) domain.Task {
	task.ID = f.nextID
	f.nextID++
	f.tasks[task.ID] = task
	return task
}

func (f *fakeTaskStore) Insert(_ context.Context, task domain.Task) (*domain.Task, error) {
	task.ID = f.nextID
	f.nextID++
	task.CreatedAt = time.Now()
	task.UpdatedAt = task.CreatedAt
	f.tasks[task.ID] = task
	f.inserted = append(f.inserted, task)
	return &task, nil
}

func (f *fakeTaskStore) FindByID(_ context.Context, id int64) (*domain.Task, error) {
	task, ok := f.tasks[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &task, nil
}

func (f *fakeTaskStore) FindByIDWithDetails(_ context.Context, id int64) (*domain.TaskDetail, error) {
	task, ok := f.tasks[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &domain.TaskDetail{Task: task}, nil
}

func (f *fakeTaskStore) FindByProjectID(_ context.Context, projectID int64) ([]domain.TaskDetail, error) {
	out := []domain.TaskDetail{}
	for _, t := range f.tasks {
		if t.ProjectID == projectID {
			out = append(out, domain.TaskDetail{Task: t})
		}
	}
	return out, nil
}

func (f *fakeTaskStore) Search(_ context.Context, criteria domain.TaskSearchCriteria) ([]domain.TaskDetail, error) {
	f.searched = append(f.searched, criteria)
	return []domain.TaskDetail{}, nil
}

func (f *fakeTaskStore) FindOverdue(_ context.Context, userID int64) ([]domain.TaskDetail, error) {
	out := []domain.TaskDetail{}
	for _, t := range f.tasks {
		if t.AssigneeID != nil && *t.AssigneeID == userID &&
			t.Status != domain.TaskStatusDone &&
			t.DueDate != nil && t.DueDate.Before(time.Now()) {
			out = append(out, domain.TaskDetail{Task: t})
		}
	}
	return out, nil
}

func (f *fakeTaskStore) Update(_ context.Context, task domain.Task) (*domain.Task, error) {
	if _, ok := f.tasks[task.ID]; !ok {
		return nil, domain.ErrNotFound
	}
	task.UpdatedAt = time.Now()
	f.tasks[task.ID] = task
	f.updated = append(f.updated, task)
	return &task, nil
}

func (f *fakeTaskStore) UpdateStatus(_ context.Context, id int64, status domain.TaskStatus) error {
	task, ok := f.tasks[id]
	if !ok {
		return domain.ErrNotFound
	}
	task.Status = status
	task.UpdatedAt = time.Now()
	f.tasks[id] = task
	f.statusSets[id] = status
	return nil
}

func (f *fakeTaskStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.tasks[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.tasks, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeProjectStore struct {
	projects map[int64]domain.Project
	nextID   int64
	inserted []domain.Project
	updated  []domain.Project
	deleted  []int64
}

func newFakeProjectStore() *fakeProjectStore {
	return &fakeProjectStore{projects: map[int64]domain.Project{}, nextID: 1}
}

func (f *fakeProjectStore) add(project domain.Project) domain.Project {
	project.ID = f.nextID
	f.nextID++
	f.projects[project.ID] = project
	return project
}

func (f *fakeProjectStore) Insert(_ context.Context, project domain.Project) (*domain.Project, error) {
	project.ID = f.nextID
	f.nextID++
	project.CreatedAt = time.Now()
	project.UpdatedAt = project.CreatedAt
	f.projects[project.ID] = project
	f.inserted = append(f.inserted, project)
	return &project, nil
}

func (f *fakeProjectStore) FindByID(_ context.Context, id int64) (*domain.Project, error) {
	project, ok := f.projects[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &project, nil
}

func (f *fakeProjectStore) FindByIDWithDetails(_ context.Context, id int64) (*domain.ProjectDetail, error) {
	project, ok := f.projects[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &domain.ProjectDetail{Project: project}, nil
}

func (f *fakeProjectStore) FindByUserID(_ context.Context, userID int64) ([]domain.ProjectDetail, error) {
	out := []domain.ProjectDetail{}
	for _, p := range f.projects {
		if p.OwnerID == userID {
			out = append(out, domain.ProjectDetail{Project: p})
		}
	}
	return out, nil
}

func (f *fakeProjectStore) Update(_ context.Context, project domain.Project) (*domain.Project, error) {
	if _, ok := f.projects[project.ID]; !ok {
		return nil, domain.ErrNotFound
	}
	project.UpdatedAt = time.Now()
	f.projects[project.ID] = project
	f.updated = append(f.updated, project)
	return &project, nil
}

func (f *fakeProjectStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.projects[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.projects, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeUserStore struct {
	users     map[int64]domain.User
	nextID    int64
	inserted  []domain.User
	passwords map[int64]string
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[int64]domain.User{}, passwords: map[int64]string{}, nextID: 1}
}

func (f *fakeUserStore) add(user domain.User) domain.User {
	user.ID = f.nextID
	f.nextID++
	f.users[user.ID] = user
	return user
}

func (f *fakeUserStore) Insert(_ context.Context, user domain.User) (*domain.User, error) {
	for _, u := range f.users {
		if u.Username == user.Username || u.Email == user.Email {
			return nil, domain.ErrConflict
		}
	}
	user.ID = f.nextID
	f.nextID++
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	f.users[user.ID] = user
	f.inserted = append(f.inserted, user)
	return &user, nil
}

func (f *fakeUserStore) FindByID(_ context.Context, id int64) (*domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &user, nil
}

func (f *fakeUserStore) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserStore) FindAll(_ context.Context) ([]domain.User, error) {
	out := []domain.User{}
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserStore) Update(_ context.Context, user domain.User) (*domain.User, error) {
	if _, ok := f.users[user.ID]; !ok {
		return nil, domain.ErrNotFound
	}
	user.UpdatedAt = time.Now()
	f.users[user.ID] = user
	return &user, nil
}

func (f *fakeUserStore) UpdatePassword(_ context.Context, id int64, password string) error {
	user, ok := f.users[id]
	if !ok {
		return domain.ErrNotFound
	}
	user.Password = password
	f.users[id] = user
	f.passwords[id] = password
	return nil
}

type fakeMemberStore struct {
	members  map[int64]domain.ProjectMember
	nextID   int64
	inserted []domain.ProjectMember
}

func newFakeMemberStore() *fakeMemberStore {
	return &fakeMemberStore{members: map[int64]domain.ProjectMember{}, nextID: 1}
}

func (f *fakeMemberStore) Insert(_ context.Context, member domain.ProjectMember) (*domain.ProjectMember, error) {
	for _, m := range f.members {
		if m.ProjectID == member.ProjectID && m.UserID == member.UserID {
			return nil, domain.ErrConflict
		}
	}
	member.ID = f.nextID
	f.nextID++
	member.JoinedAt = time.Now()
	f.members[member.ID] = member
	f.inserted = append(f.inserted, member)
	return &member, nil
}

func (f *fakeMemberStore) FindByProjectID(_ context.Context, projectID int64) ([]domain.ProjectMemberDetail, error) {
	out := []domain.ProjectMemberDetail{}
	for _, m := range f.members {
		if m.ProjectID == projectID {
			out = append(out, domain.ProjectMemberDetail{ProjectMember: m})
		}
	}
	return out, nil
}

func (f *fakeMemberStore) Delete(_ context.Context, projectID, userID int64) error {
	for id, m := range f.members {
		if m.ProjectID == projectID && m.UserID == userID {
			delete(f.members, id)
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeCommentStore struct {
	comments map[int64]domain.Comment
	nextID   int64
	inserted []domain.Comment
}

func newFakeCommentStore() *fakeCommentStore {
	return &fakeCommentStore{comments: map[int64]domain.Comment{}, nextID: 1}
}

func (f *fakeCommentStore) Insert(_ context.Context, comment domain.Comment) (*domain.Comment, error) {
	comment.ID = f.nextID
	f.nextID++
	comment.CreatedAt = time.Now()
	comment.UpdatedAt = comment.CreatedAt
	f.comments[comment.ID] = comment
	f.inserted = append(f.inserted, comment)
	return &comment, nil
}

func (f *fakeCommentStore) FindByID(_ context.Context, id int64) (*domain.Comment, error) {
	comment, ok := f.comments[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &comment, nil
}

func (f *fakeCommentStore) FindByTaskID(_ context.Context, taskID int64) ([]domain.CommentDetail, error) {
	out := []domain.CommentDetail{}
	for _, c := range f.comments {
		if c.TaskID == taskID {
			out = append(out, domain.CommentDetail{Comment: c})
		}
	}
	return out, nil
}

func (f *fakeCommentStore) Update(_ context.Context, comment domain.Comment) (*domain.Comment, error) {
	if _, ok := f.comments[comment.ID]; !ok {
		return nil, domain.ErrNotFound
	}
	comment.UpdatedAt = time.Now()
	f.comments[comment.ID] = comment
	return &comment, nil
}

func (f *fakeCommentStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.comments[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.comments, id)
	return nil
}

type fakeTagStore struct {
	tags     map[int64]domain.Tag
	nextID   int64
	attached map[[2]int64]bool
}

func newFakeTagStore() *fakeTagStore {
	return &fakeTagStore{tags: map[int64]domain.Tag{}, attached: map[[2]int64]bool{}, nextID: 1}
}

func (f *fakeTagStore) add(tag domain.Tag) domain.Tag {
	tag.ID = f.nextID
	f.nextID++
	f.tags[tag.ID] = tag
	return tag
}

func (f *fakeTagStore) Insert(_ context.Context, tag domain.Tag) (*domain.Tag, error) {
	for _, t := range f.tags {
		if t.Name == tag.Name {
			return nil, domain.ErrConflict
		}
	}
	tag.ID = f.nextID
	f.nextID++
	tag.CreatedAt = time.Now()
	f.tags[tag.ID] = tag
	return &tag, nil
}

func (f *fakeTagStore) FindByID(_ context.Context, id int64) (*domain.Tag, error) {
	tag, ok := f.tags[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &tag, nil
}

func (f *fakeTagStore) FindAll(_ context.Context) ([]domain.Tag, error) {
	out := []domain.Tag{}
	for _, t := range f.tags {
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeTagStore) FindByTaskID(_ context.Context, taskID int64) ([]domain.Tag, error) {
	out := []domain.Tag{}
	for key := range f.attached {
		if key[0] == taskID {
			out = append(out, f.tags[key[1]])
		}
	}
	return out, nil
}

func (f *fakeTagStore) Attach(_ context.Context, taskID, tagID int64) error {
	key := [2]int64{taskID, tagID}
	if f.attached[key] {
		return domain.ErrConflict
	}
	f.attached[key] = true
	return nil
}

func (f *fakeTagStore) Detach(_ context.Context, taskID, tagID int64) error {
	key := [2]int64{taskID, tagID}
	if !f.attached[key] {
		return domain.ErrNotFound
	}
	delete(f.attached, key)
	return nil
}

func (f *fakeTagStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.tags[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.tags, id)
	return nil
}
