package grocy

import (
	"context"
	"fmt"
	"time"
)

// TaskCategory groups tasks.
type TaskCategory struct {
	ID          int
	Name        string
	Description string
}

// Task is the domain view of a task.
type Task struct {
	ID               int
	Name             string
	Description      string
	DueDate          time.Time
	Done             bool
	DoneTimestamp    time.Time
	CategoryID       int
	Category         *TaskCategory
	AssignedToUserID int
	AssignedToUser   *User
	Userfields       map[string]any
}

func taskFromResponse(resp TaskResponse) *Task {
	task := &Task{
		ID:               int(resp.ID),
		Name:             resp.Name,
		Description:      resp.Description,
		DueDate:          resp.DueDate.Time,
		Done:             resp.Done != 0,
		DoneTimestamp:    resp.DoneTimestamp.Time,
		CategoryID:       int(resp.CategoryID),
		AssignedToUserID: int(resp.AssignedToUserID),
		Userfields:       resp.Userfields,
	}
	if resp.Category != nil {
		task.Category = &TaskCategory{
			ID:          int(resp.Category.ID),
			Name:        resp.Category.Name,
			Description: resp.Category.Description,
		}
	}
	if resp.AssignedToUser != nil {
		task.AssignedToUser = userFromDto(*resp.AssignedToUser)
	}
	return task
}

// TaskService manages tasks and their completion status.
type TaskService struct {
	client *Client
}

// List returns all open tasks, optionally filtered server-side.
func (s *TaskService) List(ctx context.Context, filters ...string) ([]*Task, error) {
	var raw []TaskResponse
	if err := s.client.get(ctx, "tasks", filters, &raw); err != nil {
		return nil, err
	}
	tasks := make([]*Task, 0, len(raw))
	for _, resp := range raw {
		tasks = append(tasks, taskFromResponse(resp))
	}
	return tasks, nil
}

// Get returns one task.
func (s *TaskService) Get(ctx context.Context, taskID int) (*Task, error) {
	var resp TaskResponse
	if err := s.client.get(ctx, fmt.Sprintf("objects/%s/%d", EntityTasks, taskID), nil, &resp); err != nil {
		return nil, err
	}
	return taskFromResponse(resp), nil
}

// Complete marks a task as done. A zero doneTime means now.
func (s *TaskService) Complete(ctx context.Context, taskID int, doneTime time.Time) error {
	if doneTime.IsZero() {
		doneTime = time.Now()
	}
	body := map[string]any{"done_time": formatTimestamp(doneTime)}
	return s.client.post(ctx, fmt.Sprintf("tasks/%d/complete", taskID), body, nil)
}

// Undo reverts a task completion.
func (s *TaskService) Undo(ctx context.Context, taskID int) error {
	return s.client.post(ctx, fmt.Sprintf("tasks/%d/undo", taskID), map[string]any{}, nil)
}
