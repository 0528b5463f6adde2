package grocy

import (
	"context"
	"fmt"
	"time"
)

// User is the domain view of a Grocy user.
type User struct {
	ID          int
	Username    string
	FirstName   string
	LastName    string
	DisplayName string
}

func userFromDto(dto UserDto) *User {
	return &User{
		ID:          int(dto.ID),
		Username:    dto.Username,
		FirstName:   dto.FirstName,
		LastName:    dto.LastName,
		DisplayName: dto.DisplayName,
	}
}

// Chore is the domain view of a chore. A summary listing populates only
// the identifier and schedule times; hydration or ChoreService.Get fills
// in the entity and tracking fields.
type Chore struct {
	ID                         int
	Name                       string
	Description                string
	PeriodType                 string
	PeriodConfig               string
	PeriodDays                 int
	TrackDateOnly              bool
	Rollover                   bool
	AssignmentType             string
	AssignmentConfig           string
	AssignedToUserID           int
	LastTrackedTime            time.Time
	NextEstimatedExecutionTime time.Time
	TrackCount                 int
	NextExecutionAssignedUser  *User
	LastDoneBy                 *User
	Userfields                 map[string]any
}

func choreFromCurrent(resp CurrentChoreResponse) *Chore {
	return &Chore{
		ID:                         int(resp.ChoreID),
		LastTrackedTime:            resp.LastTrackedTime.Time,
		NextEstimatedExecutionTime: resp.NextEstimatedExecutionTime.Time,
	}
}

func choreFromDetails(resp ChoreDetailsResponse) *Chore {
	chore := &Chore{ID: int(resp.Chore.ID)}
	chore.applyDetails(resp)
	return chore
}

// applyDetails merges a detail response into c, keeping the identifier
// and any summary schedule times the detail payload does not restate.
func (c *Chore) applyDetails(resp ChoreDetailsResponse) {
	c.Name = resp.Chore.Name
	c.Description = resp.Chore.Description
	c.PeriodType = resp.Chore.PeriodType
	c.PeriodConfig = resp.Chore.PeriodConfig
	c.PeriodDays = int(resp.Chore.PeriodDays)
	c.TrackDateOnly = bool(resp.Chore.TrackDateOnly)
	c.Rollover = bool(resp.Chore.Rollover)
	c.AssignmentType = resp.Chore.AssignmentType
	c.AssignmentConfig = resp.Chore.AssignmentConfig
	c.AssignedToUserID = int(resp.Chore.NextExecutionAssignedToUserID)
	c.Userfields = resp.Chore.Userfields
	c.TrackCount = int(resp.TrackCount)
	if !resp.LastTracked.IsZero() {
		c.LastTrackedTime = resp.LastTracked.Time
	}
	if !resp.NextEstimatedExecutionTime.IsZero() {
		c.NextEstimatedExecutionTime = resp.NextEstimatedExecutionTime.Time
	}
	if resp.NextExecutionAssignedUser != nil {
		c.NextExecutionAssignedUser = userFromDto(*resp.NextExecutionAssignedUser)
	}
	if resp.LastDoneBy != nil {
		c.LastDoneBy = userFromDto(*resp.LastDoneBy)
	}
}

// ChoreService manages chores and their execution tracking.
type ChoreService struct {
	client *Client
}

// List returns all chores. With getDetails, each chore is hydrated with
// one extra detail request; identifiers and ordering match the plain
// listing.
func (s *ChoreService) List(ctx context.Context, getDetails bool, filters ...string) ([]*Chore, error) {
	var raw []CurrentChoreResponse
	if err := s.client.get(ctx, "chores", filters, &raw); err != nil {
		return nil, err
	}
	chores := make([]*Chore, 0, len(raw))
	for _, resp := range raw {
		chores = append(chores, choreFromCurrent(resp))
	}
	if getDetails {
		for _, chore := range chores {
			var details ChoreDetailsResponse
			if err := s.client.get(ctx, fmt.Sprintf("chores/%d", chore.ID), nil, &details); err != nil {
				return nil, err
			}
			chore.applyDetails(details)
		}
	}
	return chores, nil
}

// Get returns full details for one chore.
func (s *ChoreService) Get(ctx context.Context, choreID int) (*Chore, error) {
	var resp ChoreDetailsResponse
	if err := s.client.get(ctx, fmt.Sprintf("chores/%d", choreID), nil, &resp); err != nil {
		return nil, err
	}
	return choreFromDetails(resp), nil
}

// ExecuteOptions configures ChoreService.Execute.
type ExecuteOptions struct {
	DoneBy      int       // user id; zero leaves the assignment to the server
	TrackedTime time.Time // zero means now
	Skipped     bool
}

// Execute records an execution of a chore.
func (s *ChoreService) Execute(ctx context.Context, choreID int, opts ExecuteOptions) error {
	tracked := opts.TrackedTime
	if tracked.IsZero() {
		tracked = time.Now()
	}
	body := map[string]any{
		"tracked_time": formatTimestamp(tracked),
		"skipped":      opts.Skipped,
	}
	if opts.DoneBy != 0 {
		body["done_by"] = opts.DoneBy
	}
	return s.client.post(ctx, fmt.Sprintf("chores/%d/execute", choreID), body, nil)
}

// Undo reverts a chore execution.
func (s *ChoreService) Undo(ctx context.Context, executionID int) error {
	return s.client.post(ctx, fmt.Sprintf("chores/executions/%d/undo", executionID), map[string]any{}, nil)
}

// Merge merges two chores, keeping the first.
func (s *ChoreService) Merge(ctx context.Context, choreIDKeep, choreIDRemove int) error {
	return s.client.post(ctx, fmt.Sprintf("chores/%d/merge/%d", choreIDKeep, choreIDRemove), map[string]any{}, nil)
}

// CalculateNextAssignments recalculates chore assignments server-side.
func (s *ChoreService) CalculateNextAssignments(ctx context.Context) error {
	return s.client.post(ctx, "chores/executions/calculate-next-assignments", map[string]any{}, nil)
}

// ChoreLogEntry is the domain view of one chores_log row.
type ChoreLogEntry struct {
	ID                     int
	ChoreID                int
	TrackedTime            time.Time
	DoneByUserID           int
	Undone                 bool
	UndoneTimestamp        time.Time
	Skipped                bool
	ScheduledExecutionTime time.Time
	Created                time.Time
}

func choreLogFromResponse(resp ChoreLogResponse) *ChoreLogEntry {
	return &ChoreLogEntry{
		ID:                     int(resp.ID),
		ChoreID:                int(resp.ChoreID),
		TrackedTime:            resp.TrackedTime.Time,
		DoneByUserID:           int(resp.DoneByUserID),
		Undone:                 bool(resp.Undone),
		UndoneTimestamp:        resp.UndoneTimestamp.Time,
		Skipped:                bool(resp.Skipped),
		ScheduledExecutionTime: resp.ScheduledExecutionTime.Time,
		Created:                resp.RowCreatedTimestamp.Time,
	}
}

// ChoreLogService reads the chore execution log.
type ChoreLogService struct {
	client *Client
}

// List returns chore log entries, optionally filtered server-side.
func (s *ChoreLogService) List(ctx context.Context, filters ...string) ([]*ChoreLogEntry, error) {
	var raw []ChoreLogResponse
	if err := s.client.get(ctx, "objects/"+EntityChoresLog.String(), filters, &raw); err != nil {
		return nil, err
	}
	entries := make([]*ChoreLogEntry, 0, len(raw))
	for _, resp := range raw {
		entries = append(entries, choreLogFromResponse(resp))
	}
	return entries, nil
}

// Get returns one chore log entry.
func (s *ChoreLogService) Get(ctx context.Context, logID int) (*ChoreLogEntry, error) {
	var resp ChoreLogResponse
	if err := s.client.get(ctx, fmt.Sprintf("objects/%s/%d", EntityChoresLog, logID), nil, &resp); err != nil {
		return nil, err
	}
	return choreLogFromResponse(resp), nil
}
