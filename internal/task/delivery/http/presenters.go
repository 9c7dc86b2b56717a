package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/minakianandclaude/LifeTracker/internal/list"
	"github.com/minakianandclaude/LifeTracker/internal/model"
	"github.com/minakianandclaude/LifeTracker/internal/task"
)

const (
	maxNotesLength = 5000
	maxListLimit   = 500
)

// nullable tells an absent JSON field apart from an explicit null.
type nullable[T any] struct {
	Set   bool
	Value *T
}

func (n *nullable[T]) UnmarshalJSON(b []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		n.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	n.Value = &v
	return nil
}

func (n nullable[T]) toPatch() task.Patch[T] {
	return task.Patch[T]{Set: n.Set, Value: n.Value}
}

// --- Request DTOs ---

type listReq struct {
	ListID    string `form:"list_id"   binding:"omitempty,uuid"`
	Completed *bool  `form:"completed"`
	Limit     int    `form:"limit"     binding:"min=0"`
	Offset    int    `form:"offset"    binding:"min=0"`
}

func (r listReq) toInput() task.ListTasksInput {
	limit := r.Limit
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return task.ListTasksInput{
		ListID:    r.ListID,
		Completed: r.Completed,
		Limit:     limit,
		Offset:    r.Offset,
	}
}

type createReq struct {
	Title        string  `json:"title"         binding:"required,min=1,max=500"`
	Notes        *string `json:"notes"         binding:"omitempty,max=5000"`
	ListID       string  `json:"list_id"       binding:"omitempty,uuid"`
	Priority     *string `json:"priority"      binding:"omitempty,oneof=HIGH MEDIUM LOW"`
	DueDate      *string `json:"due_date"`
	RawInput     *string `json:"raw_input"`
	ParseWarning bool    `json:"parse_warning"`
	ParseErrors  *string `json:"parse_errors"`

	dueDate *time.Time
}

func (r *createReq) validate() error {
	if r.DueDate != nil {
		t, err := parseDueDate(*r.DueDate)
		if err != nil {
			return err
		}
		r.dueDate = &t
	}
	return nil
}

func (r createReq) toInput() task.CreateTaskInput {
	var priority *model.Priority
	if r.Priority != nil {
		p := model.Priority(*r.Priority)
		priority = &p
	}
	return task.CreateTaskInput{
		Title:        r.Title,
		Notes:        r.Notes,
		ListID:       r.ListID,
		Priority:     priority,
		DueDate:      r.dueDate,
		RawInput:     r.RawInput,
		ParseWarning: r.ParseWarning,
		ParseErrors:  r.ParseErrors,
	}
}

// updateReq is a partial update: absent fields are kept, null clears notes, priority and due_date.
type updateReq struct {
	ID        string           `json:"-"` // populated from URI param
	Title     *string          `json:"title"     binding:"omitempty,min=1,max=500"`
	Notes     nullable[string] `json:"notes"`
	ListID    *string          `json:"list_id"   binding:"omitempty,uuid"`
	Priority  nullable[string] `json:"priority"`
	DueDate   nullable[string] `json:"due_date"`
	Completed *bool            `json:"completed"`

	dueDate task.Patch[time.Time]
}

func (r *updateReq) validate() error {
	if r.Notes.Value != nil && utf8.RuneCountInString(*r.Notes.Value) > maxNotesLength {
		return fmt.Errorf("notes must be at most %d characters", maxNotesLength)
	}
	if r.Priority.Value != nil && !model.Priority(*r.Priority.Value).IsValid() {
		return fmt.Errorf("priority must be one of: HIGH, MEDIUM, LOW")
	}
	r.dueDate = task.Patch[time.Time]{Set: r.DueDate.Set}
	if r.DueDate.Value != nil {
		t, err := parseDueDate(*r.DueDate.Value)
		if err != nil {
			return err
		}
		r.dueDate.Value = &t
	}
	return nil
}

func (r updateReq) toInput() task.UpdateTaskInput {
	priority := task.Patch[model.Priority]{Set: r.Priority.Set}
	if r.Priority.Value != nil {
		p := model.Priority(*r.Priority.Value)
		priority.Value = &p
	}
	return task.UpdateTaskInput{
		ID:        r.ID,
		Title:     r.Title,
		Notes:     r.Notes.toPatch(),
		ListID:    r.ListID,
		Priority:  priority,
		DueDate:   r.dueDate,
		Completed: r.Completed,
	}
}

func parseDueDate(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("due_date must be an RFC 3339 timestamp")
	}
	return t.UTC(), nil
}

// --- Response DTOs ---

// ListSummaryResp is the list a task belongs to.
type ListSummaryResp struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	IsSystem    bool   `json:"is_system"`
}

// TaskResp is the JSON shape of a task.
type TaskResp struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Notes        *string         `json:"notes"`
	ListID       string          `json:"list_id"`
	List         ListSummaryResp `json:"list"`
	Priority     *model.Priority `json:"priority"`
	DueDate      *time.Time      `json:"due_date"`
	Completed    bool            `json:"completed"`
	CompletedAt  *time.Time      `json:"completed_at"`
	RawInput     *string         `json:"raw_input"`
	ParseWarning bool            `json:"parse_warning"`
	ParseErrors  *string         `json:"parse_errors"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// NewTaskResp renders a task; other delivery packages reuse it to keep one task shape.
func NewTaskResp(t model.Task) TaskResp {
	return TaskResp{
		ID:     t.ID,
		Title:  t.Title,
		Notes:  t.Notes,
		ListID: t.ListID,
		List: ListSummaryResp{
			ID:          t.List.ID,
			Name:        t.List.Name,
			DisplayName: list.DisplayName(t.List.Name),
			IsSystem:    t.List.IsSystem,
		},
		Priority:     t.Priority,
		DueDate:      t.DueDate,
		Completed:    t.Completed,
		CompletedAt:  t.CompletedAt,
		RawInput:     t.RawInput,
		ParseWarning: t.ParseWarning,
		ParseErrors:  t.ParseErrors,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

// NewTaskRespList renders tasks, never returning a nil slice.
func NewTaskRespList(tasks []model.Task) []TaskResp {
	out := make([]TaskResp, len(tasks))
	for i, t := range tasks {
		out[i] = NewTaskResp(t)
	}
	return out
}

type taskEnvelope struct {
	Task TaskResp `json:"task"`
}

func (h *handler) newTaskEnvelope(t model.Task) taskEnvelope {
	return taskEnvelope{Task: NewTaskResp(t)}
}

type listResp struct {
	Tasks  []TaskResp `json:"tasks"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(out task.ListTasksOutput) listResp {
	return listResp{
		Tasks:  NewTaskRespList(out.Tasks),
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}
