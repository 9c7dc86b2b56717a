package task

import "context"

// UseCase defines the business logic interface for the task domain.
//
//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context, input ListTasksInput) (ListTasksOutput, error)
	Detail(ctx context.Context, id string) (DetailTaskOutput, error)

	// Create stores a new task. An empty ListID places the task in the inbox.
	Create(ctx context.Context, input CreateTaskInput) (CreateTaskOutput, error)

	// Update applies a partial update. Fields left unset keep their value.
	Update(ctx context.Context, input UpdateTaskInput) (UpdateTaskOutput, error)
	Delete(ctx context.Context, id string) error

	// ToggleComplete flips the completion flag and stamps or clears CompletedAt.
	ToggleComplete(ctx context.Context, id string) (UpdateTaskOutput, error)
}
