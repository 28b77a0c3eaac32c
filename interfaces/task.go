package interfaces

import "context"

// Task is one unit of periodic work driven by a scheduler. Run must not panic and has no error result:
// failures are handled inside the task.
//
//go:generate moq -stub -out mock/task.go -pkg mock . Task
type Task interface {
	Run(ctx context.Context)
}
