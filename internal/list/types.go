package list

import "github.com/minakianandclaude/LifeTracker/internal/model"

// --- UseCase Outputs ---

type ListListsOutput struct {
	Lists []model.List
}

type DetailListOutput struct {
	List  model.List
	Tasks []model.Task
}
