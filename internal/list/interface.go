package list

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context) (ListListsOutput, error)
	Detail(ctx context.Context, id string) (DetailListOutput, error)
}
