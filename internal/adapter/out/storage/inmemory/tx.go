package inmemory

import "context"

// TxManager runs fn directly; every storage call here is atomic on its own.
type TxManager struct{}

func (TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
