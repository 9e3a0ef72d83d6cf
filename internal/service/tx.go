package service

import "context"

// TxManager runs fn in a transaction carried by the context passed to fn.
// *manager.Manager from go-transaction-manager satisfies it.
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
