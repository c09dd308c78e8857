package contract

import "context"

// ITransactor runs fn in a single database transaction. Repository calls made
// with the ctx passed to fn join that transaction. Returning an error from fn
// rolls everything back.
type ITransactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
