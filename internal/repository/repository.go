// Package repository holds the storage ports shared by the services.
package repository

import "context"

// Transactor runs fn inside one unit of work. The work commits when fn
// returns nil and rolls back otherwise. Calls made with a context that
// already carries a unit of work join it.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
