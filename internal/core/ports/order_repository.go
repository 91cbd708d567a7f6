package ports

import (
	"context"
	"errors"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/order"
)

// ErrStaleOrder is returned by Update when the order's version no longer
// matches the stored row: another writer got there first. Callers must
// re-read the order and retry the transition.
var ErrStaleOrder = errors.New("order state is stale, re-read and retry")

// OrderRepository defines the persistence contract for order aggregates.
// Implementations must apply compare-and-swap semantics on Update using the
// aggregate's version, so that concurrent transitions on the same order can
// never silently lose writes.
type OrderRepository interface {
	// Add persists a new order aggregate, including its garments.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate. The write is
	// guarded by the aggregate's version: if the stored version differs,
	// ErrStaleOrder is returned and nothing is written.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its unique identifier, with its garments,
	// work history, and classification audit trail.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetFirstInReceivedStatus retrieves the oldest order in routing status
	// "received", i.e. arrived after transfer and awaiting workstation
	// assignment. Used by the background assignment job.
	GetFirstInReceivedStatus(ctx context.Context) (*order.Order, error)

	// CountOpenByStaff counts the orders currently bound to the staff member
	// in an open routing status (assigned or processing). This is the
	// workload snapshot the balancer ranks candidates by.
	CountOpenByStaff(ctx context.Context, staffID kernel.UUID) (int, error)
}
