package ports

import (
	"context"

	"laundryops/internal/core/domain/model/branch"
	"laundryops/internal/core/domain/model/kernel"
)

// BranchRepository defines the persistence contract for branches. Branches
// are read-mostly inputs to routing decisions; the core only ever reads them
// during a transition. Add exists for provisioning and test setup.
type BranchRepository interface {
	// Add persists a new branch.
	Add(ctx context.Context, aggregate *branch.Branch) error

	// Get retrieves a branch by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*branch.Branch, error)
}
