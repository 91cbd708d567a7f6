// Package branch provides the Branch entity: a physical location of the
// chain. Branches are read-only inputs to routing decisions; the routing
// engine never mutates them.
package branch

import (
	"errors"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/pkg/errs"
)

// DefaultSortingWindowHours is the sorting window applied when a branch has
// no configured window.
const DefaultSortingWindowHours = 6

// Kind distinguishes satellite intake locations from main production stores.
type Kind string

const (
	// KindMain is a standalone or main store with its own production floor.
	KindMain Kind = "main"
	// KindSatellite is an intake-only location that routes production to its
	// configured main store.
	KindSatellite Kind = "satellite"
)

// Validate checks that the kind is one of the defined branch kinds.
func (k Kind) Validate() error {
	if k != KindMain && k != KindSatellite {
		return errs.NewValueIsInvalidError("branch kind")
	}
	return nil
}

// Domain errors for branch construction.
var (
	// ErrBranchIsNotConstructed is returned when using an improperly initialized Branch.
	ErrBranchIsNotConstructed = errors.New("Branch must be created via NewBranch constructor")
	// ErrNameIsRequired is returned when creating a branch without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrMainBranchIsRequired is returned when a satellite branch has no main store.
	ErrMainBranchIsRequired = errs.NewValueIsRequiredError("main branch for satellite")
)

// Branch is a physical location. Satellite branches take orders in but route
// production to their main store; main branches process their own intake.
type Branch struct {
	// id is the unique identifier for the branch
	id kernel.UUID

	// name is the display name of the branch
	name string

	// kind distinguishes satellite intake from main production stores
	kind Kind

	// mainBranchID points at the production store (satellites only)
	mainBranchID *kernel.UUID

	// sortingWindowHours is the configured dwell time (0 means default)
	sortingWindowHours int

	// isConstructed ensures the branch was created via a constructor
	isConstructed bool
}

// NewBranch creates a branch. Satellite branches must reference their main
// store; a sortingWindowHours of zero means "use the default".
func NewBranch(id kernel.UUID, name string, kind Kind, mainBranchID *kernel.UUID, sortingWindowHours int) (*Branch, error) {
	if err := errors.Join(
		id.Validate(),
		kind.Validate(),
	); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, ErrNameIsRequired
	}
	if kind == KindSatellite {
		if mainBranchID == nil {
			return nil, ErrMainBranchIsRequired
		}
		if err := mainBranchID.Validate(); err != nil {
			return nil, err
		}
	}
	if sortingWindowHours < 0 {
		return nil, errs.NewValueIsOutOfRangeError("sorting window hours", sortingWindowHours, 0, "unbounded")
	}

	return &Branch{
		id:                 id,
		name:               name,
		kind:               kind,
		mainBranchID:       mainBranchID,
		sortingWindowHours: sortingWindowHours,
		isConstructed:      true,
	}, nil
}

// Validate ensures the Branch was created through its constructor.
func (b *Branch) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBranchIsNotConstructed
	}
	return nil
}

// ID returns the branch's unique identifier.
func (b *Branch) ID() kernel.UUID {
	return b.id
}

// Name returns the branch's display name.
func (b *Branch) Name() string {
	return b.name
}

// Kind returns whether the branch is a main store or a satellite.
func (b *Branch) Kind() Kind {
	return b.kind
}

// MainBranchID returns the satellite's main store, or nil for main branches.
func (b *Branch) MainBranchID() *kernel.UUID {
	return b.mainBranchID
}

// ProcessingBranchID returns the branch that processes orders taken in here:
// the main store for satellites, the branch itself otherwise. This is the
// routing engine's transfer-detection rule.
func (b *Branch) ProcessingBranchID() kernel.UUID {
	if b.kind == KindSatellite && b.mainBranchID != nil {
		return *b.mainBranchID
	}
	return b.id
}

// SortingWindowHours returns the configured sorting window, defaulting to
// DefaultSortingWindowHours when unset.
func (b *Branch) SortingWindowHours() int {
	if b.sortingWindowHours == 0 {
		return DefaultSortingWindowHours
	}
	return b.sortingWindowHours
}

// ConfiguredSortingWindowHours returns the raw configured window, zero when
// the branch relies on the default. Persistence round-trips this value so a
// later change of the default takes effect retroactively.
func (b *Branch) ConfiguredSortingWindowHours() int {
	return b.sortingWindowHours
}
