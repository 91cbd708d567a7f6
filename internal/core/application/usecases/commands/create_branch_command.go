package commands

import (
	"errors"

	"laundryops/internal/core/domain/model/branch"
	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/pkg/errs"
	"laundryops/internal/pkg/guard"
)

var ErrCreateBranchCommandIsNotConstructed = errors.New(
	"CreateBranchCommand must be created via NewCreateBranchCommand constructor",
)

// CreateBranchCommand registers a branch of the chain. Satellite branches
// name the main store their orders route to for processing.
type CreateBranchCommand struct { //nolint:recvcheck //using for validation
	branchID           kernel.UUID
	name               string
	kind               branch.Kind
	mainBranchID       *kernel.UUID
	sortingWindowHours int

	guard guard.ConstructorGuard
}

// NewCreateBranchCommand creates a command to register a branch.
// sortingWindowHours of zero selects the chain default.
func NewCreateBranchCommand(
	branchID kernel.UUID,
	name string,
	kind branch.Kind,
	mainBranchID *kernel.UUID,
	sortingWindowHours int,
) (CreateBranchCommand, error) {
	cmd := CreateBranchCommand{
		guard: guard.NewConstructorGuard(),
	}

	var nameErr error
	if name == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}

	var mainErr error
	if mainBranchID != nil {
		mainErr = mainBranchID.Validate()
	}

	var windowErr error
	if sortingWindowHours < 0 {
		windowErr = errs.NewValueIsInvalidError("sortingWindowHours")
	}

	if err := errors.Join(
		branchID.Validate(),
		kind.Validate(),
		nameErr,
		mainErr,
		windowErr,
	); err != nil {
		return CreateBranchCommand{}, err
	}

	cmd.branchID = branchID
	cmd.name = name
	cmd.kind = kind
	cmd.mainBranchID = mainBranchID
	cmd.sortingWindowHours = sortingWindowHours
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateBranchCommand) Validate() error {
	return c.guard.Validate(ErrCreateBranchCommandIsNotConstructed)
}

// BranchID returns the new branch's identifier.
func (c CreateBranchCommand) BranchID() kernel.UUID {
	return c.branchID
}

// Name returns the branch name.
func (c CreateBranchCommand) Name() string {
	return c.name
}

// Kind returns the branch kind.
func (c CreateBranchCommand) Kind() branch.Kind {
	return c.kind
}

// MainBranchID returns the processing main store for satellites, nil otherwise.
func (c CreateBranchCommand) MainBranchID() *kernel.UUID {
	return c.mainBranchID
}

// SortingWindowHours returns the configured window, zero meaning default.
func (c CreateBranchCommand) SortingWindowHours() int {
	return c.sortingWindowHours
}
