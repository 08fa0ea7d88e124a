package table

import (
	"context"
	"errors"
)

// DeleteState is the row-delete affordance state.
type DeleteState int

const (
	DeleteIdle DeleteState = iota
	DeleteConfirmPending
	DeleteDeleting
)

var errDeleteBusy = errors.New("delete already in progress")

// DeleteFlow drives one row's delete confirmation:
// Idle -> ConfirmPending on request, then either Cancel back to Idle
// or Confirm through Deleting and back to Idle once the mutation
// resolves. The affordance stays disabled while Deleting.
type DeleteFlow struct {
	state DeleteState
	id    string
}

func NewDeleteFlow() *DeleteFlow {
	return &DeleteFlow{state: DeleteIdle}
}

func (f *DeleteFlow) State() DeleteState { return f.state }
func (f *DeleteFlow) PendingID() string  { return f.id }

// Request arms the confirmation step for id.
func (f *DeleteFlow) Request(id string) error {
	if f.state != DeleteIdle {
		return errDeleteBusy
	}
	f.state = DeleteConfirmPending
	f.id = id
	return nil
}

// Cancel abandons a pending confirmation.
func (f *DeleteFlow) Cancel() {
	if f.state == DeleteConfirmPending {
		f.state = DeleteIdle
		f.id = ""
	}
}

// Confirm runs the delete mutation for the pending id. The flow
// returns to Idle whether the mutation succeeds or fails; there is no
// retry.
func (f *DeleteFlow) Confirm(ctx context.Context, del func(ctx context.Context, id string) (string, error)) error {
	if f.state != DeleteConfirmPending {
		return errDeleteBusy
	}
	id := f.id
	f.state = DeleteDeleting

	_, err := del(ctx, id)

	f.state = DeleteIdle
	f.id = ""
	return err
}
