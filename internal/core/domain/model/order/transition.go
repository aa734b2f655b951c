package order

import (
	"errors"
	"fmt"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/errs"
)

// ErrTransitionIsNotConstructed is returned when a Transition was not
// produced by one of the Order lifecycle methods.
var ErrTransitionIsNotConstructed = errors.New("Transition must be created via Order.Prepare, Order.Cancel or Order.Complete")

// TransitionKind identifies which lifecycle move a Transition describes.
type TransitionKind int

const (
	// TransitionUnknown represents an invalid or undefined transition kind.
	TransitionUnknown TransitionKind = iota

	// TransitionPrepare is the pending→prepared move.
	TransitionPrepare

	// TransitionCancel is the prepared→canceled move.
	TransitionCancel

	// TransitionComplete is the prepared→completed move.
	TransitionComplete
)

// String returns a short name for the transition kind.
func (k TransitionKind) String() string {
	switch k {
	case TransitionPrepare:
		return "prepare"
	case TransitionCancel:
		return "cancel"
	case TransitionComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Validate checks if the TransitionKind value is valid.
func (k TransitionKind) Validate() error {
	switch k {
	case TransitionPrepare, TransitionCancel, TransitionComplete:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("transition kind",
			fmt.Errorf("%d is not a valid transition kind", k))
	}
}

// Transition is the value object describing one atomic bucket move:
// delete the source document, insert the moved copy into the destination
// bucket, insert the transition's notification. All three land together or
// not at all; the repository enforces this through the store's atomic batch
// commit.
//
// The moved copy's key is intentionally unset: the store assigns a fresh
// identity at the destination, and the old key is never reused.
type Transition struct {
	kind     TransitionKind
	from     Bucket
	to       Bucket
	sourceID kernel.UUID
	moved    *Order

	isConstructed bool
}

func newTransition(kind TransitionKind, from Bucket, sourceID kernel.UUID, to Bucket, moved *Order) (*Transition, error) {
	t := &Transition{
		kind:          kind,
		from:          from,
		to:            to,
		sourceID:      sourceID,
		moved:         moved,
		isConstructed: true,
	}

	if err := errors.Join(
		kind.Validate(),
		from.Validate(),
		to.Validate(),
		sourceID.Validate(),
		moved.Validate(),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// Validate ensures the Transition was produced by an Order lifecycle method.
func (t *Transition) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTransitionIsNotConstructed
	}
	return nil
}

// Kind returns which lifecycle move this transition describes.
func (t *Transition) Kind() TransitionKind {
	return t.kind
}

// From returns the source bucket.
func (t *Transition) From() Bucket {
	return t.from
}

// To returns the destination bucket.
func (t *Transition) To() Bucket {
	return t.to
}

// SourceID returns the key of the source document the move deletes.
func (t *Transition) SourceID() kernel.UUID {
	return t.sourceID
}

// Moved returns the destination copy: same fields as the source with status
// overwritten and no key. The store assigns the destination identity when
// the transition commits.
func (t *Transition) Moved() *Order {
	return t.moved
}
