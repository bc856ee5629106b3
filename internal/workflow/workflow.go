// Package workflow moves invoices along draft → sent → in_process →
// completed → logged and applies the matching audit stamps.
//
// Transition itself does not check legality: whatever status is requested is
// recorded. Callers that want forward-only behaviour call Validate first.
package workflow

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"invoiceflow/internal/model"
)

// Named actions a caller may request instead of a raw target status.
const (
	ActionSend    = "send"
	ActionAdvance = "advance"
	ActionApprove = "approve"
)

var (
	ErrUnknownStatus     = errors.New("unknown status")
	ErrUnknownAction     = errors.New("unknown action")
	ErrMissingActor      = errors.New("actor name is required")
	ErrNoNextStatus      = errors.New("no further status")
	ErrIllegalTransition = errors.New("illegal status transition")
)

// Next returns the forward successor of s. Logged is terminal.
func Next(s model.Status) (model.Status, bool) {
	rank := s.Rank()
	if rank < 0 || rank+1 >= len(model.Statuses) {
		return "", false
	}
	return model.Statuses[rank+1], true
}

// Resolve maps a named action to its target status given the current one.
//
//	send:    draft → sent
//	advance: sent → in_process, in_process → completed
//	approve: completed → logged
//
// The mapping is loose like Transition: send always targets sent and
// approve always targets logged. Advance needs a current status that has a
// successor short of logged.
func Resolve(action string, current model.Status) (model.Status, error) {
	switch strings.ToLower(strings.TrimSpace(action)) {
	case ActionSend:
		return model.StatusSent, nil
	case ActionApprove:
		return model.StatusLogged, nil
	case ActionAdvance:
		switch current {
		case model.StatusSent:
			return model.StatusInProcess, nil
		case model.StatusInProcess:
			return model.StatusCompleted, nil
		}
		return "", fmt.Errorf("%w: cannot advance from %q", ErrNoNextStatus, current)
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAction, action)
}

// Validate reports whether from → to is the single forward step of the
// chain. Re-entering the current status is allowed.
func Validate(from, to model.Status) error {
	if !to.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownStatus, to)
	}
	if from == to {
		return nil
	}
	if next, ok := Next(from); ok && next == to {
		return nil
	}
	return fmt.Errorf("%w: %s → %s", ErrIllegalTransition, from, to)
}

// Transition records target on inv, stamping the matching actor/date pair
// when it is still unset, and refreshes UpdatedAt.
func Transition(inv model.Invoice, target model.Status, actor string, now time.Time) (model.Invoice, error) {
	if !target.Valid() {
		return inv, fmt.Errorf("%w: %q", ErrUnknownStatus, target)
	}
	actor = strings.TrimSpace(actor)
	if actor == "" {
		return inv, ErrMissingActor
	}

	out := model.ApplyStamp(inv, target, actor, now)
	out.UpdatedAt = now
	return out, nil
}
