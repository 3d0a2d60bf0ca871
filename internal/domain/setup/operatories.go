package setup

import (
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/dentc/officesetup/internal/domain/office"
)

// ErrHasFutureAppointments refuses deletion of an operatory that still has
// appointments booked. Informative, not exceptional.
var ErrHasFutureAppointments = errors.New("operatory has future appointments and cannot be deleted")

// OperatoriesTab edits the ordered chair/room list.
type OperatoriesTab struct {
	draft *Draft
}

// NewOperatoriesTab creates the Operatories editor over the draft.
func NewOperatoriesTab(draft *Draft) *OperatoriesTab {
	return &OperatoriesTab{draft: draft}
}

// Add appends a new active operatory with a temporary id and the next order
// slot.
func (t *OperatoriesTab) Add(name string) office.Operatory {
	current := t.draft.Value().Operatories
	entry := office.Operatory{
		ID:     uuid.NewString(),
		Name:   name,
		Order:  len(current) + 1,
		Active: true,
	}
	next := append(append([]office.Operatory(nil), current...), entry)
	t.draft.Apply(Patch{Operatories: &next})
	return entry
}

// Rename updates one operatory's display name in place.
func (t *OperatoriesTab) Rename(id, name string) error {
	current := t.draft.Value().Operatories
	next := append([]office.Operatory(nil), current...)
	for i := range next {
		if next[i].ID == id {
			next[i].Name = name
			t.draft.Apply(Patch{Operatories: &next})
			return nil
		}
	}
	return fmt.Errorf("unknown operatory %q", id)
}

// Delete soft-deletes an operatory: the target's active flag is cleared,
// inactive entries are dropped, and the remaining active entries are
// renumbered 1..N preserving their existing relative order. An operatory
// with future appointments is refused and the list is left untouched.
func (t *OperatoriesTab) Delete(id string) error {
	current := t.draft.Value().Operatories
	found := false
	for _, op := range current {
		if op.ID == id {
			if op.HasFutureAppointments {
				return ErrHasFutureAppointments
			}
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("unknown operatory %q", id)
	}

	next := make([]office.Operatory, 0, len(current))
	for _, op := range current {
		if op.ID == id || !op.Active {
			continue
		}
		next = append(next, op)
	}
	// Stable renumber: survivors keep the relative sequence their prior
	// order values gave them, not id or name order.
	sort.SliceStable(next, func(i, j int) bool { return next[i].Order < next[j].Order })
	for i := range next {
		next[i].Order = i + 1
	}
	t.draft.Apply(Patch{Operatories: &next})
	return nil
}
