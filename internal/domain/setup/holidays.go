package setup

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dentc/officesetup/internal/domain/office"
)

const holidayDateLayout = "2006-01-02"

// CopyMode selects how copied holidays land on the draft.
type CopyMode string

const (
	// CopyAppend adds the source office's holidays after the existing ones.
	CopyAppend CopyMode = "append"
	// CopyOverwrite replaces the draft's holiday list outright.
	CopyOverwrite CopyMode = "overwrite"
)

// ErrNoHolidaysToCopy marks a copy from an office with no holidays. It is an
// informative notice, not a failure: the draft is untouched.
var ErrNoHolidaysToCopy = errors.New("the selected office has no holidays to copy")

// HolidaysTab edits the office's date-range closures. The pending new-entry
// inputs live here, not on the draft.
type HolidaysTab struct {
	repo  office.Repository
	draft *Draft
	log   zerolog.Logger

	// Pending is the not-yet-added holiday being typed in.
	Pending struct {
		Name string
		From string
		To   string
	}
}

// NewHolidaysTab creates the Holidays editor over the draft.
func NewHolidaysTab(repo office.Repository, draft *Draft, log zerolog.Logger) *HolidaysTab {
	return &HolidaysTab{repo: repo, draft: draft, log: log}
}

// Add validates the pending entry (both dates present, from on or before to)
// and appends it to the draft with a temporary id. The pending inputs are
// cleared on success.
func (t *HolidaysTab) Add() error {
	if t.Pending.From == "" || t.Pending.To == "" {
		return fmt.Errorf("both dates are required")
	}
	from, err := time.Parse(holidayDateLayout, t.Pending.From)
	if err != nil {
		return fmt.Errorf("invalid from date %q", t.Pending.From)
	}
	to, err := time.Parse(holidayDateLayout, t.Pending.To)
	if err != nil {
		return fmt.Errorf("invalid to date %q", t.Pending.To)
	}
	if from.After(to) {
		return fmt.Errorf("from date must be on or before to date")
	}

	entry := office.Holiday{
		ID:       uuid.NewString(),
		Name:     t.Pending.Name,
		FromDate: t.Pending.From,
		ToDate:   t.Pending.To,
		Active:   true,
	}
	current := t.draft.Value().Holidays
	next := append(append([]office.Holiday(nil), current...), entry)
	t.draft.Apply(Patch{Holidays: &next})

	t.Pending.Name, t.Pending.From, t.Pending.To = "", "", ""
	return nil
}

// Delete removes the holiday with the given id. Confirmation is the
// caller's responsibility; by the time Delete runs the admin has confirmed.
func (t *HolidaysTab) Delete(id string) {
	current := t.draft.Value().Holidays
	next := make([]office.Holiday, 0, len(current))
	for _, h := range current {
		if h.ID != id {
			next = append(next, h)
		}
	}
	t.draft.Apply(Patch{Holidays: &next})
}

// CopySources returns the offices eligible as a copy source: everything in
// the list except the office being edited.
func (t *HolidaysTab) CopySources(offices []office.Summary) []office.Summary {
	selfID := t.draft.Value().ID
	out := make([]office.Summary, 0, len(offices))
	for _, o := range offices {
		if o.ID != selfID {
			out = append(out, o)
		}
	}
	return out
}

// Copy fetches the source office's setup and applies its holidays to the
// draft per the copy mode: appended with fresh temporary ids, or replacing
// the list outright. A source with zero holidays returns
// ErrNoHolidaysToCopy and leaves the draft unchanged.
func (t *HolidaysTab) Copy(ctx context.Context, sourceID int, mode CopyMode) (int, error) {
	src, err := t.repo.GetSetup(ctx, sourceID)
	if err != nil {
		t.log.Error().Err(err).Int("source_office_id", sourceID).Msg("load copy source")
		return 0, fmt.Errorf("load office %d: %w", sourceID, err)
	}
	if len(src.Holidays) == 0 {
		return 0, ErrNoHolidaysToCopy
	}

	copied := make([]office.Holiday, 0, len(src.Holidays))
	for _, h := range src.Holidays {
		h.ID = uuid.NewString()
		copied = append(copied, h)
	}

	var next []office.Holiday
	switch mode {
	case CopyOverwrite:
		next = copied
	default:
		current := t.draft.Value().Holidays
		next = append(append([]office.Holiday(nil), current...), copied...)
	}
	t.draft.Apply(Patch{Holidays: &next})
	return len(copied), nil
}
