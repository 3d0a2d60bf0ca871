package setup

import (
	"context"
	"errors"
	"testing"

	"github.com/dentc/officesetup/internal/domain/office"
)

func newHolidaysTab(t *testing.T, draft *Draft) (*HolidaysTab, *mockRepo) {
	t.Helper()
	repo := newMockRepo()
	return NewHolidaysTab(repo, draft, testLogger()), repo
}

func TestHolidaysTab_AddValidEntry(t *testing.T) {
	draft := NewDraft(office.Office{Holidays: []office.Holiday{}})
	tab, _ := newHolidaysTab(t, draft)

	tab.Pending.Name = "Spring Break"
	tab.Pending.From = "2025-06-01"
	tab.Pending.To = "2025-06-10"
	if err := tab.Add(); err != nil {
		t.Fatalf("add: %v", err)
	}

	hols := draft.Value().Holidays
	if len(hols) != 1 {
		t.Fatalf("expected 1 holiday, got %d", len(hols))
	}
	h := hols[0]
	if h.Name != "Spring Break" || h.FromDate != "2025-06-01" || h.ToDate != "2025-06-10" || !h.Active {
		t.Errorf("unexpected entry: %+v", h)
	}
	if h.ID == "" {
		t.Error("entry should get a temporary id")
	}
	if tab.Pending.Name != "" || tab.Pending.From != "" {
		t.Error("pending inputs should clear after add")
	}
}

func TestHolidaysTab_AddRejectsReversedDates(t *testing.T) {
	draft := NewDraft(office.Office{})
	tab, _ := newHolidaysTab(t, draft)

	tab.Pending.From = "2025-06-10"
	tab.Pending.To = "2025-06-01"
	if err := tab.Add(); err == nil {
		t.Fatal("expected rejection when from > to")
	}
	if len(draft.Value().Holidays) != 0 {
		t.Error("rejected entry must not be appended")
	}
}

func TestHolidaysTab_AddRequiresBothDates(t *testing.T) {
	draft := NewDraft(office.Office{})
	tab, _ := newHolidaysTab(t, draft)

	tab.Pending.From = "2025-06-01"
	if err := tab.Add(); err == nil {
		t.Fatal("expected rejection when a date is missing")
	}
}

func TestHolidaysTab_AddSameDayAllowed(t *testing.T) {
	draft := NewDraft(office.Office{})
	tab, _ := newHolidaysTab(t, draft)

	tab.Pending.From = "2025-12-25"
	tab.Pending.To = "2025-12-25"
	if err := tab.Add(); err != nil {
		t.Fatalf("same-day closure should be accepted: %v", err)
	}
}

func TestHolidaysTab_DeleteByID(t *testing.T) {
	draft := NewDraft(office.Office{Holidays: []office.Holiday{
		{ID: "h1", Name: "A", FromDate: "2026-01-01", ToDate: "2026-01-01"},
		{ID: "h2", Name: "B", FromDate: "2026-02-01", ToDate: "2026-02-01"},
	}})
	tab, _ := newHolidaysTab(t, draft)

	tab.Delete("h1")
	hols := draft.Value().Holidays
	if len(hols) != 1 || hols[0].ID != "h2" {
		t.Errorf("delete left %+v", hols)
	}
}

func TestHolidaysTab_CopyAppendGetsFreshIDs(t *testing.T) {
	draft := NewDraft(office.Office{
		ID:       1002,
		Holidays: []office.Holiday{{ID: "mine", Name: "Existing", FromDate: "2026-03-01", ToDate: "2026-03-01"}},
	})
	tab, _ := newHolidaysTab(t, draft)

	// Office 1001 has two holidays in the demo dataset.
	n, err := tab.Copy(context.Background(), 1001, CopyAppend)
	if err != nil {
		t.Fatalf("copy: %v", err)
	}
	if n != 2 {
		t.Errorf("copied %d, want 2", n)
	}
	hols := draft.Value().Holidays
	if len(hols) != 3 {
		t.Fatalf("expected 3 holidays after append, got %d", len(hols))
	}
	if hols[0].ID != "mine" {
		t.Error("existing entries must survive an append copy")
	}
	for _, h := range hols[1:] {
		if h.ID == "hol-1" || h.ID == "hol-2" {
			t.Errorf("copied entry kept the source id %q", h.ID)
		}
	}
}

func TestHolidaysTab_CopyOverwriteReplacesList(t *testing.T) {
	draft := NewDraft(office.Office{
		ID:       1002,
		Holidays: []office.Holiday{{ID: "mine", Name: "Existing", FromDate: "2026-03-01", ToDate: "2026-03-01"}},
	})
	tab, _ := newHolidaysTab(t, draft)

	if _, err := tab.Copy(context.Background(), 1001, CopyOverwrite); err != nil {
		t.Fatalf("copy: %v", err)
	}
	hols := draft.Value().Holidays
	if len(hols) != 2 {
		t.Fatalf("expected 2 holidays after overwrite, got %d", len(hols))
	}
	for _, h := range hols {
		if h.ID == "mine" {
			t.Error("overwrite should drop the previous list")
		}
	}
}

func TestHolidaysTab_CopyFromEmptySourceIsNotice(t *testing.T) {
	draft := NewDraft(office.Office{ID: 1001, Holidays: []office.Holiday{{ID: "keep"}}})
	tab, _ := newHolidaysTab(t, draft)

	// Office 1002 has no holidays in the demo dataset.
	_, err := tab.Copy(context.Background(), 1002, CopyAppend)
	if !errors.Is(err, ErrNoHolidaysToCopy) {
		t.Fatalf("expected ErrNoHolidaysToCopy, got %v", err)
	}
	if len(draft.Value().Holidays) != 1 {
		t.Error("no-op copy must leave the draft unchanged")
	}
}

func TestHolidaysTab_CopySourcesExcludeSelf(t *testing.T) {
	draft := NewDraft(office.Office{ID: 1002})
	tab, _ := newHolidaysTab(t, draft)

	sources := tab.CopySources([]office.Summary{{ID: 1001}, {ID: 1002}, {ID: 1003}})
	if len(sources) != 2 {
		t.Fatalf("expected 2 sources, got %d", len(sources))
	}
	for _, s := range sources {
		if s.ID == 1002 {
			t.Error("the office being edited must not be a copy source")
		}
	}
}

func TestHolidaysTab_CopySourceFetchError(t *testing.T) {
	draft := NewDraft(office.Office{ID: 1001})
	repo := newMockRepo()
	repo.setupErr = errors.New("gateway down")
	tab := NewHolidaysTab(repo, draft, testLogger())

	if _, err := tab.Copy(context.Background(), 1003, CopyAppend); err == nil {
		t.Fatal("expected error")
	}
	if len(draft.Value().Holidays) != 0 {
		t.Error("failed copy must not touch the draft")
	}
}
