package setup

import (
	"testing"

	"github.com/dentc/officesetup/internal/domain/office"
)

func TestScheduleTab_CopyMondayToWeekdays(t *testing.T) {
	week := office.DefaultWeekSchedule()
	week.Monday = office.DaySchedule{Start: "08:00", End: "17:00", LunchStart: "12:00", LunchEnd: "13:00"}
	week.Tuesday = office.DaySchedule{Start: "10:00", End: "14:00"}
	week.Friday = office.DaySchedule{Start: "07:00", End: "12:00", Closed: false}
	draft := NewDraft(office.Office{Schedule: week})
	tab := NewScheduleTab(draft)

	tab.CopyMondayToWeekdays()

	got := draft.Value().Schedule
	for _, day := range []office.DaySchedule{got.Tuesday, got.Wednesday, got.Thursday, got.Friday} {
		if day.Start != "08:00" || day.End != "17:00" || day.LunchStart != "12:00" || day.LunchEnd != "13:00" {
			t.Errorf("weekday not copied verbatim: %+v", day)
		}
	}
	if !got.Saturday.Closed || !got.Sunday.Closed {
		t.Error("weekend must be untouched")
	}
	if got.Saturday.Start != "" {
		t.Errorf("Saturday times must be untouched, got %q", got.Saturday.Start)
	}
}

func TestScheduleTab_CopyDoesNotTouchClosedFlags(t *testing.T) {
	week := office.DefaultWeekSchedule()
	week.Wednesday.Closed = true
	draft := NewDraft(office.Office{Schedule: week})
	tab := NewScheduleTab(draft)

	tab.CopyMondayToWeekdays()

	got := draft.Value().Schedule
	if !got.Wednesday.Closed {
		t.Error("copy must not clear a weekday's closed flag")
	}
	if got.Wednesday.Start != "08:00" {
		t.Error("times still propagate to a closed weekday")
	}
}

func TestScheduleTab_CopyFromClosedMondayPropagatesEmptyTimes(t *testing.T) {
	week := office.DefaultWeekSchedule()
	week.Monday = office.DaySchedule{Closed: true}
	draft := NewDraft(office.Office{Schedule: week})
	tab := NewScheduleTab(draft)

	tab.CopyMondayToWeekdays()

	got := draft.Value().Schedule
	if got.Tuesday.Start != "" || got.Tuesday.End != "" {
		t.Errorf("Monday's stored (empty) times propagate verbatim, got %+v", got.Tuesday)
	}
	if got.Tuesday.Closed {
		t.Error("Tuesday's closed flag must not change")
	}
}

func TestScheduleTab_SetDay(t *testing.T) {
	draft := NewDraft(office.Office{Schedule: office.DefaultWeekSchedule()})
	tab := NewScheduleTab(draft)

	tab.SetDay(Thursday, office.DaySchedule{Start: "07:30", End: "19:00"})

	got := draft.Value().Schedule
	if got.Thursday.Start != "07:30" || got.Thursday.End != "19:00" {
		t.Errorf("Thursday = %+v", got.Thursday)
	}
	if got.Wednesday.Start != "08:00" {
		t.Error("sibling days must survive a single-day edit")
	}
}
