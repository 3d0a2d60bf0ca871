package setup

import "github.com/dentc/officesetup/internal/domain/office"

// Weekday names the schedule rows the editor can address.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// ScheduleTab edits the weekly hours grid.
type ScheduleTab struct {
	draft *Draft
}

// NewScheduleTab creates the Schedule editor over the draft.
func NewScheduleTab(draft *Draft) *ScheduleTab {
	return &ScheduleTab{draft: draft}
}

// SetDay replaces one weekday's hours. The whole week is re-patched because
// the draft replaces the schedule key wholesale.
func (t *ScheduleTab) SetDay(day Weekday, hours office.DaySchedule) {
	week := t.draft.Value().Schedule
	switch day {
	case Monday:
		week.Monday = hours
	case Tuesday:
		week.Tuesday = hours
	case Wednesday:
		week.Wednesday = hours
	case Thursday:
		week.Thursday = hours
	case Friday:
		week.Friday = hours
	case Saturday:
		week.Saturday = hours
	case Sunday:
		week.Sunday = hours
	}
	t.draft.Apply(Patch{Schedule: &week})
}

// CopyMondayToWeekdays overwrites Tuesday through Friday's start/end/lunch
// fields with Monday's stored values verbatim. The closed flags are not
// touched; if Monday is closed its (possibly empty) time strings still
// propagate.
func (t *ScheduleTab) CopyMondayToWeekdays() {
	week := t.draft.Value().Schedule
	mon := week.Monday
	for _, day := range []*office.DaySchedule{&week.Tuesday, &week.Wednesday, &week.Thursday, &week.Friday} {
		day.Start = mon.Start
		day.End = mon.End
		day.LunchStart = mon.LunchStart
		day.LunchEnd = mon.LunchEnd
	}
	t.draft.Apply(Patch{Schedule: &week})
}
