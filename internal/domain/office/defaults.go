package office

// DefaultDaySchedule returns the standard open-day hours: 08:00-17:00 with a
// noon lunch hour.
func DefaultDaySchedule() DaySchedule {
	return DaySchedule{
		Start:      "08:00",
		End:        "17:00",
		LunchStart: "12:00",
		LunchEnd:   "13:00",
	}
}

// DefaultWeekSchedule returns Monday-Friday open with the standard hours and
// the weekend closed.
func DefaultWeekSchedule() WeekSchedule {
	open := DefaultDaySchedule()
	return WeekSchedule{
		Monday:    open,
		Tuesday:   open,
		Wednesday: open,
		Thursday:  open,
		Friday:    open,
		Saturday:  DaySchedule{Closed: true},
		Sunday:    DaySchedule{Closed: true},
	}
}

// DefaultSmartAssist returns the master flag off with all twelve items
// present but disabled, each on a weekly cadence.
func DefaultSmartAssist() SmartAssistConfig {
	items := make(map[string]SmartAssistItem, len(SmartAssistItemKeys))
	for _, key := range SmartAssistItemKeys {
		items[key] = SmartAssistItem{Frequency: "weekly"}
	}
	return SmartAssistConfig{Items: items}
}

// NewDefault builds the fully-populated draft used when an admin starts
// adding an office: every section pre-filled with sane defaults and the next
// sequential id over the known office list.
func NewDefault(existing []Summary) Office {
	return Office{
		ID:                NextOfficeID(existing),
		SchedulerInterval: 15,
		Schedule:          DefaultWeekSchedule(),
		SmartAssist:       DefaultSmartAssist(),
		Holidays:          []Holiday{},
		Operatories:       []Operatory{},
		Integrations: Integrations{
			AcceptedCards: []string{},
		},
	}
}
