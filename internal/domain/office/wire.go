package office

// Wire shapes for the practice-management REST API. Holiday rows travel as
// start_date/end_date/is_active and are mapped to the in-memory FromDate/
// ToDate/Active shape here, in one place.

type wireHoliday struct {
	ID        string `json:"id"`
	OfficeID  int    `json:"office_id,omitempty"`
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	IsActive  bool   `json:"is_active"`
}

func holidayFromWire(w wireHoliday) Holiday {
	return Holiday{
		ID:       w.ID,
		Name:     w.Name,
		FromDate: w.StartDate,
		ToDate:   w.EndDate,
		Active:   w.IsActive,
	}
}

func holidayToWire(h Holiday, officeID int) wireHoliday {
	return wireHoliday{
		ID:        h.ID,
		OfficeID:  officeID,
		Name:      h.Name,
		StartDate: h.FromDate,
		EndDate:   h.ToDate,
		IsActive:  h.Active,
	}
}

// wireSetup is the full setup payload. The embedded Office carries every
// section except holidays, which the outer field shadows with the wire shape.
type wireSetup struct {
	Office
	Holidays []wireHoliday `json:"holidays"`
}

func setupFromWire(w wireSetup) *Office {
	o := w.Office
	o.Holidays = make([]Holiday, 0, len(w.Holidays))
	for _, wh := range w.Holidays {
		o.Holidays = append(o.Holidays, holidayFromWire(wh))
	}
	return &o
}

func setupToWire(o *Office) wireSetup {
	w := wireSetup{Office: *o}
	w.Office.Holidays = nil
	w.Holidays = make([]wireHoliday, 0, len(o.Holidays))
	for _, h := range o.Holidays {
		w.Holidays = append(w.Holidays, holidayToWire(h, o.ID))
	}
	return w
}

// wireSummary tolerates both id spellings the list endpoint has been seen to
// use ("id" on newer deployments, "officeId" on older ones).
type wireSummary struct {
	ID       int    `json:"id"`
	OfficeID int    `json:"officeId"`
	Name     string `json:"officeName"`
	ShortID  string `json:"short_id"`
}

func summaryFromWire(w wireSummary) Summary {
	id := w.ID
	if id == 0 {
		id = w.OfficeID
	}
	return Summary{ID: id, ShortID: w.ShortID, Name: w.Name}
}

func summaryToWire(s Summary) wireSummary {
	return wireSummary{ID: s.ID, OfficeID: s.ID, Name: s.Name, ShortID: s.ShortID}
}
