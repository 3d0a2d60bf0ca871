package office

// DemoOffices is the seed dataset used when running detached from a real
// backend. Office 1002 intentionally carries a legacy by-name fee-schedule
// reference so the Info editor's reconciliation path stays covered.
func DemoOffices() []Office {
	return []Office{
		{
			ID:       1001,
			ShortID:  "MSD",
			Name:     "Main Street Dental",
			Address1: "100 Main St",
			City:     "Springfield",
			State:    "IL",
			Zip:      "62701",
			TimeZone: "America/Chicago",
			Phone1:   "217-555-0100",
			Email:    "front@mainstreetdental.example",

			BillingProviderID:     "1",
			BillingProviderName:   "Dr. Alice Hart",
			TaxID:                 "36-0000001",
			UseProviderLicense:    true,
			OpenedOn:              "2012-04-01",
			StandardFeeScheduleID: "10",
			UCRFeeScheduleID:      "20",
			SchedulerInterval:     15,

			Statement: StatementSettings{
				CorrespondenceName:    "Main Street Dental",
				CorrespondenceAddress: "100 Main St, Springfield IL 62701",
				CorrespondencePhone:   "217-555-0100",
				Messages: StatementMessages{
					General: "Thank you for choosing Main Street Dental.",
					Day90:   "Your account is seriously past due. Please call our office.",
				},
			},
			Operatories: []Operatory{
				{ID: "op-1", Name: "Op 1", Order: 1, Active: true, HasFutureAppointments: true},
				{ID: "op-2", Name: "Op 2", Order: 2, Active: true},
				{ID: "op-3", Name: "Hygiene", Order: 3, Active: true},
			},
			Schedule: DefaultWeekSchedule(),
			Holidays: []Holiday{
				{ID: "hol-1", Name: "Independence Day", FromDate: "2026-07-03", ToDate: "2026-07-04", Active: true},
				{ID: "hol-2", Name: "Winter Break", FromDate: "2026-12-24", ToDate: "2027-01-01", Active: true},
			},
			Advanced: AdvancedSettings{
				FinanceChargePercent:    1.5,
				FinanceChargeMinimum:    2,
				FinanceChargeGraceDays:  30,
				DefaultState:            "IL",
				DefaultCity:             "Springfield",
				DefaultAreaCode:         "217",
				RequireConsentForms:     true,
				RequireHIPAAForms:       true,
				AppointmentReminderDays: 2,
				RecallIntervalMonths:    6,
			},
			SmartAssist: demoSmartAssist(),
		},
		{
			ID:       1002,
			ShortID:  "OAK",
			Name:     "Oakview Family Dentistry",
			Address1: "42 Oakview Rd",
			City:     "Peoria",
			State:    "IL",
			Zip:      "61602",
			TimeZone: "America/Chicago",
			Phone1:   "309-555-0142",

			BillingProviderID:   "2",
			BillingProviderName: "Dr. Ben Okafor",
			TaxID:               "36-0000002",
			OpenedOn:            "2018-09-15",
			OfficeGroup:         "Westside Group",
			// Legacy record: schedule stored by name, not id.
			StandardFeeScheduleID: "Standard 2024",
			UCRFeeScheduleID:      "20",
			SchedulerInterval:     10,

			Operatories: []Operatory{
				{ID: "op-4", Name: "Chair A", Order: 1, Active: true},
				{ID: "op-5", Name: "Chair B", Order: 2, Active: true},
			},
			Schedule:    DefaultWeekSchedule(),
			Holidays:    []Holiday{},
			SmartAssist: DefaultSmartAssist(),
		},
		{
			ID:       1003,
			ShortID:  "RIVER",
			Name:     "Riverbend Orthodontics",
			Address1: "7 Riverbend Plaza",
			City:     "Alton",
			State:    "IL",
			Zip:      "62002",
			TimeZone: "America/Chicago",

			BillingProviderID:     "3",
			BillingProviderName:   "Dr. Carmen Diaz",
			StandardFeeScheduleID: "11",
			UCRFeeScheduleID:      "21",
			SchedulerInterval:     20,

			Operatories: []Operatory{
				{ID: "op-6", Name: "Ortho 1", Order: 1, Active: true},
			},
			Schedule: DefaultWeekSchedule(),
			Holidays: []Holiday{
				{ID: "hol-3", Name: "Staff Retreat", FromDate: "2026-10-09", ToDate: "2026-10-09", Active: true},
			},
			Advanced: AdvancedSettings{
				OrthoEnabled:         true,
				RecallIntervalMonths: 3,
			},
			SmartAssist: DefaultSmartAssist(),
		},
	}
}

// DemoMetadata is the reference data matching DemoOffices.
func DemoMetadata() Metadata {
	return Metadata{
		BillingProviders: []BillingProvider{
			{ID: "1", Name: "Dr. Alice Hart", NPI: "1234567890"},
			{ID: "2", Name: "Dr. Ben Okafor", NPI: "2345678901"},
			{ID: "3", Name: "Dr. Carmen Diaz", NPI: "3456789012"},
		},
		FeeSchedules: []FeeSchedule{
			{ID: "10", Name: "Standard 2024", Type: FeeScheduleStandard},
			{ID: "11", Name: "Standard Ortho", Type: FeeScheduleStandard},
			{ID: "20", Name: "UCR Midwest", Type: FeeScheduleUCR},
			{ID: "21", Name: "UCR Ortho", Type: FeeScheduleUCR},
		},
		TimeZones: []string{
			"America/New_York",
			"America/Chicago",
			"America/Denver",
			"America/Phoenix",
			"America/Los_Angeles",
			"America/Anchorage",
			"Pacific/Honolulu",
		},
	}
}

func demoSmartAssist() SmartAssistConfig {
	cfg := DefaultSmartAssist()
	cfg.Enabled = true
	cfg.Items[SAAppointmentReminder] = SmartAssistItem{Enabled: true, Frequency: "daily"}
	cfg.Items[SARecallReminder] = SmartAssistItem{Enabled: true, Frequency: "weekly"}
	cfg.Items[SAPaymentReminder] = SmartAssistItem{Enabled: true, Frequency: "monthly", IncludeBalance: true}
	cfg.Items[SAHIPAA] = SmartAssistItem{Enabled: true, Frequency: "yearly", Template: "hipaa_standard"}
	return cfg
}
