// Package setup is the office setup form: one draft record, eight tab
// editors, and the list/detail session that owns the editing lifecycle.
package setup

import "github.com/dentc/officesetup/internal/domain/office"

// Patch is a partial office update. Each non-nil field replaces the
// corresponding top-level key of the draft wholesale; there is no deep
// merge. To change one sub-field of a nested object, read the current
// nested value, copy it with the change applied, and patch the whole key.
type Patch struct {
	ShortID  *string
	Name     *string
	Address1 *string
	Address2 *string
	City     *string
	State    *string
	Zip      *string
	TimeZone *string

	Phone1   *string
	Phone2   *string
	PhoneExt *string
	Email    *string

	BillingProviderID   *string
	BillingProviderName *string
	TaxID               *string
	UseProviderLicense  *bool
	OpenedOn            *string
	OfficeGroup         *string

	StandardFeeScheduleID *string
	UCRFeeScheduleID      *string

	SchedulerInterval *int

	Statement    *office.StatementSettings
	Integrations *office.Integrations
	Operatories  *[]office.Operatory
	Schedule     *office.WeekSchedule
	Holidays     *[]office.Holiday
	Advanced     *office.AdvancedSettings
	SmartAssist  *office.SmartAssistConfig
}

// Draft holds the in-progress edit of one office record. It performs no
// validation; the session's save gate does that.
type Draft struct {
	value office.Office
}

// NewDraft starts a draft from a full office value.
func NewDraft(o office.Office) *Draft {
	return &Draft{value: o}
}

// Value returns a copy of the current draft record.
func (d *Draft) Value() office.Office {
	return d.value
}

// Apply shallow-merges the patch: every non-nil field overwrites its
// top-level key entirely.
func (d *Draft) Apply(p Patch) {
	if p.ShortID != nil {
		d.value.ShortID = *p.ShortID
	}
	if p.Name != nil {
		d.value.Name = *p.Name
	}
	if p.Address1 != nil {
		d.value.Address1 = *p.Address1
	}
	if p.Address2 != nil {
		d.value.Address2 = *p.Address2
	}
	if p.City != nil {
		d.value.City = *p.City
	}
	if p.State != nil {
		d.value.State = *p.State
	}
	if p.Zip != nil {
		d.value.Zip = *p.Zip
	}
	if p.TimeZone != nil {
		d.value.TimeZone = *p.TimeZone
	}
	if p.Phone1 != nil {
		d.value.Phone1 = *p.Phone1
	}
	if p.Phone2 != nil {
		d.value.Phone2 = *p.Phone2
	}
	if p.PhoneExt != nil {
		d.value.PhoneExt = *p.PhoneExt
	}
	if p.Email != nil {
		d.value.Email = *p.Email
	}
	if p.BillingProviderID != nil {
		d.value.BillingProviderID = *p.BillingProviderID
	}
	if p.BillingProviderName != nil {
		d.value.BillingProviderName = *p.BillingProviderName
	}
	if p.TaxID != nil {
		d.value.TaxID = *p.TaxID
	}
	if p.UseProviderLicense != nil {
		d.value.UseProviderLicense = *p.UseProviderLicense
	}
	if p.OpenedOn != nil {
		d.value.OpenedOn = *p.OpenedOn
	}
	if p.OfficeGroup != nil {
		d.value.OfficeGroup = *p.OfficeGroup
	}
	if p.StandardFeeScheduleID != nil {
		d.value.StandardFeeScheduleID = *p.StandardFeeScheduleID
	}
	if p.UCRFeeScheduleID != nil {
		d.value.UCRFeeScheduleID = *p.UCRFeeScheduleID
	}
	if p.SchedulerInterval != nil {
		d.value.SchedulerInterval = *p.SchedulerInterval
	}
	if p.Statement != nil {
		d.value.Statement = *p.Statement
	}
	if p.Integrations != nil {
		d.value.Integrations = *p.Integrations
	}
	if p.Operatories != nil {
		d.value.Operatories = *p.Operatories
	}
	if p.Schedule != nil {
		d.value.Schedule = *p.Schedule
	}
	if p.Holidays != nil {
		d.value.Holidays = *p.Holidays
	}
	if p.Advanced != nil {
		d.value.Advanced = *p.Advanced
	}
	if p.SmartAssist != nil {
		d.value.SmartAssist = *p.SmartAssist
	}
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
func intPtr(n int) *int       { return &n }
