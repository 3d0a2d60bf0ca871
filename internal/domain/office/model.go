// Package office holds the office record model, the repository contract for
// the practice-management backend, and its HTTP and in-memory implementations.
package office

import (
	"strings"
	"time"
)

// ShortIDMaxLen bounds the office short display code.
const ShortIDMaxLen = 6

// StatementMessageMaxLen bounds each statement aging-bucket message.
const StatementMessageMaxLen = 100

// SchedulerIntervals are the accepted scheduler grid sizes, in minutes.
var SchedulerIntervals = []int{5, 10, 15, 20, 30}

// Office is the full per-office setup record.
type Office struct {
	ID      int    `json:"id"`
	ShortID string `json:"short_id" validate:"required,max=6"`
	Name    string `json:"name" validate:"required"`

	Address1 string `json:"address1"`
	Address2 string `json:"address2"`
	City     string `json:"city"`
	State    string `json:"state"`
	Zip      string `json:"zip"`
	TimeZone string `json:"time_zone" validate:"required"`

	Phone1   string `json:"phone1"`
	Phone2   string `json:"phone2"`
	PhoneExt string `json:"phone_ext"`
	Email    string `json:"email"`

	BillingProviderID   string `json:"billing_provider_id" validate:"required"`
	BillingProviderName string `json:"billing_provider_name"`
	TaxID               string `json:"tax_id"`
	UseProviderLicense  bool   `json:"use_provider_license"`
	OpenedOn            string `json:"opened_on"`
	OfficeGroup         string `json:"office_group"`

	// Fee-schedule references hold the metadata entry id as a decimal
	// string. Legacy records may still carry the schedule name; the Info
	// editor reconciles those to ids once metadata is available.
	StandardFeeScheduleID string `json:"standard_fee_schedule_id"`
	UCRFeeScheduleID      string `json:"ucr_fee_schedule_id"`

	SchedulerInterval int `json:"scheduler_interval"`

	Statement    StatementSettings `json:"statement_settings"`
	Integrations Integrations      `json:"integrations"`
	Operatories  []Operatory       `json:"operatories"`
	Schedule     WeekSchedule      `json:"schedule"`
	Holidays     []Holiday         `json:"holidays"`
	Advanced     AdvancedSettings  `json:"advanced"`
	SmartAssist  SmartAssistConfig `json:"smart_assist"`

	CreatedBy  string     `json:"created_by,omitempty"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
	ModifiedBy string     `json:"modified_by,omitempty"`
	ModifiedAt *time.Time `json:"modified_at,omitempty"`
}

// Summary is the office list row returned by the list endpoint.
type Summary struct {
	ID      int    `json:"id"`
	ShortID string `json:"short_id"`
	Name    string `json:"name"`
}

// NormalizeShortID upper-cases the short code and trims it to ShortIDMaxLen.
func NormalizeShortID(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) > ShortIDMaxLen {
		s = s[:ShortIDMaxLen]
	}
	return s
}

// NextOfficeID returns the next sequential office id: one above the current
// maximum, or 1 for an empty list. Ids are never reused.
func NextOfficeID(offices []Summary) int {
	max := 0
	for _, o := range offices {
		if o.ID > max {
			max = o.ID
		}
	}
	return max + 1
}

// ValidSchedulerInterval reports whether n is an accepted grid size.
func ValidSchedulerInterval(n int) bool {
	for _, v := range SchedulerIntervals {
		if v == n {
			return true
		}
	}
	return false
}

// StatementSettings groups the statement correspondence block and the six
// canned aging-bucket messages. This nested object is the canonical shape;
// there are no flat duplicates on Office.
type StatementSettings struct {
	CorrespondenceName    string `json:"correspondence_name"`
	CorrespondenceAddress string `json:"correspondence_address"`
	CorrespondencePhone   string `json:"correspondence_phone"`

	Messages StatementMessages `json:"messages"`
}

// StatementMessages holds one message per aging bucket, each capped at
// StatementMessageMaxLen characters by the Statement editor.
type StatementMessages struct {
	General string `json:"general"`
	Current string `json:"current"`
	Day30   string `json:"day30"`
	Day60   string `json:"day60"`
	Day90   string `json:"day90"`
	Day120  string `json:"day120"`
}

// AgingBucket names one of the six statement message slots.
type AgingBucket string

const (
	BucketGeneral AgingBucket = "general"
	BucketCurrent AgingBucket = "current"
	BucketDay30   AgingBucket = "day30"
	BucketDay60   AgingBucket = "day60"
	BucketDay90   AgingBucket = "day90"
	BucketDay120  AgingBucket = "day120"
)

// AgingBuckets lists the slots in display order.
var AgingBuckets = []AgingBucket{
	BucketGeneral, BucketCurrent, BucketDay30, BucketDay60, BucketDay90, BucketDay120,
}

// Operatory is one chair/room row. Order is 1-based and stays contiguous
// over the active subset; renumbering happens on soft-delete.
type Operatory struct {
	ID                    string `json:"id"`
	Name                  string `json:"name"`
	Order                 int    `json:"order"`
	Active                bool   `json:"active"`
	HasFutureAppointments bool   `json:"has_future_appointments"`
}

// DaySchedule is the working-hours block for one weekday. When Closed is
// true the time fields are ignored but retained as stored.
type DaySchedule struct {
	Start      string `json:"start"`
	End        string `json:"end"`
	LunchStart string `json:"lunch_start"`
	LunchEnd   string `json:"lunch_end"`
	Closed     bool   `json:"closed"`
}

// WeekSchedule maps the seven weekdays to their hours.
type WeekSchedule struct {
	Monday    DaySchedule `json:"monday"`
	Tuesday   DaySchedule `json:"tuesday"`
	Wednesday DaySchedule `json:"wednesday"`
	Thursday  DaySchedule `json:"thursday"`
	Friday    DaySchedule `json:"friday"`
	Saturday  DaySchedule `json:"saturday"`
	Sunday    DaySchedule `json:"sunday"`
}

// Holiday is a date-range closure. Dates are ISO "2006-01-02" strings;
// FromDate is never after ToDate for entries admitted by the Holidays editor.
type Holiday struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	FromDate string `json:"from_date"`
	ToDate   string `json:"to_date"`
	Active   bool   `json:"active"`
}

// Integrations groups the optional third-party bindings.
type Integrations struct {
	EClaims       EClaimsConfig       `json:"eclaims"`
	Collections   CollectionsConfig   `json:"collections"`
	Imaging       [3]ImagingSystem    `json:"imaging"`
	SMS           SMSConfig           `json:"sms"`
	PatientPortal PatientPortalConfig `json:"patient_portal"`
	AcceptedCards []string            `json:"accepted_cards"`
}

// EClaimsConfig is the electronic-claims vendor binding.
type EClaimsConfig struct {
	Enabled  bool   `json:"enabled"`
	Vendor   string `json:"vendor"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// CollectionsConfig is the third-party collections binding.
type CollectionsConfig struct {
	Enabled   bool   `json:"enabled"`
	AgencyID  string `json:"agency_id"`
	AccountNo string `json:"account_no"`
}

// ImagingSystem is one of the fixed three imaging bindings. The slots are
// positional; an empty Vendor marks an unused slot.
type ImagingSystem struct {
	Vendor   string `json:"vendor"`
	Location string `json:"location"`
	Enabled  bool   `json:"enabled"`
}

// SMSConfig holds the text-messaging settings.
type SMSConfig struct {
	Enabled    bool   `json:"enabled"`
	FromNumber string `json:"from_number"`
	Provider   string `json:"provider"`
}

// PatientPortalConfig holds the patient-facing URLs.
type PatientPortalConfig struct {
	BookingURL string `json:"booking_url"`
	PaymentURL string `json:"payment_url"`
	FormsURL   string `json:"forms_url"`
}

// AdvancedSettings is the grab-bag of office-level scalar options.
type AdvancedSettings struct {
	FinanceChargePercent   float64 `json:"finance_charge_percent"`
	FinanceChargeMinimum   float64 `json:"finance_charge_minimum"`
	FinanceChargeGraceDays int     `json:"finance_charge_grace_days"`
	BillingThreshold       float64 `json:"billing_threshold"`
	SmallBalanceWriteOff   float64 `json:"small_balance_write_off"`

	DefaultState    string `json:"default_state"`
	DefaultCity     string `json:"default_city"`
	DefaultZip      string `json:"default_zip"`
	DefaultAreaCode string `json:"default_area_code"`

	RequireConsentForms  bool `json:"require_consent_forms"`
	RequireHIPAAForms    bool `json:"require_hipaa_forms"`
	OrthoEnabled         bool `json:"ortho_enabled"`
	AutoAssignChartNos   bool `json:"auto_assign_chart_nos"`
	ShowInactivePatients bool `json:"show_inactive_patients"`

	AppointmentReminderDays int  `json:"appointment_reminder_days"`
	RecallIntervalMonths    int  `json:"recall_interval_months"`
	AllowDoubleBooking      bool `json:"allow_double_booking"`
	PrintDuplicateReceipts  bool `json:"print_duplicate_receipts"`
	TrackReferralSources    bool `json:"track_referral_sources"`
}

// SmartAssistConfig holds the master flag plus the fixed twelve automation
// items. Disabling the master flag hides the items but never clears their
// per-item settings.
type SmartAssistConfig struct {
	Enabled bool                       `json:"enabled"`
	Items   map[string]SmartAssistItem `json:"items"`
}

// SmartAssistItem is the per-item automation setting. IncludeBalance only
// applies to the payment item; Template only to the template-bearing items.
type SmartAssistItem struct {
	Enabled        bool   `json:"enabled"`
	Frequency      string `json:"frequency"`
	IncludeBalance bool   `json:"include_balance,omitempty"`
	Template       string `json:"template,omitempty"`
}

// SmartAssist item keys, in display order.
const (
	SAAppointmentReminder = "appointment_reminder"
	SARecallReminder      = "recall_reminder"
	SAPaymentReminder     = "payment_reminder"
	SABirthdayGreeting    = "birthday_greeting"
	SAReviewRequest       = "review_request"
	SATreatmentFollowUp   = "treatment_follow_up"
	SAConsentGeneral      = "consent_general"
	SAConsentSurgical     = "consent_surgical"
	SAConsentOrtho        = "consent_ortho"
	SAConsentAnesthesia   = "consent_anesthesia"
	SAMedicalHistory      = "medical_history"
	SAHIPAA               = "hipaa"
)

// SmartAssistItemKeys lists all twelve item keys in display order.
var SmartAssistItemKeys = []string{
	SAAppointmentReminder,
	SARecallReminder,
	SAPaymentReminder,
	SABirthdayGreeting,
	SAReviewRequest,
	SATreatmentFollowUp,
	SAConsentGeneral,
	SAConsentSurgical,
	SAConsentOrtho,
	SAConsentAnesthesia,
	SAMedicalHistory,
	SAHIPAA,
}

// templateItems are the keys whose SmartAssist entry carries a message
// template: the four consent items plus medical history and HIPAA.
var templateItems = map[string]bool{
	SAConsentGeneral:    true,
	SAConsentSurgical:   true,
	SAConsentOrtho:      true,
	SAConsentAnesthesia: true,
	SAMedicalHistory:    true,
	SAHIPAA:             true,
}

// ItemSupportsTemplate reports whether the SmartAssist item key carries a
// template selector.
func ItemSupportsTemplate(key string) bool { return templateItems[key] }

// ItemSupportsBalance reports whether the SmartAssist item key carries the
// include-balance flag (payment reminders only).
func ItemSupportsBalance(key string) bool { return key == SAPaymentReminder }

// EnabledItemCount derives the "N of 12 enabled" summary. It is never stored.
func (c SmartAssistConfig) EnabledItemCount() int {
	n := 0
	for _, key := range SmartAssistItemKeys {
		if c.Items[key].Enabled {
			n++
		}
	}
	return n
}
