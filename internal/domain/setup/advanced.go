package setup

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dentc/officesetup/internal/domain/office"
)

// AdvancedTab is a plain field editor over the advanced settings sub-object.
// Numeric fields arrive as text and are coerced here.
type AdvancedTab struct {
	draft *Draft
}

// NewAdvancedTab creates the Advanced editor over the draft.
func NewAdvancedTab(draft *Draft) *AdvancedTab {
	return &AdvancedTab{draft: draft}
}

// Set replaces the whole advanced block.
func (t *AdvancedTab) Set(adv office.AdvancedSettings) {
	t.draft.Apply(Patch{Advanced: &adv})
}

// SetFinanceCharges coerces and stores the finance-charge inputs.
func (t *AdvancedTab) SetFinanceCharges(percent, minimum, graceDays string) error {
	pct, err := parseAmount(percent)
	if err != nil {
		return fmt.Errorf("finance charge percent: %w", err)
	}
	min, err := parseAmount(minimum)
	if err != nil {
		return fmt.Errorf("finance charge minimum: %w", err)
	}
	days, err := parseCount(graceDays)
	if err != nil {
		return fmt.Errorf("grace days: %w", err)
	}
	adv := t.draft.Value().Advanced
	adv.FinanceChargePercent = pct
	adv.FinanceChargeMinimum = min
	adv.FinanceChargeGraceDays = days
	t.draft.Apply(Patch{Advanced: &adv})
	return nil
}

// SetThresholds coerces and stores the billing threshold and small-balance
// write-off inputs.
func (t *AdvancedTab) SetThresholds(billing, writeOff string) error {
	b, err := parseAmount(billing)
	if err != nil {
		return fmt.Errorf("billing threshold: %w", err)
	}
	w, err := parseAmount(writeOff)
	if err != nil {
		return fmt.Errorf("small balance write-off: %w", err)
	}
	adv := t.draft.Value().Advanced
	adv.BillingThreshold = b
	adv.SmallBalanceWriteOff = w
	t.draft.Apply(Patch{Advanced: &adv})
	return nil
}

// SetDefaultDemographics stores the default patient demographics.
func (t *AdvancedTab) SetDefaultDemographics(state, city, zip, areaCode string) {
	adv := t.draft.Value().Advanced
	adv.DefaultState = state
	adv.DefaultCity = city
	adv.DefaultZip = zip
	adv.DefaultAreaCode = areaCode
	t.draft.Apply(Patch{Advanced: &adv})
}

// SetFlags stores the consent/HIPAA/ortho and workflow booleans.
func (t *AdvancedTab) SetFlags(mutate func(*office.AdvancedSettings)) {
	adv := t.draft.Value().Advanced
	mutate(&adv)
	t.draft.Apply(Patch{Advanced: &adv})
}

func parseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	return v, nil
}

func parseCount(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("not a whole number: %q", s)
	}
	return v, nil
}
