package setup

import (
	"fmt"

	"github.com/dentc/officesetup/internal/domain/office"
)

// IntegrationTab is a plain field editor over the integrations sub-object.
// Every setter re-patches the whole key.
type IntegrationTab struct {
	draft *Draft
}

// NewIntegrationTab creates the Integration editor over the draft.
func NewIntegrationTab(draft *Draft) *IntegrationTab {
	return &IntegrationTab{draft: draft}
}

// SetEClaims stores the e-claims vendor binding.
func (t *IntegrationTab) SetEClaims(cfg office.EClaimsConfig) {
	in := t.draft.Value().Integrations
	in.EClaims = cfg
	t.draft.Apply(Patch{Integrations: &in})
}

// SetCollections stores the collections-agency binding.
func (t *IntegrationTab) SetCollections(cfg office.CollectionsConfig) {
	in := t.draft.Value().Integrations
	in.Collections = cfg
	t.draft.Apply(Patch{Integrations: &in})
}

// SetImaging stores one of the three fixed imaging slots (0-2).
func (t *IntegrationTab) SetImaging(slot int, sys office.ImagingSystem) error {
	if slot < 0 || slot > 2 {
		return fmt.Errorf("imaging slot out of range: %d", slot)
	}
	in := t.draft.Value().Integrations
	in.Imaging[slot] = sys
	t.draft.Apply(Patch{Integrations: &in})
	return nil
}

// SetSMS stores the text-messaging settings.
func (t *IntegrationTab) SetSMS(cfg office.SMSConfig) {
	in := t.draft.Value().Integrations
	in.SMS = cfg
	t.draft.Apply(Patch{Integrations: &in})
}

// SetPatientPortal stores the patient-facing URLs.
func (t *IntegrationTab) SetPatientPortal(cfg office.PatientPortalConfig) {
	in := t.draft.Value().Integrations
	in.PatientPortal = cfg
	t.draft.Apply(Patch{Integrations: &in})
}

// SetAcceptedCards replaces the accepted card-type set.
func (t *IntegrationTab) SetAcceptedCards(cards []string) {
	in := t.draft.Value().Integrations
	in.AcceptedCards = append([]string(nil), cards...)
	t.draft.Apply(Patch{Integrations: &in})
}
