package setup

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/dentc/officesetup/internal/domain/office"
)

// InfoTab edits identity, location, contact and billing, and owns the
// reference data (providers, fee schedules, time zones) it loads on mount.
type InfoTab struct {
	repo  office.Repository
	draft *Draft
	log   zerolog.Logger

	Providers []office.BillingProvider
	Standard  []office.FeeSchedule
	UCR       []office.FeeSchedule
	TimeZones []string
}

// NewInfoTab creates the Info editor over the draft.
func NewInfoTab(repo office.Repository, draft *Draft, log zerolog.Logger) *InfoTab {
	return &InfoTab{repo: repo, draft: draft, log: log}
}

// LoadMetadata fetches the reference lists and partitions fee schedules into
// the STANDARD and UCR buckets. On failure the lists stay empty and the tab
// remains usable; the caller decides whether to surface the error. After a
// successful load the draft's legacy by-name fee-schedule references are
// reconciled to ids, once.
func (t *InfoTab) LoadMetadata(ctx context.Context) error {
	meta, err := t.repo.GetMetadata(ctx)
	if err != nil {
		t.log.Error().Err(err).Msg("load office metadata")
		return fmt.Errorf("load office metadata: %w", err)
	}
	t.Providers = meta.BillingProviders
	t.Standard, t.UCR = office.PartitionFeeSchedules(meta.FeeSchedules)
	t.TimeZones = meta.TimeZones

	t.reconcileFeeSchedules()
	return nil
}

// reconcileFeeSchedules rewrites a fee-schedule reference stored as a name
// (legacy records) to the matching entry's id. A reference that already is a
// known id is left alone, so running this again is a no-op rather than a
// self-retriggering update loop.
func (t *InfoTab) reconcileFeeSchedules() {
	if id, ok := reconcileRef(t.draft.Value().StandardFeeScheduleID, t.Standard); ok {
		t.draft.Apply(Patch{StandardFeeScheduleID: strPtr(id)})
		t.log.Debug().Str("resolved_id", id).Msg("reconciled standard fee schedule reference")
	}
	if id, ok := reconcileRef(t.draft.Value().UCRFeeScheduleID, t.UCR); ok {
		t.draft.Apply(Patch{UCRFeeScheduleID: strPtr(id)})
		t.log.Debug().Str("resolved_id", id).Msg("reconciled UCR fee schedule reference")
	}
}

// reconcileRef returns the id to rewrite ref to, and whether a rewrite is
// needed. An empty ref or one matching a known id short-circuits.
func reconcileRef(ref string, bucket []office.FeeSchedule) (string, bool) {
	if ref == "" {
		return "", false
	}
	for _, fs := range bucket {
		if fs.ID == ref {
			return "", false
		}
	}
	for _, fs := range bucket {
		if fs.Name == ref {
			return fs.ID, true
		}
	}
	return "", false
}

// SetName patches the office display name.
func (t *InfoTab) SetName(name string) {
	t.draft.Apply(Patch{Name: strPtr(name)})
}

// SetShortID normalizes (upper-case, max six characters) and patches the
// short display code.
func (t *InfoTab) SetShortID(shortID string) {
	t.draft.Apply(Patch{ShortID: strPtr(office.NormalizeShortID(shortID))})
}

// SetTimeZone patches the IANA time zone.
func (t *InfoTab) SetTimeZone(tz string) {
	t.draft.Apply(Patch{TimeZone: strPtr(tz)})
}

// SetAddress patches the location block field by field.
func (t *InfoTab) SetAddress(line1, line2, city, state, zip string) {
	t.draft.Apply(Patch{
		Address1: strPtr(line1),
		Address2: strPtr(line2),
		City:     strPtr(city),
		State:    strPtr(state),
		Zip:      strPtr(zip),
	})
}

// SetContact patches the phone and email fields.
func (t *InfoTab) SetContact(phone1, phone2, ext, email string) {
	t.draft.Apply(Patch{
		Phone1:   strPtr(phone1),
		Phone2:   strPtr(phone2),
		PhoneExt: strPtr(ext),
		Email:    strPtr(email),
	})
}

// SelectProvider patches the billing provider reference, denormalizing the
// display name alongside the id.
func (t *InfoTab) SelectProvider(id string) {
	name := ""
	for _, p := range t.Providers {
		if p.ID == id {
			name = p.Name
			break
		}
	}
	t.draft.Apply(Patch{
		BillingProviderID:   strPtr(id),
		BillingProviderName: strPtr(name),
	})
}

// SetSchedulerInterval patches the grid interval if it is one of the
// accepted sizes.
func (t *InfoTab) SetSchedulerInterval(minutes int) error {
	if !office.ValidSchedulerInterval(minutes) {
		return fmt.Errorf("invalid scheduler interval: %d", minutes)
	}
	t.draft.Apply(Patch{SchedulerInterval: intPtr(minutes)})
	return nil
}

// SelectStandardFeeSchedule patches the standard default.
func (t *InfoTab) SelectStandardFeeSchedule(id string) {
	t.draft.Apply(Patch{StandardFeeScheduleID: strPtr(id)})
}

// SelectUCRFeeSchedule patches the UCR default.
func (t *InfoTab) SelectUCRFeeSchedule(id string) {
	t.draft.Apply(Patch{UCRFeeScheduleID: strPtr(id)})
}

// CreateProvider creates a billing provider inline, appends it to the local
// bucket, and selects it as the draft's provider. On failure nothing is
// applied locally.
func (t *InfoTab) CreateProvider(ctx context.Context, name, npi, license string) (*office.BillingProvider, error) {
	created, err := t.repo.CreateBillingProvider(ctx, office.CreateProviderRequest{
		Name:    name,
		NPI:     npi,
		License: license,
	})
	if err != nil {
		t.log.Error().Err(err).Msg("create billing provider")
		return nil, fmt.Errorf("create billing provider: %w", err)
	}
	t.Providers = append(t.Providers, *created)
	t.draft.Apply(Patch{
		BillingProviderID:   strPtr(created.ID),
		BillingProviderName: strPtr(created.Name),
	})
	return created, nil
}

// CreateFeeSchedule creates a fee schedule inline in the given bucket
// (STANDARD or UCR), appends it locally, and selects it as that bucket's
// draft default. On failure nothing is applied locally.
func (t *InfoTab) CreateFeeSchedule(ctx context.Context, name, typ string) (*office.FeeSchedule, error) {
	created, err := t.repo.CreateFeeSchedule(ctx, office.CreateFeeScheduleRequest{
		Name: name,
		Type: typ,
	})
	if err != nil {
		t.log.Error().Err(err).Msg("create fee schedule")
		return nil, fmt.Errorf("create fee schedule: %w", err)
	}
	switch created.Type {
	case office.FeeScheduleStandard:
		t.Standard = append(t.Standard, *created)
		t.draft.Apply(Patch{StandardFeeScheduleID: strPtr(created.ID)})
	case office.FeeScheduleUCR:
		t.UCR = append(t.UCR, *created)
		t.draft.Apply(Patch{UCRFeeScheduleID: strPtr(created.ID)})
	}
	return created, nil
}

// SetBilling patches the remaining billing fields.
func (t *InfoTab) SetBilling(taxID string, useLicense bool, openedOn, group string) {
	t.draft.Apply(Patch{
		TaxID:              strPtr(taxID),
		UseProviderLicense: boolPtr(useLicense),
		OpenedOn:           strPtr(openedOn),
		OfficeGroup:        strPtr(group),
	})
}
