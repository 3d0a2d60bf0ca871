package office

import (
	"context"
	"errors"
)

// ErrNotFound is returned when an office id is unknown to the backend.
var ErrNotFound = errors.New("office not found")

// Fee-schedule type discriminators as the metadata endpoint reports them.
const (
	FeeScheduleStandard = "STANDARD"
	FeeScheduleUCR      = "UCR"
)

// BillingProvider is a metadata reference entry.
type BillingProvider struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	NPI     string `json:"npi,omitempty"`
	License string `json:"license,omitempty"`
}

// FeeSchedule is a metadata reference entry, discriminated by Type into the
// STANDARD and UCR buckets.
type FeeSchedule struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// Metadata is the reference data the Info editor loads on mount.
type Metadata struct {
	BillingProviders []BillingProvider `json:"billing_providers"`
	FeeSchedules     []FeeSchedule     `json:"fee_schedules"`
	TimeZones        []string          `json:"time_zones"`
}

// PartitionFeeSchedules splits the metadata list into the STANDARD and UCR
// buckets. Entries with an unknown type are dropped.
func PartitionFeeSchedules(all []FeeSchedule) (standard, ucr []FeeSchedule) {
	for _, fs := range all {
		switch fs.Type {
		case FeeScheduleStandard:
			standard = append(standard, fs)
		case FeeScheduleUCR:
			ucr = append(ucr, fs)
		}
	}
	return standard, ucr
}

// CreateProviderRequest is the payload for creating a billing provider.
type CreateProviderRequest struct {
	Name    string `json:"name" validate:"required"`
	NPI     string `json:"npi,omitempty"`
	License string `json:"license,omitempty"`
}

// CreateFeeScheduleRequest is the payload for creating a fee schedule in
// either bucket.
type CreateFeeScheduleRequest struct {
	Name string `json:"name" validate:"required"`
	Type string `json:"type" validate:"required,oneof=STANDARD UCR"`
}

// Repository is the data gateway the setup form depends on. The production
// implementation speaks to the practice-management REST API; the in-memory
// implementation backs the demo dataset and tests.
type Repository interface {
	ListOffices(ctx context.Context) ([]Summary, error)
	GetSetup(ctx context.Context, officeID int) (*Office, error)
	GetMetadata(ctx context.Context) (*Metadata, error)
	CreateBillingProvider(ctx context.Context, req CreateProviderRequest) (*BillingProvider, error)
	CreateFeeSchedule(ctx context.Context, req CreateFeeScheduleRequest) (*FeeSchedule, error)
}
