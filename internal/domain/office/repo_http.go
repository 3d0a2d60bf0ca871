package office

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/dentc/officesetup/internal/platform/rest"
)

// HTTPRepository speaks to the practice-management REST API through the
// shared client.
type HTTPRepository struct {
	client *rest.Client
}

// NewHTTPRepository wraps the shared REST client as a Repository.
func NewHTTPRepository(client *rest.Client) *HTTPRepository {
	return &HTTPRepository{client: client}
}

func (r *HTTPRepository) ListOffices(ctx context.Context) ([]Summary, error) {
	var rows []wireSummary
	if err := r.client.Do(ctx, http.MethodGet, "/api/v1/offices", nil, &rows); err != nil {
		return nil, fmt.Errorf("list offices: %w", err)
	}
	out := make([]Summary, 0, len(rows))
	for _, row := range rows {
		out = append(out, summaryFromWire(row))
	}
	return out, nil
}

func (r *HTTPRepository) GetSetup(ctx context.Context, officeID int) (*Office, error) {
	var payload wireSetup
	err := r.client.Do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/offices/%d/setup", officeID), nil, &payload)
	if err != nil {
		var apiErr *rest.APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get office setup: %w", err)
	}
	return setupFromWire(payload), nil
}

func (r *HTTPRepository) GetMetadata(ctx context.Context) (*Metadata, error) {
	var meta Metadata
	if err := r.client.Do(ctx, http.MethodGet, "/api/v1/offices/metadata", nil, &meta); err != nil {
		return nil, fmt.Errorf("get office metadata: %w", err)
	}
	return &meta, nil
}

func (r *HTTPRepository) CreateBillingProvider(ctx context.Context, req CreateProviderRequest) (*BillingProvider, error) {
	var created BillingProvider
	if err := r.client.Do(ctx, http.MethodPost, "/api/v1/offices/billing-providers", req, &created); err != nil {
		return nil, fmt.Errorf("create billing provider: %w", err)
	}
	return &created, nil
}

// CreateFeeSchedule posts to the offices-scoped endpoint. The backend also
// exposes a bare /api/v1/fee-schedules route for the same resource; the
// client sticks to one of them.
func (r *HTTPRepository) CreateFeeSchedule(ctx context.Context, req CreateFeeScheduleRequest) (*FeeSchedule, error) {
	var created FeeSchedule
	if err := r.client.Do(ctx, http.MethodPost, "/api/v1/offices/fee-schedules", req, &created); err != nil {
		return nil, fmt.Errorf("create fee schedule: %w", err)
	}
	return &created, nil
}
