package office

import (
	"context"
	"sort"
	"strconv"
	"sync"
)

// MemoryRepository is a thread-safe in-memory Repository. It backs the demo
// dataset when running detached from a real backend, and doubles as the
// store behind the mock API server.
type MemoryRepository struct {
	mu       sync.RWMutex
	offices  map[int]*Office
	metadata Metadata
	nextRef  int
}

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		offices: make(map[int]*Office),
		nextRef: 1,
	}
}

// Seed replaces the repository contents with the given offices and metadata.
func (r *MemoryRepository) Seed(offices []Office, meta Metadata) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.offices = make(map[int]*Office, len(offices))
	for i := range offices {
		o := offices[i]
		r.offices[o.ID] = &o
	}
	r.metadata = meta
	ref := 1
	for _, p := range meta.BillingProviders {
		if n, err := strconv.Atoi(p.ID); err == nil && n >= ref {
			ref = n + 1
		}
	}
	for _, fs := range meta.FeeSchedules {
		if n, err := strconv.Atoi(fs.ID); err == nil && n >= ref {
			ref = n + 1
		}
	}
	r.nextRef = ref
}

func (r *MemoryRepository) ListOffices(_ context.Context) ([]Summary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Summary, 0, len(r.offices))
	for _, o := range r.offices {
		out = append(out, Summary{ID: o.ID, ShortID: o.ShortID, Name: o.Name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *MemoryRepository) GetSetup(_ context.Context, officeID int) (*Office, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.offices[officeID]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *o
	cp.Holidays = append([]Holiday(nil), o.Holidays...)
	cp.Operatories = append([]Operatory(nil), o.Operatories...)
	if o.SmartAssist.Items != nil {
		cp.SmartAssist.Items = make(map[string]SmartAssistItem, len(o.SmartAssist.Items))
		for k, v := range o.SmartAssist.Items {
			cp.SmartAssist.Items[k] = v
		}
	}
	return &cp, nil
}

func (r *MemoryRepository) GetMetadata(_ context.Context) (*Metadata, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	meta := Metadata{
		BillingProviders: append([]BillingProvider(nil), r.metadata.BillingProviders...),
		FeeSchedules:     append([]FeeSchedule(nil), r.metadata.FeeSchedules...),
		TimeZones:        append([]string(nil), r.metadata.TimeZones...),
	}
	return &meta, nil
}

func (r *MemoryRepository) CreateBillingProvider(_ context.Context, req CreateProviderRequest) (*BillingProvider, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	created := BillingProvider{
		ID:      strconv.Itoa(r.nextRef),
		Name:    req.Name,
		NPI:     req.NPI,
		License: req.License,
	}
	r.nextRef++
	r.metadata.BillingProviders = append(r.metadata.BillingProviders, created)
	return &created, nil
}

func (r *MemoryRepository) CreateFeeSchedule(_ context.Context, req CreateFeeScheduleRequest) (*FeeSchedule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	created := FeeSchedule{
		ID:   strconv.Itoa(r.nextRef),
		Name: req.Name,
		Type: req.Type,
	}
	r.nextRef++
	r.metadata.FeeSchedules = append(r.metadata.FeeSchedules, created)
	return &created, nil
}
