package office

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func newTestServer(t *testing.T) (*echo.Echo, *MemoryRepository) {
	t.Helper()
	repo := NewMemoryRepository()
	repo.Seed(DemoOffices(), DemoMetadata())
	e := echo.New()
	NewHandler(repo).RegisterRoutes(e.Group("/api/v1"))
	return e, repo
}

func TestHandler_ListOffices(t *testing.T) {
	e, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/offices", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var rows []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &rows); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 offices, got %d", len(rows))
	}
	// The wire rows carry both id spellings.
	if rows[0]["officeName"] == "" || rows[0]["officeId"] == nil {
		t.Errorf("row missing wire fields: %v", rows[0])
	}
}

func TestHandler_GetSetup_WireHolidayShape(t *testing.T) {
	e, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/offices/1001/setup", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	for _, field := range []string{`"start_date"`, `"end_date"`, `"is_active"`} {
		if !strings.Contains(body, field) {
			t.Errorf("setup payload missing wire field %s", field)
		}
	}
	if strings.Contains(body, `"from_date"`) {
		t.Error("setup payload leaked in-memory holiday field names")
	}
}

func TestHandler_GetSetup_NotFound(t *testing.T) {
	e, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/offices/4242/setup", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestHandler_GetMetadata(t *testing.T) {
	e, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/offices/metadata", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var meta Metadata
	if err := json.Unmarshal(rec.Body.Bytes(), &meta); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(meta.BillingProviders) == 0 || len(meta.FeeSchedules) == 0 || len(meta.TimeZones) == 0 {
		t.Errorf("metadata incomplete: %+v", meta)
	}
}

func TestHandler_CreateBillingProvider(t *testing.T) {
	e, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/offices/billing-providers",
		strings.NewReader(`{"name": "Dr. New", "npi": "999"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var created BillingProvider
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.ID == "" || created.Name != "Dr. New" {
		t.Errorf("unexpected created provider: %+v", created)
	}
}

func TestHandler_CreateBillingProvider_MissingName(t *testing.T) {
	e, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/offices/billing-providers",
		strings.NewReader(`{"npi": "999"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestHandler_CreateFeeSchedule_BothRoutes(t *testing.T) {
	e, _ := newTestServer(t)
	// The same resource is reachable at both paths.
	for _, path := range []string{"/api/v1/offices/fee-schedules", "/api/v1/fee-schedules"} {
		req := httptest.NewRequest(http.MethodPost, path,
			strings.NewReader(`{"name": "Standard 2027", "type": "STANDARD"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		if rec.Code != http.StatusCreated {
			t.Fatalf("%s: status = %d: %s", path, rec.Code, rec.Body.String())
		}
	}
}

func TestHandler_CreateFeeSchedule_BadType(t *testing.T) {
	e, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/offices/fee-schedules",
		strings.NewReader(`{"name": "X", "type": "WEIRD"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
