package integration

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dentc/officesetup/internal/domain/office"
	"github.com/dentc/officesetup/internal/domain/setup"
	"github.com/dentc/officesetup/internal/platform/middleware"
	"github.com/dentc/officesetup/internal/platform/rest"
)

// startServer wires the in-memory repository behind the HTTP handler the same
// way cmd/officesetup does, minus auth.
func startServer(t *testing.T) *httptest.Server {
	t.Helper()

	repo := office.NewMemoryRepository()
	repo.Seed(office.DemoOffices(), office.DemoMetadata())

	logger := zerolog.Nop()
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())

	office.NewHandler(repo).RegisterRoutes(e.Group("/api/v1"))

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return srv
}

func newSession(t *testing.T, srv *httptest.Server) *setup.Session {
	t.Helper()
	client := rest.New(srv.URL, zerolog.Nop(), rest.WithTimeout(5*time.Second))
	repo := office.NewHTTPRepository(client)
	return setup.NewSession(repo, zerolog.Nop())
}

func TestOfficeListAndSelect(t *testing.T) {
	srv := startServer(t)
	sess := newSession(t, srv)
	ctx := context.Background()

	require.NoError(t, sess.Refresh(ctx))
	require.Len(t, sess.Offices(), 3)

	// filter narrows without refetching
	assert.Len(t, sess.Filter("msd"), 1)
	assert.Len(t, sess.Filter("dent"), 2)

	require.NoError(t, sess.Select(ctx, 1001))
	assert.Equal(t, setup.ModeView, sess.Mode())
	assert.Equal(t, setup.TabInfo, sess.ActiveTab())
	assert.Equal(t, "Main Street Dental", sess.Draft().Value().Name)
	assert.Len(t, sess.Draft().Value().Holidays, 2)
}

func TestEditSaveValidationGate(t *testing.T) {
	srv := startServer(t)
	sess := newSession(t, srv)
	ctx := context.Background()

	require.NoError(t, sess.Refresh(ctx))
	require.NoError(t, sess.Select(ctx, 1001))
	sess.StartEdit()

	info := setup.NewInfoTab(office.NewHTTPRepository(rest.New(srv.URL, zerolog.Nop())), sess.Draft(), zerolog.Nop())
	info.SetName("")
	err := sess.Save()
	require.Error(t, err)
	// session survives a rejected save
	assert.Equal(t, setup.ModeEdit, sess.Mode())

	info.SetName("Main Street Dental Group")
	require.NoError(t, sess.Save())
	assert.Equal(t, setup.ModeNone, sess.Mode())
}

func TestAddOfficeDefaults(t *testing.T) {
	srv := startServer(t)
	sess := newSession(t, srv)
	ctx := context.Background()

	require.NoError(t, sess.Refresh(ctx))
	sess.StartAdd()

	draft := sess.Draft().Value()
	assert.Equal(t, 1004, draft.ID)
	assert.Equal(t, 15, draft.SchedulerInterval)
	assert.False(t, draft.Schedule.Monday.Closed)
	assert.True(t, draft.Schedule.Sunday.Closed)
	assert.Equal(t, 0, draft.SmartAssist.EnabledItemCount())
}

func TestMetadataAndFeeScheduleReconcile(t *testing.T) {
	srv := startServer(t)
	sess := newSession(t, srv)
	ctx := context.Background()
	client := rest.New(srv.URL, zerolog.Nop())
	repo := office.NewHTTPRepository(client)

	require.NoError(t, sess.Refresh(ctx))
	// office 1002 carries a legacy fee schedule reference stored by name
	require.NoError(t, sess.Select(ctx, 1002))
	require.Equal(t, "Standard 2024", sess.Draft().Value().StandardFeeScheduleID)

	info := setup.NewInfoTab(repo, sess.Draft(), zerolog.Nop())
	require.NoError(t, info.LoadMetadata(ctx))

	assert.Len(t, info.Providers, 3)
	assert.Len(t, info.Standard, 2)
	assert.Len(t, info.UCR, 2)
	// reconciled to the matching schedule's id
	assert.Equal(t, "10", sess.Draft().Value().StandardFeeScheduleID)
}

func TestCreateProviderRoundTrip(t *testing.T) {
	srv := startServer(t)
	sess := newSession(t, srv)
	ctx := context.Background()
	repo := office.NewHTTPRepository(rest.New(srv.URL, zerolog.Nop()))

	require.NoError(t, sess.Refresh(ctx))
	sess.StartAdd()

	info := setup.NewInfoTab(repo, sess.Draft(), zerolog.Nop())
	require.NoError(t, info.LoadMetadata(ctx))

	created, err := info.CreateProvider(ctx, "Dr. New Provider", "1234567890", "")
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Len(t, info.Providers, 4)
	// the new provider is selected into the draft
	draft := sess.Draft().Value()
	assert.NotEmpty(t, draft.BillingProviderID)
	assert.Equal(t, "Dr. New Provider", draft.BillingProviderName)
}

func TestHolidayCopyAcrossOffices(t *testing.T) {
	srv := startServer(t)
	sess := newSession(t, srv)
	ctx := context.Background()
	repo := office.NewHTTPRepository(rest.New(srv.URL, zerolog.Nop()))

	require.NoError(t, sess.Refresh(ctx))
	// replace 1003's single closure with 1001's set
	require.NoError(t, sess.Select(ctx, 1003))
	sess.StartEdit()

	tab := setup.NewHolidaysTab(repo, sess.Draft(), zerolog.Nop())
	sources := tab.CopySources(sess.Offices())
	assert.Len(t, sources, 2) // everyone but the draft office

	n, err := tab.Copy(ctx, 1001, setup.CopyOverwrite)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	got := sess.Draft().Value().Holidays
	require.Len(t, got, 2)
	for _, h := range got {
		assert.NotEqual(t, "hol-1", h.ID)
		assert.NotEqual(t, "hol-2", h.ID)
	}
}

func TestStaleResponseCancellation(t *testing.T) {
	srv := startServer(t)
	sess := newSession(t, srv)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := sess.Refresh(ctx)
	require.Error(t, err)
	assert.Empty(t, sess.Offices())
}
