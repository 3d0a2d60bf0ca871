package setup

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/dentc/officesetup/internal/domain/office"
)

// Mode is the editing intent of the current session. Exactly one intent is
// active at a time; view and edit share the same data state and differ only
// in whether the form is read-only.
type Mode string

const (
	ModeNone Mode = ""
	ModeView Mode = "view"
	ModeAdd  Mode = "add"
	ModeEdit Mode = "edit"
)

// Tab names one of the eight form tabs.
type Tab string

const (
	TabInfo        Tab = "info"
	TabStatement   Tab = "statement"
	TabIntegration Tab = "integration"
	TabOperatories Tab = "operatories"
	TabSchedule    Tab = "schedule"
	TabHolidays    Tab = "holidays"
	TabAdvanced    Tab = "advanced"
	TabSmartAssist Tab = "smart_assist"
)

// Session is the list/detail shell: it owns the office list, the selection,
// the mode, the active tab, and the draft lifecycle.
type Session struct {
	repo office.Repository
	log  zerolog.Logger

	offices []office.Summary
	draft   *Draft
	mode    Mode
	tab     Tab
}

// NewSession creates a session over the given repository.
func NewSession(repo office.Repository, log zerolog.Logger) *Session {
	return &Session{repo: repo, log: log}
}

// Refresh reloads the office list from the gateway.
func (s *Session) Refresh(ctx context.Context) error {
	offices, err := s.repo.ListOffices(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("load office list")
		return fmt.Errorf("load office list: %w", err)
	}
	s.offices = offices
	return nil
}

// Offices returns the cached office list.
func (s *Session) Offices() []office.Summary { return s.offices }

// Filter runs the list search over the cached offices.
func (s *Session) Filter(query string) []office.Summary {
	return office.Search(s.offices, query)
}

// Draft returns the active draft, or nil when no session is open.
func (s *Session) Draft() *Draft { return s.draft }

// Mode returns the current editing intent.
func (s *Session) Mode() Mode { return s.mode }

// ActiveTab returns the currently shown tab.
func (s *Session) ActiveTab() Tab { return s.tab }

// SwitchTab changes the visible tab. The draft carries across tabs.
func (s *Session) SwitchTab(tab Tab) { s.tab = tab }

// Select fetches the office's full setup record, copies it into the draft,
// and opens the detail view on the Info tab in view mode.
func (s *Session) Select(ctx context.Context, officeID int) error {
	o, err := s.repo.GetSetup(ctx, officeID)
	if err != nil {
		s.log.Error().Err(err).Int("office_id", officeID).Msg("load office setup")
		return fmt.Errorf("load office setup: %w", err)
	}
	s.draft = NewDraft(*o)
	s.mode = ModeView
	s.tab = TabInfo
	return nil
}

// StartAdd opens a fresh draft with every section pre-filled with defaults
// and the next sequential office id.
func (s *Session) StartAdd() {
	s.draft = NewDraft(office.NewDefault(s.offices))
	s.mode = ModeAdd
	s.tab = TabInfo
}

// StartEdit flips a viewed record into edit mode.
func (s *Session) StartEdit() {
	if s.mode == ModeView {
		s.mode = ModeEdit
	}
}

// Save runs the required-field gate. On failure it returns a
// *office.ValidationError naming every missing field, leaves the session in
// place, and never contacts the gateway. On success the confirmation is
// simulated and the session returns to the list.
func (s *Session) Save() error {
	if s.draft == nil {
		return fmt.Errorf("no active editing session")
	}
	o := s.draft.Value()
	if err := office.ValidateForSave(&o); err != nil {
		return err
	}
	s.log.Info().Int("office_id", o.ID).Str("mode", string(s.mode)).Msg("office saved")
	s.draft = nil
	s.mode = ModeNone
	return nil
}

// Cancel discards the draft and returns to the list without contacting the
// gateway.
func (s *Session) Cancel() {
	s.draft = nil
	s.mode = ModeNone
}
