package state

import (
	"log"
	"time"

	"account-plan-be/pkg/store"
)

// Manager handles session state transitions
type Manager struct {
	logger *log.Logger
}

// NewManager creates a new state manager
func NewManager(logger *log.Logger) *Manager {
	return &Manager{logger: logger}
}

// TransitionToResearch records the discovered company and moves the
// session into the research phase.
func (m *Manager) TransitionToResearch(session *store.Session, company string) {
	session.TargetCompany = company
	session.Mode = store.ModeResearch
	session.UpdatedAt = time.Now()
	m.logger.Printf("[STATE] %s -> RESEARCH: company %q", session.ID, company)
}

// TransitionToPlanning appends the research summary and moves the session
// into the planning phase. Notes only accumulate, they are never replaced.
func (m *Manager) TransitionToPlanning(session *store.Session, researchSummary string) {
	session.ResearchNotes = append(session.ResearchNotes, researchSummary)
	session.Mode = store.ModePlanning
	session.UpdatedAt = time.Now()
	m.logger.Printf("[STATE] %s -> PLANNING: %d research notes", session.ID, len(session.ResearchNotes))
}

// TransitionToEditing stores a freshly generated plan and moves the
// session into the editing phase.
func (m *Manager) TransitionToEditing(session *store.Session, plan map[string]string) {
	session.AccountPlan = plan
	session.Mode = store.ModeEditing
	session.UpdatedAt = time.Now()
	m.logger.Printf("[STATE] %s -> EDITING: %d plan sections", session.ID, len(plan))
}

// DemoteToDiscovery resets a session that lost its target company.
func (m *Manager) DemoteToDiscovery(session *store.Session) {
	session.TargetCompany = ""
	session.Mode = store.ModeDiscovery
	session.UpdatedAt = time.Now()
	m.logger.Printf("[STATE] %s -> DISCOVERY: lost company, recovering", session.ID)
}

// DemoteToPlanning resets a session that reached editing without a plan.
func (m *Manager) DemoteToPlanning(session *store.Session) {
	session.Mode = store.ModePlanning
	session.UpdatedAt = time.Now()
	m.logger.Printf("[STATE] %s -> PLANNING: no plan yet, recovering", session.ID)
}

// ApplyEdit overwrites one plan section in place.
func (m *Manager) ApplyEdit(session *store.Session, sectionKey, updatedText string) {
	session.AccountPlan[sectionKey] = updatedText
	session.UpdatedAt = time.Now()
	m.logger.Printf("[STATE] %s EDITING: updated section %q", session.ID, sectionKey)
}
