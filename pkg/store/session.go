package store

import "time"

// Session represents the active conversation state for one session id
type Session struct {
	ID      string `json:"id"`
	Mode    string `json:"mode"`    // "discovery" | "research" | "planning" | "editing"
	Persona string `json:"persona"` // tone tag, overwritten on every incoming message

	// Company under research. Empty only while in discovery.
	TargetCompany string `json:"target_company"`

	// Accumulated research summaries, append-only during research passes.
	ResearchNotes []string `json:"research_notes"`

	// Account plan sections, keyed by the fixed section keys.
	AccountPlan map[string]string `json:"account_plan"`

	UpdatedAt time.Time `json:"updated_at"`
}

const (
	ModeDiscovery = "discovery"
	ModeResearch  = "research"
	ModePlanning  = "planning"
	ModeEditing   = "editing"

	DefaultPersona = "efficient"
)

// NewSession creates a fresh session in discovery mode.
func NewSession(id string) *Session {
	return &Session{
		ID:        id,
		Mode:      ModeDiscovery,
		Persona:   DefaultPersona,
		UpdatedAt: time.Now(),
	}
}

// Clone returns a deep copy. Transitions work on a clone and save it back
// only on success, so a failed transition never leaves partial writes.
func (s *Session) Clone() *Session {
	c := *s
	if s.ResearchNotes != nil {
		c.ResearchNotes = make([]string, len(s.ResearchNotes))
		copy(c.ResearchNotes, s.ResearchNotes)
	}
	if s.AccountPlan != nil {
		c.AccountPlan = make(map[string]string, len(s.AccountPlan))
		for k, v := range s.AccountPlan {
			c.AccountPlan[k] = v
		}
	}
	return &c
}

// HasPlan reports whether an account plan has been generated.
func (s *Session) HasPlan() bool {
	return len(s.AccountPlan) > 0
}
