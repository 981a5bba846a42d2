package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSessionStartsInDiscovery(t *testing.T) {
	s := NewSession("s1")
	assert.Equal(t, ModeDiscovery, s.Mode)
	assert.Equal(t, DefaultPersona, s.Persona)
	assert.Empty(t, s.TargetCompany)
	assert.False(t, s.HasPlan())
}

func TestCloneIsDeep(t *testing.T) {
	s := NewSession("s1")
	s.ResearchNotes = []string{"note"}
	s.AccountPlan = map[string]string{"next_steps": "old"}

	c := s.Clone()
	c.ResearchNotes = append(c.ResearchNotes, "another")
	c.AccountPlan["next_steps"] = "new"
	c.Mode = ModeEditing

	assert.Len(t, s.ResearchNotes, 1)
	assert.Equal(t, "old", s.AccountPlan["next_steps"])
	assert.Equal(t, ModeDiscovery, s.Mode)
}
