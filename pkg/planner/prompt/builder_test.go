package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResearchPromptStructure(t *testing.T) {
	b := NewBuilder("efficient")
	system, user := b.ResearchPrompt("Acme Corp")

	assert.Contains(t, system, "Break research into steps")
	assert.Contains(t, system, "company overview, products, market, recent news, hiring, risks")
	assert.Contains(t, system, "conflicting info")
	assert.Contains(t, system, "bullet summary")
	assert.Contains(t, system, "Do NOT generate the full account plan here")
	assert.Contains(t, system, "User persona: efficient.")
	assert.Contains(t, user, "Research the company 'Acme Corp'")
}

func TestPlanPromptListsAllSevenKeys(t *testing.T) {
	b := NewBuilder("confused")
	system, user := b.PlanPrompt("Acme Corp", "note one\n\nnote two")

	for _, key := range []string{
		"company_overview",
		"key_initiatives",
		"org_map_and_stakeholders",
		"current_tech_landscape",
		"opportunities_for_us",
		"risks_and_red_flags",
		"next_steps",
	} {
		assert.Contains(t, system, key)
	}
	assert.Contains(t, system, "STRICT JSON")
	assert.Contains(t, system, "3-6 bullet points")
	assert.Contains(t, user, "Company: Acme Corp")
	assert.Contains(t, user, "note one\n\nnote two")
}

func TestEditPromptEmbedsCurrentPlan(t *testing.T) {
	b := NewBuilder("edge")
	plan := map[string]string{"next_steps": "call them"}

	system, user, err := b.EditPrompt("Acme Corp", plan, "make it shorter")

	assert.NoError(t, err)
	assert.Contains(t, system, "section_key")
	assert.Contains(t, system, "updated_text")
	assert.Contains(t, user, `"next_steps":"call them"`)
	assert.Contains(t, user, "make it shorter")
}

func TestPersonaPassesThroughVerbatim(t *testing.T) {
	// Unknown personas are advisory, never validated.
	b := NewBuilder("grumpy-pirate")
	system, _ := b.ResearchPrompt("Acme Corp")
	assert.Contains(t, system, "User persona: grumpy-pirate.")
}
