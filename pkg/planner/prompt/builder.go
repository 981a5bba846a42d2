package prompt

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Builder composes system/user instruction pairs for each workflow phase.
// The persona tag only modulates tone; it is passed through verbatim and
// never validated.
type Builder struct {
	persona string
}

// NewBuilder creates a prompt builder for the given persona.
func NewBuilder(persona string) *Builder {
	return &Builder{persona: persona}
}

// ExtractionSystem instructs the model to pull a company name out of free
// text, or return nothing when unsure. Persona does not apply here.
func ExtractionSystem() string {
	return "You extract company names from text. " +
		"Return ONLY the company name as plain text, or an empty string if not sure."
}

// ResearchPrompt builds the single research pass for a company.
func (b *Builder) ResearchPrompt(company string) (string, string) {
	var system strings.Builder

	system.WriteString("You are an AI company research assistant building account plans.\n\n")
	system.WriteString("You ALWAYS:\n")
	system.WriteString("1) Break research into steps (company overview, products, market, recent news, hiring, risks).\n")
	system.WriteString("2) Mention research updates explicitly like:\n")
	system.WriteString("   - \"Step 1: Looking at company overview...\"\n")
	system.WriteString("   - \"Step 2: Checking recent news...\"\n")
	system.WriteString("3) If you see conflicting info, say so and ask if the user wants a deeper dive.\n")
	system.WriteString("4) At the end, give a concise bullet summary that will feed into an account plan.\n\n")
	b.writePersonaGuidance(&system)
	system.WriteString("\nDo NOT generate the full account plan here, only research updates + a summary.")

	user := fmt.Sprintf("Research the company '%s' for an enterprise account plan. Show your steps and conflicts if any.", company)
	return system.String(), user
}

// PlanPrompt builds the JSON-mode account plan generation call. The notes
// argument is the joined research notes, optionally carrying a user focus
// hint appended by the caller.
func (b *Builder) PlanPrompt(company, notes string) (string, string) {
	var system strings.Builder

	system.WriteString("You are creating a structured enterprise account plan based on research.\n\n")
	system.WriteString("Return STRICT JSON with keys:\n")
	system.WriteString("- company_overview\n")
	system.WriteString("- key_initiatives\n")
	system.WriteString("- org_map_and_stakeholders\n")
	system.WriteString("- current_tech_landscape\n")
	system.WriteString("- opportunities_for_us\n")
	system.WriteString("- risks_and_red_flags\n")
	system.WriteString("- next_steps\n\n")
	b.writePersonaGuidance(&system)
	system.WriteString("\nWrite crisp, practical content, no fluff. Prefer 3-6 bullet points per section.")

	var user strings.Builder
	user.WriteString("Company: ")
	user.WriteString(company)
	user.WriteString("\n\nResearch notes:\n")
	user.WriteString(notes)
	user.WriteString("\n\nCreate the account plan JSON now.")

	return system.String(), user.String()
}

// EditPrompt builds the JSON-mode edit call against the current plan.
func (b *Builder) EditPrompt(company string, plan map[string]string, request string) (string, string, error) {
	planJSON, err := json.Marshal(plan)
	if err != nil {
		return "", "", fmt.Errorf("marshal current plan: %w", err)
	}

	var system strings.Builder
	system.WriteString("You help users edit an account plan.\n\n")
	system.WriteString("You MUST return JSON with:\n")
	system.WriteString("- section_key: one of\n")
	system.WriteString("  [\"company_overview\", \"key_initiatives\", \"org_map_and_stakeholders\",\n")
	system.WriteString("   \"current_tech_landscape\", \"opportunities_for_us\",\n")
	system.WriteString("   \"risks_and_red_flags\", \"next_steps\"]\n")
	system.WriteString("- updated_text: full updated content for that section (overwrite previous).\n\n")
	system.WriteString("Be helpful and follow the user's instructions.\n")
	b.writePersonaGuidance(&system)

	var user strings.Builder
	user.WriteString("Company: ")
	user.WriteString(company)
	user.WriteString("\n\nCurrent plan (JSON):\n")
	user.Write(planJSON)
	user.WriteString("\n\nUser edit request:\n")
	user.WriteString(request)

	return system.String(), user.String(), nil
}

func (b *Builder) writePersonaGuidance(system *strings.Builder) {
	system.WriteString("User persona: ")
	system.WriteString(b.persona)
	system.WriteString(".\n")
	system.WriteString("- efficient => be concise.\n")
	system.WriteString("- confused => be more guiding and explanatory.\n")
	system.WriteString("- chatty => friendly tone, but still structured.\n")
	system.WriteString("- edge => robust to weird questions, and gently pull back to company research.\n")
}
