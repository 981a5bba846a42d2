package response

import (
	"fmt"
	"strings"

	"account-plan-be/pkg/planner"
)

// RenderPlan renders the plan as section blocks in the fixed section order:
// a humanized title per block, blocks joined by blank lines. Absent
// sections are skipped.
func RenderPlan(plan map[string]string) string {
	blocks := make([]string, 0, len(planner.SectionKeys))
	for _, key := range planner.SectionKeys {
		text, ok := plan[key]
		if !ok {
			continue
		}
		blocks = append(blocks, fmt.Sprintf("### %s\n%s", planner.SectionTitle(key), text))
	}
	return strings.Join(blocks, "\n\n")
}

// Onboarding is the discovery-mode reply when no company could be extracted.
func Onboarding() string {
	return "Hi! I'm your Company Research Assistant.\n\n" +
		"Tell me which company to research, e.g. **\"Research Zeta company\"**."
}

// ResearchAck acknowledges a newly identified company and previews the
// research flow.
func ResearchAck(company string) string {
	return fmt.Sprintf("Great, I'll research **%s**.\n\n", company) +
		"I'll start with company overview and recent news, then move to org map, tech landscape, " +
		"opportunities, and risks.\n\n" +
		"You can also tell me if you want a specific focus (e.g. \"focus on AI initiatives\")."
}

// LostCompany asks the user to restate the company after a defensive reset
// to discovery.
func LostCompany() string {
	return "I lost track of the company name. Could you tell me the company again?"
}

// ResearchNarrative appends the planning call-to-action to the research
// pass output.
func ResearchNarrative(researchReply string) string {
	return researchReply + "\n\n" +
		"Based on this, I can now generate a structured account plan.\n" +
		"Type **\"generate plan\"** or tell me what to focus on " +
		"(e.g. \"focus on EMEA enterprise deals\")."
}

// PlanGenerated presents the initial plan with edit hints.
func PlanGenerated(company, planText string) string {
	return fmt.Sprintf("Here's the initial account plan for **%s**:\n\n%s\n\n", company, planText) +
		"You can say things like:\n" +
		"- \"Edit opportunities_for_us to focus on AI products\"\n" +
		"- \"Rewrite risks_and_red_flags to be shorter\"\n" +
		"- \"Update next_steps for an enterprise sales motion\""
}

// PlanTailored presents a plan generated with a user focus hint.
func PlanTailored(planText string) string {
	return "Got it, I've tailored the plan based on your preferences.\n\n" +
		planText + "\n\n" +
		"You can now ask me to tweak specific sections."
}

// MissingPlan asks the user to generate a plan first after a defensive
// reset to planning.
func MissingPlan() string {
	return "Looks like we don't have an account plan yet. Say **\"generate plan\"** to create one."
}

// EditApplied confirms a section update and shows the full plan.
func EditApplied(sectionKey, planText string) string {
	return fmt.Sprintf("I've updated **%s** based on your feedback.\n\n", sectionKey) +
		"Here is the updated account plan:\n\n" +
		planText + "\n\n" +
		"You can continue refining any section or ask for a quick summary."
}

// EditNoChange tells the user no section was modified. The source claimed
// success even for no-op edits; we surface the no-op explicitly instead.
func EditNoChange(planText string) string {
	return "I couldn't map that request to a plan section, so no changes were applied.\n\n" +
		"Here is the current account plan:\n\n" +
		planText + "\n\n" +
		"Try naming a section, e.g. \"Rewrite risks_and_red_flags to be shorter\"."
}
