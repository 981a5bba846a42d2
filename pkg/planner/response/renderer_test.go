package response

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderPlanKeepsSectionOrder(t *testing.T) {
	plan := map[string]string{
		"next_steps":       "call them",
		"company_overview": "big company",
	}

	rendered := RenderPlan(plan)

	overviewIdx := strings.Index(rendered, "### Company Overview")
	stepsIdx := strings.Index(rendered, "### Next Steps")
	assert.NotEqual(t, -1, overviewIdx)
	assert.NotEqual(t, -1, stepsIdx)
	assert.Less(t, overviewIdx, stepsIdx, "sections must render in fixed intent order")

	assert.Contains(t, rendered, "### Company Overview\nbig company")
	assert.Contains(t, rendered, "### Next Steps\ncall them")

	// Blocks joined by blank lines.
	assert.Equal(t, 2, len(strings.Split(rendered, "\n\n")))
}

func TestRenderPlanSkipsAbsentSections(t *testing.T) {
	rendered := RenderPlan(map[string]string{"next_steps": "call them"})
	assert.Equal(t, "### Next Steps\ncall them", rendered)
}

func TestRenderPlanEmpty(t *testing.T) {
	assert.Equal(t, "", RenderPlan(nil))
}
