package planner

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePlan(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantErr     bool
		wantKeys    int
		wantMissing int
	}{
		{
			name: "complete plan",
			raw: `{
				"company_overview": "a",
				"key_initiatives": "b",
				"org_map_and_stakeholders": "c",
				"current_tech_landscape": "d",
				"opportunities_for_us": "e",
				"risks_and_red_flags": "f",
				"next_steps": "g"
			}`,
			wantKeys:    7,
			wantMissing: 0,
		},
		{
			name:        "missing sections are reported, not fatal",
			raw:         `{"company_overview": "a", "next_steps": "g"}`,
			wantKeys:    2,
			wantMissing: 5,
		},
		{
			name:        "unknown keys are dropped",
			raw:         `{"company_overview": "a", "secret_sauce": "x"}`,
			wantKeys:    1,
			wantMissing: 6,
		},
		{
			name:    "malformed json",
			raw:     `here is your plan: {...}`,
			wantErr: true,
		},
		{
			name:    "non-string section value",
			raw:     `{"company_overview": ["a", "b"]}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, missing, err := ParsePlan(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, ErrUnparseable))
				return
			}
			assert.NoError(t, err)
			assert.Len(t, plan, tt.wantKeys)
			assert.Len(t, missing, tt.wantMissing)
			for key := range plan {
				assert.True(t, IsSectionKey(key), "plan contains unrecognized key %q", key)
			}
		})
	}
}

func TestParseEdit(t *testing.T) {
	edit, err := ParseEdit(`{"section_key": "next_steps", "updated_text": "X"}`)
	assert.NoError(t, err)
	assert.Equal(t, "next_steps", edit.SectionKey)
	assert.Equal(t, "X", edit.UpdatedText)
	assert.True(t, edit.Applicable())

	_, err = ParseEdit(`nope`)
	assert.True(t, errors.Is(err, ErrUnparseable))
}

func TestSectionEditApplicable(t *testing.T) {
	tests := []struct {
		name string
		edit SectionEdit
		want bool
	}{
		{"valid", SectionEdit{SectionKey: "next_steps", UpdatedText: "X"}, true},
		{"empty text", SectionEdit{SectionKey: "next_steps"}, false},
		{"empty key", SectionEdit{UpdatedText: "X"}, false},
		{"unknown key", SectionEdit{SectionKey: "made_up", UpdatedText: "X"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.edit.Applicable())
		})
	}
}

func TestSectionTitle(t *testing.T) {
	assert.Equal(t, "Company Overview", SectionTitle("company_overview"))
	assert.Equal(t, "Risks And Red Flags", SectionTitle("risks_and_red_flags"))
	assert.Equal(t, "Next Steps", SectionTitle("next_steps"))
}
