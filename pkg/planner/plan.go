package planner

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnparseable marks LLM output that could not be parsed into the expected
// structure. Callers can match it with errors.Is and surface a retryable
// service error instead of crashing.
var ErrUnparseable = errors.New("unparseable llm response")

// SectionKeys is the fixed set of account plan sections, in intent order.
var SectionKeys = []string{
	"company_overview",
	"key_initiatives",
	"org_map_and_stakeholders",
	"current_tech_landscape",
	"opportunities_for_us",
	"risks_and_red_flags",
	"next_steps",
}

// IsSectionKey reports whether key is one of the recognized plan sections.
func IsSectionKey(key string) bool {
	for _, k := range SectionKeys {
		if k == key {
			return true
		}
	}
	return false
}

// ParsePlan validates a JSON-mode generation result into a plan mapping.
// Unrecognized keys are dropped so the stored plan never grows extra
// sections. Missing keys are tolerated and returned for the caller to log.
func ParsePlan(raw string) (map[string]string, []string, error) {
	var decoded map[string]any
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, nil, fmt.Errorf("%w: plan generation: %v", ErrUnparseable, err)
	}

	plan := make(map[string]string, len(SectionKeys))
	for _, key := range SectionKeys {
		value, ok := decoded[key]
		if !ok {
			continue
		}
		text, ok := value.(string)
		if !ok {
			return nil, nil, fmt.Errorf("%w: plan section %q is not a string", ErrUnparseable, key)
		}
		plan[key] = text
	}

	var missing []string
	for _, key := range SectionKeys {
		if _, ok := plan[key]; !ok {
			missing = append(missing, key)
		}
	}

	return plan, missing, nil
}

// SectionEdit is the expected shape of a JSON-mode edit result.
type SectionEdit struct {
	SectionKey  string `json:"section_key"`
	UpdatedText string `json:"updated_text"`
}

// ParseEdit validates a JSON-mode edit result.
func ParseEdit(raw string) (*SectionEdit, error) {
	var edit SectionEdit
	if err := json.Unmarshal([]byte(raw), &edit); err != nil {
		return nil, fmt.Errorf("%w: plan edit: %v", ErrUnparseable, err)
	}
	return &edit, nil
}

// Applicable reports whether the edit identifies a recognized section and
// carries replacement text. Anything else is treated as a no-op, never as
// a new plan key.
func (e *SectionEdit) Applicable() bool {
	return IsSectionKey(e.SectionKey) && e.UpdatedText != ""
}

// SectionTitle humanizes a section key: underscores become spaces, each
// word is title-cased ("risks_and_red_flags" -> "Risks And Red Flags").
func SectionTitle(key string) string {
	title := []rune(key)
	startOfWord := true
	for i, r := range title {
		if r == '_' {
			title[i] = ' '
			startOfWord = true
			continue
		}
		if startOfWord && r >= 'a' && r <= 'z' {
			title[i] = r - ('a' - 'A')
		}
		startOfWord = false
	}
	return string(title)
}
