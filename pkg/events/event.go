package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "PLAN_GENERATED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent helps embed common logic if needed,
// strictly creating valid implementations is preferred though.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// Workflow lifecycle event codes.
const (
	TypeCompanyIdentified = "COMPANY_IDENTIFIED"
	TypeResearchCompleted = "RESEARCH_COMPLETED"
	TypePlanGenerated     = "PLAN_GENERATED"
	TypePlanEdited        = "PLAN_EDITED"
)

// CompanyIdentified is emitted when discovery resolves a target company.
func CompanyIdentified(sessionID, company string) Event {
	return BaseEvent{
		Type: TypeCompanyIdentified,
		Data: map[string]interface{}{
			"session_id": sessionID,
			"company":    company,
		},
		OccurredAt: time.Now(),
	}
}

// ResearchCompleted is emitted after a research pass is appended.
func ResearchCompleted(sessionID, company string, noteCount int) Event {
	return BaseEvent{
		Type: TypeResearchCompleted,
		Data: map[string]interface{}{
			"session_id": sessionID,
			"company":    company,
			"note_count": noteCount,
		},
		OccurredAt: time.Now(),
	}
}

// PlanGenerated is emitted when a full account plan is stored.
func PlanGenerated(sessionID, company string, sectionCount int) Event {
	return BaseEvent{
		Type: TypePlanGenerated,
		Data: map[string]interface{}{
			"session_id":    sessionID,
			"company":       company,
			"section_count": sectionCount,
		},
		OccurredAt: time.Now(),
	}
}

// PlanEdited is emitted when an edit turn mutates a plan section.
func PlanEdited(sessionID, company, sectionKey string) Event {
	return BaseEvent{
		Type: TypePlanEdited,
		Data: map[string]interface{}{
			"session_id":  sessionID,
			"company":     company,
			"section_key": sectionKey,
		},
		OccurredAt: time.Now(),
	}
}
