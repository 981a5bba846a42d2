package dto

// ChatRequest is the POST /chat payload.
type ChatRequest struct {
	SessionId string `json:"session_id" validate:"required"`
	Message   string `json:"message" validate:"required"`
	Persona   string `json:"persona"` // defaults to "efficient" when empty
}

// ChatResponse is the flat POST /chat reply. Company and AccountPlan are
// null until the corresponding phase has produced them.
type ChatResponse struct {
	Reply       string            `json:"reply"`
	Mode        string            `json:"mode"`
	Company     *string           `json:"company"`
	AccountPlan map[string]string `json:"account_plan"`
}

// CreateSessionResponse is returned by the supplemental session-create
// endpoint.
type CreateSessionResponse struct {
	Id string `json:"id"`
}

// SessionSnapshotResponse exposes the stored state of one session.
type SessionSnapshotResponse struct {
	Id            string            `json:"id"`
	Mode          string            `json:"mode"`
	Persona       string            `json:"persona"`
	Company       *string           `json:"company"`
	ResearchNotes int               `json:"research_notes"`
	AccountPlan   map[string]string `json:"account_plan"`
}

// PublishPlanEventMessage is the wire payload on the plan events topic.
type PublishPlanEventMessage struct {
	EventType  string                 `json:"event_type"`
	Payload    map[string]interface{} `json:"payload"`
	OccurredAt string                 `json:"occurred_at"`
}
