package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"account-plan-be/internal/dto"
	"account-plan-be/internal/pkg/logger"
	"account-plan-be/internal/repository/contract"
	"account-plan-be/pkg/events"
	"account-plan-be/pkg/llm"
	"account-plan-be/pkg/planner"
	"account-plan-be/pkg/planner/prompt"
	"account-plan-be/pkg/planner/response"
	"account-plan-be/pkg/planner/state"
	"account-plan-be/pkg/store"

	"github.com/google/uuid"
)

// ErrSessionNotFound is returned by session lookups for unknown ids.
var ErrSessionNotFound = errors.New("session not found")

// Company-name extraction guard: anything longer than this is a sentence,
// not a name.
const maxCompanyNameWords = 6

// IConversationService drives the research -> plan -> edit workflow.
type IConversationService interface {
	HandleMessage(ctx context.Context, sessionID, message, persona string) (*dto.ChatResponse, error)
	CreateSession(ctx context.Context) (*dto.CreateSessionResponse, error)
	GetSession(ctx context.Context, sessionID string) (*dto.SessionSnapshotResponse, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

type conversationService struct {
	sessionRepo  contract.SessionRepository
	llmProvider  llm.LLMProvider
	publisher    IPublisherService
	stateManager *state.Manager
	sysLogger    logger.ILogger

	// One mutex per session id so concurrent messages for the same session
	// serialize instead of racing. Distinct sessions run in parallel.
	locksMu sync.Mutex
	locks   map[string]*sync.Mutex
}

func NewConversationService(
	sessionRepo contract.SessionRepository,
	llmProvider llm.LLMProvider,
	publisher IPublisherService,
	stateManager *state.Manager,
	sysLogger logger.ILogger,
) IConversationService {
	return &conversationService{
		sessionRepo:  sessionRepo,
		llmProvider:  llmProvider,
		publisher:    publisher,
		stateManager: stateManager,
		sysLogger:    sysLogger,
		locks:        make(map[string]*sync.Mutex),
	}
}

func (s *conversationService) sessionLock(sessionID string) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()
	lock, ok := s.locks[sessionID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[sessionID] = lock
	}
	return lock
}

// HandleMessage runs one transition of the conversation state machine.
// It works on a clone of the session and saves it only after the whole
// transition succeeds, so faults never commit partial writes.
func (s *conversationService) HandleMessage(ctx context.Context, sessionID, message, persona string) (*dto.ChatResponse, error) {
	if persona == "" {
		persona = store.DefaultPersona
	}

	lock := s.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	current, err := s.sessionRepo.GetOrCreate(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load session %s: %w", sessionID, err)
	}

	session := current.Clone()
	session.Persona = persona

	var res *dto.ChatResponse
	switch session.Mode {
	case store.ModeDiscovery:
		res, err = s.handleDiscovery(ctx, session, message)
	case store.ModeResearch:
		res, err = s.handleResearch(ctx, session)
	case store.ModePlanning:
		res, err = s.handlePlanning(ctx, session, message)
	case store.ModeEditing:
		res, err = s.handleEditing(ctx, session, message)
	default:
		// Unreachable for sessions created by this service.
		return nil, fmt.Errorf("session %s in unknown mode %q", sessionID, session.Mode)
	}
	if err != nil {
		return nil, err
	}

	if err := s.sessionRepo.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save session %s: %w", sessionID, err)
	}
	return res, nil
}

func (s *conversationService) handleDiscovery(ctx context.Context, session *store.Session, message string) (*dto.ChatResponse, error) {
	company, err := s.extractCompanyName(ctx, message)
	if err != nil {
		return nil, fmt.Errorf("extract company name: %w", err)
	}

	if company == "" {
		return s.respond(session, response.Onboarding()), nil
	}

	s.stateManager.TransitionToResearch(session, company)
	s.publish(ctx, events.CompanyIdentified(session.ID, company))
	return s.respond(session, response.ResearchAck(company)), nil
}

func (s *conversationService) handleResearch(ctx context.Context, session *store.Session) (*dto.ChatResponse, error) {
	if session.TargetCompany == "" {
		s.stateManager.DemoteToDiscovery(session)
		return s.respond(session, response.LostCompany()), nil
	}

	builder := prompt.NewBuilder(session.Persona)
	system, user := builder.ResearchPrompt(session.TargetCompany)
	researchReply, err := llm.Complete(ctx, s.llmProvider, system, user, false)
	if err != nil {
		return nil, fmt.Errorf("research pass: %w", err)
	}

	// The full reply is the summary; step markers are not separated out.
	s.stateManager.TransitionToPlanning(session, researchReply)
	s.publish(ctx, events.ResearchCompleted(session.ID, session.TargetCompany, len(session.ResearchNotes)))
	return s.respond(session, response.ResearchNarrative(researchReply)), nil
}

func (s *conversationService) handlePlanning(ctx context.Context, session *store.Session, message string) (*dto.ChatResponse, error) {
	lower := strings.ToLower(message)
	explicit := strings.Contains(lower, "generate plan") || strings.Contains(lower, "account plan")

	notes := strings.Join(session.ResearchNotes, "\n\n")
	if !explicit {
		notes = notes + "\n\nUser focus: " + message
	}

	builder := prompt.NewBuilder(session.Persona)
	system, user := builder.PlanPrompt(session.TargetCompany, notes)
	raw, err := llm.Complete(ctx, s.llmProvider, system, user, true)
	if err != nil {
		return nil, fmt.Errorf("plan generation: %w", err)
	}

	plan, missing, err := planner.ParsePlan(raw)
	if err != nil {
		return nil, err
	}
	if len(missing) > 0 {
		s.sysLogger.Warn("conversation", "plan generation omitted sections", map[string]interface{}{
			"session_id": session.ID,
			"missing":    missing,
		})
	}

	s.stateManager.TransitionToEditing(session, plan)
	s.publish(ctx, events.PlanGenerated(session.ID, session.TargetCompany, len(plan)))

	planText := response.RenderPlan(plan)
	if explicit {
		return s.respond(session, response.PlanGenerated(session.TargetCompany, planText)), nil
	}
	return s.respond(session, response.PlanTailored(planText)), nil
}

func (s *conversationService) handleEditing(ctx context.Context, session *store.Session, message string) (*dto.ChatResponse, error) {
	if !session.HasPlan() {
		s.stateManager.DemoteToPlanning(session)
		return s.respond(session, response.MissingPlan()), nil
	}

	builder := prompt.NewBuilder(session.Persona)
	system, user, err := builder.EditPrompt(session.TargetCompany, session.AccountPlan, message)
	if err != nil {
		return nil, err
	}

	raw, err := llm.Complete(ctx, s.llmProvider, system, user, true)
	if err != nil {
		return nil, fmt.Errorf("plan edit: %w", err)
	}

	edit, err := planner.ParseEdit(raw)
	if err != nil {
		return nil, err
	}

	if !edit.Applicable() {
		s.sysLogger.Warn("conversation", "edit turn produced no applicable change", map[string]interface{}{
			"session_id":  session.ID,
			"section_key": edit.SectionKey,
		})
		return s.respond(session, response.EditNoChange(response.RenderPlan(session.AccountPlan))), nil
	}

	s.stateManager.ApplyEdit(session, edit.SectionKey, edit.UpdatedText)
	s.publish(ctx, events.PlanEdited(session.ID, session.TargetCompany, edit.SectionKey))
	return s.respond(session, response.EditApplied(edit.SectionKey, response.RenderPlan(session.AccountPlan))), nil
}

// extractCompanyName runs the dedicated extraction call. An empty result or
// one longer than six words means "no company found" and is not an error.
func (s *conversationService) extractCompanyName(ctx context.Context, message string) (string, error) {
	name, err := llm.Complete(ctx, s.llmProvider, prompt.ExtractionSystem(), message, false)
	if err != nil {
		return "", err
	}
	name = strings.TrimSpace(name)
	if len(strings.Fields(name)) > maxCompanyNameWords {
		return "", nil
	}
	return name, nil
}

func (s *conversationService) respond(session *store.Session, reply string) *dto.ChatResponse {
	res := &dto.ChatResponse{
		Reply: reply,
		Mode:  session.Mode,
	}
	if session.TargetCompany != "" {
		company := session.TargetCompany
		res.Company = &company
	}
	if session.HasPlan() {
		res.AccountPlan = session.AccountPlan
	}
	return res
}

// publish emits a lifecycle event; failures are logged, never surfaced,
// because the transition itself already succeeded.
func (s *conversationService) publish(ctx context.Context, event events.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishEvent(ctx, event); err != nil {
		s.sysLogger.Warn("conversation", "failed to publish event", map[string]interface{}{
			"event_type": event.EventType(),
			"error":      err.Error(),
		})
	}
}

// --- Supplemental session surface ---

func (s *conversationService) CreateSession(ctx context.Context) (*dto.CreateSessionResponse, error) {
	id := uuid.NewString()
	if _, err := s.sessionRepo.GetOrCreate(ctx, id); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return &dto.CreateSessionResponse{Id: id}, nil
}

func (s *conversationService) GetSession(ctx context.Context, sessionID string) (*dto.SessionSnapshotResponse, error) {
	session, found, err := s.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load session %s: %w", sessionID, err)
	}
	if !found {
		return nil, ErrSessionNotFound
	}

	res := &dto.SessionSnapshotResponse{
		Id:            session.ID,
		Mode:          session.Mode,
		Persona:       session.Persona,
		ResearchNotes: len(session.ResearchNotes),
	}
	if session.TargetCompany != "" {
		company := session.TargetCompany
		res.Company = &company
	}
	if session.HasPlan() {
		res.AccountPlan = session.AccountPlan
	}
	return res, nil
}

func (s *conversationService) DeleteSession(ctx context.Context, sessionID string) error {
	return s.sessionRepo.Delete(ctx, sessionID)
}
