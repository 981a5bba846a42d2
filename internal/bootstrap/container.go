package bootstrap

import (
	"context"
	"log"
	"time"

	"account-plan-be/internal/config"
	"account-plan-be/internal/controller"
	"account-plan-be/internal/pkg/logger"
	"account-plan-be/internal/repository/contract"
	"account-plan-be/internal/repository/memory"
	"account-plan-be/internal/repository/redisstore"
	"account-plan-be/internal/service"
	"account-plan-be/pkg/llm/factory"
	"account-plan-be/pkg/planner/state"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
)

type Container struct {
	// Controllers
	ChatController controller.IChatController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. LLM Provider based on Config
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.OpenAI,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. Session Storage based on Config
	sessionTTL := time.Duration(cfg.Session.TTLMinutes) * time.Minute
	var sessionRepo contract.SessionRepository
	if cfg.Session.Backend == "redis" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{
				Addr: cfg.App.RedisURL,
			}
		}
		rdb := redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
		sessionRepo = redisstore.NewSessionRepository(rdb, sessionTTL)
		log.Printf("[INFO] Using Session Backend: REDIS")
	} else {
		sessionRepo = memory.NewSessionRepository(sessionTTL)
		log.Printf("[INFO] Using Session Backend: MEMORY")
	}

	// 5. Services
	publisherService := service.NewPublisherService(cfg.App.PlanEventsTopic, pubSub)

	auditLogger := logger.NewIsolatedLogger("logs/plan_events.log")
	consumerService := service.NewConsumerService(pubSub, cfg.App.PlanEventsTopic, auditLogger)

	stateManager := state.NewManager(log.Default())
	conversationService := service.NewConversationService(
		sessionRepo,
		llmProvider,
		publisherService,
		stateManager,
		sysLogger,
	)

	// 6. Controllers
	chatController := controller.NewChatController(conversationService)

	return &Container{
		ChatController:  chatController,
		ConsumerService: consumerService,
		Logger:          sysLogger,
	}
}
