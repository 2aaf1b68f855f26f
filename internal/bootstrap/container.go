package bootstrap

import (
	"context"
	"log"
	"time"

	"ai-tickettriage-be/internal/config"
	"ai-tickettriage-be/internal/controller"
	"ai-tickettriage-be/internal/pkg/logger"
	"ai-tickettriage-be/internal/pkg/mailer"
	"ai-tickettriage-be/internal/repository/unitofwork"
	"ai-tickettriage-be/internal/service"
	"ai-tickettriage-be/pkg/embedding"
	"ai-tickettriage-be/pkg/llm/factory"
	"ai-tickettriage-be/pkg/triage/pipeline"
	"ai-tickettriage-be/pkg/triage/retriever"

	pktNats "ai-tickettriage-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	TriageController    controller.ITriageController
	KnowledgeController controller.IKnowledgeController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// Shared infra, exposed for shutdown
	Logger  logger.ILogger
	NatsPub *pktNats.Publisher
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.Email,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI Providers
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini, "text-embedding-004")
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	}

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.GoogleGemini,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. Infrastructure
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Retrieval context cache
	var contextCache retriever.ContextCache
	if cfg.Ai.EnableCache {
		ttl := time.Duration(cfg.Ai.CacheTTL) * time.Second
		if cfg.Ai.CacheBackend == "redis" {
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
			contextCache = retriever.NewRedisCache(rdb, ttl)
			log.Printf("[INFO] Context cache: REDIS (ttl %s)", ttl)
		} else {
			contextCache = retriever.NewMemoryCache(ttl)
			log.Printf("[INFO] Context cache: MEMORY (ttl %s)", ttl)
		}
	}

	// 5. Retrieval + Generation Pipeline
	knowledgeSearcher := service.NewKnowledgeSearcher(uowFactory, cfg.Ai.Sector)
	contextRetriever := retriever.New(embeddingProvider, knowledgeSearcher, contextCache, nil)

	triagePipeline := pipeline.New(contextRetriever, llmProvider, pipeline.Config{
		Sector:              cfg.Ai.Sector,
		SimilarityThreshold: cfg.Ai.SimilarityThreshold,
		MaxContextEntries:   cfg.Ai.MaxContextEntries,
		Temperature:         cfg.Ai.Temperature,
		TopP:                cfg.Ai.TopP,
		MaxNewTokens:        cfg.Ai.MaxNewTokens,
	}, nil)

	// 6. Services
	publisherService := service.NewPublisherService(pubSub, cfg.Keys.IngestTopic)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Keys.IngestTopic,
		uowFactory,
		embeddingProvider,
		cfg.Ai.Sector,
	)

	knowledgeService := service.NewKnowledgeService(
		uowFactory,
		publisherService,
		embeddingProvider,
		natsPub,
		cfg.Ai.Sector,
	)

	triageService := service.NewTriageService(
		triagePipeline,
		natsPub,
		emailService,
		sysLogger,
		cfg.Ai.Sector,
	)

	// 7. Controllers
	return &Container{
		TriageController:    controller.NewTriageController(triageService),
		KnowledgeController: controller.NewKnowledgeController(knowledgeService),

		ConsumerService: consumerService,

		Logger:  sysLogger,
		NatsPub: natsPub,
	}
}
